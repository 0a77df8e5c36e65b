// Package endian provides byte order detection and conversion utilities.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine interface,
// and adds host byte order detection plus network/host order conversion helpers
// for callers that exchange multi-byte integers with the network or with
// foreign processes.
//
// # Basic Usage
//
// Detecting the host byte order:
//
//	import "github.com/arloliu/platformutil/endian"
//
//	if endian.IsBigEndian() {
//	    // network byte order already matches host order
//	}
//
// Converting a value received in network byte order:
//
//	port := endian.NetworkToHost16(rawPort)
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library, making it fully compatible with existing Go code while
// providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x01020304 stores its MSB (0x01) first on a big-endian system and its
	// LSB (0x04) first on a little-endian system.
	var i uint32 = 0x01020304

	// Create a byte slice pointing to the memory address of 'i'.
	// We only need the first byte.
	b := (*[4]byte)(unsafe.Pointer(&i))

	// Check the first byte at the lowest memory address
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
