package endian

import "math/bits"

// IsBigEndian reports whether the host stores the most-significant byte of a
// multi-byte integer first.
func IsBigEndian() bool {
	return IsNativeBigEndian()
}

// NetworkToHost16 converts a 16-bit value from network byte order to host byte order.
//
// On big-endian hosts the value is returned unchanged since network byte order
// already matches host order. On little-endian hosts the two bytes are swapped
// with a single-instruction byte reversal.
func NetworkToHost16(value uint16) uint16 {
	if IsBigEndian() {
		return value
	}

	return bits.ReverseBytes16(value)
}

// HostToNetwork16 converts a 16-bit value from host byte order to network byte order.
//
// The conversion is an involution, so this is the same operation as NetworkToHost16.
func HostToNetwork16(value uint16) uint16 {
	return NetworkToHost16(value)
}

// NetworkToHost32 converts a 32-bit value from network byte order to host byte order.
func NetworkToHost32(value uint32) uint32 {
	if IsBigEndian() {
		return value
	}

	return bits.ReverseBytes32(value)
}

// HostToNetwork32 converts a 32-bit value from host byte order to network byte order.
func HostToNetwork32(value uint32) uint32 {
	return NetworkToHost32(value)
}
