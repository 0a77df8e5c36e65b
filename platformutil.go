// Package platformutil provides a small set of standalone platform utilities:
// text encoding conversion between UTF-8 and the platform wide encodings,
// string sanitization for safe embedding in concatenated JSON documents,
// whole-file reading, simultaneous sine/cosine computation, degree/radian
// conversion, endianness detection, and network/host byte order conversion.
//
// Each operation is an independent, stateless transformation; there is no
// shared state between calls and every function is safe for concurrent use.
//
// # Failure Contract
//
// The conversion and file reading operations never return an error: failure
// degrades to an empty result, which callers use as a sentinel. Richer
// error-returning variants exist in the topic packages (for example
// fileio.ReadFileErr) as additive extensions.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the topic
// packages, simplifying the most common use cases. For byte-stream text
// conversion, compressed file reading, digests, and endian engines, use the
// textcodec, fileio, compress and endian packages directly.
package platformutil

import (
	"github.com/arloliu/platformutil/endian"
	"github.com/arloliu/platformutil/fileio"
	"github.com/arloliu/platformutil/mathx"
	"github.com/arloliu/platformutil/sanitize"
	"github.com/arloliu/platformutil/textcodec"
)

// Utf8ToUtf16 decodes a UTF-8 byte sequence into UTF-16 code units.
// Malformed input yields an empty result.
//
// Example:
//
//	wide := platformutil.Utf8ToUtf16([]byte("hello"))
//	if len(wide) == 0 {
//	    // conversion failed (or input was empty)
//	}
func Utf8ToUtf16(input []byte) []uint16 {
	return textcodec.DecodeUTF8(input)
}

// Utf16ToUtf8 encodes a sequence of 16-bit UTF-16 code units into UTF-8 bytes.
// Meant to be used when the source platform's wide character is 2 bytes,
// usually with Windows processes. Unencodable input yields an empty result.
func Utf16ToUtf8(input []uint16) []byte {
	return textcodec.EncodeUTF16(input)
}

// Utf32ToUtf8 encodes a sequence of 32-bit code points into UTF-8 bytes.
// Meant to be used when the source platform's wide character is 4 bytes,
// usually with Linux processes. Unencodable input yields an empty result.
func Utf32ToUtf8(input []uint32) []byte {
	return textcodec.EncodeUTF32(input)
}

// Escape sanitizes the given buffer in place so its content can be spliced
// verbatim into a JSON string literal: double quotes and bytes outside
// printable ASCII become spaces, and the last byte is forced to NUL.
func Escape(buf []byte) {
	sanitize.Escape(buf)
}

// ReadFile reads the whole file at path and returns its content, or whatever
// was accumulated before a failure. It never returns an error; callers check
// for emptiness.
func ReadFile(path string) []byte {
	return fileio.ReadFile(path)
}

// SinCos computes the sine and cosine of value in a single call, along with
// a best-effort validity flag. See mathx.SinCos for the flag's semantics.
func SinCos(value float64) (sin, cos float64, ok bool) {
	return mathx.SinCos(value)
}

// DegreesToRadians converts degrees to radians.
func DegreesToRadians(degrees float64) float64 {
	return mathx.DegreesToRadians(degrees)
}

// IsBigEndian reports whether the host stores the most-significant byte of a
// multi-byte integer first.
func IsBigEndian() bool {
	return endian.IsBigEndian()
}

// NetworkToHost converts a 16-bit value from network byte order to host byte
// order.
func NetworkToHost(value uint16) uint16 {
	return endian.NetworkToHost16(value)
}
