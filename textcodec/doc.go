// Package textcodec converts text between UTF-8 and the UTF-16/UTF-32 wide
// encodings used by OS-native wide strings.
//
// Two families of functions are provided:
//
//   - Code-unit functions (DecodeUTF8, DecodeUTF8To32, EncodeUTF16,
//     EncodeUTF32) operate on []uint16 or []uint32 slices. Pick the width
//     matching the wide-character width of the source platform: 2 bytes on
//     Windows, 4 bytes on Linux.
//   - Byte-stream functions (DecodeUTF16Bytes, EncodeUTF16Bytes) operate on
//     raw serialized bytes with an explicit byte order, for wide strings read
//     out of foreign process memory or files.
//
// # Failure Contract
//
// All conversions are total: they never return an error. Malformed or
// unencodable input degrades to an empty (nil) result, which callers use as
// the conversion-failed sentinel. Valid non-empty input always produces
// non-empty output, so the sentinel is unambiguous for non-empty inputs.
//
// # Thread Safety
//
// All functions are stateless and safe for concurrent use. Internal scratch
// buffers are pooled per process; returned slices are always newly allocated
// and owned by the caller.
package textcodec
