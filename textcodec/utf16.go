package textcodec

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/arloliu/platformutil/internal/pool"
)

// UTF-16 surrogate ranges and the Unicode code point ceiling.
const (
	surrHigh     = 0xD800
	surrLow      = 0xDC00
	surrEnd      = 0xE000
	maxCodePoint = 0x10FFFF
)

// DecodeUTF8 decodes a UTF-8 byte sequence into UTF-16 code units.
//
// The returned slice is newly allocated and owned by the caller. Malformed
// input that cannot be decoded as UTF-8 yields a nil result rather than an
// error; callers treat emptiness as the conversion-failed sentinel.
func DecodeUTF8(input []byte) []uint16 {
	if len(input) == 0 || !utf8.Valid(input) {
		return nil
	}

	runes, cleanup := pool.GetRuneSlice(utf8.RuneCount(input))
	defer cleanup()

	i := 0
	for len(input) > 0 {
		r, size := utf8.DecodeRune(input)
		runes[i] = r
		i++
		input = input[size:]
	}

	return utf16.Encode(runes)
}

// DecodeUTF8To32 decodes a UTF-8 byte sequence into UTF-32 code points.
//
// This is the 4-byte wide-character counterpart of DecodeUTF8, for callers
// whose platform represents wide strings as 32-bit units. Malformed input
// yields a nil result.
func DecodeUTF8To32(input []byte) []uint32 {
	if len(input) == 0 || !utf8.Valid(input) {
		return nil
	}

	out := make([]uint32, 0, utf8.RuneCount(input))
	for len(input) > 0 {
		r, size := utf8.DecodeRune(input)
		out = append(out, uint32(r))
		input = input[size:]
	}

	return out
}

// EncodeUTF16 encodes a sequence of UTF-16 code units into UTF-8 bytes.
//
// Meant for wide strings whose platform wide-character width is 2 bytes,
// usually from Windows processes. Unpaired surrogates make the input
// unencodable and yield a nil result.
func EncodeUTF16(input []uint16) []byte {
	if len(input) == 0 {
		return nil
	}

	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)
	buf.Grow(len(input) * 3)

	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case c < surrHigh || c >= surrEnd:
			buf.B = utf8.AppendRune(buf.B, rune(c))
		case c < surrLow:
			// High surrogate requires a matching low surrogate.
			if i+1 >= len(input) || input[i+1] < surrLow || input[i+1] >= surrEnd {
				return nil
			}
			buf.B = utf8.AppendRune(buf.B, utf16.DecodeRune(rune(c), rune(input[i+1])))
			i++
		default:
			// Unpaired low surrogate.
			return nil
		}
	}

	return buf.CopyBytes()
}

// EncodeUTF32 encodes a sequence of UTF-32 code points into UTF-8 bytes.
//
// Meant for wide strings whose platform wide-character width is 4 bytes,
// usually from Linux processes. Code points in the surrogate range or above
// U+10FFFF make the input unencodable and yield a nil result.
func EncodeUTF32(input []uint32) []byte {
	if len(input) == 0 {
		return nil
	}

	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)
	buf.Grow(len(input) * 3)

	for _, c := range input {
		if c > maxCodePoint || (c >= surrHigh && c < surrEnd) {
			return nil
		}
		buf.B = utf8.AppendRune(buf.B, rune(c))
	}

	return buf.CopyBytes()
}
