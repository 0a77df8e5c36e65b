package textcodec

import (
	"encoding/binary"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// DecodeUTF16Bytes converts a UTF-16 byte stream with the given byte order
// into UTF-8 bytes.
//
// Use this for wide strings that arrive serialized as raw bytes, e.g. read
// out of a foreign process. Input with an odd number of bytes or unpaired
// surrogates yields a nil result.
func DecodeUTF16Bytes(input []byte, order binary.ByteOrder) []byte {
	if len(input) == 0 || len(input)%2 != 0 {
		return nil
	}

	// The x/text decoder substitutes U+FFFD for unpaired surrogates instead
	// of failing, so reject them up front to keep the empty-on-failure
	// sentinel intact.
	if !validUTF16Bytes(input, order) {
		return nil
	}

	dec := unicode.UTF16(utf16Endianness(order), unicode.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(input)
	if err != nil {
		return nil
	}

	return out
}

// EncodeUTF16Bytes converts UTF-8 bytes into a UTF-16 byte stream with the
// given byte order. Malformed UTF-8 input yields a nil result.
func EncodeUTF16Bytes(input []byte, order binary.ByteOrder) []byte {
	if len(input) == 0 || !utf8.Valid(input) {
		return nil
	}

	enc := unicode.UTF16(utf16Endianness(order), unicode.IgnoreBOM).NewEncoder()
	out, err := enc.Bytes(input)
	if err != nil {
		return nil
	}

	return out
}

func utf16Endianness(order binary.ByteOrder) unicode.Endianness {
	if order == binary.ByteOrder(binary.BigEndian) {
		return unicode.BigEndian
	}

	return unicode.LittleEndian
}

func validUTF16Bytes(b []byte, order binary.ByteOrder) bool {
	for i := 0; i < len(b); i += 2 {
		c := order.Uint16(b[i:])
		switch {
		case c < surrHigh || c >= surrEnd:
			// Valid BMP scalar value.
		case c < surrLow:
			// High surrogate requires a matching low surrogate.
			if i+3 >= len(b) {
				return false
			}
			next := order.Uint16(b[i+2:])
			if next < surrLow || next >= surrEnd {
				return false
			}
			i += 2
		default:
			// Unpaired low surrogate.
			return false
		}
	}

	return true
}
