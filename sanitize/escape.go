// Package sanitize rewrites strings so they can be spliced verbatim into a
// JSON document built by string concatenation.
//
// Double quotes are removed rather than escaped, and every byte outside the
// printable ASCII range is replaced with a space, so the result can never
// terminate or corrupt a surrounding JSON string literal.
package sanitize

import "bytes"

// Escape lossily converts the given buffer to printable ASCII in place,
// replacing any byte not within the printable ASCII region (32-126) with an
// ASCII space character.
//
// Escape also replaces any double quote characters with an ASCII space. This
// allows the content to be safely used when constructing JSON documents via
// string concatenation.
//
// The last byte of the buffer is always set to 0 before scanning, so the
// buffer is guaranteed to be NUL-terminated within its original length.
// Scanning stops at the first NUL byte; content beyond it is left untouched.
//
// An empty buffer is out of contract; Escape treats it as a no-op.
func Escape(buf []byte) {
	if len(buf) == 0 {
		return
	}

	// Ensure the buffer is properly NUL-terminated.
	buf[len(buf)-1] = 0

	for i := 0; buf[i] != 0; i++ {
		// For JSON compatibility, the content can't contain double quotes.
		if buf[i] == '"' {
			buf[i] = ' '
		}

		// Keep the content within printable ASCII.
		if buf[i] < 32 || buf[i] > 126 {
			buf[i] = ' '
		}
	}
}

// EscapeString applies the same sanitization as Escape to a Go string and
// returns the result, for callers that do not hold a fixed-size buffer.
func EscapeString(s string) string {
	buf := make([]byte, len(s)+1)
	copy(buf, s)

	Escape(buf)

	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}

	return string(buf)
}
