package fileio

import (
	"errors"
	"io"
	"os"

	"github.com/arloliu/platformutil/internal/pool"
)

// readChunkSize is the size of each buffered read.
const readChunkSize = 4096

// ReadFile reads the whole file at path in binary mode and returns its content.
//
// On open or read failure it returns whatever content was successfully
// accumulated before the failure, typically nil for files that fail to open
// at all. There is no error channel: callers check for emptiness, which makes
// "empty file", "failed to open" and "partial read" indistinguishable. Use
// ReadFileErr when the underlying error matters.
func ReadFile(path string) []byte {
	content, _ := ReadFileErr(path)
	return content
}

// ReadFileErr reads the whole file at path and additionally reports the
// error that stopped the read, if any. The returned content follows the same
// accumulation behavior as ReadFile: on failure it holds whatever was read
// before the error occurred.
func ReadFileErr(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := pool.GetFileBuffer()
	defer pool.PutFileBuffer(buf)

	chunk := make([]byte, readChunkSize)
	for {
		n, err := f.Read(chunk)
		if n > 0 {
			buf.MustWrite(chunk[:n])
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return buf.CopyBytes(), nil
			}

			return buf.CopyBytes(), err
		}
	}
}
