package fileio

import "github.com/arloliu/platformutil/compress"

// ReadFileCompressed reads the whole file at path and transparently
// decompresses its content when the file extension identifies a supported
// compression format (.zst, .s2, .lz4). Files with any other extension are
// returned as-is.
//
// The failure policy matches ReadFile: open, read and decompression failures
// all degrade to an empty result.
func ReadFileCompressed(path string) []byte {
	raw := ReadFile(path)
	if len(raw) == 0 {
		return raw
	}

	compressionType := compress.TypeForPath(path)
	if compressionType == compress.TypeNone {
		return raw
	}

	codec, err := compress.GetCodec(compressionType)
	if err != nil {
		return nil
	}

	content, err := codec.Decompress(raw)
	if err != nil {
		return nil
	}

	return content
}
