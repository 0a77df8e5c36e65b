package fileio

import "github.com/arloliu/platformutil/internal/hash"

// Digest computes the xxHash64 digest of the given content.
//
// Useful for callers that read the same path repeatedly and want to detect
// content changes without byte-wise comparison.
func Digest(content []byte) uint64 {
	return hash.Sum64(content)
}

// ReadFileDigest reads the whole file at path and returns its content along
// with the xxHash64 digest of that content. The read follows the same
// failure policy as ReadFile; the digest of an empty result is the digest of
// the empty byte sequence.
func ReadFileDigest(path string) ([]byte, uint64) {
	content := ReadFile(path)
	return content, hash.Sum64(content)
}
