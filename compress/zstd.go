package compress

// ZstdCodec provides Zstandard compression for payloads where compression
// ratio matters more than compression speed.
//
// Two implementations back this codec, selected at build time:
//   - cgo builds use valyala/gozstd (bindings to the reference C library)
//   - pure-Go builds use klauspost/compress/zstd
//
// Both implementations produce interoperable Zstandard frames.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
