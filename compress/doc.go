// Package compress provides compression and decompression codecs for file payloads.
//
// The fileio package uses these codecs to transparently decompress data files
// whose extension identifies the algorithm; the codecs are also usable on
// their own for arbitrary byte payloads.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
//   - None: no compression (NoOpCodec, passthrough)
//   - Zstd: excellent compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: very fast decompression, moderate compression
//
// Pick Zstd when storage or bandwidth dominates, S2 for a balance of speed
// and ratio, and LZ4 when decompression latency matters most.
//
// # Zstd Build Variants
//
// The Zstd codec has two implementations selected by build configuration:
// cgo builds bind the reference C library via valyala/gozstd, while pure-Go
// builds use klauspost/compress/zstd. The produced frames are interoperable.
//
// # Thread Safety
//
// All codec implementations are stateless values and safe for concurrent use.
// Internal encoder/decoder instances are pooled per process.
//
// # Error Handling
//
// Compression errors are rare. Decompression returns an error for corrupted
// input, an incompatible format, or an unreasonable expansion ratio (LZ4
// block payloads are capped at 128MB decompressed).
package compress
