package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func testPayload() []byte {
	// Repetitive payload so every real algorithm actually shrinks it.
	return bytes.Repeat([]byte("status=OK host=server1 region=us-east "), 64)
}

func TestCreateCodec(t *testing.T) {
	tests := []struct {
		name            string
		compressionType Type
		wantErr         bool
	}{
		{"none", TypeNone, false},
		{"zstd", TypeZstd, false},
		{"s2", TypeS2, false},
		{"lz4", TypeLZ4, false},
		{"invalid", Type(0xFF), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, err := CreateCodec(tt.compressionType, "payload")
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, codec)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, codec)
		})
	}
}

func TestGetCodec(t *testing.T) {
	for _, ct := range []Type{TypeNone, TypeZstd, TypeS2, TypeLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err, "built-in codec for %s", ct)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(Type(0x99))
	require.Error(t, err)
}

func TestCodecRoundTrip(t *testing.T) {
	payload := testPayload()

	for _, ct := range []Type{TypeNone, TypeZstd, TypeS2, TypeLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			if ct != TypeNone {
				require.Less(t, len(compressed), len(payload), "repetitive payload should compress")
			}

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, decompressed)
		})
	}
}

func TestCodecEmptyInput(t *testing.T) {
	for _, ct := range []Type{TypeNone, TypeZstd, TypeS2, TypeLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestCodecCorruptedInput(t *testing.T) {
	corrupted := []byte{0x01, 0xDE, 0xAD, 0xBE, 0xEF}

	for _, ct := range []Type{TypeZstd, TypeS2} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			_, err = codec.Decompress(corrupted)
			require.Error(t, err, "corrupted %s payload should not decode", ct)
		})
	}
}

func TestNoOpCodecPassthrough(t *testing.T) {
	codec := NewNoOpCodec()
	payload := testPayload()

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, compressed)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, decompressed)
}

func TestTypeString(t *testing.T) {
	require.Equal(t, "None", TypeNone.String())
	require.Equal(t, "Zstd", TypeZstd.String())
	require.Equal(t, "S2", TypeS2.String())
	require.Equal(t, "LZ4", TypeLZ4.String())
	require.Equal(t, "Unknown", Type(0xAA).String())
}

func TestTypeForPath(t *testing.T) {
	tests := []struct {
		path string
		want Type
	}{
		{"data.bin.zst", TypeZstd},
		{"data.bin.s2", TypeS2},
		{"data.bin.lz4", TypeLZ4},
		{"DATA.BIN.ZST", TypeZstd},
		{"data.bin", TypeNone},
		{"data", TypeNone},
		{"", TypeNone},
		{"/var/lib/app/table.lz4", TypeLZ4},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, TypeForPath(tt.path), "path %q", tt.path)
	}
}

func BenchmarkCodecCompress(b *testing.B) {
	payload := testPayload()
	for _, ct := range []Type{TypeZstd, TypeS2, TypeLZ4} {
		codec, _ := GetCodec(ct)
		b.Run(ct.String(), func(b *testing.B) {
			for b.Loop() {
				_, _ = codec.Compress(payload)
			}
		})
	}
}
