package platformutil

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUtf8Utf16RoundTrip(t *testing.T) {
	input := []byte("wide 日本語 𝄞")

	wide := Utf8ToUtf16(input)
	require.NotEmpty(t, wide)
	assert.Equal(t, input, Utf16ToUtf8(wide))
}

func TestUtf8ToUtf16_Malformed(t *testing.T) {
	assert.Empty(t, Utf8ToUtf16([]byte{0xFF, 0xFE}))
}

func TestUtf32ToUtf8(t *testing.T) {
	assert.Equal(t, []byte("𝄞"), Utf32ToUtf8([]uint32{0x1D11E}))
	assert.Empty(t, Utf32ToUtf8([]uint32{0x110000}))
}

func TestEscape(t *testing.T) {
	buf := []byte("a\"b\x01\x00garbage")
	Escape(buf)

	assert.Equal(t, []byte("a b "), buf[:4])
	assert.Equal(t, byte(0), buf[len(buf)-1])
}

func TestReadFile(t *testing.T) {
	content := []byte{0x01, 0x00, 0xFF}
	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	assert.Equal(t, content, ReadFile(path))
	assert.Empty(t, ReadFile(path+".missing"))
}

func TestSinCos(t *testing.T) {
	sin, cos, ok := SinCos(0.0)
	require.True(t, ok)
	assert.InDelta(t, 0.0, sin, 1e-12)
	assert.InDelta(t, 1.0, cos, 1e-12)
}

func TestDegreesToRadians(t *testing.T) {
	assert.InDelta(t, math.Pi, DegreesToRadians(180.0), 1e-12)
	assert.Zero(t, DegreesToRadians(0.0))
}

func TestNetworkToHost(t *testing.T) {
	if IsBigEndian() {
		assert.Equal(t, uint16(0x0102), NetworkToHost(0x0102))
	} else {
		assert.Equal(t, uint16(0x0201), NetworkToHost(0x0102))
	}
}
