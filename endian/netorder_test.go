package endian

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestIsBigEndian(t *testing.T) {
	// Cross-check against a direct byte inspection of a known value.
	var testValue uint32 = 0x01020304
	firstByte := (*[4]byte)(unsafe.Pointer(&testValue))[0]

	require.Equal(t, firstByte == 0x01, IsBigEndian())
}

func TestNetworkToHost16(t *testing.T) {
	tests := []struct {
		name    string
		value   uint16
		swapped uint16
	}{
		{"zero", 0x0000, 0x0000},
		{"known pattern", 0x0102, 0x0201},
		{"asymmetric", 0xBEEF, 0xEFBE},
		{"max", 0xFFFF, 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := tt.swapped
			if IsBigEndian() {
				// Network byte order already matches host order.
				want = tt.value
			}
			require.Equal(t, want, NetworkToHost16(tt.value))
		})
	}
}

func TestNetworkToHost16Involution(t *testing.T) {
	values := []uint16{0x0000, 0x0001, 0x0102, 0x8000, 0xABCD, 0xFFFF}
	for _, v := range values {
		require.Equal(t, v, NetworkToHost16(NetworkToHost16(v)), "double conversion should restore the value")
		require.Equal(t, NetworkToHost16(v), HostToNetwork16(v), "both directions are the same operation")
	}
}

func TestNetworkToHost32(t *testing.T) {
	want := uint32(0x04030201)
	if IsBigEndian() {
		want = 0x01020304
	}
	require.Equal(t, want, NetworkToHost32(0x01020304))
	require.Equal(t, uint32(0x01020304), HostToNetwork32(NetworkToHost32(0x01020304)))
}

func BenchmarkNetworkToHost16(b *testing.B) {
	var v uint16 = 0x0102
	for b.Loop() {
		v = NetworkToHost16(v)
	}
	_ = v
}
