package pool

import "sync"

// runeSlicePool reuses rune scratch slices for conversions between UTF-8
// bytes and UTF-16 code units.
var runeSlicePool = sync.Pool{
	New: func() any { return &[]rune{} },
}

// GetRuneSlice retrieves and resizes a rune slice from the pool.
//
// The returned slice will have the exact length specified by the size parameter.
// If the pooled slice has insufficient capacity, a new slice will be allocated.
// The caller must call the returned cleanup function to return the slice to the pool.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []rune: A slice with length equal to size
//   - func(): Cleanup function that must be called (typically with defer) to return the slice to the pool
//
// Example:
//
//	runes, cleanup := pool.GetRuneSlice(utf8.RuneCount(data))
//	defer cleanup()
//	// Use runes slice...
func GetRuneSlice(size int) ([]rune, func()) {
	ptr, _ := runeSlicePool.Get().(*[]rune)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]rune, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { runeSlicePool.Put(ptr) }
}
