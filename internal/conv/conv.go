// Package conv provides checked integer conversions.
//
// These functions perform bounds checking before converting between signed
// and unsigned widths. They panic on overflow since that indicates a
// programming error (a value that validation should already have rejected).
package conv

// IntToUint64 safely converts an int to uint64.
// Panics if n < 0.
//
//go:inline
func IntToUint64(n int) uint64 {
	if n < 0 {
		panic("integer overflow: negative int converted to uint64")
	}
	return uint64(n)
}
