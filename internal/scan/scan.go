// Package scan provides word-at-a-time byte primitives used as the reference
// baseline for the classical matchers and by the benchmark harness.
//
// All functions use SWAR (SIMD Within A Register): eight bytes are loaded into
// a uint64 and tested with bitwise arithmetic, so they run at the same speed
// on every architecture without assembly.
package scan

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// IndexByte returns the index of the first instance of c in s, or -1 if c is
// not present.
//
// Algorithm:
//  1. Broadcast c into every byte of a uint64 mask
//  2. XOR each 8-byte chunk with the mask (matching bytes become 0x00)
//  3. Detect a zero byte with (v - 0x01..01) & ^v & 0x80..80
//  4. The lowest set bit gives the first matching byte
func IndexByte(s []byte, c byte) int {
	n := len(s)
	idx := 0

	if n >= 8 {
		mask := uint64(c) * lo8
		for ; idx+8 <= n; idx += 8 {
			v := binary.LittleEndian.Uint64(s[idx:]) ^ mask
			if z := (v - lo8) & ^v & hi8; z != 0 {
				return idx + bits.TrailingZeros64(z)/8
			}
		}
	}

	for ; idx < n; idx++ {
		if s[idx] == c {
			return idx
		}
	}
	return -1
}

// IsASCII reports whether every byte of s is below 0x80.
// When it holds, byte offsets and rune offsets into s coincide.
func IsASCII(s []byte) bool {
	n := len(s)
	idx := 0
	for ; idx+8 <= n; idx += 8 {
		if binary.LittleEndian.Uint64(s[idx:])&hi8 != 0 {
			return false
		}
	}
	for ; idx < n; idx++ {
		if s[idx] >= 0x80 {
			return false
		}
	}
	return true
}
