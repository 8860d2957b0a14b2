package scan

import "bytes"

// Index returns the index of the first instance of needle in haystack, or -1
// if needle is not present. An empty needle matches at 0.
//
// The rarest byte of needle (by Rank) is located with IndexByte, and each
// candidate position is verified with a full comparison.
//
// Example:
//
//	scan.Index([]byte("aaaaaabaaaa"), []byte("aab")) // 4
func Index(haystack, needle []byte) int {
	m := len(needle)
	n := len(haystack)

	switch {
	case m == 0:
		return 0
	case m > n:
		return -1
	case m == 1:
		return IndexByte(haystack, needle[0])
	}

	rare, rareIdx := RarestByte(needle)

	// Candidates for the rare byte before rareIdx cannot start a match.
	for from := rareIdx; from <= n-m+rareIdx; {
		pos := IndexByte(haystack[from:n-m+rareIdx+1], rare)
		if pos < 0 {
			return -1
		}
		start := from + pos - rareIdx
		if bytes.Equal(haystack[start:start+m], needle) {
			return start
		}
		from += pos + 1
	}
	return -1
}

// RarestByte returns the byte of needle with the lowest Rank and its first
// position. Ties keep the earliest byte. needle must not be empty.
func RarestByte(needle []byte) (byte, int) {
	rare, idx := needle[0], 0
	for i := 1; i < len(needle); i++ {
		if Rank(needle[i]) < Rank(rare) {
			rare, idx = needle[i], i
		}
	}
	return rare, idx
}
