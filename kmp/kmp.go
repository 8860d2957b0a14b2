// Package kmp implements Knuth-Morris-Pratt exact substring search.
//
// The matcher never moves backwards over the text: on a mismatch it falls
// back within the pattern using the longest-prefix-suffix (LPS) table, so a
// search over n text units with an m unit pattern runs in O(n+m).
//
// Both functions are generic over any comparable code unit, so the same code
// serves byte slices, rune slices and UTF-16 code units.
package kmp

// BuildLPS returns the longest-prefix-suffix table of pattern.
//
// lps[i] is the length of the longest proper prefix of pattern[:i+1] that is
// also a suffix of it. lps[0] is always 0 and lps[i] <= i. An empty pattern
// yields an empty table.
//
// Example:
//
//	kmp.BuildLPS([]byte("aabaaab")) // [0 1 0 1 2 2 3]
func BuildLPS[T comparable](pattern []T) []int {
	m := len(pattern)
	lps := make([]int, m)

	length := 0 // length of the prefix matched so far
	for i := 1; i < m; {
		switch {
		case pattern[i] == pattern[length]:
			length++
			lps[i] = length
			i++
		case length != 0:
			// Reuse the shorter border; i stays put.
			length = lps[length-1]
		default:
			lps[i] = 0
			i++
		}
	}

	return lps
}

// Index returns the index of the first occurrence of pattern in text.
// The boolean is false when pattern does not occur in text.
//
// An empty pattern matches at index 0, including in an empty text.
//
// The LPS table is rebuilt on every call; nothing is cached between calls,
// which makes Index safe for concurrent use on independent inputs.
//
// Example:
//
//	i, ok := kmp.Index([]byte("hello world"), []byte("world"))
//	// i == 6, ok == true
func Index[T comparable](text, pattern []T) (int, bool) {
	m := len(pattern)
	if m == 0 {
		return 0, true
	}

	n := len(text)
	if m > n {
		return -1, false
	}

	lps := BuildLPS(pattern)

	i, j := 0, 0 // cursors into text and pattern
	for i < n {
		if text[i] == pattern[j] {
			i++
			j++
			if j == m {
				return i - j, true
			}
			continue
		}

		if j != 0 {
			j = lps[j-1]
		} else {
			i++
		}
	}

	return -1, false
}
