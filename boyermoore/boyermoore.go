// Package boyermoore implements Boyer-Moore exact substring search using the
// bad-character rule.
//
// Each window of the text is compared against the pattern from right to left.
// On a mismatch the window advances by the shift recorded for the text unit
// aligned with the window's last position, which usually skips several
// alignments at once.
//
// Two table representations are provided: ShiftTable, a map usable with any
// comparable code unit, and ByteShiftTable, a fixed array indexed by byte
// value for byte text.
package boyermoore

// ShiftTable maps a code unit to its bad-character shift distance.
// Units that do not occur in the pattern have no entry.
type ShiftTable[T comparable] map[T]int

// Shift returns the shift for u, or m when u has no entry.
func (t ShiftTable[T]) Shift(u T, m int) int {
	if s, ok := t[u]; ok {
		return s
	}
	return m
}

// BuildShiftTable returns the bad-character table of pattern.
//
// For each unit in pattern[:m-1] the table holds m-idx-1, where idx is the
// unit's rightmost position before the last one. The final unit gets the
// default shift m only if it does not already have an entry; an earlier
// occurrence keeps its value.
//
// Example:
//
//	boyermoore.BuildShiftTable([]byte("abc")) // map[a:2 b:1 c:3]
//
// The pattern must not be empty.
func BuildShiftTable[T comparable](pattern []T) ShiftTable[T] {
	m := len(pattern)
	table := make(ShiftTable[T], m)

	for idx := 0; idx < m-1; idx++ {
		table[pattern[idx]] = m - idx - 1
	}

	// Default only if absent.
	if _, ok := table[pattern[m-1]]; !ok {
		table[pattern[m-1]] = m
	}

	return table
}

// ByteShiftTable is the bad-character table for byte patterns.
// A zero entry means the byte does not occur in the pattern.
type ByteShiftTable [256]int

// Lookup returns the shift recorded for b and whether b has an entry.
func (t *ByteShiftTable) Lookup(b byte) (int, bool) {
	s := t[b]
	return s, s != 0
}

// Shift returns the shift for b, or m when b has no entry.
func (t *ByteShiftTable) Shift(b byte, m int) int {
	if s := t[b]; s != 0 {
		return s
	}
	return m
}

// BuildByteShiftTable is BuildShiftTable for byte patterns, backed by a fixed
// array instead of a map. It follows the same last-occurrence and
// default-if-absent rules. The pattern must not be empty.
func BuildByteShiftTable(pattern []byte) *ByteShiftTable {
	m := len(pattern)
	table := new(ByteShiftTable)

	for idx := 0; idx < m-1; idx++ {
		table[pattern[idx]] = m - idx - 1
	}

	if table[pattern[m-1]] == 0 {
		table[pattern[m-1]] = m
	}

	return table
}

// Index returns the index of the first occurrence of pattern in text.
// The boolean is false when pattern does not occur in text.
//
// An empty pattern matches at index 0. The shift table is built on every
// call and discarded afterwards.
//
// Index works for any comparable code unit through ShiftTable. Byte callers
// should prefer IndexBytes, which avoids the map.
func Index[T comparable](text, pattern []T) (int, bool) {
	m := len(pattern)
	if m == 0 {
		return 0, true
	}

	n := len(text)
	if m > n {
		return -1, false
	}

	table := BuildShiftTable(pattern)

	for i := 0; i <= n-m; {
		j := m - 1
		for j >= 0 && text[i+j] == pattern[j] {
			j--
		}
		if j < 0 {
			return i, true
		}

		i += table.Shift(text[i+m-1], m)
	}

	return -1, false
}

// IndexBytes is Index specialised for byte slices.
//
// Example:
//
//	i, ok := boyermoore.IndexBytes([]byte("here is a simple example"), []byte("example"))
//	// i == 17, ok == true
func IndexBytes(text, pattern []byte) (int, bool) {
	m := len(pattern)
	if m == 0 {
		return 0, true
	}

	n := len(text)
	if m > n {
		return -1, false
	}

	table := BuildByteShiftTable(pattern)

	for i := 0; i <= n-m; {
		j := m - 1
		for j >= 0 && text[i+j] == pattern[j] {
			j--
		}
		if j < 0 {
			return i, true
		}

		i += table.Shift(text[i+m-1], m)
	}

	return -1, false
}
