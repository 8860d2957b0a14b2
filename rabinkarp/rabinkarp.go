// Package rabinkarp implements Rabin-Karp exact substring search with a
// modular rolling hash.
//
// The hash of the current text window is updated in O(1) per shift. Windows
// whose hash equals the pattern hash are verified by direct comparison, so a
// collision can never produce a false match. The worst case, where every
// window collides, degrades to O(n*m).
package rabinkarp

import (
	"math/bits"
	"slices"

	"github.com/coregx/strsearch/internal/conv"
)

// CodeUnit is the set of code unit types the rolling hash accepts.
type CodeUnit interface {
	~byte | ~uint16 | ~rune
}

// Index returns the index of the first occurrence of pattern in text using
// DefaultConfig. The boolean is false when pattern does not occur in text.
//
// Example:
//
//	i, ok := rabinkarp.Index([]byte("this is a hash table"), []byte("hash"))
//	// i == 10, ok == true
func Index[T CodeUnit](text, pattern []T) (int, bool) {
	return search(text, pattern, DefaultBase, DefaultModulus)
}

// IndexConfig is Index with an explicit hash configuration.
//
// It fails with an error matching ErrInvalidConfiguration before looking at
// the inputs if config is invalid. An empty pattern matches at 0; a pattern
// longer than text is not found.
func IndexConfig[T CodeUnit](text, pattern []T, config Config) (int, bool, error) {
	if err := config.Validate(); err != nil {
		return -1, false, err
	}
	i, ok := search(text, pattern, conv.IntToUint64(config.Base), conv.IntToUint64(config.Modulus))
	return i, ok, nil
}

func search[T CodeUnit](text, pattern []T, base, modulus uint64) (int, bool) {
	m := len(pattern)
	if m == 0 {
		return 0, true
	}

	n := len(text)
	if m > n {
		return -1, false
	}

	base %= modulus
	hMult := powMod(base, uint64(m-1), modulus)

	var patternHash, windowHash uint64
	for i := 0; i < m; i++ {
		patternHash = addMod(mulMod(patternHash, base, modulus), ord(pattern[i], modulus), modulus)
		windowHash = addMod(mulMod(windowHash, base, modulus), ord(text[i], modulus), modulus)
	}

	for i := 0; i <= n-m; i++ {
		if windowHash == patternHash && slices.Equal(text[i:i+m], pattern) {
			return i, true
		}

		if i < n-m {
			out := mulMod(ord(text[i], modulus), hMult, modulus)
			windowHash = subMod(windowHash, out, modulus)
			windowHash = addMod(mulMod(windowHash, base, modulus), ord(text[i+m], modulus), modulus)
		}
	}

	return -1, false
}

// ord returns the code unit value reduced into [0, modulus).
func ord[T CodeUnit](u T, modulus uint64) uint64 {
	return uint64(uint32(u)) % modulus
}

// mulMod returns a*b mod m using a 128-bit intermediate product.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}

// addMod requires a, b < m <= MaxInt64, so a+b cannot wrap.
func addMod(a, b, m uint64) uint64 {
	return (a + b) % m
}

// subMod returns a-b normalized into [0, m). Requires a, b < m.
func subMod(a, b, m uint64) uint64 {
	return (a + m - b) % m
}

// powMod computes base^exp mod m by square-and-multiply.
func powMod(base, exp, m uint64) uint64 {
	result := uint64(1) % m
	base %= m
	for exp > 0 {
		if exp&1 != 0 {
			result = mulMod(result, base, m)
		}
		base = mulMod(base, base, m)
		exp >>= 1
	}
	return result
}
