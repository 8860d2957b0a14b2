// Package strsearch provides exact substring search with three classical
// algorithms: Knuth-Morris-Pratt, Boyer-Moore (bad-character rule) and
// Rabin-Karp (rolling hash).
//
// Every matcher returns the index of the first occurrence of the pattern and
// a boolean reporting whether it was found. An empty pattern matches at 0.
// Matchers are pure functions: preprocessing tables are built per call and
// never shared, so any number of goroutines may search concurrently.
//
// Basic usage:
//
//	i, ok := strsearch.IndexString(strsearch.BoyerMoore, "this is a hash table", "hash")
//	// i == 10, ok == true
//
// Code point offsets, matching how the text reads rather than how it is
// encoded:
//
//	i, ok := strsearch.IndexRunes(strsearch.KMP, "поиск: алгоритм", "алгоритм")
//	// i == 7, ok == true
//
// The algorithm packages (kmp, boyermoore, rabinkarp) can also be used
// directly, and expose their preprocessing tables.
package strsearch

import (
	"github.com/coregx/strsearch/boyermoore"
	"github.com/coregx/strsearch/kmp"
	"github.com/coregx/strsearch/rabinkarp"
)

// CodeUnit is the set of element types the matchers search over.
type CodeUnit = rabinkarp.CodeUnit

// Index returns the index of the first occurrence of pattern in text using
// alg. The boolean is false when pattern does not occur in text.
//
// RabinKarp uses rabinkarp.DefaultConfig. Index panics on an unknown
// Algorithm value.
func Index[T CodeUnit](alg Algorithm, text, pattern []T) (int, bool) {
	switch alg {
	case KMP:
		return kmp.Index(text, pattern)
	case BoyerMoore:
		return boyermoore.Index(text, pattern)
	case RabinKarp:
		return rabinkarp.Index(text, pattern)
	}
	panic("strsearch: " + alg.String())
}

// IndexBytes is Index for byte slices. Boyer-Moore uses the array-backed
// shift table.
func IndexBytes(alg Algorithm, text, pattern []byte) (int, bool) {
	if alg == BoyerMoore {
		return boyermoore.IndexBytes(text, pattern)
	}
	return Index(alg, text, pattern)
}

// IndexString searches the UTF-8 bytes of text and returns a byte offset,
// like strings.Index.
func IndexString(alg Algorithm, text, pattern string) (int, bool) {
	return IndexBytes(alg, []byte(text), []byte(pattern))
}

// IndexRunes searches text as a sequence of code points and returns a code
// point offset.
func IndexRunes(alg Algorithm, text, pattern string) (int, bool) {
	return Index(alg, []rune(text), []rune(pattern))
}
