package strsearch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm for unrecognised names.
var ErrUnknownAlgorithm = errors.New("strsearch: unknown algorithm")

// Algorithm selects one of the classical matchers.
type Algorithm uint8

const (
	// KMP is Knuth-Morris-Pratt: O(n+m), never moves backwards over the text.
	KMP Algorithm = iota

	// BoyerMoore uses the bad-character rule and compares right to left,
	// skipping several alignments per mismatch on typical text.
	BoyerMoore

	// RabinKarp compares rolling hashes and verifies every hash hit.
	RabinKarp
)

// Algorithms returns every Algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{KMP, BoyerMoore, RabinKarp}
}

// String returns the display name used in benchmark reports.
func (a Algorithm) String() string {
	switch a {
	case KMP:
		return "KMP"
	case BoyerMoore:
		return "Boyer-Moore"
	case RabinKarp:
		return "Rabin-Karp"
	default:
		return fmt.Sprintf("Algorithm(%d)", a)
	}
}

// ParseAlgorithm maps a name to an Algorithm. It accepts the display names
// and the short forms "kmp", "bm" and "rk", case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "kmp", "knuth-morris-pratt":
		return KMP, nil
	case "bm", "boyer-moore", "boyermoore":
		return BoyerMoore, nil
	case "rk", "rabin-karp", "rabinkarp":
		return RabinKarp, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
