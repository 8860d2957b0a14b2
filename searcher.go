package strsearch

import (
	"bytes"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/strsearch/boyermoore"
	"github.com/coregx/strsearch/internal/scan"
	"github.com/coregx/strsearch/kmp"
	"github.com/coregx/strsearch/rabinkarp"
)

// Searcher finds the first occurrence of a pattern in byte text.
//
// Implementations must not retain or modify text or pattern, and must not
// cache anything between calls.
type Searcher interface {
	// Name identifies the searcher in reports.
	Name() string

	// Index returns the first match index and whether a match exists.
	Index(text, pattern []byte) (int, bool)
}

// RuneSearcher is a Searcher that can also search code point sequences.
// Only the classical matchers implement it.
type RuneSearcher interface {
	Searcher
	IndexRunes(text, pattern []rune) (int, bool)
}

// matcher adapts one Algorithm to Searcher.
type matcher struct {
	alg    Algorithm
	config rabinkarp.Config
}

// NewSearcher returns the Searcher for alg. Rabin-Karp uses
// rabinkarp.DefaultConfig; see NewRabinKarpSearcher for other settings.
func NewSearcher(alg Algorithm) RuneSearcher {
	return &matcher{alg: alg, config: rabinkarp.DefaultConfig()}
}

// NewRabinKarpSearcher returns a Rabin-Karp Searcher with config.
// The error matches rabinkarp.ErrInvalidConfiguration if config is invalid.
func NewRabinKarpSearcher(config rabinkarp.Config) (RuneSearcher, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &matcher{alg: RabinKarp, config: config}, nil
}

// Searchers returns the three classical matchers, Rabin-Karp configured with
// config.
func Searchers(config rabinkarp.Config) ([]RuneSearcher, error) {
	rk, err := NewRabinKarpSearcher(config)
	if err != nil {
		return nil, err
	}
	return []RuneSearcher{NewSearcher(KMP), NewSearcher(BoyerMoore), rk}, nil
}

func (m *matcher) Name() string { return m.alg.String() }

func (m *matcher) Index(text, pattern []byte) (int, bool) {
	switch m.alg {
	case BoyerMoore:
		return boyermoore.IndexBytes(text, pattern)
	case RabinKarp:
		return indexRabinKarp(text, pattern, m.config)
	}
	return kmp.Index(text, pattern)
}

func (m *matcher) IndexRunes(text, pattern []rune) (int, bool) {
	switch m.alg {
	case BoyerMoore:
		return boyermoore.Index(text, pattern)
	case RabinKarp:
		return indexRabinKarp(text, pattern, m.config)
	}
	return kmp.Index(text, pattern)
}

// indexRabinKarp runs with a config already validated by the constructor.
func indexRabinKarp[T CodeUnit](text, pattern []T, config rabinkarp.Config) (int, bool) {
	i, ok, err := rabinkarp.IndexConfig(text, pattern, config)
	if err != nil {
		panic(err)
	}
	return i, ok
}

// Baselines returns reference searchers the classical matchers are compared
// against: the standard library, the word-at-a-time rare-byte scanner and a
// single-pattern Aho-Corasick automaton.
func Baselines() []Searcher {
	return []Searcher{stdlibSearcher{}, memmemSearcher{}, ahoCorasickSearcher{}}
}

type stdlibSearcher struct{}

func (stdlibSearcher) Name() string { return "bytes.Index" }

func (stdlibSearcher) Index(text, pattern []byte) (int, bool) {
	i := bytes.Index(text, pattern)
	return i, i >= 0
}

type memmemSearcher struct{}

func (memmemSearcher) Name() string { return "memmem" }

func (memmemSearcher) Index(text, pattern []byte) (int, bool) {
	i := scan.Index(text, pattern)
	return i, i >= 0
}

// ahoCorasickSearcher builds a one-pattern automaton per call.
type ahoCorasickSearcher struct{}

func (ahoCorasickSearcher) Name() string { return "Aho-Corasick" }

func (ahoCorasickSearcher) Index(text, pattern []byte) (int, bool) {
	if len(pattern) == 0 {
		return 0, true
	}

	builder := ahocorasick.NewBuilder()
	builder.AddPattern(pattern)
	auto, err := builder.Build()
	if err != nil {
		i := scan.Index(text, pattern)
		return i, i >= 0
	}

	m := auto.Find(text, 0)
	if m == nil {
		return -1, false
	}
	return m.Start, true
}
