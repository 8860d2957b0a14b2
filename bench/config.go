// Package bench compares the running time of the substring matchers on real
// articles.
//
// Each article is searched for a pattern known to occur in it ("real") and a
// pattern that does not ("fake"). Every searcher is timed as the average
// wall-clock duration over Config.Repeats identical calls. Matchers cache
// nothing between calls, so repeated calls measure the full preprocessing
// plus scan cost every time.
//
// Basic usage:
//
//	config := bench.DefaultConfig()
//	config.Articles = []bench.Article{
//	    {Name: "Article 1", Path: "article1.txt", Pattern: "алгоритм"},
//	}
//	report, err := bench.Run(ctx, config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report.Write(os.Stdout)
package bench

import (
	"fmt"

	"github.com/coregx/strsearch/rabinkarp"
)

// DefaultFakePattern is searched for in every article and is expected to be
// absent.
const DefaultFakePattern = "qwerty123!@"

// Units selects the code units the matchers see.
type Units uint8

const (
	// Bytes searches the UTF-8 encoding; indices are byte offsets.
	Bytes Units = iota

	// Runes searches code points; indices are code point offsets.
	Runes
)

// String returns "bytes" or "runes".
func (u Units) String() string {
	switch u {
	case Bytes:
		return "bytes"
	case Runes:
		return "runes"
	default:
		return fmt.Sprintf("Units(%d)", u)
	}
}

// ParseUnits maps "bytes" or "runes" to Units.
func ParseUnits(s string) (Units, error) {
	switch s {
	case "bytes":
		return Bytes, nil
	case "runes":
		return Runes, nil
	}
	return 0, &ConfigError{Field: "Units", Message: fmt.Sprintf("unknown units %q", s)}
}

// Article is one input text and the pattern known to occur in it.
type Article struct {
	Name    string
	Path    string
	Pattern string
}

// Config controls a benchmark run.
type Config struct {
	// Articles are the inputs, reported in this order.
	Articles []Article

	// FakePattern is searched for in every article alongside its own pattern.
	// Default: DefaultFakePattern
	FakePattern string

	// Repeats is the number of timed calls averaged per measurement.
	// Default: 10
	Repeats int

	// Units selects byte or code point search.
	// Default: Bytes
	Units Units

	// Baselines adds bytes.Index, memmem and Aho-Corasick to the comparison.
	// Ignored for Runes, which the baselines cannot search.
	// Default: false
	Baselines bool

	// Parallel caps how many articles are loaded concurrently.
	// Default: 4
	Parallel int

	// RabinKarp configures the rolling hash.
	// Default: rabinkarp.DefaultConfig()
	RabinKarp rabinkarp.Config
}

// DefaultConfig returns a configuration without articles.
func DefaultConfig() Config {
	return Config{
		FakePattern: DefaultFakePattern,
		Repeats:     10,
		Units:       Bytes,
		Parallel:    4,
		RabinKarp:   rabinkarp.DefaultConfig(),
	}
}

// Validate checks if the configuration is valid.
// Returns a *ConfigError, or the rabinkarp error for a bad hash config.
func (c Config) Validate() error {
	if len(c.Articles) == 0 {
		return &ConfigError{Field: "Articles", Message: "at least one article is required"}
	}
	for i, a := range c.Articles {
		if a.Path == "" {
			return &ConfigError{Field: fmt.Sprintf("Articles[%d].Path", i), Message: "must not be empty"}
		}
	}
	if c.Repeats < 1 {
		return &ConfigError{Field: "Repeats", Message: "must be at least 1"}
	}
	if c.Units != Bytes && c.Units != Runes {
		return &ConfigError{Field: "Units", Message: "must be bytes or runes"}
	}
	if c.Parallel < 1 {
		return &ConfigError{Field: "Parallel", Message: "must be at least 1"}
	}
	return c.RabinKarp.Validate()
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "bench: invalid config: " + e.Field + ": " + e.Message
}
