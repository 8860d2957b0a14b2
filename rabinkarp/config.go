package rabinkarp

import "errors"

const (
	// DefaultBase is the radix of the polynomial hash.
	DefaultBase = 256

	// DefaultModulus is the modulus of the polynomial hash.
	DefaultModulus = 101
)

// ErrInvalidConfiguration is matched (via errors.Is) by every error returned
// from Config.Validate.
var ErrInvalidConfiguration = errors.New("rabinkarp: invalid configuration")

// Config controls the rolling hash.
//
// Any positive Base and Modulus give correct results, because every hash hit
// is verified by a direct comparison. A small Modulus only raises the
// collision rate, and with it the number of comparisons.
//
// Example:
//
//	config := rabinkarp.DefaultConfig()
//	config.Modulus = 1_000_000_007 // fewer collisions on large alphabets
//	i, ok, err := rabinkarp.IndexConfig(text, pattern, config)
type Config struct {
	// Base is the radix of the polynomial hash.
	// Default: 256
	Base int

	// Modulus is the modulus of the polynomial hash.
	// Products are computed with 128-bit intermediates, so any positive int
	// is accepted without overflow.
	// Default: 101
	Modulus int
}

// DefaultConfig returns Base 256 and Modulus 101.
func DefaultConfig() Config {
	return Config{
		Base:    DefaultBase,
		Modulus: DefaultModulus,
	}
}

// Validate checks if the configuration is valid.
// Returns a *ConfigError if any parameter is out of range.
//
// Valid ranges:
//   - Base: >= 1
//   - Modulus: >= 1
func (c Config) Validate() error {
	if c.Modulus <= 0 {
		return &ConfigError{
			Field:   "Modulus",
			Message: "must be positive",
		}
	}
	if c.Base <= 0 {
		return &ConfigError{
			Field:   "Base",
			Message: "must be positive",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "rabinkarp: invalid config: " + e.Field + ": " + e.Message
}

// Is reports whether target is ErrInvalidConfiguration.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}
