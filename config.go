package skipsearch

import (
	"fmt"
	"strings"

	"github.com/coregx/skipsearch/alphabet"
	"github.com/coregx/skipsearch/kmp"
)

// Algorithm selects the matcher a Searcher runs.
type Algorithm uint8

const (
	// Auto picks Memchr for one-byte patterns and BoyerMoore otherwise.
	Auto Algorithm = iota

	// BoyerMoore scans each window right to left and skips ahead with the
	// bad-character and good-suffix tables. Fastest on typical text.
	BoyerMoore

	// KMP scans left to right with the failure function. O(n+m) worst case.
	KMP

	// Automaton runs the precompiled KMP DFA: one table lookup per text
	// symbol, O(alphabet*m) memory.
	Automaton

	// Naive compares every window directly. Reference implementation.
	Naive

	// Memchr scans for a single byte a word at a time. Only valid for
	// one-symbol byte patterns.
	Memchr
)

var algorithmNames = [...]string{
	Auto:       "auto",
	BoyerMoore: "bm",
	KMP:        "kmp",
	Automaton:  "dfa",
	Naive:      "naive",
	Memchr:     "memchr",
}

// String returns the short name of the algorithm, as accepted by
// ParseAlgorithm.
func (a Algorithm) String() string {
	if int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}
	return fmt.Sprintf("Algorithm(%d)", a)
}

// ParseAlgorithm returns the algorithm with the given short name
// (case-insensitive).
func ParseAlgorithm(name string) (Algorithm, error) {
	for a, n := range algorithmNames {
		if strings.EqualFold(name, n) {
			return Algorithm(a), nil
		}
	}
	return Auto, &ConfigError{
		Field:   "Algorithm",
		Message: fmt.Sprintf("unknown algorithm %q", name),
	}
}

// Config controls how a pattern is compiled and searched.
//
// Example:
//
//	config := skipsearch.DefaultConfig()
//	config.Algorithm = skipsearch.KMP
//	config.Overlapping = false
//	s, err := skipsearch.CompileWithConfig([]byte("abab"), config)
type Config struct {
	// Algorithm selects the matcher.
	// Default: Auto
	Algorithm Algorithm

	// AlphabetSize is the number of symbol codes, [0, AlphabetSize).
	// Pattern symbols outside it are rejected at compile time.
	// Default: 256
	AlphabetSize int

	// Overlapping makes All, IndexAll and Count report matches that share
	// symbols ("aa" occurs 3 times in "aaaa"). When false each match starts
	// after the end of the previous one (2 times).
	// Default: true
	Overlapping bool

	// MaxAutomatonCells caps AlphabetSize*(len(pattern)+1) for the
	// Automaton algorithm. Zero selects the default.
	// Default: 1 << 24
	MaxAutomatonCells int
}

// DefaultConfig returns the configuration used by Compile.
func DefaultConfig() Config {
	return Config{
		Algorithm:         Auto,
		AlphabetSize:      int(alphabet.Byte),
		Overlapping:       true,
		MaxAutomatonCells: kmp.DefaultMaxCells,
	}
}

// Validate checks every field and returns a *ConfigError for the first
// invalid one.
func (c Config) Validate() error {
	if int(c.Algorithm) >= len(algorithmNames) {
		return &ConfigError{
			Field:   "Algorithm",
			Message: fmt.Sprintf("unknown algorithm %d", c.Algorithm),
		}
	}
	if err := alphabet.Alphabet(c.AlphabetSize).Validate(); err != nil {
		return &ConfigError{
			Field:   "AlphabetSize",
			Message: fmt.Sprintf("must be between 1 and %d", int(alphabet.MaxSize)),
			Err:     err,
		}
	}
	if c.MaxAutomatonCells < 0 {
		return &ConfigError{
			Field:   "MaxAutomatonCells",
			Message: "must not be negative",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
	Err     error // Optional underlying error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "skipsearch: invalid config: " + e.Field + ": " + e.Message
}

// Unwrap returns the underlying error, if any.
func (e *ConfigError) Unwrap() error {
	return e.Err
}
