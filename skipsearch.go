// Package skipsearch provides exact substring search with precomputed skip
// tables.
//
// A pattern is compiled once into the tables of the selected algorithm and
// can then be searched for in any number of texts:
//   - Boyer-Moore compares right to left and skips ahead with the
//     bad-character and good-suffix rules, examining only a fraction of the
//     text on typical inputs
//   - KMP scans left to right without ever moving backwards in the text,
//     guided by the failure function
//   - the KMP automaton turns the failure function into a full transition
//     table, one lookup per text symbol
//
// Basic usage:
//
//	s := skipsearch.MustCompile("GCAGAGAG")
//	pos := s.Index([]byte("GCATCGCAGAGAGTATACAGTACG"))
//	// pos == 5
//
//	for pos := range s.All(text) {
//	    fmt.Println(pos)
//	}
//
// One-shot helpers skip the explicit compile step:
//
//	skipsearch.IndexString("hello world", "world") // 6
//
// Patterns and texts are sequences of any integer symbol type. The alphabet
// defaults to the 256 byte values and is configurable, so the same matchers
// search []uint16 or []rune data:
//
//	config := skipsearch.DefaultConfig()
//	config.AlphabetSize = 4
//	pos, err := skipsearch.Search(genome, probe, config) // []uint8 over {0..3}
//
// Symbols outside the alphabet in a pattern are rejected before any table is
// built, with an error wrapping ErrInvalidInput. In a text they can never
// match and are skipped over; Searcher.Check and Search report them
// explicitly.
//
// An empty pattern matches at every position, including len(text). A
// pattern longer than the text never matches.
package skipsearch

import (
	"fmt"
	"iter"
	"slices"
	"sync/atomic"

	"github.com/coregx/skipsearch/alphabet"
	"github.com/coregx/skipsearch/boyermoore"
	"github.com/coregx/skipsearch/kmp"
	"github.com/coregx/skipsearch/naive"
)

// finder is implemented by every matcher a Searcher can drive.
type finder[S alphabet.Symbol] interface {
	FindAt(text []S, at int) int
	All(text []S, overlap bool) iter.Seq[int]
}

// Searcher is a compiled pattern.
//
// A Searcher is safe to use concurrently from multiple goroutines, except
// for ResetStats.
type Searcher[S alphabet.Symbol] struct {
	pattern   []S
	config    Config
	algorithm Algorithm
	engine    finder[S]
	stats     Stats
}

// Stats tracks search activity of one Searcher.
type Stats struct {
	// Searches counts Index, IndexAt, All, IndexAll and Count calls
	Searches uint64

	// Matches counts reported match positions
	Matches uint64

	// RejectedTexts counts texts Check found symbols outside the alphabet in
	RejectedTexts uint64
}

// Compile compiles pattern with DefaultConfig.
//
// Example:
//
//	s, err := skipsearch.Compile([]byte("needle"))
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern []byte) (*Searcher[byte], error) {
	return CompileSymbols(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *Searcher[byte] {
	s, err := Compile([]byte(pattern))
	if err != nil {
		panic(fmt.Sprintf("skipsearch: Compile(%q): %v", pattern, err))
	}
	return s
}

// CompileWithConfig compiles a byte pattern with a custom configuration.
//
// Example:
//
//	config := skipsearch.DefaultConfig()
//	config.Algorithm = skipsearch.Automaton
//	s, err := skipsearch.CompileWithConfig([]byte("abab"), config)
func CompileWithConfig(pattern []byte, config Config) (*Searcher[byte], error) {
	return CompileSymbols(pattern, config)
}

// CompileSymbols compiles a pattern of any symbol type.
//
// The pattern is copied. Returns a *ConfigError for an invalid config, a
// *SymbolError if a pattern symbol lies outside config.AlphabetSize, and
// ErrAutomatonTooLarge (wrapped) when the Automaton table would exceed
// config.MaxAutomatonCells.
func CompileSymbols[S alphabet.Symbol](pattern []S, config Config) (*Searcher[S], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	a := alphabet.Alphabet(config.AlphabetSize)
	if err := alphabet.CheckPattern(a, pattern); err != nil {
		return nil, err
	}
	return compile(slices.Clone(pattern), a, config)
}

// compile builds the engine for an already validated pattern.
func compile[S alphabet.Symbol](pattern []S, a alphabet.Alphabet, config Config) (*Searcher[S], error) {
	algo := config.Algorithm
	if algo == Auto {
		algo = selectAlgorithm(pattern)
	}

	var engine finder[S]
	switch algo {
	case BoyerMoore:
		m, err := boyermoore.New(pattern, a)
		if err != nil {
			return nil, err
		}
		engine = m
	case KMP:
		m, err := kmp.New(pattern, a)
		if err != nil {
			return nil, err
		}
		engine = m
	case Automaton:
		d, err := kmp.NewAutomaton(pattern, a, config.MaxAutomatonCells)
		if err != nil {
			return nil, err
		}
		engine = d
	case Naive:
		engine = naive.New(pattern)
	case Memchr:
		f, ok := newMemchrFinder(pattern)
		if !ok {
			return nil, errMemchrPattern()
		}
		engine = f
	}

	return &Searcher[S]{
		pattern:   pattern,
		config:    config,
		algorithm: algo,
		engine:    engine,
	}, nil
}

// selectAlgorithm resolves Auto.
func selectAlgorithm[S alphabet.Symbol](pattern []S) Algorithm {
	if _, ok := newMemchrFinder(pattern); ok {
		return Memchr
	}
	return BoyerMoore
}

// Index returns the index of the first occurrence of the pattern in text,
// or -1 if there is none.
//
// Example:
//
//	s := skipsearch.MustCompile("BCDBACD")
//	s.Index([]byte("ABCDABEABDCBCDDBBCDBACD")) // 16
func (s *Searcher[S]) Index(text []S) int {
	return s.IndexAt(text, 0)
}

// IndexAt returns the index of the first occurrence starting at or after at,
// or -1.
func (s *Searcher[S]) IndexAt(text []S, at int) int {
	atomic.AddUint64(&s.stats.Searches, 1)
	pos := s.engine.FindAt(text, at)
	if pos >= 0 {
		atomic.AddUint64(&s.stats.Matches, 1)
	}
	return pos
}

// Contains reports whether the pattern occurs in text.
func (s *Searcher[S]) Contains(text []S) bool {
	return s.Index(text) >= 0
}

// All returns a lazy sequence of match positions in increasing order.
// Config.Overlapping decides whether matches may share symbols.
//
// The sequence does no work until iterated and can be iterated again from
// the start.
func (s *Searcher[S]) All(text []S) iter.Seq[int] {
	seq := s.engine.All(text, s.config.Overlapping)
	return func(yield func(int) bool) {
		atomic.AddUint64(&s.stats.Searches, 1)
		for pos := range seq {
			atomic.AddUint64(&s.stats.Matches, 1)
			if !yield(pos) {
				return
			}
		}
	}
}

// IndexAll returns up to n match positions; n < 0 means all of them.
// Returns nil when there is no match.
func (s *Searcher[S]) IndexAll(text []S, n int) []int {
	if n == 0 {
		return nil
	}
	var out []int
	for pos := range s.All(text) {
		out = append(out, pos)
		if len(out) == n {
			break
		}
	}
	return out
}

// Count returns the number of matches in text.
func (s *Searcher[S]) Count(text []S) int {
	n := 0
	for range s.All(text) {
		n++
	}
	return n
}

// Check reports the first text symbol outside the configured alphabet as a
// *SymbolError. Searching such a text is well defined; Check is for
// callers that treat foreign symbols as invalid input.
func (s *Searcher[S]) Check(text []S) error {
	err := alphabet.CheckText(alphabet.Alphabet(s.config.AlphabetSize), text)
	if err != nil {
		atomic.AddUint64(&s.stats.RejectedTexts, 1)
	}
	return err
}

// Pattern returns a copy of the compiled pattern.
func (s *Searcher[S]) Pattern() []S {
	return slices.Clone(s.pattern)
}

// Len returns the pattern length.
func (s *Searcher[S]) Len() int {
	return len(s.pattern)
}

// Algorithm returns the algorithm in use, with Auto resolved.
func (s *Searcher[S]) Algorithm() Algorithm {
	return s.algorithm
}

// Config returns the configuration the searcher was compiled with.
func (s *Searcher[S]) Config() Config {
	return s.config
}

// String returns the pattern: as text for byte patterns, as a list of
// symbol codes otherwise.
func (s *Searcher[S]) String() string {
	if b, ok := any(s.pattern).([]byte); ok {
		return string(b)
	}
	return fmt.Sprint(s.pattern)
}

// Stats returns a snapshot of the search counters.
func (s *Searcher[S]) Stats() Stats {
	return Stats{
		Searches:      atomic.LoadUint64(&s.stats.Searches),
		Matches:       atomic.LoadUint64(&s.stats.Matches),
		RejectedTexts: atomic.LoadUint64(&s.stats.RejectedTexts),
	}
}

// ResetStats zeroes the search counters.
func (s *Searcher[S]) ResetStats() {
	atomic.StoreUint64(&s.stats.Searches, 0)
	atomic.StoreUint64(&s.stats.Matches, 0)
	atomic.StoreUint64(&s.stats.RejectedTexts, 0)
}
