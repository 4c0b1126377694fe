package skipsearch

import (
	"iter"

	"github.com/coregx/skipsearch/alphabet"
	"github.com/coregx/skipsearch/boyermoore"
	"github.com/coregx/skipsearch/simd"
)

// Index returns the index of the first instance of pattern in text, or -1.
// It builds Boyer-Moore tables for the single call; compile the pattern
// once when searching many texts.
//
// Example:
//
//	skipsearch.Index([]byte("GCATCGCAGAGAGTATACAGTACG"), []byte("GCAGAGAG")) // 5
func Index(text, pattern []byte) int {
	switch {
	case len(pattern) == 0:
		return 0
	case len(pattern) > len(text):
		return -1
	case len(pattern) == 1:
		return simd.Memchr(text, pattern[0])
	}
	// Every byte is inside the byte alphabet, so New cannot fail.
	m, _ := boyermoore.New(pattern, alphabet.Byte)
	return m.Find(text)
}

// IndexString is Index for strings.
func IndexString(text, pattern string) int {
	return Index([]byte(text), []byte(pattern))
}

// Search returns the index of the first instance of pattern in text using
// config, or -1.
//
// Unlike a compiled Searcher, Search validates the text as well as the
// pattern: any symbol outside config.AlphabetSize fails the call with a
// *SymbolError before tables are built. An empty pattern returns 0 and a
// pattern longer than the text returns -1 without building tables.
func Search[S alphabet.Symbol](text, pattern []S, config Config) (int, error) {
	s, err := prepare(text, pattern, config)
	if err != nil {
		return -1, err
	}
	if s == nil {
		if len(pattern) == 0 {
			return 0, nil
		}
		return -1, nil
	}
	return s.Index(text), nil
}

// SearchAll is Search returning every match as a lazy sequence, with
// Config.Overlapping deciding whether matches may share symbols.
func SearchAll[S alphabet.Symbol](text, pattern []S, config Config) (iter.Seq[int], error) {
	s, err := prepare(text, pattern, config)
	if err != nil {
		return nil, err
	}
	if s == nil {
		if len(pattern) > len(text) {
			return func(func(int) bool) {}, nil
		}
		s, err = compile(pattern, alphabet.Alphabet(config.AlphabetSize), config)
		if err != nil {
			return nil, err
		}
	}
	return s.All(text), nil
}

// prepare validates the inputs and compiles the pattern. It returns a nil
// Searcher without error when the answer needs no tables: an empty pattern
// or one longer than the text.
func prepare[S alphabet.Symbol](text, pattern []S, config Config) (*Searcher[S], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	a := alphabet.Alphabet(config.AlphabetSize)
	if err := alphabet.CheckPattern(a, pattern); err != nil {
		return nil, err
	}
	if err := alphabet.CheckText(a, text); err != nil {
		return nil, err
	}
	if config.Algorithm == Memchr {
		if _, ok := newMemchrFinder(pattern); !ok {
			return nil, errMemchrPattern()
		}
	}
	if len(pattern) == 0 || len(pattern) > len(text) {
		return nil, nil
	}
	return compile(pattern, a, config)
}
