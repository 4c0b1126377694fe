// Package kmp implements Knuth-Morris-Pratt exact substring search.
//
// Two matchers share the same contract:
//
//   - Matcher scans left to right with the failure function. The text
//     pointer never moves backwards; after a mismatch the pattern pointer
//     falls back along the pattern's borders, O(1) amortized per symbol and
//     O(n+m) overall.
//   - Automaton compiles the failure function into a full transition table
//     delta[symbol][state]. Each text symbol then costs exactly one table
//     lookup, at the price of O(alphabet*m) preprocessing time and memory.
//
// Both are immutable after construction and safe for concurrent use.
package kmp

import (
	"iter"

	"github.com/coregx/skipsearch/alphabet"
	"github.com/coregx/skipsearch/table"
)

// Matcher searches texts for one fixed pattern using the failure function.
type Matcher[S alphabet.Symbol] struct {
	pattern []S
	fail    []int
}

// New builds the failure function for pattern over alphabet a.
//
// The scan itself only compares symbols, but the pattern is still checked
// against a so that every matcher rejects the same inputs.
func New[S alphabet.Symbol](pattern []S, a alphabet.Alphabet) (*Matcher[S], error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := alphabet.CheckPattern(a, pattern); err != nil {
		return nil, err
	}
	return &Matcher[S]{
		pattern: pattern,
		fail:    table.Failure(pattern),
	}, nil
}

// Pattern returns the pattern the matcher was built for.
func (m *Matcher[S]) Pattern() []S {
	return m.pattern
}

// Find returns the index of the first occurrence of the pattern in text,
// or -1. An empty pattern matches at 0.
func (m *Matcher[S]) Find(text []S) int {
	return m.FindAt(text, 0)
}

// FindAt returns the index of the first occurrence starting at or after at,
// or -1.
func (m *Matcher[S]) FindAt(text []S, at int) int {
	for pos := range m.scan(text, at, false) {
		return pos
	}
	return -1
}

// All yields every occurrence of the pattern in text in increasing order.
// With overlap set, the scan continues from the longest border of the
// pattern after each match; otherwise it restarts from the empty state.
func (m *Matcher[S]) All(text []S, overlap bool) iter.Seq[int] {
	return m.scan(text, 0, overlap)
}

func (m *Matcher[S]) scan(text []S, at int, overlap bool) iter.Seq[int] {
	return func(yield func(int) bool) {
		if at < 0 {
			at = 0
		}
		plen := len(m.pattern)
		if plen == 0 {
			for ; at <= len(text); at++ {
				if !yield(at) {
					return
				}
			}
			return
		}
		pattern, fail := m.pattern, m.fail
		j := 0
		for i := at; i < len(text); {
			if text[i] == pattern[j] {
				i++
				j++
				if j < plen {
					continue
				}
				if !yield(i - plen) {
					return
				}
				if overlap {
					j = fail[plen-1]
				} else {
					j = 0
				}
				continue
			}
			if j > 0 {
				j = fail[j-1]
			} else {
				i++
			}
		}
	}
}
