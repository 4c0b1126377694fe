// Package boyermoore implements Boyer-Moore exact substring search.
//
// The pattern is compared against each alignment window from right to left.
// On a mismatch the window jumps ahead by the larger of two precomputed
// shifts: the bad-character shift, which lines the mismatched text symbol up
// with its rightmost occurrence in the pattern, and the good-suffix shift,
// which lines the already matched suffix up with its next occurrence or with
// a matching pattern prefix. On typical inputs most text symbols are never
// examined; the worst case is O(n*m).
//
// A Matcher is immutable after New and safe for concurrent use.
package boyermoore

import (
	"iter"

	"github.com/coregx/skipsearch/alphabet"
	"github.com/coregx/skipsearch/table"
)

// Matcher searches texts for one fixed pattern.
type Matcher[S alphabet.Symbol] struct {
	pattern    []S
	badChar    table.BadChar
	goodSuffix []int

	// period is the distance to the next possible overlapping occurrence
	// after a match.
	period int
}

// New builds the skip tables for pattern over alphabet a.
//
// Returns an *alphabet.SymbolError if a pattern symbol lies outside a, and
// an error wrapping alphabet.ErrInvalidAlphabet if a itself is invalid.
// The pattern is not copied and must not be modified afterwards.
func New[S alphabet.Symbol](pattern []S, a alphabet.Alphabet) (*Matcher[S], error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := alphabet.CheckPattern(a, pattern); err != nil {
		return nil, err
	}
	return &Matcher[S]{
		pattern:    pattern,
		badChar:    table.NewBadChar(pattern, a),
		goodSuffix: table.GoodSuffixLinear(pattern),
		period:     table.Period(pattern),
	}, nil
}

// Pattern returns the pattern the matcher was built for.
func (m *Matcher[S]) Pattern() []S {
	return m.pattern
}

// Find returns the index of the first occurrence of the pattern in text,
// or -1 if there is none. An empty pattern matches at 0.
//
// Text symbols outside the alphabet never match a pattern symbol and take
// the full bad-character shift.
//
// Example:
//
//	m, _ := boyermoore.New([]byte("GCAGAGAG"), alphabet.Byte)
//	m.Find([]byte("GCATCGCAGAGAGTATACAGTACG")) // 5
func (m *Matcher[S]) Find(text []S) int {
	return m.FindAt(text, 0)
}

// FindAt returns the index of the first occurrence starting at or after at,
// or -1. An empty pattern matches at at when at <= len(text).
func (m *Matcher[S]) FindAt(text []S, at int) int {
	if at < 0 {
		at = 0
	}
	plen := len(m.pattern)
	if plen == 0 {
		if at > len(text) {
			return -1
		}
		return at
	}
	if at > len(text)-plen {
		return -1
	}

	pattern := m.pattern
	last := plen - 1
	// i walks the text; it always sits opposite pattern[j].
	i := at + last
	for i < len(text) {
		j := last
		for j >= 0 && text[i] == pattern[j] {
			i--
			j--
		}
		if j < 0 {
			return i + 1
		}
		i += max(m.badChar.Skip(int64(text[i])), m.goodSuffix[j])
	}
	return -1
}

// All yields every occurrence of the pattern in text in increasing order.
//
// With overlap set, occurrences may share symbols ("aa" occurs at 0, 1 and
// 2 in "aaaa"); the scan resumes one pattern period after each match, the
// closest the next occurrence can be. Without overlap the scan resumes after
// the end of each match. An empty pattern yields every position 0..len(text).
//
// The sequence is computed lazily and can be iterated again from the start.
func (m *Matcher[S]) All(text []S, overlap bool) iter.Seq[int] {
	step := m.period
	if !overlap && len(m.pattern) > 0 {
		step = len(m.pattern)
	}
	return func(yield func(int) bool) {
		for at := 0; ; {
			pos := m.FindAt(text, at)
			if pos < 0 || !yield(pos) {
				return
			}
			at = pos + step
		}
	}
}

// Count returns the number of occurrences of the pattern in text.
func (m *Matcher[S]) Count(text []S, overlap bool) int {
	n := 0
	for range m.All(text, overlap) {
		n++
	}
	return n
}
