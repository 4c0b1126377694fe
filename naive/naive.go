// Package naive implements the brute-force substring scan.
//
// It compares the pattern against every alignment window from left to right
// in O(n*m) time and needs no preprocessing. It serves as the reference the
// skip-table matchers are checked against, and as a fallback for tiny inputs
// where building tables costs more than it saves.
package naive

import "iter"

// Matcher scans for a fixed pattern without any precomputed tables.
type Matcher[S comparable] struct {
	pattern []S
}

// New returns a Matcher for pattern. The pattern is not copied.
func New[S comparable](pattern []S) *Matcher[S] {
	return &Matcher[S]{pattern: pattern}
}

// Find returns the index of the first occurrence of the pattern in text,
// or -1.
func (m *Matcher[S]) Find(text []S) int {
	return Index(text, m.pattern, 0)
}

// FindAt is Find starting at text offset at.
func (m *Matcher[S]) FindAt(text []S, at int) int {
	return Index(text, m.pattern, at)
}

// All yields every match position in increasing order.
// With overlap set, matches may share symbols; otherwise each search resumes
// after the previous match.
func (m *Matcher[S]) All(text []S, overlap bool) iter.Seq[int] {
	step := len(m.pattern)
	if overlap || step == 0 {
		step = 1
	}
	return func(yield func(int) bool) {
		for at := 0; at <= len(text); {
			pos := Index(text, m.pattern, at)
			if pos < 0 || !yield(pos) {
				return
			}
			at = pos + step
		}
	}
}

// Index returns the first position >= at where pattern occurs in text, or -1.
// An empty pattern matches at at itself when at <= len(text).
func Index[S comparable](text, pattern []S, at int) int {
	if at < 0 {
		at = 0
	}
	n, m := len(text), len(pattern)
	for s := at; s <= n-m; s++ {
		j := 0
		for j < m && text[s+j] == pattern[j] {
			j++
		}
		if j == m {
			return s
		}
	}
	return -1
}
