package table

import "github.com/coregx/skipsearch/alphabet"

// BadChar is the Boyer-Moore bad-character table.
//
// Skip(c) is the distance between the last pattern position and the
// rightmost occurrence of symbol c in pattern[:m-1], or m if c does not occur
// there. The last position is excluded so that no symbol has a zero distance
// to itself: finding the last symbol out of place means it is not at the end.
type BadChar struct {
	skip []int
	m    int
}

// NewBadChar builds the bad-character table of pattern over alphabet a.
// Every pattern symbol must be inside a (see alphabet.CheckPattern).
//
// Every entry lies in [1, m]. Later occurrences overwrite earlier ones, so
// the table always reflects the rightmost occurrence.
func NewBadChar[S alphabet.Symbol](pattern []S, a alphabet.Alphabet) BadChar {
	m := len(pattern)
	skip := make([]int, a.Size())
	for i := range skip {
		skip[i] = m
	}
	last := m - 1
	for i := 0; i < last; i++ {
		skip[alphabet.Code(pattern[i])] = last - i
	}
	return BadChar{skip: skip, m: m}
}

// Skip returns the shift for symbol code c.
// Codes outside the alphabet cannot occur in the pattern and get the full
// pattern length.
func (t BadChar) Skip(c int64) int {
	if c < 0 || c >= int64(len(t.skip)) {
		return t.m
	}
	return t.skip[c]
}

// Len returns the alphabet size the table was built for.
func (t BadChar) Len() int {
	return len(t.skip)
}

// PatternLen returns m.
func (t BadChar) PatternLen() int {
	return t.m
}
