package kmp

import (
	"errors"
	"iter"

	"github.com/coregx/skipsearch/alphabet"
	"github.com/coregx/skipsearch/internal/conv"
)

// ErrAutomatonTooLarge indicates the transition table for a pattern would
// exceed the configured cell limit.
var ErrAutomatonTooLarge = errors.New("kmp: automaton too large")

// DefaultMaxCells is the default limit on alphabet*(m+1) table cells:
// 64 MiB of uint32 states.
const DefaultMaxCells = 1 << 24

// Automaton is the deterministic finite automaton of the KMP matcher.
//
// State k means the last k text symbols equal pattern[:k]; state m is
// accepting. delta is stored symbol-major: the successor of state k on
// symbol c is delta[c*(m+1)+k].
type Automaton[S alphabet.Symbol] struct {
	pattern []S
	size    int
	delta   []uint32
}

// NewAutomaton compiles pattern into a transition table over alphabet a.
// maxCells bounds alphabet.Size()*(len(pattern)+1); zero or a negative
// value selects DefaultMaxCells.
//
// Returns ErrAutomatonTooLarge (wrapped) when the table would exceed the
// bound.
func NewAutomaton[S alphabet.Symbol](pattern []S, a alphabet.Alphabet, maxCells int) (*Automaton[S], error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := alphabet.CheckPattern(a, pattern); err != nil {
		return nil, err
	}
	if maxCells <= 0 {
		maxCells = DefaultMaxCells
	}
	states := len(pattern) + 1
	if a.Size() > maxCells/states {
		return nil, &SizeError{Symbols: a.Size(), States: states, MaxCells: maxCells}
	}

	d := &Automaton[S]{
		pattern: pattern,
		size:    a.Size(),
		delta:   make([]uint32, a.Size()*states),
	}
	d.build()
	return d, nil
}

// build fills delta column by column. x tracks the state the automaton
// would be in after reading pattern[1:j]; a mismatch in state j behaves
// exactly like reading the same symbol in state x. The accepting column is a
// copy of the longest border's column, so scanning on from state m finds
// overlapping matches without any special case.
func (d *Automaton[S]) build() {
	m := len(d.pattern)
	if m == 0 {
		return
	}
	states := m + 1
	d.delta[alphabet.Code(d.pattern[0])*states] = 1
	x := 0
	for j := 1; j <= m; j++ {
		for c := 0; c < d.size; c++ {
			d.delta[c*states+j] = d.delta[c*states+x]
		}
		if j == m {
			break
		}
		c := alphabet.Code(d.pattern[j])
		d.delta[c*states+j] = conv.IntToUint32(j + 1)
		x = int(d.delta[c*states+x])
	}
}

// Pattern returns the pattern the automaton was built for.
func (d *Automaton[S]) Pattern() []S {
	return d.pattern
}

// States returns the number of states, len(pattern)+1.
func (d *Automaton[S]) States() int {
	return len(d.pattern) + 1
}

// Next returns the successor of state on symbol s. Symbols outside the
// alphabet cannot extend any partial match and lead back to state 0.
func (d *Automaton[S]) Next(state int, s S) int {
	if !alphabet.Contains(alphabet.Alphabet(d.size), s) {
		return 0
	}
	return int(d.delta[alphabet.Code(s)*(len(d.pattern)+1)+state])
}

// Find returns the index of the first occurrence of the pattern in text,
// or -1. An empty pattern matches at 0.
func (d *Automaton[S]) Find(text []S) int {
	return d.FindAt(text, 0)
}

// FindAt returns the index of the first occurrence starting at or after at,
// or -1.
func (d *Automaton[S]) FindAt(text []S, at int) int {
	for pos := range d.scan(text, at, false) {
		return pos
	}
	return -1
}

// All yields every occurrence of the pattern in text in increasing order.
// With overlap set the automaton continues from the border state after a
// match; otherwise it restarts from state 0.
func (d *Automaton[S]) All(text []S, overlap bool) iter.Seq[int] {
	return d.scan(text, 0, overlap)
}

func (d *Automaton[S]) scan(text []S, at int, overlap bool) iter.Seq[int] {
	return func(yield func(int) bool) {
		if at < 0 {
			at = 0
		}
		m := len(d.pattern)
		if m == 0 {
			for ; at <= len(text); at++ {
				if !yield(at) {
					return
				}
			}
			return
		}
		accept := uint32(m)
		states := m + 1
		size := int64(d.size)
		var state uint32
		for i := at; i < len(text); i++ {
			c := int64(text[i])
			if c < 0 || c >= size {
				state = 0
				continue
			}
			state = d.delta[int(c)*states+int(state)]
			if state != accept {
				continue
			}
			if !yield(i + 1 - m) {
				return
			}
			if !overlap {
				state = 0
			}
		}
	}
}
