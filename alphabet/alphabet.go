// Package alphabet defines the bounded symbol alphabet that patterns and
// texts are drawn from.
//
// Skip tables are indexed by symbol code, so every symbol that reaches a
// table builder must lie in [0, size). The default alphabet is Byte (256
// codes); larger alphabets allow searching sequences of uint16, uint32 or
// rune symbols with the same matchers.
package alphabet

import "fmt"

// Symbol is the set of element types a pattern or text may have.
// A symbol's code is its integer value.
type Symbol interface {
	~byte | ~uint16 | ~uint32 | ~int32 | ~int
}

// Alphabet is the number of distinct symbol codes, [0, Alphabet).
type Alphabet int

const (
	// Byte is the default alphabet of raw byte values.
	Byte Alphabet = 256

	// MaxSize bounds alphabet sizes so that an alphabet-sized table stays
	// allocatable. It covers every Unicode code point.
	MaxSize Alphabet = 1 << 21
)

// New returns an alphabet of the given size.
func New(size int) (Alphabet, error) {
	a := Alphabet(size)
	if err := a.Validate(); err != nil {
		return 0, err
	}
	return a, nil
}

// Size returns the number of symbol codes.
func (a Alphabet) Size() int {
	return int(a)
}

// Validate reports whether the alphabet size is usable.
func (a Alphabet) Validate() error {
	if a < 1 || a > MaxSize {
		return fmt.Errorf("%w: %d (must be between 1 and %d)", ErrInvalidAlphabet, int(a), int(MaxSize))
	}
	return nil
}

// Contains reports whether s has a code inside the alphabet.
func Contains[S Symbol](a Alphabet, s S) bool {
	c := int64(s)
	return c >= 0 && c < int64(a)
}

// Code returns the table index of s. The caller must have checked Contains.
func Code[S Symbol](s S) int {
	return int(s)
}

// Check validates every symbol of a pattern or text against the alphabet.
// where names the sequence in the returned error ("pattern" or "text").
func Check[S Symbol](a Alphabet, where string, seq []S) error {
	for i, s := range seq {
		if !Contains(a, s) {
			return &SymbolError{
				Where:    where,
				Position: i,
				Code:     int64(s),
				Size:     int(a),
			}
		}
	}
	return nil
}

// CheckPattern is Check for a pattern.
func CheckPattern[S Symbol](a Alphabet, pattern []S) error {
	return Check(a, "pattern", pattern)
}

// CheckText is Check for a text.
func CheckText[S Symbol](a Alphabet, text []S) error {
	return Check(a, "text", text)
}
