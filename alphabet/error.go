package alphabet

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates a pattern or text contains a symbol the
	// alphabet cannot index.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidAlphabet indicates an alphabet size out of range.
	ErrInvalidAlphabet = errors.New("invalid alphabet size")
)

// SymbolError reports a symbol whose code lies outside the alphabet.
// It wraps ErrInvalidInput.
type SymbolError struct {
	Where    string // "pattern" or "text"
	Position int    // zero-based index of the offending symbol
	Code     int64  // the symbol's code
	Size     int    // alphabet size
}

// Error implements the error interface
func (e *SymbolError) Error() string {
	return fmt.Sprintf("%s symbol %d at position %d outside alphabet of size %d",
		e.Where, e.Code, e.Position, e.Size)
}

// Unwrap returns ErrInvalidInput (for errors.Is)
func (e *SymbolError) Unwrap() error {
	return ErrInvalidInput
}
