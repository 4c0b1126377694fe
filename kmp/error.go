package kmp

import "fmt"

// SizeError reports an automaton whose transition table would exceed the
// cell limit. It wraps ErrAutomatonTooLarge.
type SizeError struct {
	Symbols  int
	States   int
	MaxCells int
}

// Error implements the error interface
func (e *SizeError) Error() string {
	return fmt.Sprintf("%v: %d symbols x %d states exceeds %d cells",
		ErrAutomatonTooLarge, e.Symbols, e.States, e.MaxCells)
}

// Unwrap returns ErrAutomatonTooLarge
func (e *SizeError) Unwrap() error {
	return ErrAutomatonTooLarge
}
