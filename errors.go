package skipsearch

import (
	"github.com/coregx/skipsearch/alphabet"
	"github.com/coregx/skipsearch/kmp"
)

// Errors returned by compilation and Search. Inspect them with errors.Is.
var (
	// ErrInvalidInput indicates a pattern or text symbol outside the
	// configured alphabet. The concrete error is a *SymbolError.
	ErrInvalidInput = alphabet.ErrInvalidInput

	// ErrInvalidAlphabet indicates an unusable Config.AlphabetSize.
	ErrInvalidAlphabet = alphabet.ErrInvalidAlphabet

	// ErrAutomatonTooLarge indicates the Automaton algorithm would need
	// more than Config.MaxAutomatonCells table cells.
	ErrAutomatonTooLarge = kmp.ErrAutomatonTooLarge
)

// SymbolError reports which symbol of a pattern or text lies outside the
// alphabet.
type SymbolError = alphabet.SymbolError
