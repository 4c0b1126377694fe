// Package conv provides checked integer narrowing for table construction.
//
// Tables store positions and automaton states as uint32 to halve their
// footprint. A value that does not fit means a pattern exceeded the table
// limits that configuration validation should have rejected, so the helpers
// panic instead of returning an error.
package conv

import "math"

// IntToUint32 converts n to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Compare as uint so 32-bit platforms, where int cannot hold
	// math.MaxUint32, do not overflow the constant.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
