// Package simd provides word-at-a-time byte scanning for single-symbol
// patterns over the byte alphabet.
//
// Memchr uses SWAR (SIMD Within A Register): eight haystack bytes are loaded
// into a uint64 and tested for the needle with a handful of integer
// operations. On CPUs with wide vector units (AVX2 on x86-64, ASIMD on
// arm64) the loop is unrolled to 32 bytes per iteration, which those cores
// retire in parallel; elsewhere the plain 8-byte loop is used.
package simd

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/sys/cpu"
)

// wide selects the 32-byte unrolled loop. Set once at package
// initialization from the detected CPU features.
var wide = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present. It is equivalent to bytes.IndexByte.
//
// Example:
//
//	pos := simd.Memchr([]byte("hello world"), 'o')
//	// pos == 4
func Memchr(haystack []byte, needle byte) int {
	if wide && len(haystack) >= 32 {
		return memchrWide(haystack, needle)
	}
	return memchrWord(haystack, needle)
}

// MemchrAt is Memchr over haystack[at:], returning an index into haystack.
func MemchrAt(haystack []byte, needle byte, at int) int {
	if at < 0 {
		at = 0
	}
	if at >= len(haystack) {
		return -1
	}
	pos := Memchr(haystack[at:], needle)
	if pos < 0 {
		return -1
	}
	return at + pos
}

// zeroBytes marks every zero byte of v with its high bit. Borrows can
// also mark bytes above the first zero, so only the lowest mark is exact;
// callers take it with TrailingZeros64.
func zeroBytes(v uint64) uint64 {
	return (v - lo8) & ^v & hi8
}

// memchrWord processes one 8-byte word per iteration.
func memchrWord(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := uint64(needle) * lo8
	i := 0
	for ; i+8 <= n; i += 8 {
		if z := zeroBytes(binary.LittleEndian.Uint64(haystack[i:]) ^ mask); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// memchrWide processes four words per iteration and only locates the exact
// byte once a block reports a hit.
func memchrWide(haystack []byte, needle byte) int {
	n := len(haystack)
	mask := uint64(needle) * lo8
	i := 0
	for ; i+32 <= n; i += 32 {
		z0 := zeroBytes(binary.LittleEndian.Uint64(haystack[i:]) ^ mask)
		z1 := zeroBytes(binary.LittleEndian.Uint64(haystack[i+8:]) ^ mask)
		z2 := zeroBytes(binary.LittleEndian.Uint64(haystack[i+16:]) ^ mask)
		z3 := zeroBytes(binary.LittleEndian.Uint64(haystack[i+24:]) ^ mask)
		if z0|z1|z2|z3 == 0 {
			continue
		}
		switch {
		case z0 != 0:
			return i + bits.TrailingZeros64(z0)/8
		case z1 != 0:
			return i + 8 + bits.TrailingZeros64(z1)/8
		case z2 != 0:
			return i + 16 + bits.TrailingZeros64(z2)/8
		default:
			return i + 24 + bits.TrailingZeros64(z3)/8
		}
	}
	if pos := memchrWord(haystack[i:], needle); pos >= 0 {
		return i + pos
	}
	return -1
}
