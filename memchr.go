package skipsearch

import (
	"iter"

	"github.com/coregx/skipsearch/alphabet"
	"github.com/coregx/skipsearch/simd"
)

// memchrFinder matches a one-byte pattern. Matches of a single symbol never
// overlap, so the overlap flag makes no difference.
type memchrFinder struct {
	needle byte
}

// newMemchrFinder returns a memchrFinder as a finder[S] when S is byte and
// the pattern has exactly one symbol.
func newMemchrFinder[S alphabet.Symbol](pattern []S) (finder[S], bool) {
	b, ok := any(pattern).([]byte)
	if !ok || len(b) != 1 {
		return nil, false
	}
	f, ok := any(memchrFinder{needle: b[0]}).(finder[S])
	return f, ok
}

func errMemchrPattern() error {
	return &ConfigError{
		Field:   "Algorithm",
		Message: "memchr requires a one-symbol []byte pattern",
	}
}

func (f memchrFinder) FindAt(text []byte, at int) int {
	return simd.MemchrAt(text, f.needle, at)
}

func (f memchrFinder) All(text []byte, _ bool) iter.Seq[int] {
	return func(yield func(int) bool) {
		for at := 0; ; {
			pos := simd.MemchrAt(text, f.needle, at)
			if pos < 0 || !yield(pos) {
				return
			}
			at = pos + 1
		}
	}
}
