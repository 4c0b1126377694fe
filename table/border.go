package table

// Border returns the prefix border table of pattern.
//
// border[i] is the length of the longest prefix of pattern that is also a
// suffix of pattern[i+1:], the part already matched when a right-to-left
// comparison fails at index i. It satisfies 0 <= border[i] <= m-1-i.
// border[m-1] describes the empty suffix and is always 0.
//
// A suffix of pattern[i+1:] that is a prefix of pattern is a border of the
// whole pattern, so border[i] is the longest whole-pattern border no longer
// than m-1-i. Walking i upwards only ever shortens that limit, which lets
// the chain of borders from the failure function be descended once: linear
// time overall.
//
// Example:
//
//	Border([]byte("DDDBDDD")) // [3 3 3 3 2 1 0]
func Border[S comparable](pattern []S) []int {
	m := len(pattern)
	border := make([]int, m)
	if m == 0 {
		return border
	}
	fail := Failure(pattern)
	b := fail[m-1]
	for i := 0; i < m; i++ {
		for b > m-1-i {
			b = fail[b-1]
		}
		border[i] = b
	}
	return border
}
