package table

// Failure returns the KMP failure function of pattern.
//
// fail[k] is the length of the longest proper prefix of pattern[:k+1] that is
// also its suffix. fail[0] is 0 by convention. Construction is linear: the
// candidate border k only grows by one per step and every fallback shrinks it.
//
// Example:
//
//	Failure([]byte("ABCDABD")) // [0 0 0 0 1 2 0]
func Failure[S comparable](pattern []S) []int {
	m := len(pattern)
	fail := make([]int, m)
	k := 0
	for i := 1; i < m; i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = fail[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		fail[i] = k
	}
	return fail
}

// Period returns the smallest shift that can align pattern with itself
// again: m minus the longest proper border of the whole pattern. Two
// occurrences in a text are never closer than Period.
func Period[S comparable](pattern []S) int {
	m := len(pattern)
	if m == 0 {
		return 1
	}
	return m - Failure(pattern)[m-1]
}
