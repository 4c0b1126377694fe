package table

import "github.com/coregx/skipsearch/internal/sparse"

// GoodSuffix returns the Boyer-Moore good-suffix table of pattern.
//
// skip[i] applies when pattern[i+1:] matched the text but pattern[i] did
// not. Three situations are covered:
//
//  1. The matched suffix occurs elsewhere in pattern with a different
//     symbol before it. The window moves to align that occurrence. For
//     "mississi" the suffix "issi" recurs at index 1, so skip[3] == 7.
//  2. The suffix does not recur, but its tail is a prefix of pattern. For
//     "abcxxxabc" with a mismatch at 3, "abc" is both, so skip[3] == 11.
//  3. Neither: the window moves entirely past the matched suffix, which is
//     case 2 with an empty prefix.
//
// Cases 2 and 3 are filled first from the border table; case 1 then
// overrides individual entries. skip[m-1], a mismatch on the very first
// comparison, is 1. Every entry lies in [1, 2m-1].
//
// This construction compares each candidate prefix against the pattern
// directly, which is O(m^2) in the worst case. GoodSuffixLinear produces the
// same table in O(m).
func GoodSuffix[S comparable](pattern []S) []int {
	m := len(pattern)
	skip := make([]int, m)
	if m == 0 {
		return skip
	}
	fillPrefixShifts(skip, Border(pattern))

	seen := sparse.New(m)
	for p := m - 1; p >= 2; p-- {
		overlaySuffixShift(skip, seen, commonSuffixLen(pattern, pattern[:p]), p)
	}
	return skip
}

// GoodSuffixLinear builds the same table as GoodSuffix in linear time by
// computing every common-suffix length at once with SuffixLengths.
func GoodSuffixLinear[S comparable](pattern []S) []int {
	m := len(pattern)
	skip := make([]int, m)
	if m == 0 {
		return skip
	}
	fillPrefixShifts(skip, Border(pattern))

	suff := SuffixLengths(pattern)
	seen := sparse.New(m)
	for p := m - 1; p >= 2; p-- {
		overlaySuffixShift(skip, seen, suff[p-1], p)
	}
	return skip
}

// fillPrefixShifts writes cases 2 and 3: shift the window so the longest
// pattern prefix lines up with the tail of the matched suffix.
func fillPrefixShifts(skip, border []int) {
	m := len(skip)
	last := m - 1
	for i := last - 1; i >= 0; i-- {
		suffixLen := last - i
		skip[i] = m + suffixLen - border[i]
	}
	skip[last] = 1
}

// overlaySuffixShift writes case 1 for the prefix of length p whose
// common suffix with the pattern has length l.
//
// Candidates arrive longest prefix first. A longer prefix means a smaller
// shift, so the first prefix reporting a given l keeps the entry.
func overlaySuffixShift(skip []int, seen *sparse.Set, l, p int) {
	if l == 0 || !seen.Insert(l) {
		return
	}
	m := len(skip)
	skip[m-1-l] = m + l - p
}

// commonSuffixLen returns the length of the longest common suffix of a and b.
func commonSuffixLen[S comparable](a, b []S) int {
	i := 0
	for i < len(a) && i < len(b) && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}
	return i
}

// SuffixLengths returns suff where suff[k] is the length of the longest
// common suffix of pattern and pattern[:k+1]. suff[m-1] is m.
//
// The scan keeps the leftmost boundary g reached by a previous explicit
// comparison started at f. Inside (g, f] the answer can be copied from the
// mirrored position near the end of the pattern unless it would reach past g,
// in which case comparison resumes from g. Each symbol is compared a bounded
// number of times.
func SuffixLengths[S comparable](pattern []S) []int {
	m := len(pattern)
	suff := make([]int, m)
	if m == 0 {
		return suff
	}
	last := m - 1
	suff[last] = m
	g, f := last, last
	for i := last - 1; i >= 0; i-- {
		if i > g && suff[i+last-f] < i-g {
			suff[i] = suff[i+last-f]
			continue
		}
		if i < g {
			g = i
		}
		f = i
		for g >= 0 && pattern[g] == pattern[g+last-f] {
			g--
		}
		suff[i] = f - g
	}
	return suff
}
