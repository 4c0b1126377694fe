// Package table builds the per-pattern skip tables used by the substring
// matchers.
//
// Every builder is a pure function of the pattern: it allocates and returns
// a fresh table and never touches shared state, so tables for different
// patterns can be built concurrently and a finished table may be read from
// any number of goroutines.
//
// The tables are:
//   - Failure: KMP failure function, fail[k] = longest proper border of pattern[:k+1]
//   - Border: border[i] = longest pattern prefix that is a suffix of pattern[i+1:]
//   - BadChar: distance from the last pattern position to each symbol's
//     rightmost earlier occurrence
//   - GoodSuffix: Boyer-Moore shift for a mismatch after a matched suffix
//
// Boyer-Moore tables hold increments for the text pointer at the mismatch
// position, not for the start of the alignment window; this is what bounds
// good-suffix entries by 2m-1.
package table
