package naive

import (
	"slices"
	"testing"
)

func TestIndex(t *testing.T) {
	tests := []struct {
		text, pattern string
		at            int
		want          int
	}{
		{"", "", 0, 0},
		{"abc", "", 0, 0},
		{"abc", "", 3, 3},
		{"abc", "", 4, -1},
		{"", "a", 0, -1},
		{"abc", "abcd", 0, -1},
		{"abc", "c", 0, 2},
		{"abcabc", "abc", 1, 3},
		{"abcabc", "abc", -5, 0},
		{"ABCDABEABDCBCDDBBCDBACD", "BCDBACD", 0, 16},
		{"GCATCGCAGAGAGTATACAGTACG", "GCAGAGAG", 0, 5},
	}
	for _, tt := range tests {
		if got := Index([]byte(tt.text), []byte(tt.pattern), tt.at); got != tt.want {
			t.Errorf("Index(%q, %q, %d) = %d, want %d", tt.text, tt.pattern, tt.at, got, tt.want)
		}
	}
}

func TestMatcher_All(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		overlap bool
		want    []int
	}{
		{"overlapping", "aaaa", "aa", true, []int{0, 1, 2}},
		{"non-overlapping", "aaaa", "aa", false, []int{0, 2}},
		{"empty pattern", "ab", "", false, []int{0, 1, 2}},
		{"none", "abc", "x", true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New([]byte(tt.pattern))
			got := slices.Collect(m.All([]byte(tt.text), tt.overlap))
			if !slices.Equal(got, tt.want) {
				t.Errorf("All() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatcher_AllStopsEarly(t *testing.T) {
	m := New([]byte("a"))
	var got []int
	for pos := range m.All([]byte("aaaa"), true) {
		got = append(got, pos)
		if len(got) == 2 {
			break
		}
	}
	if !slices.Equal(got, []int{0, 1}) {
		t.Errorf("got %v, want [0 1]", got)
	}
}

func TestMatcher_Find(t *testing.T) {
	m := New([]rune("本語"))
	text := []rune("日本日本語")
	if got := m.Find(text); got != 3 {
		t.Errorf("Find() = %d, want 3", got)
	}
	if got := m.FindAt(text, 4); got != -1 {
		t.Errorf("FindAt(4) = %d, want -1", got)
	}
}
