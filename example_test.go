package skipsearch_test

import (
	"fmt"

	"github.com/coregx/skipsearch"
)

// ExampleCompile demonstrates compiling a pattern once and searching with it.
func ExampleCompile() {
	s, err := skipsearch.Compile([]byte("GCAGAGAG"))
	if err != nil {
		panic(err)
	}
	fmt.Println(s.Index([]byte("GCATCGCAGAGAGTATACAGTACG")))
	// Output: 5
}

// ExampleIndexString demonstrates a one-shot search.
func ExampleIndexString() {
	fmt.Println(skipsearch.IndexString("ABCDABEABDCBCDDBBCDBACD", "BCDBACD"))
	fmt.Println(skipsearch.IndexString("ABCDABEABDCBCDDBBCDBACD", "BBCDBD"))
	// Output:
	// 16
	// -1
}

// ExampleSearcher_All demonstrates lazily iterating over overlapping matches.
func ExampleSearcher_All() {
	s := skipsearch.MustCompile("aba")
	for pos := range s.All([]byte("abababa")) {
		fmt.Println(pos)
	}
	// Output:
	// 0
	// 2
	// 4
}

// ExampleCompileWithConfig demonstrates non-overlapping matching with the
// KMP automaton.
func ExampleCompileWithConfig() {
	config := skipsearch.DefaultConfig()
	config.Algorithm = skipsearch.Automaton
	config.Overlapping = false

	s, err := skipsearch.CompileWithConfig([]byte("aba"), config)
	if err != nil {
		panic(err)
	}
	fmt.Println(s.IndexAll([]byte("abababa"), -1))
	// Output: [0 4]
}

// ExampleSearch demonstrates searching a non-byte alphabet.
func ExampleSearch() {
	const (
		A = iota
		C
		G
		T
	)
	config := skipsearch.DefaultConfig()
	config.AlphabetSize = 4

	genome := []uint8{G, C, A, T, C, G, C, A, G, A, G, A, G, T, A}
	probe := []uint8{G, A, G, A, G}

	pos, err := skipsearch.Search(genome, probe, config)
	if err != nil {
		panic(err)
	}
	fmt.Println(pos)

	_, err = skipsearch.Search(genome, []uint8{G, 9}, config)
	fmt.Println(err)
	// Output:
	// 8
	// pattern symbol 9 at position 1 outside alphabet of size 4
}
