// Package main is the skipsearch command: it reports the byte offsets at
// which a literal pattern occurs in files or standard input.
//
// Usage:
//
//	skipsearch [-a algorithm] [-all] [-no-overlap] [-c] [-q] pattern [file ...]
//
// Exit status is 0 if a match was found, 1 if none was, 2 on error.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/coregx/skipsearch"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

type options struct {
	algorithm string
	all       bool
	noOverlap bool
	count     bool
	quiet     bool
	version   bool
	pattern   string
	files     []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitMatch
		}
		return exitError
	}
	if opts.version {
		fmt.Fprintf(stdout, "skipsearch %s (commit %s, built %s)\n", version, commit, date)
		return exitMatch
	}

	config := skipsearch.DefaultConfig()
	config.Overlapping = !opts.noOverlap
	config.Algorithm, err = skipsearch.ParseAlgorithm(opts.algorithm)
	if err != nil {
		fmt.Fprintf(stderr, "skipsearch: %v\n", err)
		return exitError
	}
	s, err := skipsearch.CompileWithConfig([]byte(opts.pattern), config)
	if err != nil {
		fmt.Fprintf(stderr, "skipsearch: %v\n", err)
		return exitError
	}

	inputs := opts.files
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	status := exitNoMatch
	for _, name := range inputs {
		text, err := readInput(name, stdin)
		if err != nil {
			fmt.Fprintf(stderr, "skipsearch: %v\n", err)
			status = exitError
			continue
		}
		found := report(stdout, s, name, text, opts, len(inputs) > 1)
		if found && status == exitNoMatch {
			status = exitMatch
		}
		if found && opts.quiet {
			return exitMatch
		}
	}
	return status
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("skipsearch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.algorithm, "a", "auto", "algorithm: auto, bm, kmp, dfa, naive or memchr")
	fs.BoolVar(&opts.all, "all", false, "report every match, not just the first")
	fs.BoolVar(&opts.noOverlap, "no-overlap", false, "with -all or -c, skip matches overlapping an earlier one")
	fs.BoolVar(&opts.count, "c", false, "print the number of matches")
	fs.BoolVar(&opts.quiet, "q", false, "print nothing; exit status only")
	fs.BoolVar(&opts.version, "version", false, "print version information and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: skipsearch [-a algorithm] [-all] [-no-overlap] [-c] [-q] pattern [file ...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.version {
		return opts, nil
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return opts, errors.New("missing pattern")
	}
	opts.pattern = fs.Arg(0)
	opts.files = fs.Args()[1:]
	return opts, nil
}

// readInput loads a whole file, or standard input for "-".
func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

// report prints the matches of s in text and reports whether there was one.
func report(w io.Writer, s *skipsearch.Searcher[byte], name string, text []byte, opts options, prefix bool) bool {
	label := func() string {
		if prefix {
			return name + ":"
		}
		return ""
	}

	switch {
	case opts.quiet:
		return s.Contains(text)
	case opts.count:
		n := s.Count(text)
		fmt.Fprintf(w, "%s%d\n", label(), n)
		return n > 0
	case opts.all:
		found := false
		for pos := range s.All(text) {
			fmt.Fprintf(w, "%s%d\n", label(), pos)
			found = true
		}
		return found
	default:
		pos := s.Index(text)
		if pos < 0 {
			return false
		}
		fmt.Fprintf(w, "%s%d\n", label(), pos)
		return true
	}
}
