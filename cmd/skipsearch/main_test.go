package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Stdin(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		stdin    string
		wantCode int
		wantOut  string
	}{
		{"first", []string{"GCAGAGAG"}, "GCATCGCAGAGAGTATACAGTACG", 0, "5\n"},
		{"absent", []string{"BBCDBD"}, "ABCDABEABDCBCDDBBCDBACD", 1, ""},
		{"all", []string{"-all", "aa"}, "aaaa", 0, "0\n1\n2\n"},
		{"all disjoint", []string{"-all", "-no-overlap", "aa"}, "aaaa", 0, "0\n2\n"},
		{"count", []string{"-c", "-a", "kmp", "an"}, "banana", 0, "2\n"},
		{"count zero", []string{"-c", "x"}, "banana", 1, "0\n"},
		{"quiet", []string{"-q", "nan"}, "banana", 0, ""},
		{"dfa", []string{"-a", "dfa", "ana"}, "banana", 0, "1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tt.stdin, tt.args...)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr %q)", code, tt.wantCode, errOut)
			}
			if out != tt.wantOut {
				t.Errorf("stdout = %q, want %q", out, tt.wantOut)
			}
		})
	}
}

func TestRun_Files(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(a, []byte("needle in a haystack"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("only hay"), 0o600); err != nil {
		t.Fatal(err)
	}

	code, out, _ := runCLI(t, "", "needle", a, b)
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if want := a + ":0\n"; out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}

	code, _, errOut := runCLI(t, "", "needle", filepath.Join(dir, "missing"))
	if code != 2 || !strings.Contains(errOut, "missing") {
		t.Errorf("missing file: code = %d, stderr = %q", code, errOut)
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no pattern", nil},
		{"bad algorithm", []string{"-a", "horspool", "x"}},
		{"memchr multi-byte", []string{"-a", "memchr", "xy"}},
		{"unknown flag", []string{"-z", "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCLI(t, "text", tt.args...)
			if code != 2 {
				t.Errorf("exit code = %d, want 2", code)
			}
			if errOut == "" {
				t.Error("expected a diagnostic on stderr")
			}
		})
	}
}

func TestRun_Version(t *testing.T) {
	code, out, _ := runCLI(t, "", "-version")
	if code != 0 || !strings.HasPrefix(out, "skipsearch dev") {
		t.Errorf("code = %d, stdout = %q", code, out)
	}
}
