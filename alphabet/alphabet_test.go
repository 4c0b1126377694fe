package alphabet

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"byte", 256, false},
		{"binary", 2, false},
		{"single", 1, false},
		{"unicode", int(MaxSize), false},
		{"zero", 0, true},
		{"negative", -4, true},
		{"too large", int(MaxSize) + 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(tt.size)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%d) error = %v, wantErr %v", tt.size, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidAlphabet) {
					t.Errorf("error %v does not wrap ErrInvalidAlphabet", err)
				}
				return
			}
			if a.Size() != tt.size {
				t.Errorf("Size() = %d, want %d", a.Size(), tt.size)
			}
		})
	}
}

func TestContains(t *testing.T) {
	if !Contains(Byte, byte(255)) {
		t.Error("Byte should contain 255")
	}
	if Contains(Byte, 256) {
		t.Error("Byte should not contain 256")
	}
	if Contains(Byte, int32(-1)) {
		t.Error("negative codes are never in an alphabet")
	}
	if !Contains(Alphabet(4), uint16(3)) || Contains(Alphabet(4), uint16(4)) {
		t.Error("Alphabet(4) bounds wrong")
	}
}

func TestCheck(t *testing.T) {
	dna := Alphabet(4)

	if err := CheckPattern(dna, []uint8{0, 1, 2, 3}); err != nil {
		t.Fatalf("CheckPattern() = %v, want nil", err)
	}
	if err := CheckText(dna, []uint8{}); err != nil {
		t.Fatalf("CheckText(empty) = %v, want nil", err)
	}

	err := CheckText(dna, []uint8{0, 1, 7, 2})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("CheckText() = %v, want ErrInvalidInput", err)
	}
	var se *SymbolError
	if !errors.As(err, &se) {
		t.Fatalf("CheckText() error %T is not *SymbolError", err)
	}
	if se.Where != "text" || se.Position != 2 || se.Code != 7 || se.Size != 4 {
		t.Errorf("SymbolError = %+v", *se)
	}
	if se.Error() != "text symbol 7 at position 2 outside alphabet of size 4" {
		t.Errorf("Error() = %q", se.Error())
	}
}

func TestCheck_RuneAlphabet(t *testing.T) {
	text := []rune("héllo wörld")
	if err := CheckText(MaxSize, text); err != nil {
		t.Errorf("CheckText(MaxSize) = %v", err)
	}
	if err := CheckText(Byte, text); err != nil {
		t.Errorf("runes below 256 should pass Byte: %v", err)
	}
	if err := CheckText(Alphabet(128), text); err == nil {
		t.Error("non-ASCII rune should fail a 128-symbol alphabet")
	}
}
