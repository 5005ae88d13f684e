package security

import (
	"strings"
	"testing"
)

func TestFilenameSuffixLengthAndAlphabet(t *testing.T) {
	t.Parallel()

	suffix, err := FilenameSuffix(16)
	if err != nil {
		t.Fatalf("generate suffix: %v", err)
	}
	if len(suffix) != 16 {
		t.Fatalf("expected 16 characters, got %d", len(suffix))
	}
	for _, character := range suffix {
		if !strings.ContainsRune(filenameAlphabet, character) {
			t.Fatalf("character %q outside filename alphabet", character)
		}
	}
}

func TestFilenameSuffixZeroLength(t *testing.T) {
	t.Parallel()

	suffix, err := FilenameSuffix(0)
	if err != nil {
		t.Fatalf("generate empty suffix: %v", err)
	}
	if suffix != "" {
		t.Fatalf("expected empty suffix, got %q", suffix)
	}
}

func TestFilenameSuffixRejectsNegativeLength(t *testing.T) {
	t.Parallel()

	if _, err := FilenameSuffix(-1); err == nil {
		t.Fatal("expected error for negative length")
	}
}

func TestFilenameSuffixVaries(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for i := 0; i < 32; i++ {
		suffix, err := FilenameSuffix(8)
		if err != nil {
			t.Fatalf("generate suffix: %v", err)
		}
		seen[suffix] = struct{}{}
	}
	if len(seen) < 2 {
		t.Fatal("expected suffixes to vary across calls")
	}
}
