package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *DateStore {
	t.Helper()
	return NewDateStore(t.TempDir(), time.UTC)
}

func TestEnsureDirectoryIsIdempotent(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	first, err := store.EnsureDirectory("2024-09-14")
	if err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	second, err := store.EnsureDirectory("2024-09-14")
	if err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	if first != second {
		t.Fatalf("expected same directory, got %q and %q", first, second)
	}
	info, err := os.Stat(first)
	if err != nil {
		t.Fatalf("stat directory: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("expected %q to be a directory", first)
	}
}

func TestWriteListDeleteRoundTrip(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	fileName, err := store.Write("2024-09-14", []byte("RIFF-test-payload"))
	if err != nil {
		t.Fatalf("write recording: %v", err)
	}
	if !strings.HasPrefix(fileName, "audio_2024-09-14_") || !strings.HasSuffix(fileName, ".wav") {
		t.Fatalf("unexpected filename shape %q", fileName)
	}

	files, err := store.List("2024-09-14")
	if err != nil {
		t.Fatalf("list recordings: %v", err)
	}
	if len(files) != 1 || files[0] != fileName {
		t.Fatalf("expected [%q], got %v", fileName, files)
	}

	if err := store.Delete("2024-09-14", fileName); err != nil {
		t.Fatalf("delete recording: %v", err)
	}
	files, err = store.List("2024-09-14")
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected no recordings after delete, got %v", files)
	}
}

func TestWriteSameSecondDoesNotCollide(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	first, err := store.Write("2024-09-14", []byte("one"))
	if err != nil {
		t.Fatalf("first write: %v", err)
	}
	second, err := store.Write("2024-09-14", []byte("two"))
	if err != nil {
		t.Fatalf("second write: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct filenames, both were %q", first)
	}
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewDateStore(root, time.UTC)
	if _, err := store.Write("2024-09-14", []byte("payload")); err != nil {
		t.Fatalf("write recording: %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(root, "audio", "2024-09-14"))
	if err != nil {
		t.Fatalf("read directory: %v", err)
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".upload-") {
			t.Fatalf("temp file %q left behind", entry.Name())
		}
	}
}

func TestListIgnoresNonWavFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewDateStore(root, time.UTC)
	directory, err := store.EnsureDirectory("2024-09-14")
	if err != nil {
		t.Fatalf("ensure directory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(directory, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write stray file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(directory, "take.wav"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write wav file: %v", err)
	}

	files, err := store.List("2024-09-14")
	if err != nil {
		t.Fatalf("list recordings: %v", err)
	}
	if len(files) != 1 || files[0] != "take.wav" {
		t.Fatalf("expected only take.wav, got %v", files)
	}
}

func TestListUnknownDateReturnsEmpty(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	files, err := store.List("2099-01-01")
	if err != nil {
		t.Fatalf("list recordings: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected empty list, got %v", files)
	}
}

func TestDeleteMissingFileReportsNotFound(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	err := store.Delete("2024-09-14", "audio_2024-09-14_10-00-00_abcdef.wav")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTraversalComponentsAreRejected(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	cases := []struct {
		date     string
		fileName string
	}{
		{"../2024-09-14", "take.wav"},
		{"2024-09-14/..", "take.wav"},
		{"2024-09-14", "../secrets.wav"},
		{"2024-09-14", "a/b.wav"},
		{"2024-09-14", `a\b.wav`},
		{"", "take.wav"},
		{"2024-09-14", ""},
	}
	for _, testCase := range cases {
		if _, err := store.EnsureDirectory(testCase.date); testCase.date != "2024-09-14" && !errors.Is(err, ErrPathTraversal) {
			t.Fatalf("ensure %q: expected ErrPathTraversal, got %v", testCase.date, err)
		}
		if err := store.Delete(testCase.date, testCase.fileName); !errors.Is(err, ErrPathTraversal) {
			t.Fatalf("delete %q/%q: expected ErrPathTraversal, got %v", testCase.date, testCase.fileName, err)
		}
	}
}

func TestRelativePathUsesForwardSlashes(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	relative := store.RelativePath("2024-09-14", "take.wav")
	if relative != "audio/2024-09-14/take.wav" {
		t.Fatalf("unexpected relative path %q", relative)
	}
}
