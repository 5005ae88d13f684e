package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/alderwick/voicelog/internal/security"
)

var (
	ErrPathTraversal = errors.New("path escapes media root")
	ErrNotFound      = errors.New("file not found")
)

const (
	audioSubdir        = "audio"
	wavExtension       = ".wav"
	filenameSuffixSize = 6
)

// DateStore keeps WAV recordings under <mediaRoot>/audio/<YYYY-MM-DD>/.
// Date and filename components come from client input, so every operation
// vets them before touching the filesystem.
type DateStore struct {
	root     string
	location *time.Location
}

func NewDateStore(mediaRoot string, location *time.Location) *DateStore {
	return &DateStore{
		root:     filepath.Join(mediaRoot, audioSubdir),
		location: location,
	}
}

// EnsureDirectory creates the directory for the given date if it does not
// exist yet. Safe to call repeatedly and from concurrent requests.
func (store *DateStore) EnsureDirectory(date string) (string, error) {
	directory, err := store.dateDirectory(date)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return "", fmt.Errorf("create audio directory: %w", err)
	}
	return directory, nil
}

// Write persists a normalized WAV payload and returns the generated filename.
// The write is atomic: the payload lands in a temp file in the target
// directory and is renamed into place, so a failed request never leaves a
// partial recording behind.
func (store *DateStore) Write(date string, wav []byte) (string, error) {
	directory, err := store.EnsureDirectory(date)
	if err != nil {
		return "", err
	}

	suffix, err := security.FilenameSuffix(filenameSuffixSize)
	if err != nil {
		return "", fmt.Errorf("generate filename suffix: %w", err)
	}
	timestamp := time.Now().In(store.location).Format("15-04-05")
	fileName := fmt.Sprintf("audio_%s_%s_%s%s", date, timestamp, suffix, wavExtension)

	tempFile, err := os.CreateTemp(directory, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFile.Write(wav); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return "", fmt.Errorf("write recording: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("flush recording: %w", err)
	}
	if err := os.Rename(tempPath, filepath.Join(directory, fileName)); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("finalize recording: %w", err)
	}

	return fileName, nil
}

// List returns the WAV filenames stored for a date, lexicographically sorted.
// A date with no directory yields an empty list, not an error.
func (store *DateStore) List(date string) ([]string, error) {
	directory, err := store.dateDirectory(date)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(directory)
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read audio directory: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), wavExtension) {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// Delete removes a stored recording. A missing file reports ErrNotFound
// instead of a filesystem error.
func (store *DateStore) Delete(date string, fileName string) error {
	path, err := store.Resolve(date, fileName)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("delete recording: %w", err)
	}
	return nil
}

// Resolve maps a (date, filename) pair to its absolute path after vetting
// both components.
func (store *DateStore) Resolve(date string, fileName string) (string, error) {
	directory, err := store.dateDirectory(date)
	if err != nil {
		return "", err
	}
	if err := validateComponent(fileName); err != nil {
		return "", err
	}
	return filepath.Join(directory, fileName), nil
}

// RelativePath is the media-root-relative path recorded on Activity rows.
func (store *DateStore) RelativePath(date string, fileName string) string {
	return filepath.ToSlash(filepath.Join(audioSubdir, date, fileName))
}

func (store *DateStore) dateDirectory(date string) (string, error) {
	if err := validateComponent(date); err != nil {
		return "", err
	}
	return filepath.Join(store.root, date), nil
}

func validateComponent(value string) error {
	if strings.TrimSpace(value) == "" {
		return ErrPathTraversal
	}
	if strings.ContainsAny(value, `/\`) || strings.Contains(value, "..") {
		return ErrPathTraversal
	}
	return nil
}
