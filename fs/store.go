// Package fs provides file-based persistence for scraped tests.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/fwojciec/quizgrab"
)

// Ensure JSONStore implements quizgrab.TestStore at compile time.
var _ quizgrab.TestStore = (*JSONStore)(nil)

// JSONStore implements quizgrab.TestStore with atomic update semantics.
// Tests accumulate in memory and are written as a single JSON array to a
// temporary file, which is moved into place atomically on Commit.
type JSONStore struct {
	path string

	mu    sync.Mutex
	tests []*quizgrab.Test
}

// NewJSONStore creates a store that writes to the given file path.
// Intermediate state lives at path + ".tmp" until Commit.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) tempPath() string {
	return s.path + ".tmp"
}

// Save appends a test to the pending batch. Nothing touches disk until
// Commit, so a crawl aborted mid-run never leaves a partial output file.
func (s *JSONStore) Save(ctx context.Context, test *quizgrab.Test) error {
	if err := test.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tests = append(s.tests, test)
	return nil
}

// Commit writes the accumulated tests and atomically replaces the target
// file. The array is pretty-printed with HTML escaping disabled so
// non-ASCII question text stays readable.
func (s *JSONStore) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(s.tempPath())
	if err != nil {
		return err
	}

	tests := s.tests
	if tests == nil {
		tests = []*quizgrab.Test{}
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tests); err != nil {
		f.Close()
		os.Remove(s.tempPath())
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(s.tempPath())
		return err
	}

	return os.Rename(s.tempPath(), s.path)
}

// Abort discards the pending batch and removes any leftover temp file.
func (s *JSONStore) Abort() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tests = nil
	if err := os.Remove(s.tempPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
