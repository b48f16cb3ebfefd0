// Package testutil provides test helpers and fixtures for appsweep
// tests. All file operations use t.TempDir() for safe, isolated testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// Fixture is a throwaway home-directory layout for scanner tests.
type Fixture struct {
	T       *testing.T
	HomeDir string
}

// NewFixture creates an isolated fake home directory.
func NewFixture(t *testing.T) *Fixture {
	t.Helper()
	return &Fixture{T: t, HomeDir: t.TempDir()}
}

// MkDir creates a directory (and parents) under the fixture home.
func (f *Fixture) MkDir(relPath string) string {
	f.T.Helper()

	path := filepath.Join(f.HomeDir, relPath)
	if err := os.MkdirAll(path, 0755); err != nil {
		f.T.Fatalf("mkdir %s: %v", path, err)
	}
	return path
}

// WriteFile creates a file with the given content, creating parents.
func (f *Fixture) WriteFile(relPath string, content []byte) string {
	f.T.Helper()

	path := filepath.Join(f.HomeDir, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		f.T.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		f.T.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteFileOfSize creates a sparse file with the given apparent size.
// Sparse files keep multi-hundred-MB fixtures cheap.
func (f *Fixture) WriteFileOfSize(relPath string, size int64) string {
	f.T.Helper()

	path := f.WriteFile(relPath, nil)
	if err := os.Truncate(path, size); err != nil {
		f.T.Fatalf("truncate %s: %v", path, err)
	}
	return path
}

// Backdate sets a path's modification time the given number of days
// into the past.
func (f *Fixture) Backdate(path string, days int) {
	f.T.Helper()

	when := time.Now().AddDate(0, 0, -days)
	if err := os.Chtimes(path, when, when); err != nil {
		f.T.Fatalf("chtimes %s: %v", path, err)
	}
}

// MB is a convenience for sizing fixture files.
const MB = 1024 * 1024
