// Package anm2project orchestrates saving and loading anm2doc.Document
// values to and from disk, including the multi-script (@-prefixed) mode
// that pairs a primary .anm2 file with a derived .obj2 overwrite file, and
// an optional per-project YAML settings file.
package anm2project

import (
	"fmt"
	"os"
	"path/filepath"
)

// IO abstracts the filesystem operations Save/Load need, so callers (and
// tests) can supply an in-memory fake instead of touching disk.
type IO interface {
	ReadFile(path string) ([]byte, error)
	WriteFileAtomic(path string, data []byte) error
}

// fileIO is the production IO backed by the real filesystem.
type fileIO struct{}

// NewFileIO returns the disk-backed IO implementation.
func NewFileIO() IO { return fileIO{} }

func (fileIO) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFileAtomic writes data to path via a temp file in the same
// directory followed by a rename, so a crash or concurrent reader never
// observes a partially written file.
func (fileIO) WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".anm2project-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
