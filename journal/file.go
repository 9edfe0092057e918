package journal

import (
	"fmt"
	"os"
	"path/filepath"
)

// File wraps a journal file on disk. Writes go through a temporary file in
// the same directory followed by a rename, so a failure part-way never
// leaves a truncated journal behind.
type File struct {
	Path string
}

// NewFile creates a File for the given path. The file need not exist yet;
// Read treats a missing file as empty.
func NewFile(path string) *File {
	return &File{Path: path}
}

// Read returns the file contents, or "" when the file does not exist.
func (f *File) Read() (string, error) {
	data, err := os.ReadFile(f.Path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", f.Path, err)
	}
	return string(data), nil
}

// Write replaces the file contents atomically.
func (f *File) Write(contents string) error {
	dir := filepath.Dir(f.Path)

	tmp, err := os.CreateTemp(dir, filepath.Base(f.Path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(contents); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, f.Path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", f.Path, err)
	}

	return nil
}
