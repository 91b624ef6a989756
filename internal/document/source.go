// Package document provides the outline's view of the host document: a
// narrow read interface and change notifications. The outline core never
// touches the filesystem directly.
package document

import (
	"fmt"
	"os"
	"path/filepath"
)

// Source supplies raw document text. ReadText may fail; callers surface the
// failure as a degraded "read failed" outline state rather than retrying.
type Source interface {
	// Path is the stable handle identifying the document.
	Path() string
	ReadText() (string, error)
}

// FileSource reads a document from disk.
type FileSource struct {
	path string
}

// NewFileSource resolves path to an absolute handle.
func NewFileSource(path string) (*FileSource, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	return &FileSource{path: abs}, nil
}

func (f *FileSource) Path() string {
	return f.path
}

func (f *FileSource) ReadText() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", fmt.Errorf("reading document: %w", err)
	}
	return string(data), nil
}
