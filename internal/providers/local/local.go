// Package local serves datasets from a directory on disk.
package local

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"worldcup-stats-service/internal/providers"
)

// Source reads dataset files from a directory.
type Source struct {
	dir string
	fs  fs.FS
}

// New returns a source rooted at dir. The directory must exist.
func New(dir string) (*Source, error) {
	if dir == "" {
		return nil, errors.New("local: data directory is required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("local: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("local: %s is not a directory", dir)
	}
	return &Source{dir: dir, fs: os.DirFS(dir)}, nil
}

// Dir reports the root directory.
func (s *Source) Dir() string { return s.dir }

// Open reads name from the directory.
func (s *Source) Open(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("%w: %s", providers.ErrUnknownDataset, name)
	}
	data, err := fs.ReadFile(s.fs, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", providers.ErrNotFound, name)
	}
	return data, err
}
