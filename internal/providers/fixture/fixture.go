package fixture

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"worldcup-stats-service/internal/providers"
)

//go:embed data/*
var files embed.FS

// Source serves the datasets bundled with the binary, useful for local testing and bootstrapping.
type Source struct {
	fs fs.FS
}

// New creates a fixture source over the embedded data directory.
func New() *Source {
	return &Source{fs: files}
}

// Open returns the embedded copy of the named dataset.
func (s *Source) Open(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !known(name) {
		return nil, fmt.Errorf("%w: %s", providers.ErrUnknownDataset, name)
	}

	data, err := fs.ReadFile(s.fs, path.Join("data", name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", providers.ErrNotFound, name)
	}
	return data, err
}

func known(name string) bool {
	for _, f := range providers.Files() {
		if f == name {
			return true
		}
	}
	return false
}
