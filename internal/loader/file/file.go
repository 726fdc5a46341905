package file

import (
	"context"
	"fmt"
	"os"

	"travel/internal/domain"
	"travel/internal/loader"
)

// Source reads the document from a local file.
type Source struct {
	path string
}

// NewSource returns a Source reading path, or loader.DefaultPath when path is empty.
func NewSource(path string) *Source {
	if path == "" {
		path = loader.DefaultPath
	}
	return &Source{path: path}
}

func (s *Source) Name() string { return "file:" + s.path }

func (s *Source) Fetch(ctx context.Context) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()
	ds, err := loader.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return ds, nil
}
