package memory

import (
	"bytes"
	"context"
	_ "embed"

	"travel/internal/domain"
	"travel/internal/loader"
)

//go:embed sample.json
var sample []byte

// Source serves a dataset that is already in memory.
type Source struct {
	name    string
	dataset *domain.Dataset
	err     error
}

// NewSource returns a Source that always yields ds.
func NewSource(ds *domain.Dataset) *Source { return &Source{name: "memory", dataset: ds} }

// Failing returns a Source whose Fetch always fails with err.
func Failing(err error) *Source { return &Source{name: "memory", err: err} }

// Sample returns a Source over the document bundled with the binary.
func Sample() *Source {
	ds, err := loader.Decode(bytes.NewReader(sample))
	return &Source{name: "embedded", dataset: ds, err: err}
}

func (s *Source) Name() string { return s.name }

func (s *Source) Fetch(ctx context.Context) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.dataset, nil
}
