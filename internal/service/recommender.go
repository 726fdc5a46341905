package service

import (
	"context"
	"fmt"

	"travel/internal/domain"
	"travel/internal/loader"
	"travel/internal/logger"
	"travel/internal/resolver"
)

// Stats summarizes a loaded dataset.
type Stats struct {
	Beaches   int
	Temples   int
	Countries int
	Cities    int
}

// Recommender owns the dataset lifecycle and answers queries against it.
// It is not safe for concurrent use; queries are resolved one at a time.
type Recommender struct {
	source  loader.Source
	state   resolver.State
	loadErr error
	tried   bool
}

func NewRecommender(source loader.Source) *Recommender {
	return &Recommender{source: source, state: resolver.Unloaded()}
}

// Load fetches the dataset once. A failed load is terminal: later calls return
// the same error without fetching again.
func (r *Recommender) Load(ctx context.Context) error {
	if r.tried {
		return r.loadErr
	}
	r.tried = true

	logger.Section("Load")
	logger.Info("Source: %s", r.source.Name())
	ds, err := r.source.Fetch(ctx)
	if err != nil {
		r.loadErr = fmt.Errorf("load %s: %w", r.source.Name(), err)
		logger.Warn("%v", r.loadErr)
		return r.loadErr
	}
	r.state = resolver.Loaded(ds)
	st := r.Stats()
	logger.Info("Loaded %d beaches, %d temples, %d countries (%d cities)", st.Beaches, st.Temples, st.Countries, st.Cities)
	return nil
}

// Query resolves a raw query string.
func (r *Recommender) Query(raw string) domain.Outcome {
	logger.Section("Query")
	out := resolver.Resolve(r.state, raw)
	logger.Debug("Outcome: %s (%d records)", out.Kind, len(out.Records))
	return out
}

func (r *Recommender) Loaded() bool {
	_, ok := r.state.Dataset()
	return ok
}

// LoadErr returns the error of a failed load, if any.
func (r *Recommender) LoadErr() error { return r.loadErr }

func (r *Recommender) Stats() Stats {
	ds, ok := r.state.Dataset()
	if !ok {
		return Stats{}
	}
	st := Stats{Beaches: len(ds.Beaches), Temples: len(ds.Temples), Countries: len(ds.Countries)}
	for _, c := range ds.Countries {
		st.Cities += len(c.Cities)
	}
	return st
}
