// Package loader fetches the travel-recommendation document.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"travel/internal/domain"
)

// DefaultPath is where the document is looked for when nothing else is configured.
const DefaultPath = "travel_recommendation_api.json"

// Source produces a parsed dataset. It is called once per session.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (*domain.Dataset, error)
}

// Decode parses a document. Absent fields decode to empty values.
func Decode(r io.Reader) (*domain.Dataset, error) {
	var ds domain.Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDataset, err)
	}
	return &ds, nil
}
