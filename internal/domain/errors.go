package domain

import "errors"

var (
	// ErrNotFound indicates no country matched the requested name.
	ErrNotFound = errors.New("not found")

	// ErrDataNotLoaded indicates a query was attempted without a successful load.
	ErrDataNotLoaded = errors.New("data not loaded")

	// ErrInvalidDataset indicates the fetched document could not be parsed.
	ErrInvalidDataset = errors.New("invalid dataset")
)
