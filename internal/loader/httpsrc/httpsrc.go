package httpsrc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"travel/internal/domain"
	"travel/internal/loader"
)

// Source fetches the document over HTTP with a single GET.
type Source struct {
	url    string
	client *http.Client
}

// Config configures the HTTP source.
type Config struct {
	URL     string
	Timeout time.Duration
}

// NewSource creates an HTTP source. A zero timeout defaults to 30s.
func NewSource(cfg Config) (*Source, error) {
	if cfg.URL == "" {
		return nil, errors.New("missing data url")
	}
	t := cfg.Timeout
	if t == 0 {
		t = 30 * time.Second
	}
	return &Source{url: cfg.URL, client: &http.Client{Timeout: t}}, nil
}

func (s *Source) Name() string { return "http:" + s.url }

func (s *Source) Fetch(ctx context.Context) (*domain.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch failed: %s", resp.Status)
	}
	return loader.Decode(resp.Body)
}
