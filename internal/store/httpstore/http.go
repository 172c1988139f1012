// Package httpstore implements a read-only HTTP(S) storage backend. Keys are
// absolute URLs.
package httpstore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/discochess/pfc/internal/store"
)

// DefaultResponseHeaderTimeout is the default timeout for receiving response headers.
const DefaultResponseHeaderTimeout = 30 * time.Second

// Compile-time check that Store implements store.Store.
var _ store.Store = (*Store)(nil)

// Store fetches objects with HTTP GET.
type Store struct {
	client *http.Client
}

// Option configures a Store.
type Option func(*Store)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Store) {
		s.client = client
	}
}

// New creates a new Store with sensible defaults. There is no overall
// timeout; large lists may take a while to stream.
func New(opts ...Option) *Store {
	s := &Store{
		client: &http.Client{
			Transport: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				ResponseHeaderTimeout: DefaultResponseHeaderTimeout,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open issues a GET for the URL key and streams the response body.
func (s *Store) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, key, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return resp.Body, nil
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", store.ErrNotFound, key)
	default:
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}
}

// Create always fails with store.ErrReadOnly.
func (s *Store) Create(ctx context.Context, key string) (io.WriteCloser, error) {
	return nil, fmt.Errorf("%w: %s", store.ErrReadOnly, key)
}

// Close releases idle connections.
func (s *Store) Close() error {
	s.client.CloseIdleConnections()
	return nil
}
