package cachedstore

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/discochess/pfc/internal/store"
)

// Compile-time check that Store implements store.Store.
var _ store.Store = (*Store)(nil)

// Store wraps another Store and keeps whole objects read through it in a
// cache. Objects written through Create are evicted when the write completes.
type Store struct {
	underlying store.Store
	backend    Backend
}

// New creates a new cached store wrapping the given store.
func New(underlying store.Store, backend Backend) *Store {
	return &Store{
		underlying: underlying,
		backend:    backend,
	}
}

// Open returns the object from the cache, reading and caching it from the
// underlying store on a miss.
func (s *Store) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if data, ok := s.backend.Get(key); ok {
		return io.NopCloser(bytes.NewReader(data)), nil
	}

	r, err := s.underlying.Open(ctx, key)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	s.backend.Set(key, data)

	return io.NopCloser(bytes.NewReader(data)), nil
}

// Create writes through to the underlying store.
func (s *Store) Create(ctx context.Context, key string) (io.WriteCloser, error) {
	w, err := s.underlying.Create(ctx, key)
	if err != nil {
		return nil, err
	}
	s.backend.Remove(key)
	return &evictingWriter{WriteCloser: w, evict: func() { s.backend.Remove(key) }}, nil
}

// Close closes the underlying store.
func (s *Store) Close() error {
	return s.underlying.Close()
}

// Stats returns cache statistics.
func (s *Store) Stats() Stats {
	return s.backend.Stats()
}

type evictingWriter struct {
	io.WriteCloser
	evict func()
}

func (w *evictingWriter) Close() error {
	defer w.evict()
	return w.WriteCloser.Close()
}
