// Package memstore provides an in-memory store implementation for testing.
package memstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/discochess/pfc/internal/store"
)

// Compile-time check that Store implements store.Store.
var _ store.Store = (*Store)(nil)

// Store is an in-memory store for testing.
type Store struct {
	mu      sync.RWMutex
	objects map[string][]byte
	opens   int
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		objects: make(map[string][]byte),
	}
}

// Put sets the data for an object (for test setup).
// The data is copied to prevent caller mutations from affecting the store.
func (s *Store) Put(key string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = bytes.Clone(data)
}

// Get returns a copy of the object stored under key.
func (s *Store) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[key]
	return bytes.Clone(data), ok
}

// Opens returns how many times Open found an object.
func (s *Store) Opens() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opens
}

// Open returns a reader over the object stored under key.
func (s *Store) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.objects[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", store.ErrNotFound, key)
	}
	s.opens++
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Create returns a writer whose content replaces the object on Close.
func (s *Store) Create(ctx context.Context, key string) (io.WriteCloser, error) {
	return &objectWriter{store: s, key: key}, nil
}

// Close is a no-op for the memory store.
func (s *Store) Close() error {
	return nil
}

type objectWriter struct {
	bytes.Buffer
	store *Store
	key   string
}

func (w *objectWriter) Close() error {
	w.store.Put(w.key, w.Bytes())
	return nil
}
