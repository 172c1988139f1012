// Package store defines the storage backend interface for word lists and
// their front-coded output.
package store

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrNotFound is returned when an object does not exist in the store.
	ErrNotFound = errors.New("store: object not found")

	// ErrReadOnly is returned by Create on stores that cannot be written.
	ErrReadOnly = errors.New("store: read-only")
)

// Store defines the interface for storage backends.
// Keys are interpreted by each implementation (a relative path, an object
// key, a URL).
type Store interface {
	// Open returns a reader for the object stored under key.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Create returns a writer that replaces the object stored under key.
	// The object is complete only once Close returns nil.
	Create(ctx context.Context, key string) (io.WriteCloser, error)

	// Close releases any resources held by the store.
	Close() error
}
