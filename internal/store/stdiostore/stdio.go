// Package stdiostore maps the "-" location onto standard input and output.
package stdiostore

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/discochess/pfc/internal/store"
)

// Key is the only key the store accepts.
const Key = "-"

// Compile-time check that Store implements store.Store.
var _ store.Store = (*Store)(nil)

// Store reads from In and writes to Out. Closing a reader or writer it
// returned leaves the underlying stream open.
type Store struct {
	In  io.Reader
	Out io.Writer
}

// New returns a store over os.Stdin and os.Stdout.
func New() *Store {
	return &Store{In: os.Stdin, Out: os.Stdout}
}

// Open returns the input stream.
func (s *Store) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if key != Key {
		return nil, fmt.Errorf("%w: %s", store.ErrNotFound, key)
	}
	return io.NopCloser(s.In), nil
}

// Create returns the output stream.
func (s *Store) Create(ctx context.Context, key string) (io.WriteCloser, error) {
	if key != Key {
		return nil, fmt.Errorf("stdio store cannot create %q", key)
	}
	return nopWriteCloser{s.Out}, nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
