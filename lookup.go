package pfc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/discochess/pfc/internal/frontcode"
	"github.com/discochess/pfc/internal/store"
	"github.com/discochess/pfc/internal/stream"
)

// errStop ends a lookup scan early.
var errStop = errors.New("stop")

// Lookup returns the 1-based line of word in the front-coded list at
// compressed. Records are decoded in order from the start; the scan stops
// at the first word sorting after word, so the list must be sorted.
// Returns ErrNotFound if word is not in the list.
func (c *Client) Lookup(ctx context.Context, compressed, word string) (int, error) {
	if c.closed.Load() {
		return 0, ErrClosed
	}

	word = strings.TrimSpace(word)
	var s store.Store = c.store
	if c.cached != nil {
		s = c.cached
	}
	r, err := c.openReader(ctx, s, compressed)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	var found bool
	step := func(line, prior string) (string, string, error) {
		w, err := frontcode.Decode(frontcode.EncodedRecord(line), frontcode.PlainWord(prior))
		if err != nil {
			return "", "", err
		}
		switch got := string(w); {
		case got == word:
			found = true
			return "", "", errStop
		case got > word:
			return "", "", errStop
		}
		return "", string(w), nil
	}

	_, err = stream.Fold(ctx, c.charset.Reader(r), io.Discard, step)
	var lineErr *stream.LineError
	switch {
	case err == nil:
		return 0, fmt.Errorf("%w: %q", ErrNotFound, word)
	case errors.As(err, &lineErr) && errors.Is(lineErr.Err, errStop):
		if !found {
			return 0, fmt.Errorf("%w: %q", ErrNotFound, word)
		}
		return int(lineErr.Line), nil
	default:
		return 0, fmt.Errorf("%s: %w", compressed, err)
	}
}
