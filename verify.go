package pfc

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/discochess/pfc/internal/frontcode"
	"github.com/discochess/pfc/internal/stream"
)

// Inversion is a pair of adjacent words out of order.
type Inversion struct {
	Line int64 // Line of Word; Prev is on Line-1.
	Prev string
	Word string
}

// VerifyResult describes the outcome of Verify.
type VerifyResult struct {
	// Lines is the number of words in the plain list.
	Lines int64

	// Sorted reports whether every word sorts at or after its predecessor.
	// Unsorted is the first inversion when it does not.
	Sorted   bool
	Unsorted *Inversion

	// RoundTrip reports whether compressing and expanding the plain list
	// in memory reproduces it.
	RoundTrip bool

	// Checked reports whether a compressed file was expanded. Match
	// reports whether it expanded to the plain list.
	Checked bool
	Match   bool

	PlainDigest    uint64
	ExpandedDigest uint64
}

// OK reports whether every check passed.
func (v *VerifyResult) OK() bool {
	return v.Sorted && v.RoundTrip && (!v.Checked || v.Match)
}

// Verify checks the word list at plain. It reports the first pair of words
// out of order and whether the list survives compression. When compressed
// is not empty, that file is expanded concurrently and compared with plain.
// Lines are compared by xxhash64 digest after whitespace stripping.
//
// Faults in either list are returned as errors, not as failed checks.
func (c *Client) Verify(ctx context.Context, plain, compressed string) (*VerifyResult, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}

	res := &VerifyResult{Sorted: true, Checked: compressed != ""}
	var expandedLines int64
	var roundTripped bool

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r, err := c.openReader(ctx, c.store, plain)
		if err != nil {
			return err
		}
		defer r.Close()

		digest := xxhash.New()
		roundTrip := xxhash.New()
		var n int64
		var decodedPrior frontcode.PlainWord
		step := func(line, prior string) (string, string, error) {
			n++
			if n > 1 && line < prior && res.Sorted {
				res.Sorted = false
				res.Unsorted = &Inversion{Line: n, Prev: prior, Word: line}
			}
			rec, err := frontcode.Encode(frontcode.PlainWord(line), frontcode.PlainWord(prior))
			if err != nil {
				return "", "", err
			}
			word, err := frontcode.Decode(rec, decodedPrior)
			if err != nil {
				return "", "", err
			}
			decodedPrior = word
			digest.WriteString(line + "\n")
			roundTrip.WriteString(string(word) + "\n")
			return "", line, nil
		}

		sum, err := stream.Fold(ctx, c.charset.Reader(r), io.Discard, step)
		if err != nil {
			return fmt.Errorf("%s: %w", plain, err)
		}
		res.Lines = sum.Lines
		res.PlainDigest = digest.Sum64()
		roundTripped = roundTrip.Sum64() == res.PlainDigest
		return nil
	})

	if compressed != "" {
		g.Go(func() error {
			r, err := c.openReader(ctx, c.store, compressed)
			if err != nil {
				return err
			}
			defer r.Close()

			digest := xxhash.New()
			step := func(line, prior string) (string, string, error) {
				word, err := frontcode.Decode(frontcode.EncodedRecord(line), frontcode.PlainWord(prior))
				if err != nil {
					return "", "", err
				}
				digest.WriteString(string(word) + "\n")
				return "", string(word), nil
			}

			sum, err := stream.Fold(ctx, c.charset.Reader(r), io.Discard, step)
			if err != nil {
				return fmt.Errorf("%s: %w", compressed, err)
			}
			expandedLines = sum.Lines
			res.ExpandedDigest = digest.Sum64()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		var lineErr *stream.LineError
		if errors.As(err, &lineErr) {
			c.logger.Warn("verify halted", zap.Int64("line", lineErr.Line), zap.Error(lineErr.Err))
		}
		return nil, err
	}

	res.RoundTrip = roundTripped
	if res.Checked {
		res.Match = expandedLines == res.Lines && res.ExpandedDigest == res.PlainDigest
	}
	return res, nil
}
