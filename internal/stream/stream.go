// Package stream drives a line-by-line fold over newline-delimited text.
package stream

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const (
	initialBufferSize = 1024 * 1024
	maxLineSize       = 16 * 1024 * 1024
)

// Step transforms one stripped input line. acc is the value returned as
// next by the previous call ("" for the first line).
type Step func(line, acc string) (out, next string, err error)

// Line describes one processed line, passed to observers.
type Line struct {
	Number int64
	In     string
	Out    string
}

// Summary describes a completed fold.
type Summary struct {
	Lines    int64
	BytesIn  int64
	BytesOut int64
}

// LineError reports the input line on which a fold stopped.
type LineError struct {
	Line int64
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Fold reads src line by line, strips surrounding whitespace from each line,
// applies step and writes each result followed by a newline to dst, in input
// order. The fold stops at the first step error, which is returned as a
// *LineError. Bytes already written for earlier lines are flushed.
func Fold(ctx context.Context, src io.Reader, dst io.Writer, step Step, opts ...Option) (Summary, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, initialBufferSize), maxLineSize)
	w := bufio.NewWriter(dst)

	var sum Summary
	var acc string
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			w.Flush()
			return sum, ctx.Err()
		default:
		}

		raw := scanner.Text()
		sum.BytesIn += int64(len(raw)) + 1
		line := strings.TrimSpace(raw)

		out, next, err := step(line, acc)
		if err != nil {
			w.Flush()
			return sum, &LineError{Line: sum.Lines + 1, Err: err}
		}
		acc = next
		sum.Lines++

		n, err := w.WriteString(out)
		sum.BytesOut += int64(n)
		if err == nil {
			err = w.WriteByte('\n')
			sum.BytesOut++
		}
		if err != nil {
			return sum, fmt.Errorf("writing line %d: %w", sum.Lines, err)
		}

		if cfg.observer != nil {
			cfg.observer(Line{Number: sum.Lines, In: line, Out: out})
		}
		if cfg.progress != nil && sum.Lines%cfg.every == 0 {
			cfg.progress(Progress{Lines: sum.Lines, BytesIn: sum.BytesIn, BytesOut: sum.BytesOut})
		}
	}

	if err := scanner.Err(); err != nil {
		w.Flush()
		return sum, fmt.Errorf("reading line %d: %w", sum.Lines+1, err)
	}
	if err := w.Flush(); err != nil {
		return sum, fmt.Errorf("flushing output: %w", err)
	}
	if cfg.progress != nil {
		cfg.progress(Progress{Lines: sum.Lines, BytesIn: sum.BytesIn, BytesOut: sum.BytesOut, Done: true})
	}
	return sum, nil
}
