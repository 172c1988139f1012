package container

import (
	"io"

	"github.com/andybalholm/brotli"
)

// Brotli is the brotli format. The zero value uses brotli.DefaultCompression.
type Brotli struct {
	Level int
}

func (Brotli) Name() string      { return "brotli" }
func (Brotli) Extension() string { return "br" }

func (Brotli) Reader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(brotli.NewReader(r)), nil
}

func (b Brotli) Writer(w io.Writer) (io.WriteCloser, error) {
	level := b.Level
	if level == 0 {
		level = brotli.DefaultCompression
	}
	return brotli.NewWriterLevel(w, level), nil
}
