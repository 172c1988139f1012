package container

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// Gzip is the gzip format. The zero value uses gzip.DefaultCompression.
type Gzip struct {
	Level int
}

func (Gzip) Name() string      { return "gzip" }
func (Gzip) Extension() string { return "gz" }

func (Gzip) Reader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

func (g Gzip) Writer(w io.Writer) (io.WriteCloser, error) {
	level := g.Level
	if level == 0 {
		level = gzip.DefaultCompression
	}
	return gzip.NewWriterLevel(w, level)
}
