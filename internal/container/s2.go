package container

import (
	"io"

	"github.com/klauspost/compress/s2"
)

// S2 is the s2 stream format, a faster snappy extension.
type S2 struct{}

func (S2) Name() string      { return "s2" }
func (S2) Extension() string { return "s2" }

func (S2) Reader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(s2.NewReader(r)), nil
}

func (S2) Writer(w io.Writer) (io.WriteCloser, error) {
	return s2.NewWriter(w, s2.WriterBetterCompression()), nil
}
