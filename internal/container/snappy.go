package container

import (
	"io"

	"github.com/golang/snappy"
)

// Snappy is the framed snappy stream format.
type Snappy struct{}

func (Snappy) Name() string      { return "snappy" }
func (Snappy) Extension() string { return "sz" }

func (Snappy) Reader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(snappy.NewReader(r)), nil
}

func (Snappy) Writer(w io.Writer) (io.WriteCloser, error) {
	return snappy.NewBufferedWriter(w), nil
}
