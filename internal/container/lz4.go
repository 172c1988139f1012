package container

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4 is the lz4 frame format.
type LZ4 struct{}

func (LZ4) Name() string      { return "lz4" }
func (LZ4) Extension() string { return "lz4" }

func (LZ4) Reader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}

func (LZ4) Writer(w io.Writer) (io.WriteCloser, error) {
	return lz4.NewWriter(w), nil
}
