package container

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// Zstd is the zstd format. The zero value uses the default encoder level.
type Zstd struct {
	Level zstd.EncoderLevel
}

func (Zstd) Name() string      { return "zstd" }
func (Zstd) Extension() string { return "zst" }

func (Zstd) Reader(r io.Reader) (io.ReadCloser, error) {
	decoder, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return decoder.IOReadCloser(), nil
}

func (z Zstd) Writer(w io.Writer) (io.WriteCloser, error) {
	level := z.Level
	if level == 0 {
		level = zstd.SpeedDefault
	}
	return zstd.NewWriter(w, zstd.WithEncoderLevel(level))
}
