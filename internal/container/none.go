package container

import "io"

// None passes data through unchanged. Closing its reader or writer does not
// close the wrapped stream.
type None struct{}

func (None) Name() string      { return "none" }
func (None) Extension() string { return "" }

func (None) Reader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

func (None) Writer(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}
