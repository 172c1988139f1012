// Package charset converts word lists between their on-disk text encoding
// and the UTF-8 text the front-coding codec works on.
package charset

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// ErrUnknownCharset is returned for an encoding name that cannot be resolved.
var ErrUnknownCharset = errors.New("charset: unknown encoding")

// Charset is a named text encoding. The zero value is UTF-8.
type Charset struct {
	name string
	enc  encoding.Encoding
}

// UTF8 is the default charset. Streams pass through it untouched.
var UTF8 = Charset{name: "utf-8"}

// Lookup resolves an encoding label such as "utf-8", "latin1",
// "iso-8859-15" or "koi8-r" using the WHATWG encoding index.
func Lookup(name string) (Charset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return UTF8, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return Charset{}, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		return Charset{}, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
	}
	if canonical == "utf-8" {
		return UTF8, nil
	}
	return Charset{name: canonical, enc: enc}, nil
}

// Name returns the canonical encoding name.
func (c Charset) Name() string {
	if c.enc == nil {
		return "utf-8"
	}
	return c.name
}

// IsUTF8 reports whether c passes UTF-8 through unchanged.
func (c Charset) IsUTF8() bool {
	return c.enc == nil
}

// Reader returns a reader that decodes r from c into UTF-8.
func (c Charset) Reader(r io.Reader) io.Reader {
	if c.enc == nil {
		return r
	}
	return transform.NewReader(r, c.enc.NewDecoder())
}

// Writer returns a writer that encodes UTF-8 written to it into c.
// Close flushes buffered output but does not close w. Characters that c
// cannot represent cause a write error.
func (c Charset) Writer(w io.Writer) io.WriteCloser {
	if c.enc == nil {
		return nopWriteCloser{w}
	}
	return transform.NewWriter(w, c.enc.NewEncoder())
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
