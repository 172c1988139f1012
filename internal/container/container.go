// Package container wraps front-coded record streams in an optional outer
// compression format.
package container

import (
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
)

// ErrUnknownFormat is returned for a format name that is not registered.
var ErrUnknownFormat = errors.New("container: unknown format")

// Auto selects a format from the location's file extension.
const Auto = "auto"

// Format is an outer compression format for record streams.
type Format interface {
	// Name returns the format name used on the command line.
	Name() string
	// Extension returns the file extension without dot, or "" for none.
	Extension() string
	// Reader wraps r to decompress data read from it.
	Reader(r io.Reader) (io.ReadCloser, error)
	// Writer wraps w to compress data written to it.
	Writer(w io.Writer) (io.WriteCloser, error)
}

var formats = map[string]Format{}

func register(f Format) {
	formats[f.Name()] = f
}

func init() {
	register(None{})
	register(Zstd{})
	register(Gzip{})
	register(S2{})
	register(Snappy{})
	register(Brotli{})
	register(LZ4{})
}

// Names returns the registered format names in sorted order.
func Names() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName returns the format registered under name. "" is the same as none.
func ByName(name string) (Format, error) {
	if name == "" {
		return None{}, nil
	}
	f, ok := formats[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownFormat, name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// Detect returns the format whose extension matches location, or None.
func Detect(location string) Format {
	ext := strings.TrimPrefix(path.Ext(location), ".")
	if ext == "" {
		return None{}
	}
	for _, f := range formats {
		if f.Extension() == ext {
			return f
		}
	}
	return None{}
}

// Resolve returns the format for name, detecting it from location when name
// is Auto.
func Resolve(name, location string) (Format, error) {
	if name == Auto {
		return Detect(location), nil
	}
	return ByName(name)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
