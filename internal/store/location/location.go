// Package location parses the input and output locations accepted by the
// command line: "-", local paths, and s3://, gs://, http(s):// URLs.
package location

import (
	"errors"
	"fmt"
	"strings"
)

// Scheme identifies the backend a location lives on.
type Scheme string

const (
	Stdio Scheme = "stdio"
	File  Scheme = "file"
	S3    Scheme = "s3"
	GCS   Scheme = "gs"
	HTTP  Scheme = "http"
)

// ErrInvalid is returned for locations that cannot be parsed.
var ErrInvalid = errors.New("location: invalid location")

// Location is a parsed location.
type Location struct {
	Scheme Scheme
	// Bucket is set for S3 and GCS locations.
	Bucket string
	// Key is the object key within the bucket, the file path, the full URL
	// for HTTP, or "-" for stdio.
	Key string
}

// String returns the location in the form Parse accepts.
func (l Location) String() string {
	switch l.Scheme {
	case S3, GCS:
		return string(l.Scheme) + "://" + l.Bucket + "/" + l.Key
	default:
		return l.Key
	}
}

// Parse splits raw into scheme, bucket and key.
func Parse(raw string) (Location, error) {
	switch {
	case raw == "":
		return Location{}, fmt.Errorf("%w: empty", ErrInvalid)
	case raw == "-":
		return Location{Scheme: Stdio, Key: raw}, nil
	case strings.HasPrefix(raw, "s3://"):
		return parseBucket(S3, raw)
	case strings.HasPrefix(raw, "gs://"):
		return parseBucket(GCS, raw)
	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
		return Location{Scheme: HTTP, Key: raw}, nil
	case strings.HasPrefix(raw, "file://"):
		path := strings.TrimPrefix(raw, "file://")
		if path == "" {
			return Location{}, fmt.Errorf("%w: %s: missing path", ErrInvalid, raw)
		}
		return Location{Scheme: File, Key: path}, nil
	}
	return Location{Scheme: File, Key: raw}, nil
}

// parseBucket parses "scheme://bucket/key".
func parseBucket(scheme Scheme, raw string) (Location, error) {
	path := strings.TrimPrefix(raw, string(scheme)+"://")
	parts := strings.SplitN(path, "/", 2)
	if parts[0] == "" {
		return Location{}, fmt.Errorf("%w: %s: missing bucket name", ErrInvalid, raw)
	}
	if len(parts) < 2 || parts[1] == "" || strings.HasSuffix(parts[1], "/") {
		return Location{}, fmt.Errorf("%w: %s: missing object key", ErrInvalid, raw)
	}
	return Location{Scheme: scheme, Bucket: parts[0], Key: parts[1]}, nil
}
