// Package router provides a Store that dispatches each key to a backend
// chosen by its location scheme.
package router

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/discochess/pfc/internal/store"
	"github.com/discochess/pfc/internal/store/diskstore"
	"github.com/discochess/pfc/internal/store/gcsstore"
	"github.com/discochess/pfc/internal/store/httpstore"
	"github.com/discochess/pfc/internal/store/location"
	"github.com/discochess/pfc/internal/store/s3store"
	"github.com/discochess/pfc/internal/store/stdiostore"
)

// Compile-time check that Router implements store.Store.
var _ store.Store = (*Router)(nil)

// BucketFactory creates the store serving one bucket.
type BucketFactory func(ctx context.Context, bucket string) (store.Store, error)

// Router routes keys of the forms understood by location.Parse.
// Cloud stores are created on first use and reused per bucket.
type Router struct {
	stdio store.Store
	disk  store.Store
	http  store.Store

	newS3  BucketFactory
	newGCS BucketFactory

	mu      sync.Mutex
	buckets map[string]store.Store
	closed  bool
}

// Option configures a Router.
type Option func(*Router)

// WithStdio sets the store serving "-".
func WithStdio(s store.Store) Option {
	return func(r *Router) {
		r.stdio = s
	}
}

// WithDisk sets the store serving local paths.
func WithDisk(s store.Store) Option {
	return func(r *Router) {
		r.disk = s
	}
}

// WithHTTP sets the store serving http(s) URLs.
func WithHTTP(s store.Store) Option {
	return func(r *Router) {
		r.http = s
	}
}

// WithS3 sets the factory used for s3:// buckets.
func WithS3(f BucketFactory) Option {
	return func(r *Router) {
		r.newS3 = f
	}
}

// WithGCS sets the factory used for gs:// buckets.
func WithGCS(f BucketFactory) Option {
	return func(r *Router) {
		r.newGCS = f
	}
}

// WithS3Options creates S3 buckets with the given store options.
func WithS3Options(opts ...s3store.Option) Option {
	return WithS3(func(ctx context.Context, bucket string) (store.Store, error) {
		return s3store.New(ctx, bucket, opts...)
	})
}

// New creates a Router. Local paths resolve against the working directory
// unless WithDisk is given.
func New(opts ...Option) (*Router, error) {
	r := &Router{
		stdio:   stdiostore.New(),
		http:    httpstore.New(),
		buckets: make(map[string]store.Store),
		newS3: func(ctx context.Context, bucket string) (store.Store, error) {
			return s3store.New(ctx, bucket)
		},
		newGCS: func(ctx context.Context, bucket string) (store.Store, error) {
			return gcsstore.New(ctx, bucket)
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.disk == nil {
		disk, err := diskstore.New(".")
		if err != nil {
			return nil, fmt.Errorf("creating disk store: %w", err)
		}
		r.disk = disk
	}
	return r, nil
}

// Open parses key and opens it on the matching backend.
func (r *Router) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	loc, s, err := r.route(ctx, key)
	if err != nil {
		return nil, err
	}
	return s.Open(ctx, loc.Key)
}

// Create parses key and creates it on the matching backend.
func (r *Router) Create(ctx context.Context, key string) (io.WriteCloser, error) {
	loc, s, err := r.route(ctx, key)
	if err != nil {
		return nil, err
	}
	return s.Create(ctx, loc.Key)
}

// Close closes every backend the router created or was given.
func (r *Router) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true

	errs := []error{r.stdio.Close(), r.disk.Close(), r.http.Close()}
	for name, s := range r.buckets {
		if err := s.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

func (r *Router) route(ctx context.Context, key string) (location.Location, store.Store, error) {
	loc, err := location.Parse(key)
	if err != nil {
		return location.Location{}, nil, err
	}

	switch loc.Scheme {
	case location.Stdio:
		return loc, r.stdio, nil
	case location.File:
		return loc, r.disk, nil
	case location.HTTP:
		return loc, r.http, nil
	case location.S3:
		s, err := r.bucket(ctx, loc, r.newS3)
		return loc, s, err
	case location.GCS:
		s, err := r.bucket(ctx, loc, r.newGCS)
		return loc, s, err
	}
	return location.Location{}, nil, fmt.Errorf("%w: unsupported scheme %q", location.ErrInvalid, loc.Scheme)
}

func (r *Router) bucket(ctx context.Context, loc location.Location, factory BucketFactory) (store.Store, error) {
	name := string(loc.Scheme) + "://" + loc.Bucket

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, fmt.Errorf("router closed")
	}
	if s, ok := r.buckets[name]; ok {
		return s, nil
	}
	s, err := factory(ctx, loc.Bucket)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	r.buckets[name] = s
	return s, nil
}
