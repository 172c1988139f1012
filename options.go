package pfc

import (
	"go.uber.org/zap"

	"github.com/discochess/pfc/internal/container"
	"github.com/discochess/pfc/internal/stats"
	"github.com/discochess/pfc/internal/store"
	"github.com/discochess/pfc/internal/stream"
)

// Option configures a Client.
type Option interface {
	apply(*options)
}

// options holds the client configuration.
type options struct {
	store         store.Store
	storeSet      bool
	stats         stats.Collector
	logger        *zap.Logger
	format        string
	charset       string
	progress      stream.ProgressFunc
	progressEvery int
	cacheSize     int
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		stats:   stats.NewNoop(),
		logger:  zap.NewNop(),
		format:  container.Auto,
		charset: "utf-8",
	}
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

// Compile-time check that optionFunc implements Option.
var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithStore sets the storage backend locations are resolved against.
// If not set, a router over stdio, local files, S3, GCS and HTTP is used.
func WithStore(s store.Store) Option {
	return optionFunc(func(o *options) {
		o.store = s
		o.storeSet = true
	})
}

// WithStats sets the stats collector.
// If not set, a no-op collector is used.
func WithStats(c stats.Collector) Option {
	return optionFunc(func(o *options) {
		o.stats = c
	})
}

// WithLogger sets the logger.
// If not set, a no-op logger is used.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		o.logger = l
	})
}

// WithContainer sets the outer compression format by name ("none", "zstd",
// "gzip", ...). The default, "auto", picks the format of each location from
// its file extension.
func WithContainer(name string) Option {
	return optionFunc(func(o *options) {
		o.format = name
	})
}

// WithCharset sets the text encoding of word lists and records.
// Default is UTF-8.
func WithCharset(name string) Option {
	return optionFunc(func(o *options) {
		o.charset = name
	})
}

// WithProgress reports progress to fn every n lines and when a run ends.
func WithProgress(fn stream.ProgressFunc, n int) Option {
	return optionFunc(func(o *options) {
		o.progress = fn
		o.progressEvery = n
	})
}

// WithCacheSize keeps up to n whole objects read by Lookup in an LRU cache.
// Zero disables the cache.
func WithCacheSize(n int) Option {
	return optionFunc(func(o *options) {
		o.cacheSize = n
	})
}
