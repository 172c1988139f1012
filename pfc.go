// Package pfc compresses sorted word lists by prefix (front) coding.
//
// Each word is written as a one-character marker encoding how many leading
// characters it shares with the previous word, followed by the rest of the
// word. Expanding reverses the process line by line.
//
// Example usage:
//
//	client, err := pfc.New(pfc.WithContainer("zstd"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	report, err := client.Compress(ctx, "words.txt", "words.pfc.zst")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d words, %s\n", report.Lines, report.Change())
package pfc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/discochess/pfc/internal/analysis"
	"github.com/discochess/pfc/internal/charset"
	"github.com/discochess/pfc/internal/container"
	"github.com/discochess/pfc/internal/frontcode"
	"github.com/discochess/pfc/internal/stats"
	"github.com/discochess/pfc/internal/store"
	"github.com/discochess/pfc/internal/store/cachedstore"
	"github.com/discochess/pfc/internal/store/cachedstore/cachestrategy/lru"
	"github.com/discochess/pfc/internal/store/cachedstore/memory"
	"github.com/discochess/pfc/internal/store/router"
	"github.com/discochess/pfc/internal/stream"
)

// Sentinel errors for well-defined error conditions.
var (
	// ErrNotFound indicates the word was not found in the list.
	ErrNotFound = errors.New("pfc: word not found")

	// ErrClosed indicates the client has been closed.
	ErrClosed = errors.New("pfc: client closed")

	// ErrNoStore indicates a nil store was provided.
	ErrNoStore = errors.New("pfc: no store provided")
)

// Client runs front coding between locations of a store.
// A Client is safe for concurrent use by multiple goroutines; each run
// keeps its own prior word.
type Client struct {
	store    store.Store
	cached   *cachedstore.Store
	format   string
	charset  charset.Charset
	stats    stats.Collector
	logger   *zap.Logger
	progress stream.ProgressFunc
	every    int
	closed   atomic.Bool
}

// New creates a new Client with the given options.
// If no options are provided, sensible defaults are used.
func New(opts ...Option) (*Client, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	if cfg.storeSet && cfg.store == nil {
		return nil, ErrNoStore
	}
	if cfg.format != container.Auto {
		if _, err := container.ByName(cfg.format); err != nil {
			return nil, err
		}
	}
	cs, err := charset.Lookup(cfg.charset)
	if err != nil {
		return nil, err
	}

	if cfg.store == nil {
		r, err := router.New()
		if err != nil {
			return nil, fmt.Errorf("creating store: %w", err)
		}
		cfg.store = r
	}

	c := &Client{
		store:    cfg.store,
		format:   cfg.format,
		charset:  cs,
		stats:    cfg.stats,
		logger:   cfg.logger,
		progress: cfg.progress,
		every:    cfg.progressEvery,
	}

	if cfg.cacheSize > 0 {
		strategy, err := lru.New(cfg.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating cache: %w", err)
		}
		c.cached = cachedstore.New(cfg.store, memory.New(strategy, cfg.stats))
	}

	c.logger.Debug("client initialized",
		zap.String("format", c.format),
		zap.String("charset", c.charset.Name()),
		zap.Int("cacheSize", cfg.cacheSize),
	)

	return c, nil
}

// Compress front-codes the word list at src into dst.
func (c *Client) Compress(ctx context.Context, src, dst string) (*Report, error) {
	return c.Run(ctx, ModeCompress, src, dst)
}

// Expand restores the word list encoded at src into dst.
func (c *Client) Expand(ctx context.Context, src, dst string) (*Report, error) {
	return c.Run(ctx, ModeExpand, src, dst)
}

// Run reads src, applies mode line by line and writes dst. Containers are
// removed from src and applied to dst according to the client's format.
//
// A malformed record or an overflowing prefix halts the run. The returned
// error is a *stream.LineError carrying the line number; records before it
// have been written to dst.
func (c *Client) Run(ctx context.Context, mode Mode, src, dst string) (*Report, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}

	r, err := c.openReader(ctx, c.store, src)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	w, err := c.createWriter(ctx, dst)
	if err != nil {
		return nil, err
	}

	report, err := c.run(ctx, mode, r, w)
	if cerr := w.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("closing %s: %w", dst, cerr)
	}
	if err != nil {
		return report, err
	}

	c.logger.Debug("run complete",
		zap.Stringer("mode", mode),
		zap.String("src", src),
		zap.String("dst", dst),
		zap.Int64("lines", report.Lines),
		zap.Duration("duration", report.Duration),
	)
	return report, nil
}

// Analyze front-codes the word list at src without writing the records, to
// measure how well it compresses.
func (c *Client) Analyze(ctx context.Context, src string) (*Report, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}

	r, err := c.openReader(ctx, c.store, src)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return c.run(ctx, ModeCompress, r, io.Discard)
}

// CompressStream front-codes the words read from r into w. No container is
// applied; the client's charset is.
func (c *Client) CompressStream(ctx context.Context, r io.Reader, w io.Writer) (*Report, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}
	return c.run(ctx, ModeCompress, r, w)
}

// ExpandStream restores the words encoded in r into w. No container is
// applied; the client's charset is.
func (c *Client) ExpandStream(ctx context.Context, r io.Reader, w io.Writer) (*Report, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}
	return c.run(ctx, ModeExpand, r, w)
}

// Close releases all resources associated with the client.
// After Close, the client should not be used.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}

	if err := c.store.Close(); err != nil {
		return fmt.Errorf("closing store: %w", err)
	}

	return nil
}

// Store returns the storage backend used by this client.
func (c *Client) Store() store.Store {
	return c.store
}

// CacheStats returns statistics of the Lookup cache. ok is false when the
// cache is disabled.
func (c *Client) CacheStats() (s cachedstore.Stats, ok bool) {
	if c.cached == nil {
		return cachedstore.Stats{}, false
	}
	return c.cached.Stats(), true
}

// run folds r into w with the step for mode and records metrics.
func (c *Client) run(ctx context.Context, mode Mode, r io.Reader, w io.Writer) (*Report, error) {
	var hist analysis.Histogram
	step := c.step(mode, &hist)

	var opts []stream.Option
	if c.progress != nil {
		opts = append(opts, stream.WithProgress(c.progress, c.every))
	}

	enc := c.charset.Writer(w)
	start := time.Now()
	sum, err := stream.Fold(ctx, c.charset.Reader(r), enc, step, opts...)
	if cerr := enc.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("encoding output: %w", cerr)
	}

	report := &Report{
		Mode:     mode,
		Lines:    sum.Lines,
		BytesIn:  sum.BytesIn,
		BytesOut: sum.BytesOut,
		Duration: time.Since(start),
		Prefix:   hist.Summarize(),
	}
	c.record(report, err)
	return report, err
}

// step returns the fold step for mode. The compress step carries the plain
// word forward; the expand step carries the decoded word.
func (c *Client) step(mode Mode, hist *analysis.Histogram) stream.Step {
	observe := func(rec frontcode.EncodedRecord) {
		k, _, err := rec.Split()
		if err != nil {
			return
		}
		hist.Observe(k)
		c.stats.ObserveHistogram(stats.MetricSharedPrefix, float64(k))
	}

	if mode == ModeExpand {
		return func(line, prior string) (string, string, error) {
			rec := frontcode.EncodedRecord(line)
			word, err := frontcode.Decode(rec, frontcode.PlainWord(prior))
			if err != nil {
				return "", "", err
			}
			observe(rec)
			return string(word), string(word), nil
		}
	}
	return func(line, prior string) (string, string, error) {
		rec, err := frontcode.Encode(frontcode.PlainWord(line), frontcode.PlainWord(prior))
		if err != nil {
			return "", "", err
		}
		observe(rec)
		return string(rec), line, nil
	}
}

// record emits the metrics for a run and logs faults.
func (c *Client) record(r *Report, err error) {
	switch r.Mode {
	case ModeCompress:
		c.stats.IncCounter(stats.MetricRecordsEncoded, r.Lines)
	case ModeExpand:
		c.stats.IncCounter(stats.MetricRecordsDecoded, r.Lines)
	}
	c.stats.IncCounter(stats.MetricBytesIn, r.BytesIn)
	c.stats.IncCounter(stats.MetricBytesOut, r.BytesOut)
	c.stats.ObserveHistogram(stats.MetricDuration, r.Duration.Seconds())
	c.stats.SetGauge(stats.MetricLastRatio, int64(r.Ratio()*1000))

	var lineErr *stream.LineError
	if errors.As(err, &lineErr) {
		c.stats.IncCounter(stats.MetricFaults, 1)
		c.logger.Warn("run halted",
			zap.Stringer("mode", r.Mode),
			zap.Int64("line", lineErr.Line),
			zap.Error(lineErr.Err),
		)
	}
}

// openReader opens key on s and removes its container.
func (c *Client) openReader(ctx context.Context, s store.Store, key string) (io.ReadCloser, error) {
	format, err := container.Resolve(c.format, key)
	if err != nil {
		return nil, err
	}
	obj, err := s.Open(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", key, err)
	}
	r, err := format.Reader(obj)
	if err != nil {
		obj.Close()
		return nil, fmt.Errorf("reading %s as %s: %w", key, format.Name(), err)
	}
	return &stackedReader{ReadCloser: r, obj: obj}, nil
}

// createWriter creates key and applies its container. Writes go through
// the cache, when there is one, so cached copies of key are dropped.
func (c *Client) createWriter(ctx context.Context, key string) (io.WriteCloser, error) {
	format, err := container.Resolve(c.format, key)
	if err != nil {
		return nil, err
	}
	var s store.Store = c.store
	if c.cached != nil {
		s = c.cached
	}
	obj, err := s.Create(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", key, err)
	}
	w, err := format.Writer(obj)
	if err != nil {
		obj.Close()
		return nil, fmt.Errorf("writing %s as %s: %w", key, format.Name(), err)
	}
	return &stackedWriter{WriteCloser: w, obj: obj}, nil
}

// stackedReader closes the container reader, then the object.
type stackedReader struct {
	io.ReadCloser
	obj io.Closer
}

func (r *stackedReader) Close() error {
	return errors.Join(r.ReadCloser.Close(), r.obj.Close())
}

// stackedWriter flushes the container, then commits the object.
type stackedWriter struct {
	io.WriteCloser
	obj io.Closer
}

func (w *stackedWriter) Close() error {
	if err := w.WriteCloser.Close(); err != nil {
		w.obj.Close()
		return err
	}
	return w.obj.Close()
}
