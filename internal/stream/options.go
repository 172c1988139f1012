package stream

// Option configures a Fold.
type Option func(*options)

type options struct {
	observer func(Line)
	progress ProgressFunc
	every    int64
}

func defaultOptions() options {
	return options{every: 100000}
}

// WithObserver registers fn to be called after every line is written.
func WithObserver(fn func(Line)) Option {
	return func(o *options) { o.observer = fn }
}

// WithProgress registers fn to be called every n lines and once more when
// the fold completes. n <= 0 keeps the default of 100000 lines.
func WithProgress(fn ProgressFunc, n int) Option {
	return func(o *options) {
		o.progress = fn
		if n > 0 {
			o.every = int64(n)
		}
	}
}
