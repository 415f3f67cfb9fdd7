package search

import (
	"log/slog"
	"runtime"

	"github.com/ukaji3/exutil-go/pkg/exutil/similarity"
)

// Options configures a search.
type Options struct {
	// Threshold is the minimum similarity ratio for text targets.
	Threshold float64
	// FirstHit stops the scan at the first exact hit.
	FirstHit bool
	// AllValues returns the similar bucket after the equal bucket.
	AllValues bool
	// Logger receives one debug record per scan. Nil discards.
	Logger *slog.Logger
	// Concurrency bounds the sheets SearchSheets scans at once.
	Concurrency int
}

// DefaultOptions returns the default search options.
func DefaultOptions() Options {
	return Options{
		Threshold:   similarity.DefaultThreshold,
		FirstHit:    true,
		Concurrency: runtime.GOMAXPROCS(0),
	}
}

// Option modifies Options.
type Option func(*Options)

// WithThreshold sets the similarity threshold for text targets.
func WithThreshold(threshold float64) Option {
	return func(o *Options) { o.Threshold = threshold }
}

// WithFirstHit toggles first-hit mode.
func WithFirstHit(firstHit bool) Option {
	return func(o *Options) { o.FirstHit = firstHit }
}

// WithAllValues toggles returning the similar bucket.
func WithAllValues(allValues bool) Option {
	return func(o *Options) { o.AllValues = allValues }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithConcurrency bounds the number of sheets scanned at once.
func WithConcurrency(n int) Option {
	return func(o *Options) { o.Concurrency = n }
}

// WithOptions replaces all options at once.
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	if o.Concurrency < 1 {
		o.Concurrency = 1
	}
	return o
}
