// Package exutil searches Excel workbooks for cells equal or similar to
// target values and extracts rectangular ranges of cell values.
package exutil

import (
	"log/slog"

	"github.com/ukaji3/exutil-go/pkg/exutil/search"
	"github.com/ukaji3/exutil-go/pkg/exutil/similarity"
)

// Options configures a workbook search.
type Options struct {
	// Sheets limits the search to the named sheets. Empty means all sheets.
	Sheets []string
	// Threshold is the minimum similarity ratio for text targets.
	Threshold float64
	// FirstHit returns the first exact hit only.
	// If nil, defaults to true.
	FirstHit *bool
	// AllValues returns similar hits after the equal hits.
	AllValues bool
	// Concurrency bounds the number of sheets scanned at once.
	// Zero uses GOMAXPROCS.
	Concurrency int
	// Logger receives debug records. Nil discards.
	Logger *slog.Logger
}

// DefaultOptions returns default search options.
func DefaultOptions() Options {
	return Options{
		Threshold: similarity.DefaultThreshold,
	}
}

// ShouldReturnFirstHit returns whether the search stops at the first exact hit.
func (o Options) ShouldReturnFirstHit() bool {
	if o.FirstHit != nil {
		return *o.FirstHit
	}
	return true
}

func (o Options) searchOptions() []search.Option {
	opts := []search.Option{
		search.WithThreshold(o.Threshold),
		search.WithFirstHit(o.ShouldReturnFirstHit()),
		search.WithAllValues(o.AllValues),
		search.WithLogger(o.logger()),
	}
	if o.Concurrency > 0 {
		opts = append(opts, search.WithConcurrency(o.Concurrency))
	}
	return opts
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}
