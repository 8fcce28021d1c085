// SPDX-License-Identifier: MIT

package grid

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/nucentropy/dataset"
)

// Options configures a Runner.
//
// Fields:
//   - Logger       — receives per-cell diagnostics. Default: zap.NewNop().
//   - SkipMissing  — when true, a cell whose file is missing or unreadable
//     (dataset.ErrIO) is counted and skipped instead of aborting the run.
//   - SpeciesLimit — species count at or above which a warning is logged.
//     Default: dataset.DefaultSpeciesLimit.
type Options struct {
	Logger       *zap.Logger
	SkipMissing  bool
	SpeciesLimit int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Logger:       zap.NewNop(),
		SkipMissing:  false,
		SpeciesLimit: dataset.DefaultSpeciesLimit,
	}
}

// WithLogger sets the logger; a nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSkipMissing makes missing dataset files non-fatal.
func WithSkipMissing(skip bool) Option {
	return func(o *Options) { o.SkipMissing = skip }
}

// WithSpeciesLimit sets the species-count warning threshold.
// It panics if limit <= 0.
func WithSpeciesLimit(limit int) Option {
	if limit <= 0 {
		panic("grid: WithSpeciesLimit(limit<=0)")
	}

	return func(o *Options) { o.SpeciesLimit = limit }
}
