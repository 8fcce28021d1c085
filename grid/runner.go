// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/nucentropy/dataset"
	"github.com/katalvlaran/nucentropy/entropy"
)

// Outcome is the entropy computed for one cell.
type Outcome struct {
	Cell    Cell
	Path    string
	Species int
	Result  entropy.Result
}

// Summary counts what happened to the cells of a run.
type Summary struct {
	Computed int // cells passed to emit
	Invalid  int // cells rejected by dataset.Validate
	Missing  int // cells skipped on dataset.ErrIO (SkipMissing only)
}

// Runner computes entropies for grid cells whose datasets live under a
// common base directory. A Runner holds no per-cell state; every cell loads
// its own Dataset and drops it once the Outcome is built.
type Runner struct {
	base string
	opts Options
}

// NewRunner returns a Runner reading datasets under base.
func NewRunner(base string, opts ...Option) *Runner {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Runner{base: base, opts: o}
}

// RunCell loads, validates and evaluates one cell.
//
// Errors:
//   - dataset.ErrIO, dataset.ErrParse from loading.
//   - dataset.ErrValidation if the composition fails the mass fraction gate.
func (r *Runner) RunCell(cell Cell) (Outcome, error) {
	path := cell.Path(r.base)
	ds, err := dataset.Load(path, cell.Stage)
	if err != nil {
		return Outcome{}, err
	}
	if !ds.SpeciesCountBelow(r.opts.SpeciesLimit) {
		r.opts.Logger.Warn("species count above sanity bound",
			zap.Stringer("cell", cell),
			zap.Int("species", ds.Len()),
			zap.Int("limit", r.opts.SpeciesLimit))
	}
	if err := ds.Validate(); err != nil {
		return Outcome{}, fmt.Errorf("%s: %w", path, err)
	}

	return Outcome{
		Cell:    cell,
		Path:    path,
		Species: ds.Len(),
		Result:  entropy.Compute(cell.Condition, ds),
	}, nil
}

// Run evaluates every cell of g in grid order and passes each Outcome to emit.
//
// A cell failing validation is logged, counted in Summary.Invalid and
// skipped; the run goes on. A load failure stops the run, unless it is
// dataset.ErrIO and SkipMissing is set. An error from emit stops the run
// and is returned as is.
func (r *Runner) Run(g Grid, emit func(Outcome) error) (Summary, error) {
	var sum Summary
	log := r.opts.Logger
	log.Debug("grid run started", zap.String("base", r.base), zap.Int("cells", g.Len()))

	for _, cell := range g.Cells() {
		out, err := r.RunCell(cell)
		switch {
		case errors.Is(err, dataset.ErrValidation):
			sum.Invalid++
			log.Warn("composition rejected", zap.Stringer("cell", cell), zap.Error(err))

			continue
		case errors.Is(err, dataset.ErrIO) && r.opts.SkipMissing:
			sum.Missing++
			log.Debug("dataset missing", zap.Stringer("cell", cell), zap.Error(err))

			continue
		case err != nil:
			return sum, fmt.Errorf("grid: %s: %w", cell, err)
		}

		if err := emit(out); err != nil {
			return sum, err
		}
		sum.Computed++
	}

	log.Info("grid run finished",
		zap.Int("computed", sum.Computed),
		zap.Int("invalid", sum.Invalid),
		zap.Int("missing", sum.Missing))

	return sum, nil
}
