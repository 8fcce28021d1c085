// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/katalvlaran/nucentropy/condition"
	"github.com/katalvlaran/nucentropy/dataset"
)

// Parameter values of the reference simulation runs.
var (
	DefaultElectronFractions = []float64{
		0.01, 0.03, 0.09, 0.10, 0.13, 0.16, 0.19, 0.20, 0.23, 0.26,
		0.29, 0.30, 0.36, 0.39, 0.40, 0.43, 0.46, 0.49, 0.50,
	}
	DefaultTemperatures = []float64{4e9, 7e9, 1e10, 4e10, 7e10, 1e11, 4e11, 7e11, 1e12}
	DefaultDensities    = []float64{1e10, 4e10, 7e10, 1e11, 4e11, 7e11, 1e12, 4e12, 7e12, 1e13, 4e13}
	DefaultStages       = []dataset.Stage{dataset.NSE, dataset.Freezeout, dataset.Last, dataset.Information}
)

// Grid is the cartesian product Ye × T × ρ × stage.
type Grid struct {
	ElectronFractions []float64
	Temperatures      []float64
	Densities         []float64
	Stages            []dataset.Stage
}

// Cell is one point of a Grid.
type Cell struct {
	Condition condition.Condition
	Stage     dataset.Stage
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	return fmt.Sprintf("%s stage=%s", c.Condition, c.Stage)
}

// Path returns the dataset file of c under base.
func (c Cell) Path(base string) string {
	return dataset.Path(base, c.Condition, c.Stage)
}

// New builds a Grid, copying the input slices.
//
// Errors:
//   - ErrEmptyGrid if any axis is empty.
//   - condition.ErrInvalid if a parameter is outside its physical domain.
//   - dataset.ErrParse if a stage is not a known Stage.
func New(yes, temperatures, densities []float64, stages []dataset.Stage) (Grid, error) {
	if len(yes) == 0 || len(temperatures) == 0 || len(densities) == 0 || len(stages) == 0 {
		return Grid{}, ErrEmptyGrid
	}
	// Validate every axis value once instead of every combination.
	for _, ye := range yes {
		if _, err := condition.New(ye, temperatures[0], densities[0]); err != nil {
			return Grid{}, err
		}
	}
	for _, t := range temperatures {
		if _, err := condition.New(yes[0], t, densities[0]); err != nil {
			return Grid{}, err
		}
	}
	for _, rho := range densities {
		if _, err := condition.New(yes[0], temperatures[0], rho); err != nil {
			return Grid{}, err
		}
	}
	for _, s := range stages {
		if !s.Valid() {
			return Grid{}, fmt.Errorf("%w: unknown stage %s", dataset.ErrParse, s)
		}
	}

	return Grid{
		ElectronFractions: append([]float64(nil), yes...),
		Temperatures:      append([]float64(nil), temperatures...),
		Densities:         append([]float64(nil), densities...),
		Stages:            append([]dataset.Stage(nil), stages...),
	}, nil
}

// Default returns the grid of the reference simulation runs.
func Default() Grid {
	g, err := New(DefaultElectronFractions, DefaultTemperatures, DefaultDensities, DefaultStages)
	if err != nil {
		// The defaults are constants of this package.
		panic(err)
	}

	return g
}

// Len returns the number of cells.
func (g Grid) Len() int {
	return len(g.ElectronFractions) * len(g.Temperatures) * len(g.Densities) * len(g.Stages)
}

// Cells enumerates the grid with Ye outermost, then T, then ρ, then stage.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.Len())
	for _, ye := range g.ElectronFractions {
		for _, t := range g.Temperatures {
			for _, rho := range g.Densities {
				c := condition.Condition{ElectronFraction: ye, Temperature: t, Density: rho}
				for _, s := range g.Stages {
					cells = append(cells, Cell{Condition: c, Stage: s})
				}
			}
		}
	}

	return cells
}
