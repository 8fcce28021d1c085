package grid_test

import (
	"testing"

	"github.com/katalvlaran/nucentropy/condition"
	"github.com/katalvlaran/nucentropy/dataset"
	"github.com/katalvlaran/nucentropy/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault checks the reference grid size and iteration order.
func TestDefault(t *testing.T) {
	g := grid.Default()
	assert.Equal(t, 19*9*11*4, g.Len())

	cells := g.Cells()
	require.Len(t, cells, g.Len())

	first := cells[0]
	assert.Equal(t, 0.01, first.Condition.ElectronFraction)
	assert.Equal(t, 4e9, first.Condition.Temperature)
	assert.Equal(t, 1e10, first.Condition.Density)
	assert.Equal(t, dataset.NSE, first.Stage)

	// Stage varies fastest, then density.
	assert.Equal(t, dataset.Freezeout, cells[1].Stage)
	assert.Equal(t, 4e10, cells[4].Condition.Density)

	last := cells[len(cells)-1]
	assert.Equal(t, 0.5, last.Condition.ElectronFraction)
	assert.Equal(t, 1e12, last.Condition.Temperature)
	assert.Equal(t, 4e13, last.Condition.Density)
	assert.Equal(t, dataset.Information, last.Stage)
}

// TestNew_Errors rejects empty axes, unphysical values and unknown stages.
func TestNew_Errors(t *testing.T) {
	all := dataset.Stages
	cases := []struct {
		name   string
		yes    []float64
		ts     []float64
		rhos   []float64
		stages []dataset.Stage
		err    error
	}{
		{"EmptyYe", nil, []float64{1e10}, []float64{1e11}, all, grid.ErrEmptyGrid},
		{"EmptyStages", []float64{0.2}, []float64{1e10}, []float64{1e11}, nil, grid.ErrEmptyGrid},
		{"BadYe", []float64{0.2, 1.5}, []float64{1e10}, []float64{1e11}, all, condition.ErrInvalid},
		{"BadT", []float64{0.2}, []float64{-1}, []float64{1e11}, all, condition.ErrInvalid},
		{"BadRho", []float64{0.2}, []float64{1e10}, []float64{1e11, 0}, all, condition.ErrInvalid},
		{"BadStage", []float64{0.2}, []float64{1e10}, []float64{1e11}, []dataset.Stage{dataset.Stage(7)}, dataset.ErrParse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.yes, tc.ts, tc.rhos, tc.stages)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_Copies verifies the grid does not alias caller slices.
func TestNew_Copies(t *testing.T) {
	yes := []float64{0.2}
	g, err := grid.New(yes, []float64{1e10}, []float64{1e11}, []dataset.Stage{dataset.Last})
	require.NoError(t, err)
	yes[0] = 0.9
	assert.Equal(t, 0.2, g.ElectronFractions[0])
}

// TestCell_Path joins the cell with the dataset naming scheme.
func TestCell_Path(t *testing.T) {
	c, err := condition.New(0.5, 7e9, 4e12)
	require.NoError(t, err)
	cell := grid.Cell{Condition: c, Stage: dataset.Last}

	assert.Equal(t, dataset.Path("b", c, dataset.Last), cell.Path("b"))
	assert.Contains(t, cell.Path("b"), "last_Ye_05_T0_7e9_rho0_4e12.txt")
	assert.Equal(t, "Ye=0.5 T=7e9 rho=4e12 stage=Last", cell.String())
}
