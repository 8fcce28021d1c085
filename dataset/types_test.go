package dataset_test

import (
	"path/filepath"
	"testing"

	"github.com/katalvlaran/nucentropy/condition"
	"github.com/katalvlaran/nucentropy/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStage_Labels checks both spellings of every stage.
func TestStage_Labels(t *testing.T) {
	cases := []struct {
		stage     dataset.Stage
		name      string
		fileLabel string
	}{
		{dataset.NSE, "NSE", "NSE"},
		{dataset.Freezeout, "Freezeout", "freezeout"},
		{dataset.Last, "Last", "last"},
		{dataset.Information, "Information", "Information"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.name, tc.stage.String())
			assert.Equal(t, tc.fileLabel, tc.stage.FileLabel())

			got, err := dataset.ParseStage(tc.fileLabel)
			require.NoError(t, err)
			assert.Equal(t, tc.stage, got)

			got, err = dataset.ParseStage(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.stage, got)
		})
	}
}

// TestParseStage_Unknown verifies unknown labels are errors, not panics.
func TestParseStage_Unknown(t *testing.T) {
	for _, label := range []string{"", "nse", "LAST", "info", "unreachable"} {
		_, err := dataset.ParseStage(label)
		assert.ErrorIs(t, err, dataset.ErrParse, "label %q", label)
	}
	assert.False(t, dataset.Stage(-1).Valid())
	assert.Equal(t, "Stage(9)", dataset.Stage(9).String())
}

// TestPath follows the upstream naming scheme.
func TestPath(t *testing.T) {
	c, err := condition.New(0.23, 4e9, 1e10)
	require.NoError(t, err)

	got := dataset.Path("/data/run", c, dataset.Freezeout)
	want := filepath.Join("/data/run", "Ye023", "data", "freezeout_Ye_023_T0_4e9_rho0_1e10.txt")
	assert.Equal(t, want, got)

	got = dataset.Path("base", c, dataset.Information)
	assert.Equal(t, filepath.Join("base", "Ye023", "data", "Information_Ye_023_T0_4e9_rho0_1e10.txt"), got)
}

// TestValidation_MassFraction covers the total mass fraction gate.
func TestValidation_MassFraction(t *testing.T) {
	cases := []struct {
		name string
		mfs  []float64
		ok   bool
	}{
		{"Sum095", []float64{0.5, 0.4, 0.05}, true},
		{"Sum12", []float64{0.6, 0.6}, false},
		{"Empty", nil, true},
		{"ExactlyOneWithinTolerance", []float64{0.5, 0.5}, true},
		{"AboveTolerance", []float64{0.5, 0.5, 1e-6}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ds := withMassFractions(tc.mfs...)
			assert.Equal(t, tc.ok, ds.TotalMassFractionBelowOne())
			if tc.ok {
				assert.NoError(t, ds.Validate())
			} else {
				assert.ErrorIs(t, ds.Validate(), dataset.ErrValidation)
			}
		})
	}
}

// TestSpeciesCountBelow checks the sanity bound on species count.
func TestSpeciesCountBelow(t *testing.T) {
	mfs := make([]float64, dataset.DefaultSpeciesLimit-1)
	ds := withMassFractions(mfs...)
	assert.True(t, ds.SpeciesCountBelow(dataset.DefaultSpeciesLimit))

	ds = withMassFractions(make([]float64, dataset.DefaultSpeciesLimit)...)
	assert.False(t, ds.SpeciesCountBelow(dataset.DefaultSpeciesLimit))

	var nilDS *dataset.Dataset
	assert.True(t, nilDS.SpeciesCountBelow(1))
	assert.Equal(t, 0.0, nilDS.TotalMassFraction())
}

func withMassFractions(mfs ...float64) *dataset.Dataset {
	ds := &dataset.Dataset{Stage: dataset.NSE}
	for _, x := range mfs {
		ds.Species = append(ds.Species, dataset.SpeciesRecord{Symbol: "x", AtomicMass: 1, MassFraction: x})
	}

	return ds
}
