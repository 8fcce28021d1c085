// Package grid drives entropy calculations over a parameter grid
// Ye × T × ρ × stage, the way the nucleosynthesis runs were laid out.
//
// For every cell the Runner derives the dataset path, loads and validates
// the composition, and computes its entropy:
//
//	r := grid.NewRunner("/data/runs", grid.WithLogger(logger), grid.WithSkipMissing(true))
//	sum, err := r.Run(grid.Default(), func(o grid.Outcome) error {
//	  fmt.Println(o.Cell, o.Result.Total)
//	  return nil
//	})
//
// A composition rejected by validation only drops its own cell; malformed
// files stop the run. Cells are processed one after another and share no
// state.
package grid
