// Package dataset models the nuclear composition written by the
// nucleosynthesis simulation and loads it from the simulation's text files.
//
// A file holds one species per line with eight whitespace-separated columns:
//
//	symbol  Z  A  N  mass[amu]  solarMF  MF  isotopeMF
//
// Files are located by condition and stage (see Path). Each file is loaded
// into an immutable Dataset that keeps file order, so every sum over it
// is reproducible bit for bit.
//
// Usage:
//
//	c, _ := condition.New(0.23, 4e9, 1e10)
//	ds, err := dataset.Load(dataset.Path(base, c, dataset.Freezeout), dataset.Freezeout)
//	if err != nil {
//	  // ErrIO or ErrParse
//	}
//	if err := ds.Validate(); err != nil {
//	  // ErrValidation: skip this condition
//	}
//
// Errors are package sentinels (ErrIO, ErrParse, ErrValidation) wrapped
// with the path and line; match them with errors.Is.
package dataset
