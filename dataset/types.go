// SPDX-License-Identifier: MIT

package dataset

import "fmt"

// Stage is the simulation phase a dataset file was written at.
// It is a closed set; values outside it are rejected by ParseStage and Parse.
type Stage int

const (
	// NSE is nuclear statistical equilibrium.
	NSE Stage = iota

	// Freezeout is the abundance freeze-out point.
	Freezeout

	// Last is the final step of the network calculation.
	Last

	// Information is the summary output of the run.
	Information
)

// Stages lists every Stage in canonical order.
var Stages = []Stage{NSE, Freezeout, Last, Information}

var stageNames = [...]string{
	NSE:         "NSE",
	Freezeout:   "Freezeout",
	Last:        "Last",
	Information: "Information",
}

// The upstream file names spell two stages in lower case.
var stageFileLabels = [...]string{
	NSE:         "NSE",
	Freezeout:   "freezeout",
	Last:        "last",
	Information: "Information",
}

// Valid reports whether s is one of the four known stages.
func (s Stage) Valid() bool {
	return s >= NSE && s <= Information
}

// String returns the canonical tag name ("NSE", "Freezeout", "Last", "Information").
func (s Stage) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Stage(%d)", int(s))
	}

	return stageNames[s]
}

// FileLabel returns the spelling used in dataset file names
// ("NSE", "freezeout", "last", "Information").
func (s Stage) FileLabel() string {
	if !s.Valid() {
		return s.String()
	}

	return stageFileLabels[s]
}

// ParseStage maps a label to its Stage. Both the file-name spelling and the
// canonical tag name are accepted; matching is case-sensitive.
//
// Errors:
//   - ErrParse if label names no known stage.
func ParseStage(label string) (Stage, error) {
	for _, s := range Stages {
		if label == stageFileLabels[s] || label == stageNames[s] {
			return s, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown stage %q", ErrParse, label)
}

// SpeciesRecord is one nuclear species of a composition, as read from one
// line of a dataset file. Masses are in atomic mass units.
type SpeciesRecord struct {
	Symbol              string
	Z                   float64 // proton number
	A                   float64 // mass number
	N                   float64 // neutron number
	AtomicMass          float64 // amu
	SolarMassFraction   float64
	MassFraction        float64 // X_i, always >= 0
	IsotopeMassFraction float64
}

// Dataset is the composition for one stage of one condition. Species keep
// the file order, which fixes the floating-point summation order of every
// aggregate computed from them.
//
// A Dataset is never modified after Parse returns it; callers must treat
// Species as read-only.
type Dataset struct {
	Stage   Stage
	Species []SpeciesRecord
}

// Len returns the number of species.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}

	return len(d.Species)
}
