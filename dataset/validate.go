// SPDX-License-Identifier: MIT

package dataset

import "fmt"

const (
	// MassFractionTolerance is the slack above 1 still accepted for the total
	// mass fraction. It absorbs the rounding of the printed upstream columns.
	MassFractionTolerance = 1e-9

	// DefaultSpeciesLimit is the sanity bound on species per dataset.
	DefaultSpeciesLimit = 100
)

// TotalMassFraction sums MassFraction over all species in file order.
func (d *Dataset) TotalMassFraction() float64 {
	if d == nil {
		return 0
	}
	var sum float64
	for i := range d.Species {
		sum += d.Species[i].MassFraction
	}

	return sum
}

// TotalMassFractionBelowOne reports whether the total mass fraction is
// below one, within MassFractionTolerance.
func (d *Dataset) TotalMassFractionBelowOne() bool {
	return d.TotalMassFraction() < 1+MassFractionTolerance
}

// SpeciesCountBelow reports whether the dataset has fewer than limit species.
func (d *Dataset) SpeciesCountBelow(limit int) bool {
	return d.Len() < limit
}

// Validate gates a dataset before its entropy is computed.
//
// Errors:
//   - ErrValidation if TotalMassFractionBelowOne is false.
func (d *Dataset) Validate() error {
	if !d.TotalMassFractionBelowOne() {
		return fmt.Errorf("%w: total mass fraction %g is not below 1", ErrValidation, d.TotalMassFraction())
	}

	return nil
}
