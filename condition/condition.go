// SPDX-License-Identifier: MIT

package condition

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Condition is a physical state of the plasma: electron fraction Ye,
// temperature T (K) and density rho. It is a plain value; copies are
// independent and nothing in this module mutates one after construction.
type Condition struct {
	ElectronFraction float64
	Temperature      float64
	Density          float64
}

// New builds a Condition and validates it.
//
// Errors:
//   - ErrInvalid (wrapped with the field name) if Ye ∉ (0,1], T ≤ 0, rho ≤ 0,
//     or any value is NaN/±Inf.
func New(ye, temperature, density float64) (Condition, error) {
	c := Condition{ElectronFraction: ye, Temperature: temperature, Density: density}
	if err := c.Validate(); err != nil {
		return Condition{}, err
	}

	return c, nil
}

// Validate reports whether c satisfies the Condition invariants.
func (c Condition) Validate() error {
	switch {
	case !finite(c.ElectronFraction) || c.ElectronFraction <= 0 || c.ElectronFraction > 1:
		return fmt.Errorf("%w: electron fraction %v not in (0,1]", ErrInvalid, c.ElectronFraction)
	case !finite(c.Temperature) || c.Temperature <= 0:
		return fmt.Errorf("%w: temperature %v must be > 0", ErrInvalid, c.Temperature)
	case !finite(c.Density) || c.Density <= 0:
		return fmt.Errorf("%w: density %v must be > 0", ErrInvalid, c.Density)
	}

	return nil
}

// Key returns the electron fraction in its shortest decimal form with the
// decimal point removed: 0.23 → "023", 0.5 → "05", 1 → "1".
// The result joins with the upstream file naming, so it must not be
// rounded or padded.
func (c Condition) Key() string {
	s := strconv.FormatFloat(c.ElectronFraction, 'f', -1, 64)

	return strings.Replace(s, ".", "", 1)
}

// TemperatureLabel returns T in the upstream scientific notation (4e9, 1e10).
func (c Condition) TemperatureLabel() string { return SciLabel(c.Temperature) }

// DensityLabel returns rho in the upstream scientific notation.
func (c Condition) DensityLabel() string { return SciLabel(c.Density) }

// String implements fmt.Stringer.
func (c Condition) String() string {
	return fmt.Sprintf("Ye=%s T=%s rho=%s",
		strconv.FormatFloat(c.ElectronFraction, 'f', -1, 64), c.TemperatureLabel(), c.DensityLabel())
}

// SciLabel formats v with the shortest mantissa, a lowercase 'e', no '+'
// sign and no zero padding in the exponent: 4e9, 1.5e10, 2.5e-3.
func SciLabel(v float64) string {
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, ok := strings.Cut(s, "e")
	if !ok {
		// NaN and ±Inf carry no exponent.
		return s
	}
	n, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}

	return mant + "e" + strconv.Itoa(n)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
