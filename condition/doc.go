// Package condition describes the physical state (electron fraction,
// temperature, density) an entropy is evaluated at, and the string labels
// that locate the matching dataset file produced by the nucleosynthesis
// simulation.
//
// Usage:
//
//	c, err := condition.New(0.23, 4e9, 1e10)
//	if err != nil {
//	  // handle ErrInvalid
//	}
//	c.Key()              // "023"
//	c.TemperatureLabel() // "4e9"
//	c.DensityLabel()     // "1e10"
package condition
