// Command nucentropy computes radiation, electron-degeneracy and ideal-gas
// entropies for the compositions written by a nucleosynthesis run, over a
// grid of electron fraction, temperature, density and stage.
//
// Usage:
//
//	nucentropy --base ./runs --ye 0.2 --temperature 1e10 --density 1e11 --stage NSE
//
// Without grid flags the full reference grid is evaluated. Results go to
// stdout, one line per cell; logs go to stderr.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
