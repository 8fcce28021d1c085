package dataset_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/nucentropy/dataset"
)

// ExampleParse reads a two-species composition and checks it before use.
func ExampleParse() {
	in := `Element Z A N Mass SolarMF MF IMF
p   1 1 0 1.007276 0.7  0.25 1.0
he4 2 4 2 4.002603 0.27 0.75 1.0
`
	ds, err := dataset.Parse(strings.NewReader(in), dataset.Last)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(ds.Stage, ds.Len(), ds.TotalMassFractionBelowOne())
	for _, sp := range ds.Species {
		fmt.Printf("%s X=%.2f\n", sp.Symbol, sp.MassFraction)
	}
	// Output:
	// Last 2 true
	// p X=0.25
	// he4 X=0.75
}
