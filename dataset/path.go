// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"path/filepath"

	"github.com/katalvlaran/nucentropy/condition"
)

// Path returns the location of the dataset for condition c and stage s
// under base, following the simulation's naming scheme:
//
//	<base>/Ye<key>/data/<stage>_Ye_<key>_T0_<T>_rho0_<rho>.txt
//
// where key is c.Key() and stage is s.FileLabel().
func Path(base string, c condition.Condition, s Stage) string {
	key := c.Key()
	name := fmt.Sprintf("%s_Ye_%s_T0_%s_rho0_%s.txt",
		s.FileLabel(), key, c.TemperatureLabel(), c.DensityLabel())

	return filepath.Join(base, "Ye"+key, "data", name)
}
