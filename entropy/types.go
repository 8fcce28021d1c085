package entropy

// Result holds the entropy per baryon (in units of k_B) of one composition
// at one condition. Total is always Radiation + Degeneracy + Ideal,
// added in that order.
type Result struct {
	Radiation  float64
	Degeneracy float64
	Ideal      float64
	Total      float64
}

func newResult(rad, deg, ideal float64) Result {
	return Result{
		Radiation:  rad,
		Degeneracy: deg,
		Ideal:      ideal,
		Total:      rad + deg + ideal,
	}
}
