// Package entropy computes the entropy per baryon of a hot, dense nuclear
// plasma from its composition.
//
// Three contributions are evaluated in closed form and summed:
//
//	S_rad   = A·T³/ρ                              photon gas
//	S_deg   = B·Ye^(2/3)·T/ρ^(1/3)                relativistic degenerate electrons
//	S_ideal = Σ_i Y_i·(5/2 + log10 Q_i⁻¹)         non-relativistic nuclei (Sackur–Tetrode)
//
// with A = 7π² k_B³ m_N / (45 (ħc)³) and B = (3π²)^(2/3) k_B m_N^(1/3) / (3 ħc).
// Constants come from package physconst.
//
// Usage:
//
//	c, _ := condition.New(0.2, 1e10, 1e11)
//	res := entropy.Compute(c, ds)
//	fmt.Println(res.Radiation, res.Degeneracy, res.Ideal, res.Total)
//
// The engine is a pure function of its inputs: it performs no I/O, keeps no
// state, and never returns an error. Gate inputs with (*dataset.Dataset).Validate.
package entropy
