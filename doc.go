// Package nucentropy computes the entropy per baryon of the hot, dense
// plasma followed by a nucleosynthesis simulation, from the nuclear
// compositions that simulation writes out.
//
// Three contributions are evaluated for each composition and condition:
//
//	• Radiation   — photon gas, A·T³/ρ
//	• Degeneracy  — relativistic degenerate electrons, B·Ye^(2/3)·T/ρ^(1/3)
//	• Ideal       — non-relativistic nuclei, Sackur–Tetrode sum over species
//
// Under the hood the module is organized in small packages:
//
//	physconst/ — the fixed table of physical constants
//	condition/ — (Ye, T, ρ) and the labels used in dataset file names
//	dataset/   — species records, stages, file loader and composition checks
//	entropy/   — the closed-form entropy engine
//	grid/      — runs the engine over Ye × T × ρ × stage
//
// The command in cmd/nucentropy wires these together:
//
//	go run ./cmd/nucentropy --base ./runs --ye 0.2 --temperature 1e10 --density 1e11
//
// Everything is single-threaded and stateless apart from constants, so
// independent grid cells can be evaluated in any order.
package nucentropy
