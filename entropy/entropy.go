// SPDX-License-Identifier: MIT

package entropy

import (
	"math"

	"github.com/katalvlaran/nucentropy/condition"
	"github.com/katalvlaran/nucentropy/dataset"
	"github.com/katalvlaran/nucentropy/physconst"
)

// MassFractionCutoff is the mass fraction below which a species contributes
// exactly zero to the ideal-gas term.
const MassFractionCutoff = 1e-300

// Both coefficients depend only on the constant table and are evaluated once.
var (
	// A = 7π² k_B³ m_N / (45 (ħc)³)
	radiationCoeff = math.Pow(physconst.Boltzmann, 3) * 7 * physconst.Pi * physconst.Pi * physconst.NucleonMass /
		(math.Pow(physconst.ReducedPlanckC, 3) * 45)

	// B = (3π²)^(2/3) k_B m_N^(1/3) / (3 ħc)
	degeneracyCoeff = math.Pow(3*physconst.Pi*physconst.Pi, 2.0/3.0) * physconst.Boltzmann *
		math.Pow(physconst.NucleonMass, 1.0/3.0) / (3 * physconst.ReducedPlanckC)
)

// twoPiHbarC2 is 2π(ħc)², the denominator of the thermal term.
const twoPiHbarC2 = 2 * physconst.Pi * physconst.ReducedPlanckC * physconst.ReducedPlanckC

// RadiationCoefficient returns A in S_rad = A·T³/ρ.
func RadiationCoefficient() float64 { return radiationCoeff }

// DegeneracyCoefficient returns B in S_deg = B·Ye^(2/3)·T/ρ^(1/3).
func DegeneracyCoefficient() float64 { return degeneracyCoeff }

// Radiation returns the photon-gas entropy per baryon, A·T³/ρ.
func Radiation(c condition.Condition) float64 {
	return radiationCoeff * math.Pow(c.Temperature, 3) / c.Density
}

// Degeneracy returns the relativistic electron-gas entropy per baryon,
// B·Ye^(2/3)·T/ρ^(1/3).
func Degeneracy(c condition.Condition) float64 {
	return degeneracyCoeff * math.Pow(c.ElectronFraction, 2.0/3.0) * c.Temperature /
		math.Pow(c.Density, 1.0/3.0)
}

// Species returns the Sackur–Tetrode contribution of one species:
//
//	m    = M·amu            Y = X/(m·N_A)           n = X·ρ/m
//	Q⁻¹  = (1/n)·(m c² k_B T / (2π (ħc)²))^1.5
//	S    = Y·(5/2 + log10 Q⁻¹)
//
// log10 Q⁻¹ is evaluated as 1.5·log10(thermal) − log10(n), so it stays
// finite where Q⁻¹ itself exceeds the float64 range.
//
// A species with X == 0 or X < MassFractionCutoff contributes exactly 0.
// No other check is made on rec.
func Species(c condition.Condition, rec dataset.SpeciesRecord) float64 {
	x := rec.MassFraction
	if x == 0 || x < MassFractionCutoff {
		return 0
	}

	m := rec.AtomicMass * physconst.AtomicMassUnit
	mc2 := m * physconst.LightSpeedSquared
	y := x / (m * physconst.Avogadro)
	n := x * c.Density / m
	thermal := mc2 * physconst.Boltzmann * c.Temperature / twoPiHbarC2
	log10QInv := 1.5*math.Log10(thermal) - math.Log10(n)

	return y * (2.5 + log10QInv)
}

// Ideal sums Species over species in slice order. The order is part of the
// result: a different order may change the last bits.
func Ideal(c condition.Condition, species []dataset.SpeciesRecord) float64 {
	var sum float64
	for i := range species {
		sum += Species(c, species[i])
	}

	return sum
}

// Compute evaluates every entropy term for composition ds under condition c.
// It never fails; a nil or empty ds yields Ideal == 0.
// Callers are expected to have run ds.Validate first.
func Compute(c condition.Condition, ds *dataset.Dataset) Result {
	var species []dataset.SpeciesRecord
	if ds != nil {
		species = ds.Species
	}

	return newResult(Radiation(c), Degeneracy(c), Ideal(c, species))
}
