// SPDX-License-Identifier: MIT

// Package physconst holds the fixed table of physical constants used by the
// entropy calculations. All values are SI (kg, m, s, J, K) and are untyped
// compile-time constants, so the table can never be modified at runtime.
//
// The values are the ones the reference entropy tables were produced with,
// not current CODATA values. NucleonMass is the one exception: the reference
// value carried an exponent typo (1.6715e027), and the physical 1.6715e-27 kg
// is used instead.
package physconst

import "math"

const (
	// Pi is π.
	Pi = math.Pi

	// MeV is one mega-electronvolt in joules.
	MeV = 1.602e-13

	// NucleonRestEnergy is the nucleon rest-mass energy m_N c² in joules.
	NucleonRestEnergy = 939.1 * MeV

	// NucleonMass is the nucleon rest mass m_N in kg (see the package doc).
	NucleonMass = 1.6715e-27

	// Boltzmann is k_B in J/K.
	Boltzmann = 1.380649e-23

	// ReducedPlanck is ħ in J·s.
	ReducedPlanck = 1.054571e-34

	// LightSpeed is the speed of light used when forming ħc, in m/s.
	LightSpeed = 2.998e8

	// ReducedPlanckC is ħc in J·m.
	ReducedPlanckC = ReducedPlanck * LightSpeed

	// LightSpeedSquared is the c² used for species rest energies (c = 3e8 m/s).
	LightSpeedSquared = 9e16

	// AtomicMassUnit is one unified atomic mass unit in kg.
	AtomicMassUnit = 1.660539e-27

	// Avogadro is N_A per kilomole, consistent with masses in kg.
	Avogadro = 6.02214076e26
)
