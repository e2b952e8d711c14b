// Copyright 2022 The Redflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package exergy implements the mixing entropy and exergy of NaCl streams.
// The exergy rate of mixing two streams quantifies the maximum work that a
// salinity-gradient process can extract from them; comparing the rates at
// the stack inlet and outlet gives the thermodynamic efficiency.
//
// Concentrations are given in [mol/m³] and flow rates in [m³/s]. All
// functions require C > 0; at C = 0 the ionic mole fractions vanish and
// the entropy terms are undefined.
package exergy

import (
	"math"

	"github.com/dpin-lab/redflow/mdl/salt"
)

const (
	Rgas   = 8.314    // universal gas constant [J/(mol·K)]
	MwNaCl = 58.44e-3 // molar mass of NaCl [kg/mol]
	MwH2O  = 18.01e-3 // molar mass of water [kg/mol]
)

// Density computes the density of a NaCl solution of concentration C
// [mol/m³]. Linear fit of CRC handbook data; the 1000 factors convert
// between the [kg/L]-[mol/m³] form of the fit and SI units.
func Density(C float64) float64 {
	return (0.0375*(C/1000.0) + 0.9987) * 1000.0 // [kg/m³]
}

// Moles computes the molar flow rates [mol/s] of the species carried by a
// stream of concentration C [mol/m³] and flow rate f [m³/s]
func Moles(C, f float64) (nNa, nCl, nH2O, nTot float64) {
	nNa = C * f
	nCl = C * f
	nH2O = f * (Density(C) - C*MwNaCl) / MwH2O
	nTot = nNa + nCl + nH2O
	return
}

// Fractions computes the mole fractions of the species from their molar
// flow rates. The fractions sum to one.
func Fractions(nNa, nCl, nH2O, nTot float64) (xNa, xCl, xH2O float64) {
	xNa = nNa / nTot
	xCl = nCl / nTot
	xH2O = nH2O / nTot
	return
}

// Entropy computes the entropy rate [W/K] of a NaCl stream. The TCPC
// activity coefficient corrects the ionic mole fractions only; water is
// taken as ideal (activity = 1).
func Entropy(nacl *salt.Model, C, f float64) float64 {
	nNa, nCl, nH2O, nTot := Moles(C, f)
	xNa, xCl, xH2O := Fractions(nNa, nCl, nH2O, nTot)
	y := nacl.Gamma(C / 1000.0) // correlation takes [mol/L]
	return -Rgas * nTot * (xNa*math.Log(y*xNa) + xCl*math.Log(y*xCl) + xH2O*math.Log(xH2O))
}

// Mixing computes the exergy rate [W] released when a seawater stream
// (cSW, fSW) and a riverwater stream (cRW, fRW) merge into a mixed stream
// (cMix, fMix), at temperature T [K]. It also returns the entropy rates
// of the three streams as {S_SW, S_RW, S_Mix} [W/K].
func Mixing(nacl *salt.Model, T, cSW, cRW, cMix, fSW, fRW, fMix float64) (S []float64, ex float64) {
	sSW := Entropy(nacl, cSW, fSW)
	sRW := Entropy(nacl, cRW, fRW)
	sMix := Entropy(nacl, cMix, fMix)
	S = []float64{sSW, sRW, sMix}
	ex = T * (sMix - sSW - sRW)
	return
}
