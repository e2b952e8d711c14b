// Copyright 2022 The Redflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form expressions used to verify the
// numerical RED stack model
package ana

import (
	"math"

	"github.com/dpin-lab/redflow/mdl/salt"
)

// constants matching the transport model
const (
	Rgas  = 8.3143  // universal gas constant [J/(mol·K)]
	Farad = 96485.0 // Faraday constant [C/mol]
)

// OpenCircuit computes the open-circuit electromotive force of a cell pair
// from the Nernst relation:
//
//	E = α·(2·R·T/F)·ln(a_SW/a_RW)    with    a(c) = c·γ(c/1000)
//
// With leak-free membranes (no salt or water diffusion) and the load
// voltage set to E, the current density is zero and the concentration
// profile along the stack stays flat, which gives an analytical solution
// for the whole ODE system.
type OpenCircuit struct {
	Alpha float64     // permselectivity of the membrane pair [-]
	Temp  float64     // absolute temperature [K]
	Salt  *salt.Model // activity model of the dissolved salt
}

// Activity computes the activity of the salt at concentration c [mol/m³]
func (o OpenCircuit) Activity(c float64) float64 {
	return c * o.Salt.Gamma(c/1000.0)
}

// Emf computes the open-circuit emf [V] for the given seawater and
// riverwater concentrations [mol/m³]
func (o OpenCircuit) Emf(cSW, cRW float64) float64 {
	preF := o.Alpha * 2.0 * Rgas * o.Temp / Farad
	return preF * math.Log(o.Activity(cSW)/o.Activity(cRW))
}

// GrossPowerDensity computes the gross power density [W/m²] delivered to
// a load U by a cell with emf E and area resistance Rcell
func (o OpenCircuit) GrossPowerDensity(E, U, Rcell float64) float64 {
	return (E*U - U*U) / Rcell
}
