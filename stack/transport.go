// Copyright 2022 The Redflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stack

import "math"

// physical constants
const (
	Rgas   = 8.3143  // universal gas constant [J/(mol·K)]
	Temp   = 298.0   // absolute temperature [K]
	Farad  = 96485.0 // Faraday constant [C/mol]
	Vwater = 18e-6   // molar volume of water [m³/mol]
	Obstr  = 1.65    // obstruction factor of the spacers [-]
	Lambda = 0.01287 // molar conductivity of NaCl [(m²/Ohm)/mol]
)

// waterOhmicDrop computes the area resistance [Ohm·m²] of a water channel
// with concentration c [mol/m³]. Diverges as c goes to zero; inlet
// concentrations must be kept away from zero.
func (o *Stack) waterOhmicDrop(c float64) float64 {
	return Obstr * o.cfg.Dchannel / (Lambda * c)
}

// activity computes the activity of NaCl at concentration c [mol/m³].
// The TCPC correlation takes the ionic strength in [mol/L].
func (o *Stack) activity(c float64) float64 {
	return c * o.nacl.Gamma(c/1000.0)
}

// cell computes the electromotive force E [V], the cell area resistance
// Rcell [Ohm·m²] and the current density J [A/m²] at one position, given
// the local seawater and riverwater concentrations [mol/m³]
func (o *Stack) cell(cSW, cRW float64) (E, Rcell, J float64) {
	preF := o.mem.Alpha * 2.0 * Rgas * Temp / Farad
	E = preF * math.Log(o.activity(cSW)/o.activity(cRW))
	Rcell = o.mem.Raem + o.mem.Rcem + o.waterOhmicDrop(cRW) + o.waterOhmicDrop(cSW)
	J = (E - o.cfg.Uload) / Rcell
	return
}

// derivs defines the system of ODEs for the concentrations along the flow
// path, with q = {cSW, cRW}. Salt and water transfer from the SW to the RW
// compartment (co-flow sign convention). Concentrations reaching zero make
// the system blow up; this is not guarded here.
func (o *Stack) derivs(f []float64, dx, x float64, q []float64, args ...interface{}) error {
	cSW, cRW := q[0], q[1]

	_, _, J := o.cell(cSW, cRW)

	// salt flux [mol/(s·m²)]: migration + diffusive leakage
	Tnacl := J/Farad + (cSW-cRW)*2.0*o.mem.Dnacl/o.mem.Hm

	// water flux [m/s]: osmosis + electro-osmosis
	Tw := -(cSW-cRW)*2.0*o.mem.Dw*Vwater/o.mem.Hm + o.mem.Keosm*Vwater*J/Farad

	f[0] = -o.cfg.Width*Tnacl/o.fSW + o.cfg.Width*cSW*Tw/o.fSW // dcSW/dx
	f[1] = +o.cfg.Width*Tnacl/o.fRW - o.cfg.Width*cRW*Tw/o.fRW // dcRW/dx
	return nil
}
