// Copyright 2022 The Redflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stack

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"github.com/dpin-lab/redflow/mdl/exergy"
)

// Results holds the complete output of one solved stack. All slices are
// co-indexed with X. Results are never mutated after Run returns them.
type Results struct {

	// profiles along the flow path
	X     []float64 // domain [m]
	Csw   []float64 // seawater concentration [mol/m³]
	Crw   []float64 // riverwater concentration [mol/m³]
	Emf   []float64 // electromotive force [V]
	Rcell []float64 // cell area resistance [Ohm·m²]
	J     []float64 // current density [A/m²]
	Pd    []float64 // gross power density [W/m²]

	// scalar outputs
	Power   float64 // gross power [W]
	PdAvg   float64 // average gross power density [W/m²]
	PdMax   float64 // peak gross power density [W/m²]
	Current float64 // total current [A]
	EmfAvg  float64 // average emf [V]
	DCsw    float64 // outlet-inlet concentration change, seawater [mol/m³]
	DCrw    float64 // outlet-inlet concentration change, riverwater [mol/m³]

	// exergy and efficiencies
	DGin       float64 // exergy rate available at the inlet [W]
	DGout      float64 // exergy rate remaining at the outlet [W]
	EtaEnergy  float64 // energy efficiency [%]
	EtaThermo  float64 // thermodynamic efficiency [%]
	EtaDefined bool    // false when the exergy balance makes the ratios undefined
}

// quad integrates sampled values over x. Simpson's rule needs at least
// three points; a two-point domain falls back to the trapezoidal rule.
func quad(x, f []float64) float64 {
	if len(x) < 3 {
		return integrate.Trapezoidal(x, f)
	}
	return integrate.Simpsons(x, f)
}

// postprocess derives the per-point quantities and the scalar summary
// from the solved concentration profiles
func (o *Stack) postprocess(csw, crw []float64) (*Results, error) {
	n := len(o.X)
	res := &Results{
		X:     o.X,
		Csw:   csw,
		Crw:   crw,
		Emf:   make([]float64, n),
		Rcell: make([]float64, n),
		J:     make([]float64, n),
		Pd:    make([]float64, n),
	}

	U := o.cfg.Uload
	for i := 0; i < n; i++ {
		res.Emf[i], res.Rcell[i], res.J[i] = o.cell(csw[i], crw[i])
		res.Pd[i] = (res.Emf[i]*U - U*U) / res.Rcell[i]
	}

	// the factor 2L accounts for the two membranes of the cell pair
	W, L := o.cfg.Width, o.cfg.Length
	res.PdAvg = quad(o.X, res.Pd) / (2.0 * L)
	res.PdMax = floats.Max(res.Pd)
	res.Power = res.PdAvg * (2.0 * W * L)
	res.Current = W * quad(o.X, res.J)
	res.EmfAvg = quad(o.X, res.Emf) / L

	// concentration changes between inlet and outlet
	res.DCsw = csw[n-1] - csw[0]
	res.DCrw = crw[n-1] - crw[0]

	// exergy at inlet and outlet; the mixed stream takes the flow-weighted
	// average concentration of the two streams
	fMix := o.fSW + o.fRW
	cMixIn := (o.fSW*csw[0] + o.fRW*crw[0]) / fMix
	cMixOut := (o.fSW*csw[n-1] + o.fRW*crw[n-1]) / fMix
	_, res.DGin = exergy.Mixing(o.nacl, Temp, csw[0], crw[0], cMixIn, o.fSW, o.fRW, fMix)
	_, res.DGout = exergy.Mixing(o.nacl, Temp, csw[n-1], crw[n-1], cMixOut, o.fSW, o.fRW, fMix)

	// the efficiency ratios are undefined when no exergy enters the stack
	// or the exergy balance is not positive; flag instead of dividing
	if res.DGin > 0 && res.DGin-res.DGout > 0 {
		res.EtaEnergy = 100.0 * res.Power / res.DGin
		res.EtaThermo = 100.0 * res.Power / (res.DGin - res.DGout)
		res.EtaDefined = true
	}
	return res, nil
}
