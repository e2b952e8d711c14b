// Copyright 2022 The Redflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package salt implements the TCPC (three-characteristic-parameter
// correlation) activity model for binary electrolytes
//  References:
//   [1] Ge X, Wang X, Zhang M and Seetharaman S (2007) Correlation and
//       prediction of activity and osmotic coefficients of aqueous
//       electrolytes at 298.15 K by the modified TCPC model,
//       J. Chem. Eng. Data 52(2), 538-547,
//       http://dx.doi.org/10.1021/je060451k
package salt

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// constants of the correlation; valid near room temperature
const (
	Aphi = 0.392  // Debye-Hückel parameter at 298.15 K [-]
	Tref = 298.15 // reference temperature of the fit [K]
)

// Model implements the TCPC correlation for one binary salt.
// The three characteristic parameters are b (approach distance),
// S (solvation) and n (solvation exponent); the remaining entries
// describe the dissociation stoichiometry.
type Model struct {
	Zplus float64 // valence of the cation [-]
	Zmin  float64 // valence of the anion [-]
	Vplus float64 // stoichiometric coefficient of the cation [-]
	Vmin  float64 // stoichiometric coefficient of the anion [-]
	B     float64 // ion closest-approach parameter [-]
	S     float64 // solvation parameter [-]
	N     float64 // solvation exponent [-]
}

// Init initialises model from a set of parameters
func (o *Model) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "zplus":
			o.Zplus = p.V
		case "zmin":
			o.Zmin = p.V
		case "vplus":
			o.Vplus = p.V
		case "vmin":
			o.Vmin = p.V
		case "b":
			o.B = p.V
		case "s":
			o.S = p.V
		case "n":
			o.N = p.V
		default:
			return chk.Err("salt: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Vplus+o.Vmin < 1 {
		return chk.Err("salt: stoichiometric coefficients are incorrect: vplus=%g vmin=%g\n", o.Vplus, o.Vmin)
	}
	return
}

// GetPrms gets the current set of parameters
func (o Model) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "zplus", V: o.Zplus},
		&fun.Prm{N: "zmin", V: o.Zmin},
		&fun.Prm{N: "vplus", V: o.Vplus},
		&fun.Prm{N: "vmin", V: o.Vmin},
		&fun.Prm{N: "b", V: o.B},
		&fun.Prm{N: "s", V: o.S},
		&fun.Prm{N: "n", V: o.N},
	}
}

// Gamma computes the mean activity coefficient for ionic strength I [mol/L].
// I must be non-negative; I < 0 is undefined behaviour.
//   γ = exp[ (z+·z-)·fγ + γSV ]
//   fγ = -Aφ·( √I/(1+b√I) + (2/b)·ln(1+b√I) )
//   γSV = (S/Tref)·I^(2n)/(v+ + v-)
func (o Model) Gamma(I float64) float64 {
	sqI := math.Sqrt(I)
	fgamma := -Aphi * (sqI/(1.0+o.B*sqI) + (2.0/o.B)*math.Log(1.0+o.B*sqI))
	gammaSV := (o.S / Tref) * math.Pow(I, 2.0*o.N) / (o.Vplus + o.Vmin)
	return math.Exp(o.Zplus*o.Zmin*fgamma + gammaSV)
}

// Osmo computes the osmotic coefficient for ionic strength I [mol/L].
// I must be non-negative; I < 0 is undefined behaviour.
func (o Model) Osmo(I float64) float64 {
	sqI := math.Sqrt(I)
	return 1.0 - o.Zplus*o.Zmin*Aphi*(sqI/(1.0+o.B*sqI)) +
		(o.S/(Tref*(o.Vplus+o.Vmin)))*(2.0*o.N/(2.0*o.N+1.0))*math.Pow(I, 2.0*o.N)
}

// New returns a new, initialised salt model from the database
func New(name string) (*Model, error) {
	allocator, ok := allocators[strings.ToLower(name)]
	if !ok {
		return nil, chk.Err("salt %q is not available in 'salt' database", name)
	}
	return allocator(), nil
}

// allocators holds all available salts
var allocators = map[string]func() *Model{}
