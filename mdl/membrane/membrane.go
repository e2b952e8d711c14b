// Copyright 2022 The Redflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package membrane implements a database of ion-exchange membrane pairs
// for reverse electrodialysis stacks. Each named dataset bundles the area
// resistances of the anion- and cation-exchange membranes, the average
// permselectivity and the transport coefficients governing salt and water
// leakage through the membranes.
package membrane

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Model holds the properties of one CEM/AEM pair
type Model struct {
	Raem  float64 // AEM area resistance [Ohm·m²]
	Rcem  float64 // CEM area resistance [Ohm·m²]
	Alpha float64 // average permselectivity of the pair [-]
	Dnacl float64 // diffusion coefficient of NaCl in the membrane [m²/s]
	Dw    float64 // diffusion coefficient of water in the membrane [m²/s]
	Hm    float64 // membrane thickness [m]
	Keosm float64 // electro-osmotic coefficient [-]
}

// Init initialises model and checks the physical bounds of the parameters
func (o *Model) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "raem":
			o.Raem = p.V
		case "rcem":
			o.Rcem = p.V
		case "alpha":
			o.Alpha = p.V
		case "dnacl":
			o.Dnacl = p.V
		case "dw":
			o.Dw = p.V
		case "hm":
			o.Hm = p.V
		case "keosm":
			o.Keosm = p.V
		default:
			return chk.Err("membrane: parameter named %q is incorrect\n", p.N)
		}
	}
	return o.Check()
}

// Check returns an error if any parameter is out of its physical range
func (o Model) Check() error {
	if o.Raem < 0 || o.Rcem < 0 {
		return chk.Err("membrane: area resistances must be non-negative: Raem=%g Rcem=%g\n", o.Raem, o.Rcem)
	}
	if o.Alpha < 0 || o.Alpha > 1 {
		return chk.Err("membrane: permselectivity must be within [0,1]: alpha=%g\n", o.Alpha)
	}
	if o.Dnacl < 0 || o.Dw < 0 {
		return chk.Err("membrane: diffusion coefficients must be non-negative: Dnacl=%g Dw=%g\n", o.Dnacl, o.Dw)
	}
	if o.Hm <= 0 {
		return chk.Err("membrane: thickness must be positive: Hm=%g\n", o.Hm)
	}
	return nil
}

// GetPrms gets the current set of parameters
func (o Model) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "Raem", V: o.Raem},
		&fun.Prm{N: "Rcem", V: o.Rcem},
		&fun.Prm{N: "alpha", V: o.Alpha},
		&fun.Prm{N: "Dnacl", V: o.Dnacl},
		&fun.Prm{N: "Dw", V: o.Dw},
		&fun.Prm{N: "Hm", V: o.Hm},
		&fun.Prm{N: "Keosm", V: o.Keosm},
	}
}

// New returns a new membrane pair from the database. An unknown name is
// rejected here so that a stack is never assembled with undefined
// membrane properties.
func New(name string) (*Model, error) {
	allocator, ok := allocators[strings.ToLower(name)]
	if !ok {
		return nil, chk.Err("membrane pair %q is not available in 'membrane' database", name)
	}
	o := allocator()
	if err := o.Check(); err != nil {
		return nil, err
	}
	return o, nil
}

// allocators holds all available membrane pairs
var allocators = map[string]func() *Model{}
