// Copyright 2022 The Redflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package stack implements a reverse electrodialysis (RED) stack model in
// co-flow configuration. The seawater (SW) and riverwater (RW) streams run
// in the same direction along the flow path:
//
//	SW -----x---->
//	RW -----x---->
//
//	   |----L----|
//
// The model solves the coupled ODEs for the salt concentrations of the two
// streams along x and derives emf, current, power and efficiencies from
// the solved profiles. Based on Veerman et al. (2011), Tedesco et al.
// (2015) and Simões et al. (2020).
package stack

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Config holds the input data for one simulation, read from a (.sim) JSON
// file or assembled directly by the caller. All quantities are SI.
type Config struct {
	TresSW    float64 `json:"tsw"`       // residence time of seawater [s]
	TresRW    float64 `json:"trw"`       // residence time of riverwater [s]
	Width     float64 `json:"width"`     // width of the active area [m]
	Length    float64 `json:"length"`    // length of the flow path [m]
	Dchannel  float64 `json:"dchannel"`  // thickness of the water channels [m]
	Membranes string  `json:"membranes"` // membrane pair name; e.g. "ideal", "fujifilm-type-10"
	Uload     float64 `json:"uload"`     // external load voltage per cell pair [V]
	CswIn     float64 `json:"csw0"`      // inlet concentration of seawater [mol/m³]
	CrwIn     float64 `json:"crw0"`      // inlet concentration of riverwater [mol/m³]
	Npoints   int     `json:"npoints"`   // number of points discretising the flow path [-]

	// ODE solver options
	Method string  `json:"method"` // ODE method; e.g. "Dopri5" (default), "Radau5"
	Atol   float64 `json:"atol"`   // absolute tolerance; 0 means default
	Rtol   float64 `json:"rtol"`   // relative tolerance; 0 means default
}

// Validate checks the configuration invariants. The membrane name itself
// is resolved (and thus checked) by New.
func (o *Config) Validate() error {
	if o.TresSW <= 0 || o.TresRW <= 0 {
		return chk.Err("config: residence times must be positive: tSW=%g tRW=%g", o.TresSW, o.TresRW)
	}
	if o.Width <= 0 || o.Length <= 0 || o.Dchannel <= 0 {
		return chk.Err("config: geometry must be positive: W=%g L=%g d=%g", o.Width, o.Length, o.Dchannel)
	}
	if o.CswIn <= 0 || o.CrwIn <= 0 {
		return chk.Err("config: inlet concentrations must be positive: cSW0=%g cRW0=%g", o.CswIn, o.CrwIn)
	}
	if o.Uload < 0 {
		return chk.Err("config: load voltage must be non-negative: Uload=%g", o.Uload)
	}
	if o.Npoints < 2 {
		return chk.Err("config: at least 2 domain points are required: npoints=%d", o.Npoints)
	}
	return nil
}

// ReadConfig reads a configuration from a (.sim) JSON file
func ReadConfig(fn string) (*Config, error) {
	b, err := io.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("config: cannot read simulation file %q: %v", fn, err)
	}
	cfg := new(Config)
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, chk.Err("config: cannot decode simulation file %q: %v", fn, err)
	}
	return cfg, nil
}
