// Copyright 2022 The Redflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stack

import (
	"github.com/cpmech/gosl/ode"
	"github.com/cpmech/gosl/utl"

	"github.com/dpin-lab/redflow/mdl/membrane"
	"github.com/dpin-lab/redflow/mdl/salt"
)

// Stack holds one co-flow RED simulation. Each instance is independent;
// instances may be solved on separate goroutines without coordination.
type Stack struct {

	// input
	cfg  Config          // simulation configuration
	mem  *membrane.Model // membrane pair properties
	nacl *salt.Model     // TCPC activity model for NaCl

	// derived
	fSW float64   // seawater flow rate [m³/s]
	fRW float64   // riverwater flow rate [m³/s]
	X   []float64 // spatial domain: Npoints positions from 0 to L

	// solver
	sol ode.Solver

	// solution (nil until Run succeeds)
	res *Results
}

// New validates the configuration, resolves the membrane pair and salt
// from their databases and builds the spatial domain. No integration is
// performed yet.
func New(cfg *Config) (o *Stack, err error) {

	// validate input
	if err = cfg.Validate(); err != nil {
		return
	}

	o = new(Stack)
	o.cfg = *cfg

	// models
	o.mem, err = membrane.New(cfg.Membranes)
	if err != nil {
		return nil, err
	}
	o.nacl, err = salt.New("nacl")
	if err != nil {
		return nil, err
	}

	// flow rates from residence times and geometry
	o.fSW = cfg.Length * cfg.Width * cfg.Dchannel / cfg.TresSW
	o.fRW = cfg.Length * cfg.Width * cfg.Dchannel / cfg.TresRW

	// domain
	o.X = utl.LinSpace(0, cfg.Length, cfg.Npoints)

	// ODE solver
	method := cfg.Method
	if method == "" {
		method = "Dopri5"
	}
	atol, rtol := cfg.Atol, cfg.Rtol
	if atol == 0 {
		atol = 1e-8
	}
	if rtol == 0 {
		rtol = 1e-8
	}
	silent := true
	o.sol.Init(method, 2, o.derivs, nil, nil, nil, silent)
	o.sol.Distr = false // must be disabled; otherwise it causes problems in parallel runs
	o.sol.SetTol(atol, rtol)
	return
}

// Domain returns the spatial domain
func (o *Stack) Domain() []float64 {
	return o.X
}

// Run integrates the ODE system and post-processes the solution. The
// result of the first successful call is cached: calling Run again simply
// returns the same Results. A new configuration requires a new Stack.
func (o *Stack) Run() (*Results, error) {
	if o.res != nil {
		return o.res, nil
	}
	csw, crw, err := o.integrate()
	if err != nil {
		return nil, err
	}
	res, err := o.postprocess(csw, crw)
	if err != nil {
		return nil, err
	}
	o.res = res
	return o.res, nil
}

// Solve builds a stack from cfg and runs it
func Solve(cfg *Config) (*Results, error) {
	o, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return o.Run()
}
