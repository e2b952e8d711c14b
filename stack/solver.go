// Copyright 2022 The Redflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stack

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// integrate solves the ODE system segment by segment so that the solution
// lands exactly on the domain points. The first point of each profile is
// the inlet concentration. Non-physical concentrations (zero, negative or
// NaN) abort the integration.
func (o *Stack) integrate() (csw, crw []float64, err error) {
	n := len(o.X)
	csw = make([]float64, n)
	crw = make([]float64, n)
	csw[0], crw[0] = o.cfg.CswIn, o.cfg.CrwIn

	q := []float64{o.cfg.CswIn, o.cfg.CrwIn}
	for i := 1; i < n; i++ {
		dx := o.X[i] - o.X[i-1]
		err = o.sol.Solve(q, o.X[i-1], o.X[i], dx, false)
		if err != nil {
			return nil, nil, chk.Err("stack: ODE solver failed at x=%g: %v", o.X[i], err)
		}
		if math.IsNaN(q[0]) || math.IsNaN(q[1]) || q[0] <= 0 || q[1] <= 0 {
			return nil, nil, chk.Err("stack: non-physical concentrations at x=%g: cSW=%g cRW=%g", o.X[i], q[0], q[1])
		}
		csw[i], crw[i] = q[0], q[1]
	}
	return
}
