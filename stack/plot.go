// Copyright 2022 The Redflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stack

import (
	"github.com/cpmech/gosl/plt"
)

// Plot plots the concentration, emf and gross power density profiles
// along the flow path and saves the figure to dirout/fnkey.eps
func (o Results) Plot(dirout, fnkey string) {

	plt.Reset(false, nil)

	plt.Subplot(3, 1, 1)
	plt.Plot(o.X, o.Csw, &plt.A{C: "b", Ls: "-", L: "SW"})
	plt.Plot(o.X, o.Crw, &plt.A{C: "g", Ls: "-", L: "RW"})
	plt.Gll("$x\\;[m]$", "$c\\;[mol/m^3]$", nil)

	plt.Subplot(3, 1, 2)
	plt.Plot(o.X, o.Emf, &plt.A{C: "k", Ls: "-", L: "emf"})
	plt.Plot(o.X, o.J, &plt.A{C: "m", Ls: "--", L: "J"})
	plt.Gll("$x\\;[m]$", "$E\\;[V],\\;J\\;[A/m^2]$", nil)

	plt.Subplot(3, 1, 3)
	plt.Plot(o.X, o.Pd, &plt.A{C: "r", Ls: "-", L: "Pd"})
	plt.Gll("$x\\;[m]$", "$P_d\\;[W/m^2]$", nil)
	plt.SetTicksNormal()

	plt.Save(dirout, fnkey)
}
