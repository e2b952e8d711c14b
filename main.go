// Copyright 2022 The Redflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/dpin-lab/redflow/stack"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "data/coflow-nacl", ".sim", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.PfWhite("\nRedflow -- Reverse Electrodialysis co-flow stack model (NaCl)\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// configuration
	cfg, err := stack.ReadConfig(fnamepath)
	if err != nil {
		chk.Panic("cannot read configuration:\n%v", err)
	}

	// solve
	res, err := stack.Solve(cfg)
	if err != nil {
		chk.Panic("simulation failed:\n%v", err)
	}

	// summary
	io.Pf("\n")
	io.Pf("gross power               P      = %23.15e W\n", res.Power)
	io.Pf("average power density     Pd_avg = %23.15e W/m²\n", res.PdAvg)
	io.Pf("peak power density        Pd_max = %23.15e W/m²\n", res.PdMax)
	io.Pf("total current             I      = %23.15e A\n", res.Current)
	io.Pf("average emf               E_avg  = %23.15e V\n", res.EmfAvg)
	io.Pf("inlet exergy rate         dG_in  = %23.15e W\n", res.DGin)
	io.Pf("outlet exergy rate        dG_out = %23.15e W\n", res.DGout)
	io.Pf("ΔC seawater               ΔC_SW  = %23.15e mol/m³\n", res.DCsw)
	io.Pf("ΔC riverwater             ΔC_RW  = %23.15e mol/m³\n", res.DCrw)
	if res.EtaDefined {
		io.Pf("energy efficiency         η_en   = %g %%\n", res.EtaEnergy)
		io.Pf("thermodynamic efficiency  η_th   = %g %%\n", res.EtaThermo)
	} else {
		io.Pforan("efficiencies are undefined for this configuration (dG_in = %g W)\n", res.DGin)
	}
}
