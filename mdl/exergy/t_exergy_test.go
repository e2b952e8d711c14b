// Copyright 2022 The Redflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exergy

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/dpin-lab/redflow/mdl/salt"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_exergy01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("exergy01. moles and fractions")

	chk.Scalar(tst, "density(0)  ", 1e-9, Density(0), 998.7)
	chk.Scalar(tst, "density(512)", 1e-12, Density(512), (0.0375*0.512+0.9987)*1000.0)

	f := 2.2e-7 // [m³/s]
	io.Pf("%10s%14s%14s%14s%16s\n", "C", "xNa", "xCl", "xH2O", "sum-1")
	for _, C := range []float64{1, 17.1, 100, 512, 1000} {
		nNa, nCl, nH2O, nTot := Moles(C, f)
		if nNa <= 0 || nCl <= 0 || nH2O <= 0 || nTot <= 0 {
			tst.Errorf("test failed: molar flow rates must be positive for C=%g\n", C)
			return
		}
		xNa, xCl, xH2O := Fractions(nNa, nCl, nH2O, nTot)
		io.Pf("%10.1f%14.8f%14.8f%14.8f%16.4e\n", C, xNa, xCl, xH2O, xNa+xCl+xH2O-1)
		chk.Scalar(tst, io.Sf("sum(x) C=%g", C), 1e-9, xNa+xCl+xH2O, 1.0)
	}
}

func Test_exergy02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("exergy02. identical streams release no exergy")

	nacl, err := salt.New("nacl")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	C, f := 512.0, 2.2e-7
	_, ex := Mixing(nacl, 298.0, C, C, C, f, f, 2*f)
	chk.Scalar(tst, "exergy", 1e-12, ex, 0)
}

func Test_exergy03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("exergy03. sea/river mixing releases exergy")

	nacl, err := salt.New("nacl")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	cSW, cRW := 512.0, 17.1
	fSW, fRW := 2.2e-7, 2.2e-7
	fMix := fSW + fRW
	cMix := (fSW*cSW + fRW*cRW) / fMix

	S, ex := Mixing(nacl, 298.0, cSW, cRW, cMix, fSW, fRW, fMix)
	io.Pforan("S_SW=%g S_RW=%g S_Mix=%g [W/K]  exergy=%g [W]\n", S[0], S[1], S[2], ex)

	if ex <= 0 {
		tst.Errorf("test failed: mixing exergy must be positive: ex=%g\n", ex)
		return
	}
	if S[2] <= S[0]+S[1] {
		tst.Errorf("test failed: mixing must increase the total entropy rate\n")
	}
}
