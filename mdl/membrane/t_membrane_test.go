// Copyright 2022 The Redflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package membrane

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_mem01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mem01. database lookup")

	ideal, err := New("ideal")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "Raem ", 1e-17, ideal.Raem, 1.0e-4)
	chk.Scalar(tst, "Rcem ", 1e-17, ideal.Rcem, 1.0e-4)
	chk.Scalar(tst, "alpha", 1e-17, ideal.Alpha, 0.90)
	chk.Scalar(tst, "Dnacl", 1e-17, ideal.Dnacl, 0)
	chk.Scalar(tst, "Dw   ", 1e-17, ideal.Dw, 0)
	chk.Scalar(tst, "Hm   ", 1e-17, ideal.Hm, 80e-6)
	chk.Scalar(tst, "Keosm", 1e-17, ideal.Keosm, 0)

	// names are case-insensitive
	fuji, err := New("Fujifilm-Type-10")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "Raem ", 1e-17, fuji.Raem, 1.77e-4)
	chk.Scalar(tst, "Rcem ", 1e-17, fuji.Rcem, 2.69e-4)
	chk.Scalar(tst, "alpha", 1e-17, fuji.Alpha, 0.946)
	chk.Scalar(tst, "Dnacl", 1e-17, fuji.Dnacl, 1.5e-12)
	chk.Scalar(tst, "Dw   ", 1e-17, fuji.Dw, 4.5e-9)
	chk.Scalar(tst, "Hm   ", 1e-17, fuji.Hm, 145e-6)
	chk.Scalar(tst, "Keosm", 1e-17, fuji.Keosm, 6)

	// the stack must never be assembled with undefined membranes
	_, err = New("some-other-membrane")
	if err == nil {
		tst.Errorf("test failed: New should reject unknown membrane pairs\n")
	}
}

func Test_mem02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mem02. parameter validation")

	o := new(Model)
	err := o.Init([]*fun.Prm{
		&fun.Prm{N: "Raem", V: 1e-4},
		&fun.Prm{N: "Rcem", V: 1e-4},
		&fun.Prm{N: "alpha", V: 1.5}, // out of [0,1]
		&fun.Prm{N: "Hm", V: 80e-6},
	})
	if err == nil {
		tst.Errorf("test failed: Init should reject permselectivity > 1\n")
		return
	}

	o = new(Model)
	err = o.Init([]*fun.Prm{
		&fun.Prm{N: "Raem", V: -1e-4},
		&fun.Prm{N: "alpha", V: 0.9},
		&fun.Prm{N: "Hm", V: 80e-6},
	})
	if err == nil {
		tst.Errorf("test failed: Init should reject negative resistances\n")
		return
	}

	o = new(Model)
	err = o.Init([]*fun.Prm{
		&fun.Prm{N: "alpha", V: 0.9},
	})
	if err == nil {
		tst.Errorf("test failed: Init should reject zero membrane thickness\n")
		return
	}

	// round trip through GetPrms
	ideal, err := New("ideal")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	o = new(Model)
	err = o.Init(ideal.GetPrms())
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "alpha", 1e-17, o.Alpha, ideal.Alpha)
	chk.Scalar(tst, "Hm   ", 1e-17, o.Hm, ideal.Hm)
}
