// Copyright 2017 The Liqmet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bismuth

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/liqmet/liqmet/prop"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_bismuth01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bismuth01. reference values at 700 K")

	reg := Registry()
	T := 700.0

	get := func(name string) *prop.Correlation {
		c, err := reg.Get(name)
		if err != nil {
			chk.Panic("cannot get %q: %v", name, err)
		}
		return c
	}

	chk.Float64(tst, "p_s", 1e-10, get("p_s").Value(T, prop.Patm), 0.00017576611971027668)
	chk.Float64(tst, "sigma", 1e-12, get("sigma").Value(T, prop.Patm), 0.3641)
	chk.Float64(tst, "rho", 1e-9, get("rho").Value(T, prop.Patm), 9871.0)
	chk.Float64(tst, "u_s", 1e-12, get("u_s").Value(T, prop.Patm), 1639.1)
	chk.Float64(tst, "cp", 1e-9, get("cp").Value(T, prop.Patm), 137.0129836734694)
	chk.Float64(tst, "h", 1e-8, get("h").Value(T, prop.Patm), 21870.19826929432)
	chk.Float64(tst, "mu", 1e-12, get("mu").Value(T, prop.Patm), 0.0013579172932301022)
	chk.Float64(tst, "k", 1e-12, get("k").Value(T, prop.Patm), 13.99)
}

func Test_bismuth02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bismuth02. piecewise nickel solubility")

	reg := Registry()
	c, err := reg.Get("ni_sol")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.String(tst, c.Corr, "gosse2014")

	// one value per branch of the law
	chk.Float64(tst, "ni_sol(600)", 1e-12, c.Value(600.0, prop.Patm), 0.577652512526601)
	chk.Float64(tst, "ni_sol(800)", 1e-12, c.Value(800.0, prop.Patm), 4.327628776844828)
	chk.Float64(tst, "ni_sol(1000)", 1e-12, c.Value(1000.0, prop.Patm), 7.345138681571151)
}

func Test_bismuth03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bismuth03. defaults and heat capacity minimum")

	reg := Registry()

	for name, corr := range map[string]string{
		"fe_sol": "gosse2014",
		"ni_sol": "gosse2014",
		"cr_sol": "venkatraman1988",
		"o_dif":  "fitzner1980",
	} {
		c, err := reg.Get(name)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		chk.String(tst, c.Corr, corr)
	}

	b, err := reg.BoundsOf("cp", "imbeni1998")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "cp min", 1e-5, b.Min, 130.151844)
	chk.Float64(tst, "T @ cp min", 1e-2, b.TatMin, 1342.753)
}
