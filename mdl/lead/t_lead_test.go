// Copyright 2017 The Liqmet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lead

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

func Test_lead01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lead01. reference values at 800 K")

	reg := Registry()
	T := 800.0

	get := func(name string) *prop.Correlation { return mustGet(reg, name) }

	chk.Float64(tst, "p_s", 1e-9, get("p_s").Value(T, prop.Patm), 0.005574533243132953)
	chk.Float64(tst, "sigma", 1e-12, get("sigma").Value(T, prop.Patm), 0.4355)
	chk.Float64(tst, "rho", 1e-9, get("rho").Value(T, prop.Patm), 10417.4)
	chk.Float64(tst, "alpha", 1e-12, get("alpha").Value(T, prop.Patm), 0.00012281994595922377)
	chk.Float64(tst, "u_s", 1e-12, get("u_s").Value(T, prop.Patm), 1756.2)
	chk.Float64(tst, "beta_s", 1e-17, get("beta_s").Value(T, prop.Patm), 3.112380704124739e-11)
	chk.Float64(tst, "cp", 1e-9, get("cp").Value(T, prop.Patm), 144.31635)
	chk.Float64(tst, "h", 1e-7, get("h").Value(T, prop.Patm), 29147.522531569713)
	chk.Float64(tst, "mu", 1e-12, get("mu").Value(T, prop.Patm), 0.0017311607546581034)
	chk.Float64(tst, "r", 1e-14, get("r").Value(T, prop.Patm), 1.0468e-06)
	chk.Float64(tst, "k", 1e-12, get("k").Value(T, prop.Patm), 18.0)
	chk.Float64(tst, "fe_sol", 1e-12, get("fe_sol").Value(T, prop.Patm), 3.790966965506804e-05)
}

func Test_lead02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lead02. default correlation variants")

	reg := Registry()

	for name, corr := range map[string]string{
		"cp":     "sobolev2011",
		"cr_sol": "gosse2014",
		"o_dif":  "gromov1996",
		"lim_cr": "gosse2014",
	} {
		c, err := reg.Get(name)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		chk.String(tst, c.Corr, corr)
	}

	// the alternative heat capacity variant stays available
	g, err := reg.Variant("cp", "gurvich1991")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "cp gurvich1991", 1e-9, g.Value(800.0, prop.Patm), 144.660062)

	chk.Float64(tst, "cr_sol(1000)", 1e-12, mustGet(reg, "cr_sol").Value(1000.0, prop.Patm), 0.0009375620069258812)
	chk.Float64(tst, "o_dif(1000)", 1e-14, mustGet(reg, "o_dif").Value(1000.0, prop.Patm), 9.452639637400348e-06)
}

func Test_lead03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lead03. heat capacity extrema from the bounds cache")

	reg := Registry()

	b, err := reg.BoundsOf("cp", "sobolev2011")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "cp min", 1e-5, b.Min, 136.348649)
	chk.Float64(tst, "T @ cp min", 1e-2, b.TatMin, 1568.665)

	b, err = reg.BoundsOf("cp", "gurvich1991")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "cp min", 1e-5, b.Min, 137.287133)
	chk.Float64(tst, "T @ cp min", 1e-2, b.TatMin, 1682.522)
}

func Test_lead04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lead04. pressure correction of the density")

	reg := Registry()
	c := mustGet(reg, "rho")

	// doubling the pressure barely moves the density
	chk.Float64(tst, "rho @ 2 atm", 1e-9, c.Value(800.0, 2.0*prop.Patm), 10417.441325355669)
}

func Test_lead05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lead05. oxygen concentration lower limits at 800 K")

	reg := Registry()
	T := 800.0

	get := func(name string) *prop.Correlation { return mustGet(reg, name) }

	chk.Float64(tst, "lim_fe_sat", 1e-20, get("lim_fe_sat").Value(T, prop.Patm), 1.2304662242098058e-08)
	chk.Float64(tst, "lim_cr_sat", 1e-26, get("lim_cr_sat").Value(T, prop.Patm), 6.892206621737697e-15)
	chk.Float64(tst, "lim_ni_sat", 1e-17, get("lim_ni_sat").Value(T, prop.Patm), 1.3716664329752454e-05)
	chk.Float64(tst, "lim_si_sat", 1e-31, get("lim_si_sat").Value(T, prop.Patm), 1.041169917629953e-19)
	chk.Float64(tst, "lim_al_sat", 1e-37, get("lim_al_sat").Value(T, prop.Patm), 1.0505784347528257e-25)
	chk.Float64(tst, "lim_cr", 1e-29, get("lim_cr").Value(T, prop.Patm), 5.148629278370023e-18)
	chk.Float64(tst, "lim_ni", 1e-17, get("lim_ni").Value(T, prop.Patm), 5.668896276990084e-06)
	chk.Float64(tst, "lim_fe", 1e-23, get("lim_fe").Value(T, prop.Patm), 5.94473085615627e-12)
	chk.Float64(tst, "lim_si", 1e-33, get("lim_si").Value(T, prop.Patm), 2.971813913170144e-22)

	// the chromium product follows the chromium solubility variants
	v, err := reg.Variant("lim_cr", "venkatraman1988")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "lim_cr venkatraman1988", 1e-29, v.Value(T, prop.Patm), 5.070198417416788e-18)
	v, err = reg.Variant("lim_cr", "alden1958")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "lim_cr alden1958", 1e-29, v.Value(T, prop.Patm), 5.089693406374013e-18)

	// bounds come from the cache and the seed switches with the value scale
	b, err := reg.BoundsOf("lim_fe_sat", "liqmet")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "lim_fe_sat max", 1e-16, b.Max, 1.252073663861925e-06)
	chk.Float64(tst, "T @ lim_fe_sat max", 1e-10, b.TatMax, 1000.0)
	c := get("lim_cr")
	chk.Float64(tst, "seed below threshold", 1e-12, c.Guess(1e-16), 650.0)
	chk.Float64(tst, "seed above threshold", 1e-12, c.Guess(1e-9), 1700.0)
}

func mustGet(reg *prop.Registry, name string) *prop.Correlation {
	c, err := reg.Get(name)
	if err != nil {
		chk.Panic("cannot get %q: %v", name, err)
	}
	return c
}
