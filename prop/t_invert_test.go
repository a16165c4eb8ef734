// Copyright 2017 The Liqmet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_inv01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inv01. injective correlation")

	k := &Correlation{
		Name: "k", Corr: "liqmet", Description: "thermal conductivity",
		Tmin: 600.6, Tmax: 1300.0,
		Eval: func(T, p float64) float64 { return 9.2 + 0.011*T },
	}

	T, err := Invert(k, 18.0, Patm, 1.7*600.6, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "T", 1e-6, T, 800.0)
}

func Test_inv02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inv02. exponential correlation with threshold guess")

	ps := &Correlation{
		Name: "p_s", Corr: "liqmet", Description: "saturation vapour pressure",
		Tmin: 600.6, Tmax: 2021.0,
		Eval: func(T, p float64) float64 { return 5.76e9 * math.Exp(-22131.0/T) },
	}
	ps.Guess = VapourPressureGuess

	target := ps.Eval(1200.0, Patm)
	T, err := Invert(ps, target, Patm, 1.7*600.6, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "T", 1e-6, T, 1200.0)
}

func Test_inv03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inv03. non-injective correlation has two roots")

	cp := &Correlation{
		Name: "cp", Corr: "liqmet", Description: "specific heat capacity",
		Tmin:         600.6,
		Tmax:         2000.0,
		NonInjective: true,
		GuessCoefs:   []float64{1.0, 4.0},
		Eval:         func(T, p float64) float64 { return 140.0 + 1e-5*(T-1500.0)*(T-1500.0) },
	}

	// target 144 crosses the parabola at 1500 -+ sqrt(4/1e-5)
	lo := 1500.0 - math.Sqrt(4.0/1e-5)
	hi := 1500.0 + math.Sqrt(4.0/1e-5)

	guess := 1.7 * 600.6
	T0, err := Invert(cp, 144.0, Patm, guess, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	T1, err := Invert(cp, 144.0, Patm, guess, 1)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "T root 0", 1e-5, T0, lo)
	chk.Float64(tst, "T root 1", 1e-5, T1, hi)

	// out-of-range indices are clamped
	Tc, err := Invert(cp, 144.0, Patm, guess, 5)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "T clamped", 1e-5, Tc, hi)

	// a target below the minimum has no root
	if _, err := Invert(cp, 100.0, Patm, guess, 0); err == nil {
		tst.Errorf("unreachable target should fail\n")
	}
}

func Test_inv04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inv04. convergence for targets of very small magnitude")

	// isentropic compressibility has values around 3e-11; the residual
	// criterion must scale with the target for the solve to move at all
	betaS := &Correlation{
		Name: "beta_s", Corr: "liqmet", Description: "isentropic compressibility",
		Tmin: 600.6, Tmax: 2021.0,
		Eval: func(T, p float64) float64 {
			us := 1953.0 - 0.246*T
			return 1.0 / ((11441.0 - 1.2795*T) * us * us)
		},
	}

	guess := 1.7 * 600.6
	for _, Tref := range []float64{700.0, 1000.0, 1500.0} {
		target := betaS.Eval(Tref, Patm)
		T, err := Invert(betaS, target, Patm, guess, 0)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		chk.Float64(tst, io.Sf("T(beta_s=%g)", target), 1e-6, T, Tref)
	}
}
