// Copyright 2017 The Liqmet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_corr01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("corr01")

	// linear correlation, warning outside validity range
	var warnings []string
	oldWarn := Warn
	Warn = func(msg string) { warnings = append(warnings, msg) }
	defer func() { Warn = oldWarn }()

	k := &Correlation{
		Name:        "k",
		Corr:        "liqmet",
		Units:       "[W.m^-1.K^-1]",
		LongName:    "thermal conductivity",
		Description: "liquid lead thermal conductivity",
		Tmin:        600.6,
		Tmax:        1300.0,
		Eval:        func(T, p float64) float64 { return 9.2 + 0.011*T },
	}
	err := k.Validate()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	chk.Float64(tst, "k(800)", 1e-15, k.Value(800.0, Patm), 18.0)
	if len(warnings) != 0 {
		tst.Errorf("unexpected warning: %q\n", warnings)
		return
	}

	k.Value(2000.0, Patm)
	if len(warnings) != 1 {
		tst.Errorf("missing out-of-range warning\n")
		return
	}

	chk.String(tst, k.BoundsKey(), "k_liqmet_liquid_lead_thermal_conductivity")
}

func Test_corr02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("corr02. extrema of a convex correlation")

	cp := &Correlation{
		Name:         "cp",
		Corr:         "liqmet",
		Units:        "[J.kg^-1.K^-1]",
		LongName:     "specific heat capacity",
		Description:  "parabolic heat capacity",
		Tmin:         500.0,
		Tmax:         1500.0,
		NonInjective: true,
		GuessCoefs:   []float64{1.0, 4.0},
		Eval:         func(T, p float64) float64 { return 5.0 + 1e-4*(T-1000.0)*(T-1000.0) },
	}
	err := cp.Validate()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	cp.ComputeBounds()
	if !cp.HasBounds() {
		tst.Errorf("bounds were not computed\n")
		return
	}
	chk.Float64(tst, "min", 1e-8, cp.Min, 5.0)
	chk.Float64(tst, "T @ min", 1e-4, cp.TatMin, 1000.0)
	chk.Float64(tst, "max", 1e-8, cp.Max, 30.0)
	chk.Float64(tst, "T @ max", 1e-4, cp.TatMax, 500.0)
}

func Test_corr03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("corr03. non-injective correlation needs two seeds")

	bad := &Correlation{
		Name:         "cp",
		Corr:         "liqmet",
		Description:  "heat capacity",
		Tmin:         500.0,
		Tmax:         1500.0,
		NonInjective: true,
		GuessCoefs:   []float64{1.0},
		Eval:         func(T, p float64) float64 { return T },
	}
	if err := bad.Validate(); err == nil {
		tst.Errorf("validation should have failed\n")
	}
}
