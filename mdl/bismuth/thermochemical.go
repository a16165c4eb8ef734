// Copyright 2017 The Liqmet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bismuth

import (
	"math"

	"github.com/liqmet/liqmet/prop"
)

// logSol builds a solubility law of the form 10^(a - b/T) [wt.%]
func logSol(a, b float64) prop.EvalFn {
	return func(T, p float64) float64 { return math.Pow(10.0, a-b/T) }
}

// arrDif builds an Arrhenius diffusivity law d0*exp(-q/(R*T)) [cm^2/s]
func arrDif(d0, q float64) prop.EvalFn {
	return func(T, p float64) float64 { return d0 * math.Exp(-q/(prop.Rgas*T)) }
}

// nickel solubility by Gosse, piecewise over three temperature intervals
func nickelSolubility(T, p float64) float64 {
	switch {
	case T <= 738.0:
		return math.Pow(10.0, 3.81-2429.0/T)
	case T <= 918.0:
		return math.Pow(10.0, 2.05-1131.0/T)
	}
	return math.Pow(10.0, 1.35-484.0/T)
}

// oxygen solubility, piecewise at 1002 K
func oxygenSolubility(T, p float64) float64 {
	if T <= 1002.0 {
		return math.Pow(10.0, 2.30-4066.0/T)
	}
	return math.Pow(10.0, 3.04-4810.0/T)
}

func thermochemical() []*prop.Correlation {
	return []*prop.Correlation{
		{
			Name: "fe_sol", Corr: "gosse2014", Units: "[wt.%]",
			LongName:    "iron solubility",
			Description: "Iron solubility in liquid bismuth",
			Tmin:        545.0, Tmax: 1173.0,
			Eval: logSol(2.20, 3930.0),
		},
		{
			Name: "fe_sol", Corr: "massalski1990", Units: "[wt.%]",
			LongName:    "iron solubility",
			Description: "Iron solubility in liquid bismuth",
			Tmin:        973.0, Tmax: 1173.0,
			Eval: logSol(2.18, 3980.0),
		},
		{
			Name: "fe_sol", Corr: "weeks1998", Units: "[wt.%]",
			LongName:    "iron solubility",
			Description: "Iron solubility in liquid bismuth",
			Tmin:        713.0, Tmax: 998.0,
			Eval: logSol(1.832, 3589.0),
		},
		{
			Name: "ni_sol", Corr: "gosse2014", Units: "[wt.%]",
			LongName:    "nickel solubility",
			Description: "Nickel solubility in liquid bismuth",
			Tmin:        543.0, Tmax: 1173.0,
			Eval: nickelSolubility,
		},
		{
			Name: "ni_sol", Corr: "weeks1998", Units: "[wt.%]",
			LongName:    "nickel solubility",
			Description: "Nickel solubility in liquid bismuth",
			Tmin:        723.0, Tmax: 903.0,
			Eval: logSol(2.61, 1538.0),
		},
		{
			Name: "cr_sol", Corr: "venkatraman1988", Units: "[wt.%]",
			LongName:    "chromium solubility",
			Description: "Chromium solubility in liquid bismuth",
			Tmin:        658.0, Tmax: 901.0,
			Eval: logSol(2.34, 3610.0),
		},
		{
			Name: "cr_sol", Corr: "weeks1998", Units: "[wt.%]",
			LongName:    "chromium solubility",
			Description: "Chromium solubility in liquid bismuth",
			Tmin:        663.0, Tmax: 998.0,
			Eval: logSol(2.5, 3717.0),
		},
		{
			Name: "o_sol", Corr: "liqmet", Units: "[wt.%]",
			LongName:    "oxygen solubility",
			Description: "Oxygen solubility in liquid bismuth",
			Tmin:        573.0, Tmax: 1573.0,
			Eval: oxygenSolubility,
		},
		{
			Name: "o_dif", Corr: "fitzner1980", Units: "[cm^2/s]",
			LongName:    "oxygen diffusivity",
			Description: "Oxygen diffusivity in liquid bismuth",
			Tmin:        951.0, Tmax: 1100.0,
			Eval: arrDif(1.07e-2, 49229.0),
		},
		{
			Name: "o_dif", Corr: "heshmatpour1981", Units: "[cm^2/s]",
			LongName:    "oxygen diffusivity",
			Description: "Oxygen diffusivity in liquid bismuth",
			Tmin:        1023.0, Tmax: 1273.0,
			Eval: arrDif(1.98e-4, 26610.0),
		},
	}
}
