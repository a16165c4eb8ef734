// Copyright 2017 The Liqmet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lbe

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

// nickel solubility by Gosse, piecewise at 742 K
func nickelSolubilityGosse(T, p float64) float64 {
	if T <= 742.0 {
		return math.Pow(10.0, 4.32-2933.0/T)
	}
	return math.Pow(10.0, 1.74-1006.0/T)
}

// nickel solubility by Martinelli, piecewise at 712 K
func nickelSolubilityMartinelli(T, p float64) float64 {
	if T <= 712.0 {
		return math.Pow(10.0, 5.2-3500.0/T)
	}
	return math.Pow(10.0, 1.7-1009.0/T)
}

func thermochemical() []*prop.Correlation {
	return []*prop.Correlation{
		{
			Name: "fe_sol", Corr: "gosse2014", Units: "[wt.%]",
			LongName:    "iron solubility",
			Description: "Iron solubility in liquid lbe",
			Tmin:        399.0, Tmax: 1173.0,
			Eval: logSol(2.00, 4399.0),
		},
		{
			Name: "fe_sol", Corr: "weeks1969", Units: "[wt.%]",
			LongName:    "iron solubility",
			Description: "Iron solubility in liquid lbe",
			Tmin:        823.0, Tmax: 1053.0,
			Eval: logSol(1.85, 4164.0),
		},
		{
			Name: "ni_sol", Corr: "gosse2014", Units: "[wt.%]",
			LongName:    "nickel solubility",
			Description: "Nickel solubility in liquid lbe",
			Tmin:        528.0, Tmax: 1173.0,
			Eval: nickelSolubilityGosse,
		},
		{
			Name: "ni_sol", Corr: "martinelli2010", Units: "[wt.%]",
			LongName:    "nickel solubility",
			Description: "Nickel solubility in liquid lbe",
			Tmin:        603.0, Tmax: 1173.0,
			Eval: nickelSolubilityMartinelli,
		},
		{
			Name: "cr_sol", Corr: "gosse2014", Units: "[wt.%]",
			LongName:    "chromium solubility",
			Description: "Chromium solubility in liquid lbe",
			Tmin:        399.0, Tmax: 1173.0,
			Eval: logSol(1.12, 3056.0),
		},
		{
			Name: "cr_sol", Corr: "courouau2004", Units: "[wt.%]",
			LongName:    "chromium solubility",
			Description: "Chromium solubility in liquid lbe",
			Tmin:        643.0, Tmax: 813.0,
			Eval: logSol(1.07, 3022.0),
		},
		{
			Name: "cr_sol", Corr: "martynov1998", Units: "[wt.%]",
			LongName:    "chromium solubility",
			Description: "Chromium solubility in liquid lbe",
			Tmin:        673.0, Tmax: 773.0,
			Eval: logSol(-0.02, 2280.0),
		},
		{
			Name: "o_sol", Corr: "liqmet", Units: "[wt.%]",
			LongName:    "oxygen solubility",
			Description: "Oxygen solubility in liquid lbe",
			Tmin:        673.0, Tmax: 1013.0,
			Eval: logSol(2.25, 4125.0),
		},
		{
			Name: "o_dif", Corr: "gromov1996", Units: "[cm^2/s]",
			LongName:    "oxygen diffusivity",
			Description: "Oxygen diffusivity in liquid lbe",
			Tmin:        473.0, Tmax: 1273.0,
			Eval: arrDif(2.39e-2, 43073.0),
		},
		{
			Name: "o_dif", Corr: "ganesan2006b", Units: "[cm^2/s]",
			LongName:    "oxygen diffusivity",
			Description: "Oxygen diffusivity in liquid lbe",
			Tmin:        813.0, Tmax: 973.0,
			Eval: arrDif(0.154, 69069.0),
		},
		{
			Name: "fe_dif", Corr: "liqmet", Units: "[cm^2/s]",
			LongName:    "iron diffusivity",
			Description: "Iron diffusivity in liquid lbe",
			Tmin:        973.0, Tmax: 1273.0,
			Eval: logSol(-2.31, 2295.0),
		},
	}
}
