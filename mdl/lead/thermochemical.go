// Copyright 2017 The Liqmet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lead

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

func thermochemical() []*prop.Correlation {
	return []*prop.Correlation{
		{
			Name: "fe_sol", Corr: "gosse2014", Units: "[wt.%]",
			LongName:    "iron solubility",
			Description: "Iron solubility in liquid lead",
			Tmin:        600.0, Tmax: 1173.0,
			Eval: logSol(2.11, 5225.0),
		},
		{
			Name: "ni_sol", Corr: "gosse2014", Units: "[wt.%]",
			LongName:    "nickel solubility",
			Description: "Nickel solubility in liquid lead",
			Tmin:        598.0, Tmax: 917.0,
			Eval: logSol(1.36, 1395.0),
		},
		{
			Name: "cr_sol", Corr: "gosse2014", Units: "[wt.%]",
			LongName:    "chromium solubility",
			Description: "Chromium solubility in liquid lead",
			Tmin:        601.0, Tmax: 1773.0,
			Eval: logSol(3.62, 6648.0),
		},
		{
			Name: "cr_sol", Corr: "alden1958", Units: "[wt.%]",
			LongName:    "chromium solubility",
			Description: "Chromium solubility in liquid lead",
			Tmin:        1181.0, Tmax: 1483.0,
			Eval: logSol(3.74, 6750.0),
		},
		{
			Name: "cr_sol", Corr: "venkatraman1988", Units: "[wt.%]",
			LongName:    "chromium solubility",
			Description: "Chromium solubility in liquid lead",
			Tmin:        1173.0, Tmax: 1473.0,
			Eval: logSol(3.7, 6720.0),
		},
		{
			Name: "si_sol", Corr: "liqmet", Units: "[wt.%]",
			LongName:    "silicon solubility",
			Description: "Silicon solubility in liquid lead",
			Tmin:        1323.0, Tmax: 1523.0,
			Eval: logSol(3.886, 7180.0),
		},
		{
			Name: "o_sol", Corr: "liqmet", Units: "[wt.%]",
			LongName:    "oxygen solubility",
			Description: "Oxygen solubility in liquid lead",
			Tmin:        673.0, Tmax: 1373.0,
			Eval: logSol(3.23, 5043.0),
		},
		{
			Name: "o_dif", Corr: "gromov1996", Units: "[cm^2/s]",
			LongName:    "oxygen diffusivity",
			Description: "Oxygen diffusivity in liquid lead",
			Tmin:        673.0, Tmax: 1273.0,
			Eval: arrDif(6.6e-5, 16158.0),
		},
		{
			Name: "o_dif", Corr: "arcella1968", Units: "[cm^2/s]",
			LongName:    "oxygen diffusivity",
			Description: "Oxygen diffusivity in liquid lead",
			Tmin:        973.0, Tmax: 1173.0,
			Eval: arrDif(6.32e-5, 14979.0),
		},
		{
			Name: "o_dif", Corr: "swzarc1972", Units: "[cm^2/s]",
			LongName:    "oxygen diffusivity",
			Description: "Oxygen diffusivity in liquid lead",
			Tmin:        1013.0, Tmax: 1353.0,
			Eval: arrDif(1.44e-3, 25942.0),
		},
		{
			Name: "fe_dif", Corr: "liqmet", Units: "[cm^2/s]",
			LongName:    "iron diffusivity",
			Description: "Iron diffusivity in liquid lead",
			Tmin:        973.0, Tmax: 1273.0,
			Eval: logSol(-2.31, 2295.0),
		},
		{
			Name: "co_dif", Corr: "liqmet", Units: "[cm^2/s]",
			LongName:    "cobalt diffusivity",
			Description: "Cobalt diffusivity in liquid lead",
			Tmin:        1023.0, Tmax: 1273.0,
			Eval: arrDif(4.6e-4, 22154.0),
		},
	}
}
