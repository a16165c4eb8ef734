// Copyright 2017 The Liqmet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lead

import (
	"math"

	"github.com/liqmet/liqmet/prop"
)

// limSat builds the oxygen concentration lower limit for a dissolved metal at
// its saturation concentration: exp(-dg/(2*R*T) + ds/(2*R)) * o_sol(T) [wt.%]
func limSat(dg, ds float64) prop.EvalFn {
	oSol := logSol(3.23, 5043.0)
	return func(T, p float64) float64 {
		return math.Exp(-dg/(2.0*prop.Rgas*T)+ds/(2.0*prop.Rgas)) * oSol(T, p)
	}
}

// limTimes multiplies a saturation lower limit by the metal solubility raised
// to the stoichiometric exponent of its oxide
func limTimes(sat, sol prop.EvalFn, exp float64) prop.EvalFn {
	return func(T, p float64) float64 {
		return math.Pow(sol(T, p), exp) * sat(T, p)
	}
}

// limGuess builds the two-level seed of the lower-limit laws: values span so
// many decades that a single seed cannot serve both ends of the range
func limGuess(threshold float64) prop.GuessFn {
	return func(value float64) float64 {
		if value < threshold {
			return 650.0
		}
		return 1700.0
	}
}

func oxygenLimits() []*prop.Correlation {
	limFeSat := limSat(114380.0, -42.2)
	limCrSat := limSat(317800.0, -27.3)
	limNiSat := limSat(36080.0, -23.4)
	limSiSat := limSat(471710.0, -19.5)
	return []*prop.Correlation{
		{
			Name: "lim_fe_sat", Corr: "liqmet", Units: "[wt.%]",
			LongName:    "lower oxygen limit for saturated iron",
			Description: "Oxygen concentration lower limit for iron at its saturation concentration in liquid lead",
			Tmin:        673.0, Tmax: 1000.0,
			Eval: limFeSat,
		},
		{
			Name: "lim_cr_sat", Corr: "liqmet", Units: "[wt.%]",
			LongName:    "lower oxygen limit for saturated chromium",
			Description: "Oxygen concentration lower limit for chromium at its saturation concentration in liquid lead",
			Tmin:        673.0, Tmax: 1000.0,
			Eval:  limCrSat,
			Guess: limGuess(1e-11),
		},
		{
			Name: "lim_ni_sat", Corr: "liqmet", Units: "[wt.%]",
			LongName:    "lower oxygen limit for saturated nickel",
			Description: "Oxygen concentration lower limit for nickel at its saturation concentration in liquid lead",
			Tmin:        673.0, Tmax: 1000.0,
			Eval: limNiSat,
		},
		{
			Name: "lim_si_sat", Corr: "liqmet", Units: "[wt.%]",
			LongName:    "lower oxygen limit for saturated silicon",
			Description: "Oxygen concentration lower limit for silicon at its saturation concentration in liquid lead",
			Tmin:        673.0, Tmax: 1000.0,
			Eval:  limSiSat,
			Guess: limGuess(1e-14),
		},
		{
			Name: "lim_al_sat", Corr: "liqmet", Units: "[wt.%]",
			LongName:    "lower oxygen limit for saturated aluminium",
			Description: "Oxygen concentration lower limit for aluminium at its saturation concentration in liquid lead",
			Tmin:        673.0, Tmax: 1000.0,
			Eval:  limSat(679540.0, 10.7),
			Guess: limGuess(1e-21),
		},
		{
			Name: "lim_cr", Corr: "gosse2014", Units: "[wt.%]",
			LongName:    "lower oxygen limit times chromium concentration",
			Description: "Oxygen concentration lower limit times chromium concentration raised to 2/3 in lead",
			Tmin:        673.0, Tmax: 1000.0,
			Eval:  limTimes(limCrSat, logSol(3.62, 6648.0), 2.0/3.0),
			Guess: limGuess(1e-13),
		},
		{
			Name: "lim_cr", Corr: "venkatraman1988", Units: "[wt.%]",
			LongName:    "lower oxygen limit times chromium concentration",
			Description: "Oxygen concentration lower limit times chromium concentration raised to 2/3 in lead",
			Tmin:        673.0, Tmax: 1000.0,
			Eval:  limTimes(limCrSat, logSol(3.7, 6720.0), 2.0/3.0),
			Guess: limGuess(1e-13),
		},
		{
			Name: "lim_cr", Corr: "alden1958", Units: "[wt.%]",
			LongName:    "lower oxygen limit times chromium concentration",
			Description: "Oxygen concentration lower limit times chromium concentration raised to 2/3 in lead",
			Tmin:        673.0, Tmax: 1000.0,
			Eval:  limTimes(limCrSat, logSol(3.74, 6750.0), 2.0/3.0),
			Guess: limGuess(1e-13),
		},
		{
			Name: "lim_ni", Corr: "liqmet", Units: "[wt.%]",
			LongName:    "lower oxygen limit times nickel concentration",
			Description: "Oxygen concentration lower limit times nickel concentration in lead",
			Tmin:        673.0, Tmax: 917.0,
			Eval: limTimes(limNiSat, logSol(1.36, 1395.0), 1.0),
		},
		{
			Name: "lim_fe", Corr: "liqmet", Units: "[wt.%]",
			LongName:    "lower oxygen limit times iron concentration",
			Description: "Oxygen concentration lower limit times iron concentration raised to 3/4 in lead",
			Tmin:        673.0, Tmax: 1000.0,
			Eval:  limTimes(limFeSat, logSol(2.11, 5225.0), 3.0/4.0),
			Guess: limGuess(1e-8),
		},
		{
			Name: "lim_si", Corr: "liqmet", Units: "[wt.%]",
			LongName:    "lower oxygen limit times silicon concentration",
			Description: "Oxygen concentration lower limit times silicon concentration raised to 1/2 in lead",
			Tmin:        673.0, Tmax: 1000.0,
			Eval:  limTimes(limSiSat, logSol(3.886, 7180.0), 1.0/2.0),
			Guess: limGuess(1e-16),
		},
	}
}
