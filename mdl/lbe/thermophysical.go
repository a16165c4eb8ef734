// Copyright 2017 The Liqmet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lbe

import (
	"math"

	"github.com/liqmet/liqmet/prop"
)

func soundVelocity(T float64) float64 {
	return 1855.0 - 0.212*T
}

func thermalExpansion(T float64) float64 {
	return 1.0 / (8558.0 - T)
}

func heatCapacity(T float64) float64 {
	return 164.8 - T*(3.94e-2-1.25e-5*T) - 4.56e5/T/T
}

func density(T, p float64) float64 {
	rho0 := 11065.0 - 1.293*T
	us := soundVelocity(T)
	al := thermalExpansion(T)
	return rho0 + (1.0/us/us+T*al*al/heatCapacity(T))*(p-prop.Patm)
}

func thermophysical() []*prop.Correlation {
	ps := &prop.Correlation{
		Name: "p_s", Corr: "sobolev2011", Units: "[Pa]",
		LongName:    "saturation vapour pressure",
		Description: "Liquid lbe saturation vapour pressure",
		Tmin:        Tmelt, Tmax: Tboil,
		Eval: func(T, p float64) float64 { return 1.22e10 * math.Exp(-22552.0/T) },
	}
	ps.Guess = prop.VapourPressureGuess
	return []*prop.Correlation{
		ps,
		{
			Name: "sigma", Corr: "plevachuk2008", Units: "[N/m]",
			LongName:    "surface tension",
			Description: "Liquid lbe surface tension",
			Tmin:        Tmelt, Tmax: 1400.0,
			Eval: func(T, p float64) float64 { return (448.5 - 0.0799*T) * 1e-3 },
		},
		{
			Name: "rho", Corr: "liqmet", Units: "[kg/m^3]",
			LongName:    "density",
			Description: "Liquid lbe density",
			Tmin:        Tmelt, Tmax: Tboil,
			Eval: density,
		},
		{
			Name: "alpha", Corr: "liqmet", Units: "[1/K]",
			LongName:    "thermal expansion coefficient",
			Description: "Liquid lbe thermal expansion coefficient",
			Tmin:        Tmelt, Tmax: Tboil,
			Eval: func(T, p float64) float64 { return thermalExpansion(T) },
		},
		{
			Name: "u_s", Corr: "sobolev2011", Units: "[m/s]",
			LongName:    "sound velocity",
			Description: "Sound velocity in liquid lbe",
			Tmin:        400.0, Tmax: 1100.0,
			Eval: func(T, p float64) float64 { return soundVelocity(T) },
		},
		{
			Name: "beta_s", Corr: "liqmet", Units: "[1/Pa]",
			LongName:    "isentropic compressibility",
			Description: "Liquid lbe isentropic compressibility",
			Tmin:        400.0, Tmax: 1100.0,
			Eval: func(T, p float64) float64 {
				us := soundVelocity(T)
				return 1.0 / (density(T, p) * us * us)
			},
		},
		{
			Name: "cp", Corr: "sobolev2011", Units: "[J/(kg*K)]",
			LongName:     "specific heat capacity",
			Description:  "Liquid lbe specific heat capacity",
			Tmin:         400.0, Tmax: Tboil,
			NonInjective: true,
			GuessCoefs:   []float64{1.0, 4.0},
			Eval:         func(T, p float64) float64 { return heatCapacity(T) },
		},
		{
			Name: "h", Corr: "sobolev2011", Units: "[J/kg]",
			LongName:    "specific enthalpy",
			Description: "Liquid lbe specific enthalpy (as difference with respect to the melting point enthalpy)",
			Tmin:        400.0, Tmax: Tboil,
			Eval: func(T, p float64) float64 {
				return T*(164.8-T*(1.97e-2-4.167e-6*T)) -
					Tmelt*(164.8-Tmelt*(1.97e-2-4.167e-6*Tmelt)) +
					4.56e5*(1.0/T-1.0/Tmelt)
			},
		},
		{
			Name: "mu", Corr: "liqmet", Units: "[Pa*s]",
			LongName:    "dynamic viscosity",
			Description: "Liquid lbe dynamic viscosity",
			Tmin:        Tmelt, Tmax: 1300.0,
			Eval: func(T, p float64) float64 { return 4.94e-4 * math.Exp(754.1/T) },
		},
		{
			Name: "r", Corr: "liqmet", Units: "[Ohm*m]",
			LongName:    "electrical resistivity",
			Description: "Liquid lbe electrical resistivity",
			Tmin:        400.0, Tmax: 1100.0,
			Eval: func(T, p float64) float64 { return (90.9 + 0.048*T) * 1e-8 },
		},
		{
			Name: "k", Corr: "sobolev2011", Units: "[W/(m*K)]",
			LongName:    "thermal conductivity",
			Description: "Liquid lbe thermal conductivity",
			Tmin:        Tmelt, Tmax: 1200.0,
			Eval: func(T, p float64) float64 { return 3.284 + T*(1.617e-2-2.305e-6*T) },
		},
	}
}
