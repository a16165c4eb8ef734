// Copyright 2017 The Liqmet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bismuth

import (
	"math"

	"github.com/liqmet/liqmet/prop"
)

func soundVelocity(T float64) float64 {
	return 1616.0 + T*(0.187-2.2e-4*T)
}

func thermalExpansion(T float64) float64 {
	return 1.0 / (8791.0 - T)
}

func heatCapacity(T float64) float64 {
	return 118.2 + 5.934e-3*T + 7.183e6/T/T
}

func density(T, p float64) float64 {
	rho0 := 10725.0 - 1.22*T
	us := soundVelocity(T)
	al := thermalExpansion(T)
	return rho0 + (1.0/us/us+T*al*al/heatCapacity(T))*(p-prop.Patm)
}

func thermophysical() []*prop.Correlation {
	ps := &prop.Correlation{
		Name: "p_s", Corr: "sobolev2011", Units: "[Pa]",
		LongName:    "saturation vapour pressure",
		Description: "Liquid bismuth saturation vapour pressure",
		Tmin:        Tmelt, Tmax: Tboil,
		Eval: func(T, p float64) float64 { return 2.67e10 * math.Exp(-22858.0/T) },
	}
	ps.Guess = prop.VapourPressureGuess
	return []*prop.Correlation{
		ps,
		{
			Name: "sigma", Corr: "sobolev2011", Units: "[N/m]",
			LongName:    "surface tension",
			Description: "Liquid bismuth surface tension",
			Tmin:        Tmelt, Tmax: 1400.0,
			Eval: func(T, p float64) float64 { return (420.8 - 0.081*T) * 1e-3 },
		},
		{
			Name: "rho", Corr: "imbeni1998", Units: "[kg/m^3]",
			LongName:    "density",
			Description: "Liquid bismuth density",
			Tmin:        Tmelt, Tmax: Tboil,
			Eval: density,
		},
		{
			Name: "alpha", Corr: "liqmet", Units: "[1/K]",
			LongName:    "thermal expansion coefficient",
			Description: "Liquid bismuth thermal expansion coefficient",
			Tmin:        Tmelt, Tmax: Tboil,
			Eval: func(T, p float64) float64 { return thermalExpansion(T) },
		},
		{
			Name: "u_s", Corr: "sobolev2011", Units: "[m/s]",
			LongName:    "sound velocity",
			Description: "Sound velocity in liquid bismuth",
			Tmin:        Tmelt, Tmax: 1800.0,
			Eval: func(T, p float64) float64 { return soundVelocity(T) },
		},
		{
			Name: "beta_s", Corr: "liqmet", Units: "[1/Pa]",
			LongName:    "isentropic compressibility",
			Description: "Liquid bismuth isentropic compressibility",
			Tmin:        Tmelt, Tmax: 1800.0,
			Eval: func(T, p float64) float64 {
				us := soundVelocity(T)
				return 1.0 / (density(T, p) * us * us)
			},
		},
		{
			Name: "cp", Corr: "imbeni1998", Units: "[J/(kg*K)]",
			LongName:     "specific heat capacity",
			Description:  "Liquid bismuth specific heat capacity",
			Tmin:         Tmelt, Tmax: Tboil,
			NonInjective: true,
			GuessCoefs:   []float64{1.0, 3.0},
			Eval:         func(T, p float64) float64 { return heatCapacity(T) },
		},
		{
			Name: "h", Corr: "sobolev2011", Units: "[J/kg]",
			LongName:    "specific enthalpy",
			Description: "Liquid bismuth specific enthalpy (as difference with respect to the melting point enthalpy)",
			Tmin:        Tmelt, Tmax: Tboil,
			Eval: func(T, p float64) float64 {
				return T*(118.2+2.967e-3*T) -
					Tmelt*(118.2+2.967e-3*Tmelt) -
					7.183e6*(1.0/T-1.0/Tmelt)
			},
		},
		{
			Name: "mu", Corr: "lucas1984b", Units: "[Pa*s]",
			LongName:    "dynamic viscosity",
			Description: "Liquid bismuth dynamic viscosity",
			Tmin:        Tmelt, Tmax: 1300.0,
			Eval: func(T, p float64) float64 { return 4.456e-4 * math.Exp(780.0/T) },
		},
		{
			Name: "r", Corr: "liqmet", Units: "[Ohm*m]",
			LongName:    "electrical resistivity",
			Description: "Liquid bismuth electrical resistivity",
			Tmin:        545.0, Tmax: 1423.0,
			Eval: func(T, p float64) float64 { return (98.96 + 0.0554*T) * 1e-8 },
		},
		{
			Name: "k", Corr: "touloukian1970b", Units: "[W/(m*K)]",
			LongName:    "thermal conductivity",
			Description: "Liquid bismuth thermal conductivity",
			Tmin:        Tmelt, Tmax: 1000.0,
			Eval: func(T, p float64) float64 { return 7.34 + 9.5e-3*T },
		},
	}
}
