// Copyright 2017 The Liqmet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lead

import (
	"math"

	"github.com/liqmet/liqmet/prop"
)

// soundVelocity is the sound velocity in liquid lead [m/s]
func soundVelocity(T float64) float64 {
	return 1953.0 - 0.246*T
}

// thermalExpansion is the thermal expansion coefficient of liquid lead [1/K]
func thermalExpansion(T float64) float64 {
	return 1.0 / (8942.0 - T)
}

// heatCapacitySobolev is the specific heat capacity of liquid lead at
// constant pressure [J/(kg*K)]
func heatCapacitySobolev(T float64) float64 {
	return 176.2 - T*(4.923e-2-1.544e-5*T) - 1.524e6/T/T
}

func heatCapacityGurvich(T float64) float64 {
	return 175.1 - T*(4.961e-2-T*(1.985e-5-2.099e-9*T)) - 1.524e6/T/T
}

// density is the liquid lead density [kg/m^3]. The pressure correction uses
// the isothermal compressibility, 1/u_s^2 + T*alpha^2/cp.
func density(T, p float64) float64 {
	rho0 := 11441.0 - 1.2795*T
	us := soundVelocity(T)
	al := thermalExpansion(T)
	return rho0 + (1.0/us/us+T*al*al/heatCapacitySobolev(T))*(p-prop.Patm)
}

func thermophysical() []*prop.Correlation {
	ps := &prop.Correlation{
		Name: "p_s", Corr: "sobolev2011", Units: "[Pa]",
		LongName:    "saturation vapour pressure",
		Description: "Liquid lead saturation vapour pressure",
		Tmin:        Tmelt, Tmax: Tboil,
		Eval: func(T, p float64) float64 { return 5.76e9 * math.Exp(-22131.0/T) },
	}
	ps.Guess = prop.VapourPressureGuess
	return []*prop.Correlation{
		ps,
		{
			Name: "sigma", Corr: "jauch1986", Units: "[N/m]",
			LongName:    "surface tension",
			Description: "Liquid lead surface tension",
			Tmin:        Tmelt, Tmax: 1300.0,
			Eval: func(T, p float64) float64 { return (525.9 - 0.113*T) * 1e-3 },
		},
		{
			Name: "rho", Corr: "sobolev2008a", Units: "[kg/m^3]",
			LongName:    "density",
			Description: "Liquid lead density",
			Tmin:        Tmelt, Tmax: Tboil,
			Eval: density,
		},
		{
			Name: "alpha", Corr: "liqmet", Units: "[1/K]",
			LongName:    "thermal expansion coefficient",
			Description: "Liquid lead thermal expansion coefficient",
			Tmin:        Tmelt, Tmax: Tboil,
			Eval: func(T, p float64) float64 { return thermalExpansion(T) },
		},
		{
			Name: "u_s", Corr: "sobolev2011", Units: "[m/s]",
			LongName:    "sound velocity",
			Description: "Sound velocity in liquid lead",
			Tmin:        Tmelt, Tmax: 2000.0,
			Eval: func(T, p float64) float64 { return soundVelocity(T) },
		},
		{
			Name: "beta_s", Corr: "liqmet", Units: "[1/Pa]",
			LongName:    "isentropic compressibility",
			Description: "Liquid lead isentropic compressibility",
			Tmin:        Tmelt, Tmax: 2000.0,
			Eval: func(T, p float64) float64 {
				us := soundVelocity(T)
				return 1.0 / (density(T, p) * us * us)
			},
		},
		{
			Name: "cp", Corr: "sobolev2011", Units: "[J/(kg*K)]",
			LongName:     "specific heat capacity",
			Description:  "Liquid lead specific heat capacity",
			Tmin:         Tmelt, Tmax: 2000.0,
			NonInjective: true,
			GuessCoefs:   []float64{1.0, 4.0},
			Eval:         func(T, p float64) float64 { return heatCapacitySobolev(T) },
		},
		{
			Name: "cp", Corr: "gurvich1991", Units: "[J/(kg*K)]",
			LongName:     "specific heat capacity",
			Description:  "Liquid lead specific heat capacity",
			Tmin:         Tmelt, Tmax: 2000.0,
			NonInjective: true,
			GuessCoefs:   []float64{1.0, 4.0},
			Eval:         func(T, p float64) float64 { return heatCapacityGurvich(T) },
		},
		{
			Name: "h", Corr: "sobolev2011", Units: "[J/kg]",
			LongName:    "specific enthalpy",
			Description: "Liquid lead specific enthalpy (as difference with respect to the melting point enthalpy)",
			Tmin:        Tmelt, Tmax: 2000.0,
			Eval: func(T, p float64) float64 {
				return T*(176.2-T*(2.4615e-2-5.147e-6*T)) -
					Tmelt*(176.2-Tmelt*(2.4615e-2-5.147e-6*Tmelt)) +
					1.524e6*(1.0/T-1.0/Tmelt)
			},
		},
		{
			Name: "mu", Corr: "liqmet", Units: "[Pa*s]",
			LongName:    "dynamic viscosity",
			Description: "Liquid lead dynamic viscosity",
			Tmin:        Tmelt, Tmax: 1473.0,
			Eval: func(T, p float64) float64 { return 4.55e-4 * math.Exp(1069.0/T) },
		},
		{
			Name: "r", Corr: "liqmet", Units: "[Ohm*m]",
			LongName:    "electrical resistivity",
			Description: "Liquid lead electrical resistivity",
			Tmin:        Tmelt, Tmax: 1273.0,
			Eval: func(T, p float64) float64 { return (67.0 + 0.0471*T) * 1e-8 },
		},
		{
			Name: "k", Corr: "liqmet", Units: "[W/(m*K)]",
			LongName:    "thermal conductivity",
			Description: "Liquid lead thermal conductivity",
			Tmin:        Tmelt, Tmax: 1300.0,
			Eval: func(T, p float64) float64 { return 9.2 + 0.011*T },
		},
	}
}
