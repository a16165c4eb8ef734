// Copyright 2017 The Liqmet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package metal provides liquid metal state objects for lead, bismuth and the
// lead-bismuth eutectic alloy. A state object is built from the temperature
// or from one property value (the temperature is then recovered by inverting
// the property correlation) and exposes every thermophysical and
// thermochemical property at its temperature and pressure.
//
// State objects snapshot the active correlation variants of their species at
// construction: selecting another variant afterwards only affects objects
// built later.
//  References:
//   [1] OECD/NEA (2015) Handbook on Lead-bismuth Eutectic Alloy and Lead
//       Properties, Materials Compatibility, Thermal-hydraulics and
//       Technologies, NEA No. 7268
package metal

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/liqmet/liqmet/mdl/bismuth"
	"github.com/liqmet/liqmet/mdl/lbe"
	"github.com/liqmet/liqmet/mdl/lead"
	"github.com/liqmet/liqmet/prop"
)

// Species enumerates the supported liquid metals
type Species int

const (
	Lead    Species = iota // pure lead
	Bismuth                // pure bismuth
	LBE                    // lead-bismuth eutectic alloy
)

func (o Species) String() string {
	switch o {
	case Lead:
		return "lead"
	case Bismuth:
		return "bismuth"
	case LBE:
		return "lbe"
	}
	return io.Sf("species(%d)", int(o))
}

// registryOf returns the correlation registry of a species
func registryOf(sp Species) *prop.Registry {
	switch sp {
	case Lead:
		return lead.Registry()
	case Bismuth:
		return bismuth.Registry()
	case LBE:
		return lbe.Registry()
	}
	chk.Panic("unknown species %d", int(sp))
	return nil
}

// LiquidMetal is the state of one liquid metal at fixed temperature and
// pressure. Immutable after construction.
type LiquidMetal struct {
	species Species
	reg     *prop.Registry
	corrs   map[string]*prop.Correlation // active variants at construction
	temp    float64                      // [K]
	press   float64                      // [Pa]
}

// New creates a liquid metal state. Exactly one initialising quantity must be
// given: T(value) or one Property(name, value); otherwise a
// MultipleInitializerError is returned. The temperature must lie strictly
// between the melting and boiling temperatures of the species.
func New(sp Species, opts ...Option) (*LiquidMetal, error) {
	cfg := config{pressure: prop.Patm}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.nquant != 1 {
		return nil, &MultipleInitializerError{Count: cfg.nquant}
	}
	if cfg.pressure <= 0 {
		return nil, chk.Err("pressure must be strictly positive, got %g [Pa]", cfg.pressure)
	}
	reg := registryOf(sp)
	o := &LiquidMetal{
		species: sp,
		reg:     reg,
		corrs:   reg.ActiveSnapshot(),
		press:   cfg.pressure,
	}
	if cfg.name == "T" {
		if err := o.assignT(cfg.value); err != nil {
			return nil, err
		}
		return o, nil
	}
	c, ok := o.corrs[cfg.name]
	if !ok {
		return nil, &prop.UnknownPropertyError{Species: reg.Species, Name: cfg.name}
	}
	root := reg.RootToUse(cfg.name)
	if cfg.hasRoot {
		root = cfg.rootIndex
	}
	T, err := prop.Invert(c, cfg.value, o.press, reg.DefaultGuess(), root)
	if err != nil {
		return nil, err
	}
	if err := o.assignT(T); err != nil {
		return nil, err
	}
	return o, nil
}

// assignT validates and stores the temperature
func (o *LiquidMetal) assignT(T float64) error {
	if T <= 0 || T <= o.reg.Tmelt || T >= o.reg.Tboil {
		return &TemperatureOutOfBoundsError{
			Species: o.reg.Species,
			T:       T,
			Tmelt:   o.reg.Tmelt,
			Tboil:   o.reg.Tboil,
		}
	}
	o.temp = T
	return nil
}

// Species returns the species of this state
func (o *LiquidMetal) Species() Species { return o.species }

// Temperature returns the state temperature [K]
func (o *LiquidMetal) Temperature() float64 { return o.temp }

// Pressure returns the state pressure [Pa]
func (o *LiquidMetal) Pressure() float64 { return o.press }

// Tmelt returns the melting temperature of the species [K]
func (o *LiquidMetal) Tmelt() float64 { return o.reg.Tmelt }

// Tboil returns the boiling temperature of the species [K]
func (o *LiquidMetal) Tboil() float64 { return o.reg.Tboil }

// Qmelt returns the melting latent heat of the species [J/kg]
func (o *LiquidMetal) Qmelt() float64 { return o.reg.Qmelt }

// Qboil returns the vaporisation heat of the species [J/kg]
func (o *LiquidMetal) Qboil() float64 { return o.reg.Qboil }

// MolarMass returns the molar mass of the species [g/mol]
func (o *LiquidMetal) MolarMass() float64 { return o.reg.MolarMass }

// Value evaluates one property at the state temperature and pressure.
// Evaluation outside the validity range of the correlation emits a warning
// through prop.Warn and returns the extrapolated value.
func (o *LiquidMetal) Value(name string) (float64, error) {
	c, ok := o.corrs[name]
	if !ok {
		return 0, &prop.UnknownPropertyError{Species: o.reg.Species, Name: name}
	}
	return c.Value(o.temp, o.press), nil
}

// mustValue evaluates a built-in property; unknown names are a programming
// error here
func (o *LiquidMetal) mustValue(name string) float64 {
	v, err := o.Value(name)
	if err != nil {
		chk.Panic("%v", err)
	}
	return v
}

// Ps returns the saturation vapour pressure [Pa]
func (o *LiquidMetal) Ps() float64 { return o.mustValue("p_s") }

// Sigma returns the surface tension [N/m]
func (o *LiquidMetal) Sigma() float64 { return o.mustValue("sigma") }

// Rho returns the density [kg/m^3]
func (o *LiquidMetal) Rho() float64 { return o.mustValue("rho") }

// Alpha returns the thermal expansion coefficient [1/K]
func (o *LiquidMetal) Alpha() float64 { return o.mustValue("alpha") }

// Us returns the sound velocity [m/s]
func (o *LiquidMetal) Us() float64 { return o.mustValue("u_s") }

// BetaS returns the isentropic compressibility [1/Pa]
func (o *LiquidMetal) BetaS() float64 { return o.mustValue("beta_s") }

// Cp returns the specific heat capacity [J/(kg*K)]
func (o *LiquidMetal) Cp() float64 { return o.mustValue("cp") }

// H returns the specific enthalpy, relative to the melting point [J/kg]
func (o *LiquidMetal) H() float64 { return o.mustValue("h") }

// Mu returns the dynamic viscosity [Pa*s]
func (o *LiquidMetal) Mu() float64 { return o.mustValue("mu") }

// R returns the electrical resistivity [Ohm*m]
func (o *LiquidMetal) R() float64 { return o.mustValue("r") }

// K returns the thermal conductivity [W/(m*K)]
func (o *LiquidMetal) K() float64 { return o.mustValue("k") }

// Pr returns the Prandtl number, cp*mu/k
func (o *LiquidMetal) Pr() (float64, error) {
	cp, err := o.Value("cp")
	if err != nil {
		return 0, err
	}
	mu, err := o.Value("mu")
	if err != nil {
		return 0, err
	}
	k, err := o.Value("k")
	if err != nil {
		return 0, err
	}
	return cp * mu / k, nil
}

// Properties returns the sorted property names available on this state
func (o *LiquidMetal) Properties() []string {
	names := make([]string, 0, len(o.corrs))
	for name := range o.corrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Correlation returns the correlation record backing one property in this
// state's snapshot
func (o *LiquidMetal) Correlation(name string) (*prop.Correlation, error) {
	c, ok := o.corrs[name]
	if !ok {
		return nil, &prop.UnknownPropertyError{Species: o.reg.Species, Name: name}
	}
	return c, nil
}

// PropertyInfo returns a formatted description of one property and of its
// value at the state temperature and pressure
func (o *LiquidMetal) PropertyInfo(name string) (string, error) {
	c, ok := o.corrs[name]
	if !ok {
		return "", &prop.UnknownPropertyError{Species: o.reg.Species, Name: name}
	}
	return c.Info(o.temp, o.press, 1), nil
}

// String returns a short description of the state
func (o *LiquidMetal) String() string {
	return io.Sf("%s(T=%.2f [K], p=%.2f [Pa])", o.species, o.temp, o.press)
}
