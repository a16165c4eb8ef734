// Copyright 2017 The Liqmet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package lead provides the correlation registry of liquid lead: the
// thermophysical and thermochemical property correlations recommended by the
// handbook [1], each under its correlation identifier.
//  References:
//   [1] OECD/NEA (2015) Handbook on Lead-bismuth Eutectic Alloy and Lead
//       Properties, Materials Compatibility, Thermal-hydraulics and
//       Technologies, NEA No. 7268
package lead

import (
	_ "embed"
	"sync"

	"github.com/cpmech/gosl/chk"

	"github.com/liqmet/liqmet/prop"
)

// characteristic constants of lead
const (
	Tmelt     = 600.6    // melting temperature [K]
	Tboil     = 2021.0   // boiling temperature [K]
	Qmelt     = 23.07e3  // melting latent heat [J/kg]
	Qboil     = 858.6e3  // vaporisation heat [J/kg]
	MolarMass = 207.20   // molar mass [g/mol]
	GuessCoef = 1.7      // inverse solver seed, as multiple of Tmelt
)

//go:embed bounds.json
var boundsJSON []byte

var (
	once     sync.Once
	registry *prop.Registry
)

// Registry returns the correlation registry of liquid lead. The registry is
// built once and shared; selecting correlation variants on it affects every
// state object constructed afterwards.
func Registry() *prop.Registry {
	once.Do(build)
	return registry
}

func build() {
	bounds, err := prop.DecodeBounds(boundsJSON)
	if err != nil {
		chk.Panic("lead: cannot decode bounds cache: %v", err)
	}
	registry = prop.NewRegistry("lead", Tmelt, Tboil, Qmelt, Qboil, MolarMass, GuessCoef, bounds)
	registry.SetDefault("cp", "sobolev2011")
	registry.SetDefault("cr_sol", "gosse2014")
	registry.SetDefault("o_dif", "gromov1996")
	registry.SetDefault("lim_cr", "gosse2014")
	for _, c := range correlations() {
		if err := registry.Add(c); err != nil {
			chk.Panic("lead: %v", err)
		}
	}
}

func correlations() []*prop.Correlation {
	all := thermophysical()
	all = append(all, thermochemical()...)
	return append(all, oxygenLimits()...)
}
