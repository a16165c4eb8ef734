// Copyright 2017 The Liqmet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bismuth provides the correlation registry of liquid bismuth
package bismuth

import (
	_ "embed"
	"sync"

	"github.com/cpmech/gosl/chk"

	"github.com/liqmet/liqmet/prop"
)

// characteristic constants of bismuth
const (
	Tmelt     = 544.6    // melting temperature [K]
	Tboil     = 1831.0   // boiling temperature [K]
	Qmelt     = 53.3e3   // melting latent heat [J/kg]
	Qboil     = 856.2e3  // vaporisation heat [J/kg]
	MolarMass = 208.98   // molar mass [g/mol]
	GuessCoef = 1.5      // inverse solver seed, as multiple of Tmelt
)

//go:embed bounds.json
var boundsJSON []byte

var (
	once     sync.Once
	registry *prop.Registry
)

// Registry returns the correlation registry of liquid bismuth
func Registry() *prop.Registry {
	once.Do(build)
	return registry
}

func build() {
	bounds, err := prop.DecodeBounds(boundsJSON)
	if err != nil {
		chk.Panic("bismuth: cannot decode bounds cache: %v", err)
	}
	registry = prop.NewRegistry("bismuth", Tmelt, Tboil, Qmelt, Qboil, MolarMass, GuessCoef, bounds)
	registry.SetDefault("fe_sol", "gosse2014")
	registry.SetDefault("ni_sol", "gosse2014")
	registry.SetDefault("cr_sol", "venkatraman1988")
	registry.SetDefault("o_dif", "fitzner1980")
	for _, c := range append(thermophysical(), thermochemical()...) {
		if err := registry.Add(c); err != nil {
			chk.Panic("bismuth: %v", err)
		}
	}
}
