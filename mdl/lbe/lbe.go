// Copyright 2017 The Liqmet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package lbe provides the correlation registry of the lead-bismuth eutectic
// alloy (44.5 wt.% lead, 55.5 wt.% bismuth)
package lbe

import (
	_ "embed"
	"sync"

	"github.com/cpmech/gosl/chk"

	"github.com/liqmet/liqmet/prop"
)

// characteristic constants of the lead-bismuth eutectic
const (
	Tmelt     = 398.0    // melting temperature [K]
	Tboil     = 1927.0   // boiling temperature [K]
	Qmelt     = 38.6e3   // melting latent heat [J/kg]
	Qboil     = 856.6e3  // vaporisation heat [J/kg]
	MolarMass = 0.55*208.98 + 0.45*207.20 // molar mass [g/mol]
	GuessCoef = 2.0      // inverse solver seed, as multiple of Tmelt
)

//go:embed bounds.json
var boundsJSON []byte

var (
	once     sync.Once
	registry *prop.Registry
)

// Registry returns the correlation registry of the lead-bismuth eutectic
func Registry() *prop.Registry {
	once.Do(build)
	return registry
}

func build() {
	bounds, err := prop.DecodeBounds(boundsJSON)
	if err != nil {
		chk.Panic("lbe: cannot decode bounds cache: %v", err)
	}
	registry = prop.NewRegistry("lbe", Tmelt, Tboil, Qmelt, Qboil, MolarMass, GuessCoef, bounds)
	registry.SetDefault("fe_sol", "gosse2014")
	registry.SetDefault("ni_sol", "gosse2014")
	registry.SetDefault("cr_sol", "gosse2014")
	registry.SetDefault("o_dif", "gromov1996")
	for _, c := range append(thermophysical(), thermochemical()...) {
		if err := registry.Add(c); err != nil {
			chk.Panic("lbe: %v", err)
		}
	}
}
