// Copyright 2017 The Liqmet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metal

import (
	"sort"

	"github.com/liqmet/liqmet/prop"
)

// SelectCorrelation sets the active correlation variant of a property for one
// species. Affects state objects constructed afterwards only.
func SelectCorrelation(sp Species, name, corr string) error {
	return registryOf(sp).Select(name, corr)
}

// AvailableCorrelations returns the sorted correlation ids known for a
// property of one species
func AvailableCorrelations(sp Species, name string) ([]string, error) {
	return registryOf(sp).Variants(name)
}

// DefaultCorrelation returns the default correlation id of a property
func DefaultCorrelation(sp Species, name string) string {
	return registryOf(sp).Default(name)
}

// SetRootToUse sets the species-scoped default root index used when a state
// is built from a property whose correlation is not one-to-one
func SetRootToUse(sp Species, name string, rootIndex int) {
	registryOf(sp).SetRootToUse(name, rootIndex)
}

// RegisterCustom loads user-supplied correlation variants into the registry
// of a species. Custom variants previously registered for the same property
// names are replaced; if the replacement removes the active variant of a
// property, the selection reverts to the default and a warning is emitted
// through prop.Warn.
func RegisterCustom(sp Species, corrs ...*prop.Correlation) error {
	return registryOf(sp).Merge(corrs...)
}

// PropertiesForInitialization returns the sorted quantities a state object of
// the species can be built from: the temperature plus every property name
func PropertiesForInitialization(sp Species) []string {
	names := append(registryOf(sp).Names(), "T")
	sort.Strings(names)
	return names
}

// CpMin returns the minimum of the heat capacity over the validity range of
// one correlation variant; an empty corr selects the default variant
func CpMin(sp Species, corr string) (float64, error) {
	b, err := cpBounds(sp, corr)
	if err != nil {
		return 0, err
	}
	return b.Min, nil
}

// TAtCpMin returns the temperature of the heat capacity minimum [K]; an empty
// corr selects the default variant
func TAtCpMin(sp Species, corr string) (float64, error) {
	b, err := cpBounds(sp, corr)
	if err != nil {
		return 0, err
	}
	return b.TatMin, nil
}

func cpBounds(sp Species, corr string) (prop.Bounds, error) {
	reg := registryOf(sp)
	if corr == "" {
		corr = reg.Default("cp")
	}
	return reg.BoundsOf("cp", corr)
}
