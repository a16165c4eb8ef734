// Copyright 2017 The Liqmet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metal

// config collects the construction arguments of a state object
type config struct {
	nquant    int     // number of initialising quantities seen
	name      string  // property key, or "T"
	value     float64 // value of the initialising quantity
	pressure  float64 // [Pa]
	rootIndex int     // explicit root index for non-injective properties
	hasRoot   bool
}

// Option configures the construction of a state object
type Option func(*config)

// T initialises the state from the temperature [K]
func T(value float64) Option {
	return func(c *config) {
		c.nquant++
		c.name = "T"
		c.value = value
	}
}

// Property initialises the state from one property value; the temperature is
// recovered by inverting the active correlation of the property
func Property(name string, value float64) Option {
	return func(c *config) {
		c.nquant++
		c.name = name
		c.value = value
	}
}

// Pressure sets the state pressure [Pa]; the default is atmospheric
func Pressure(p float64) Option {
	return func(c *config) {
		c.pressure = p
	}
}

// RootIndex picks the temperature root when the state is initialised from a
// property whose correlation is not one-to-one, e.g. the heat capacity.
// Roots are sorted by ascending temperature. Overrides the species-scoped
// setting of SetRootToUse for this construction only.
func RootIndex(i int) Option {
	return func(c *config) {
		c.rootIndex = i
		c.hasRoot = true
	}
}
