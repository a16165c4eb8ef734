// Copyright 2017 The Liqmet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metal

import (
	"github.com/cpmech/gosl/io"
)

// MultipleInitializerError reports a construction attempt with zero or more
// than one initialising quantity. A state object needs exactly one: either
// the temperature or a single property value.
type MultipleInitializerError struct {
	Count int
}

func (e *MultipleInitializerError) Error() string {
	if e.Count == 0 {
		return "no initialising quantity given; pass T or exactly one property value"
	}
	return io.Sf("%d initialising quantities given; pass T or exactly one property value", e.Count)
}

// TemperatureOutOfBoundsError reports a temperature at which the species is
// not liquid: non-positive, at or below melting, or at or above boiling.
type TemperatureOutOfBoundsError struct {
	Species      string
	T            float64
	Tmelt, Tboil float64
}

func (e *TemperatureOutOfBoundsError) Error() string {
	switch {
	case e.T <= 0:
		return io.Sf("temperature must be strictly positive, got %g [K]", e.T)
	case e.T <= e.Tmelt:
		return io.Sf("temperature %g [K] is %g [K] below the %s melting temperature %g [K]", e.T, e.Tmelt-e.T, e.Species, e.Tmelt)
	}
	return io.Sf("temperature %g [K] is %g [K] above the %s boiling temperature %g [K]", e.T, e.T-e.Tboil, e.Species, e.Tboil)
}
