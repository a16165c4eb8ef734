// Copyright 2017 The Liqmet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import "github.com/cpmech/gosl/io"

// UnknownPropertyError indicates that no correlation is registered under the
// requested property name for the species
type UnknownPropertyError struct {
	Species string
	Name    string
}

func (e *UnknownPropertyError) Error() string {
	return io.Sf("%s: unknown property %q", e.Species, e.Name)
}

// UnknownCorrelationError indicates that the requested (property, correlation)
// pair was never registered for the species
type UnknownCorrelationError struct {
	Species string
	Name    string
	Corr    string
}

func (e *UnknownCorrelationError) Error() string {
	return io.Sf("%s: property %q implements no correlation %q", e.Species, e.Name, e.Corr)
}

// MissingBoundsError indicates that a composite key is absent from the bounds
// cache
type MissingBoundsError struct {
	Key string
}

func (e *MissingBoundsError) Error() string {
	return io.Sf("bounds cache has no entry for key %q", e.Key)
}

// RootFindingError indicates that the inverse solver did not converge
type RootFindingError struct {
	Prop   string  // property name
	Target float64 // value the solver tried to match
	LastT  float64 // last iterate [K]
}

func (e *RootFindingError) Error() string {
	return io.Sf("inverse solver did not converge for property %q: target value %g, last iterate %g [K]", e.Prop, e.Target, e.LastT)
}
