// Copyright 2017 The Liqmet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package prop implements the property-resolution engine for liquid metal
// correlations: self-describing correlation records, per-species registries
// of correlation variants, the bounds cache read contract, and the inverse
// solver that recovers temperature from a property value.
//  References:
//   [1] OECD/NEA (2015) Handbook on Lead-bismuth Eutectic Alloy and Lead
//       Properties, Materials Compatibility, Thermal-hydraulics and
//       Technologies, NEA No. 7268
package prop

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Patm is the standard atmospheric pressure [Pa]
const Patm = 101325.0

// Rgas is the molar gas constant [J/(mol*K)]
const Rgas = 8.314462618

// Warn delivers non-fatal warnings, e.g. evaluations outside a correlation's
// validity range. The default prints to standard output; callers may swap the
// hook but must not set it to nil.
var Warn = func(msg string) {
	io.Pfyel("%s\n", msg)
}

// EvalFn computes a property value from temperature T [K] and pressure p [Pa]
type EvalFn func(T, p float64) float64

// GuessFn maps a target property value onto an initial temperature guess [K]
// for the inverse solver. A non-positive return means "no hint".
type GuessFn func(value float64) float64

// Correlation is one empirical property correlation: a pure function of
// temperature (and fixed pressure) plus the metadata describing it.
// Correlations are value objects; once registered they are never mutated.
type Correlation struct {

	// identity
	Name        string // short property key; e.g. "rho"
	Corr        string // correlation identifier; e.g. "gosse2014"
	Units       string // e.g. "[kg/m^3]"
	LongName    string // e.g. "density"
	Description string // e.g. "Liquid lead density"

	// behaviour
	Tmin, Tmax   float64   // validity range [K]
	NonInjective bool      // value(T) is not one-to-one over positive T
	Eval         EvalFn    // the correlation function
	Guess        GuessFn   // optional solver seed hint
	GuessCoefs   []float64 // seed multipliers for non-injective correlations

	// extrema over the validity range (from the bounds cache)
	Min, Max       float64
	TatMin, TatMax float64
	hasBounds      bool
}

// Validate checks the metadata invariants of this correlation
func (o *Correlation) Validate() error {
	if o.Name == "" || o.Corr == "" {
		return chk.Err("correlation must carry a property name and a correlation id (got %q, %q)", o.Name, o.Corr)
	}
	if o.Eval == nil {
		return chk.Err("correlation %q (%s) has no evaluation function", o.Name, o.Corr)
	}
	if !(o.Tmin < o.Tmax) {
		return chk.Err("correlation %q (%s) has an invalid validity range [%g, %g]", o.Name, o.Corr, o.Tmin, o.Tmax)
	}
	if o.NonInjective && len(o.GuessCoefs) != 2 {
		return chk.Err("non-injective correlation %q (%s) must document its two solver seed coefficients", o.Name, o.Corr)
	}
	return nil
}

// Value evaluates the correlation at T [K] and p [Pa]. Evaluation outside the
// validity range is permitted: the extrapolated value is returned and a
// warning is emitted through Warn.
func (o *Correlation) Value(T, p float64) float64 {
	if T < o.Tmin || T > o.Tmax {
		Warn(io.Sf("%s (%s): temperature %.2f [K] is outside the validity range [%.2f, %.2f] [K]; the returned value is extrapolated", o.Name, o.Corr, T, o.Tmin, o.Tmax))
	}
	return o.Eval(T, p)
}

// Range returns the validity range of this correlation
func (o *Correlation) Range() (Tmin, Tmax float64) {
	return o.Tmin, o.Tmax
}

// BoundsKey returns the composite key of this correlation in the bounds cache
func (o *Correlation) BoundsKey() string {
	return strings.Replace(o.Name+"_"+o.Corr+"_"+o.Description, " ", "_", -1)
}

// HasBounds tells whether the extrema of this correlation are known
func (o *Correlation) HasBounds() bool {
	return o.hasBounds
}

// SetBounds stores precomputed extrema, e.g. read from the bounds cache
func (o *Correlation) SetBounds(b Bounds) {
	o.Min, o.TatMin = b.Min, b.TatMin
	o.Max, o.TatMax = b.Max, b.TatMax
	o.hasBounds = true
}

// ComputeBounds computes the extrema of the correlation over its validity
// range with a bounded scalar minimisation. Used for correlations that have
// no entry in a bounds cache, e.g. user-supplied ones.
func (o *Correlation) ComputeBounds() {
	o.TatMin, o.Min = minBounded(func(T float64) float64 { return o.Eval(T, Patm) }, o.Tmin, o.Tmax)
	o.TatMax, o.Max = minBounded(func(T float64) float64 { return -o.Eval(T, Patm) }, o.Tmin, o.Tmax)
	o.Max = -o.Max
	o.hasBounds = true
}

// Info returns a formatted description of the correlation and of its value at
// T [K] and p [Pa], indented by ntab tabs
func (o *Correlation) Info(T, p float64, ntab int) string {
	v := o.Value(T, p)
	tabs := strings.Repeat("\t", ntab)
	l := io.Sf("%s%s:\n", tabs, o.Name)
	if v < 1e-2 {
		l += io.Sf("%s\tValue: %.2e %s\n", tabs, v, o.Units)
	} else {
		l += io.Sf("%s\tValue: %.2f %s\n", tabs, v, o.Units)
	}
	l += io.Sf("%s\tValidity range: [%.2f, %.2f] K\n", tabs, o.Tmin, o.Tmax)
	l += io.Sf("%s\tCorrelation name: '%s'\n", tabs, o.Corr)
	l += io.Sf("%s\tLong name: %s\n", tabs, o.LongName)
	l += io.Sf("%s\tUnits: %s\n", tabs, o.Units)
	l += io.Sf("%s\tDescription:\n%s\t\t%s", tabs, tabs, o.Description)
	return l
}

// VapourPressureGuess is the solver seed heuristic shared by the saturation
// vapour pressure correlations of all species: the exponential shape makes
// the default melting-point multiple a poor seed, so the guess is picked from
// the magnitude of the target pressure.
func VapourPressureGuess(value float64) float64 {
	switch {
	case value < 1e-2:
		return 800
	case value < 1e2:
		return 1200
	}
	return 2000
}

// minBounded minimises f over [a, b]: coarse scan plus golden-section
// refinement. f must be continuous; the scan keeps interior extrema from
// being shadowed by the endpoints.
func minBounded(f func(float64) float64, a, b float64) (x, y float64) {
	const nscan = 1000
	dx := (b - a) / float64(nscan)
	lo, best := a, f(a)
	for i := 1; i <= nscan; i++ {
		x := a + float64(i)*dx
		if v := f(x); v < best {
			lo, best = x, v
		}
	}
	xa, xb := lo-dx, lo+dx
	if xa < a {
		xa = a
	}
	if xb > b {
		xb = b
	}
	const gold = 0.6180339887498949
	c := xb - gold*(xb-xa)
	d := xa + gold*(xb-xa)
	for xb-xa > 1e-10 {
		if f(c) < f(d) {
			xb = d
		} else {
			xa = c
		}
		c = xb - gold*(xb-xa)
		d = xa + gold*(xb-xa)
	}
	x = (xa + xb) / 2
	return x, f(x)
}
