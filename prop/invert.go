// Copyright 2017 The Liqmet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"
)

// solver constants
const (
	invTolRes   = 1e-10 // acceptance tolerance on the residual, relative to the target magnitude
	invTolSolve = 1e-13 // solver residual tolerance, below the acceptance so shallow slopes land tight
	invTolStep  = 1e-10 // step tolerance [K]
	invMaxIt    = 200   // maximum Newton iterations
	invDrvStp   = 1e-3  // step for the central-difference derivative
	invRootEps  = 1e-6  // roots closer than this are the same root [K]
)

// Invert solves c(T, p) = target for T. guess is the initial temperature; if
// the correlation provides its own Guess function, that wins. For correlations
// flagged non-injective the solve runs once per GuessCoefs entry (seed scaled
// by each coefficient), the distinct roots are sorted by ascending temperature
// and rootIndex picks one; an out-of-range index is clamped to the last root.
func Invert(c *Correlation, target, p, guess float64, rootIndex int) (T float64, err error) {
	if c.Guess != nil {
		guess = c.Guess(target)
	}
	if !c.NonInjective {
		return newton(c, target, p, guess)
	}
	var roots []float64
	for _, coef := range c.GuessCoefs {
		r, e := newton(c, target, p, coef*guess)
		if e != nil {
			err = e
			continue
		}
		roots = append(roots, r)
	}
	if len(roots) == 0 {
		return 0, err
	}
	sort.Float64s(roots)
	distinct := roots[:1]
	for _, r := range roots[1:] {
		if r-distinct[len(distinct)-1] > invRootEps {
			distinct = append(distinct, r)
		}
	}
	if rootIndex < 0 {
		rootIndex = 0
	}
	if rootIndex >= len(distinct) {
		rootIndex = len(distinct) - 1
	}
	return distinct[rootIndex], nil
}

// newton solves c(T, p) - target = 0 with NlSolver on the residual divided by
// the target magnitude, so convergence is judged relative to the target and
// holds for properties spanning many orders of magnitude. The line search
// keeps the steep exponential correlations from overshooting when the seed is
// far from the root. NlSolver panics when it cannot converge; that is
// recovered here and the last iterate is still accepted if it meets the
// residual tolerance, otherwise a RootFindingError is reported.
func newton(c *Correlation, target, p, T0 float64) (Troot float64, err error) {
	scale := math.Abs(target)
	if scale == 0 {
		scale = 1.0
	}
	resid := func(T float64) float64 {
		return (c.Eval(T, p) - target) / scale
	}
	converged := func(T float64) bool {
		return !math.IsNaN(T) && T > 0 && math.Abs(resid(T)) < invTolRes
	}
	ffcn := func(fx, x la.Vector) {
		fx[0] = resid(x[0])
	}
	jfcn := func(dfdx *la.Matrix, x la.Vector) {
		dfdx.Set(0, 0, num.DerivCen5(x[0], invDrvStp, resid))
	}
	var nls num.NlSolver
	defer nls.Free()
	nls.Init(1, ffcn, nil, jfcn, true, false, map[string]float64{
		"atol": invTolStep, "rtol": invTolStep, "ftol": invTolSolve,
		"maxIt": invMaxIt, "linSearch": 1,
	})
	x := []float64{T0}
	defer func() {
		if rec := recover(); rec != nil {
			if converged(x[0]) {
				Troot, err = x[0], nil
				return
			}
			err = &RootFindingError{Prop: c.Name, Target: target, LastT: x[0]}
		}
	}()
	nls.Solve(x, true)
	if !converged(x[0]) {
		return 0, &RootFindingError{Prop: c.Name, Target: target, LastT: x[0]}
	}
	return x[0], nil
}
