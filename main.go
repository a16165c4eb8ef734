// Copyright 2017 The Liqmet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/liqmet/liqmet/metal"
	"github.com/liqmet/liqmet/prop"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	species := io.ArgToString(0, "lead")
	temp := io.ArgToFloat(1, 1000.0)
	press := io.ArgToFloat(2, prop.Patm)
	verbose := io.ArgToBool(3, true)

	// message
	if verbose {
		io.PfWhite("\nLiqmet -- Liquid Metal Properties\n")
		io.Pf("Copyright 2017 The Liqmet Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"species: lead, bismuth or lbe", "species", species,
			"temperature [K]", "temp", temp,
			"pressure [Pa]", "press", press,
			"show messages", "verbose", verbose,
		))
	}

	// species
	var sp metal.Species
	switch species {
	case "lead":
		sp = metal.Lead
	case "bismuth":
		sp = metal.Bismuth
	case "lbe":
		sp = metal.LBE
	default:
		chk.Panic("unknown species %q; use lead, bismuth or lbe", species)
	}

	// state
	lm, err := metal.New(sp, metal.T(temp), metal.Pressure(press))
	if err != nil {
		chk.Panic("cannot create %s state: %v", species, err)
	}

	// characteristic constants
	io.Pf("characteristic constants of %s:\n", species)
	io.Pf("  %-22s = %12.4g [K]\n", "melting temperature", lm.Tmelt())
	io.Pf("  %-22s = %12.4g [K]\n", "boiling temperature", lm.Tboil())
	io.Pf("  %-22s = %12.4g [J/kg]\n", "melting latent heat", lm.Qmelt())
	io.Pf("  %-22s = %12.4g [J/kg]\n", "vaporisation heat", lm.Qboil())
	io.Pf("  %-22s = %12.4g [g/mol]\n", "molar mass", lm.MolarMass())

	// property table. values outside the validity range of their correlation
	// are extrapolated and flagged
	io.Pf("\nproperties at T = %g [K] and p = %g [Pa]:\n", temp, press)
	for _, name := range lm.Properties() {
		c, err := lm.Correlation(name)
		if err != nil {
			chk.Panic("%v", err)
		}
		tmin, tmax := c.Range()
		flag := " "
		if temp < tmin || temp > tmax {
			flag = "*"
		}
		io.Pf("  %-8s %s %13.6e %-14s %-16s [%g, %g] K\n", name, flag, c.Eval(temp, press), c.Units, c.Corr, tmin, tmax)
	}
	io.Pf("\n(*) outside the validity range: the value is extrapolated\n")
}
