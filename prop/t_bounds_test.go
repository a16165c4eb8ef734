// Copyright 2017 The Liqmet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_bounds01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bounds01. reading a bounds cache file")

	content := `{
   "k_liqmet_thermal_conductivity": {
      "T_at_max": 1300.0,
      "T_at_min": 600.6,
      "max": 23.5,
      "min": 15.8066
   }
}`
	io.WriteStringToFileD("/tmp/liqmet", "bounds.json", content)

	table, err := ReadBoundsFile("/tmp/liqmet", "bounds.json")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	b, err := table.Find("k_liqmet_thermal_conductivity")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "min", 1e-15, b.Min, 15.8066)
	chk.Float64(tst, "T @ min", 1e-15, b.TatMin, 600.6)
	chk.Float64(tst, "max", 1e-15, b.Max, 23.5)
	chk.Float64(tst, "T @ max", 1e-15, b.TatMax, 1300.0)

	_, err = table.Find("rho_liqmet_density")
	if err == nil {
		tst.Errorf("missing key should fail\n")
		return
	}
	if _, ok := err.(*MissingBoundsError); !ok {
		tst.Errorf("wrong error type: %v\n", err)
	}
}
