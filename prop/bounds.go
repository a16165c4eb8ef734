// Copyright 2017 The Liqmet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/io"
)

// Bounds holds the extrema of one correlation over its validity range
type Bounds struct {
	Min    float64 `json:"min"`      // minimum property value
	TatMin float64 `json:"T_at_min"` // temperature at minimum [K]
	Max    float64 `json:"max"`      // maximum property value
	TatMax float64 `json:"T_at_max"` // temperature at maximum [K]
}

// BoundsTable is a bounds cache: composite keys of the form
// "{name}_{corrID}_{description}" (spaces replaced by underscores) mapped to
// the precomputed extrema. The cache is produced by an offline generation
// step (see tools/genbounds.py) and read once per species at load time.
type BoundsTable map[string]Bounds

// DecodeBounds decodes a bounds cache from its JSON representation
func DecodeBounds(b []byte) (BoundsTable, error) {
	var table BoundsTable
	if err := json.Unmarshal(b, &table); err != nil {
		return nil, err
	}
	return table, nil
}

// ReadBoundsFile reads a bounds cache from a .json file in dir. It panics if
// the file cannot be read.
func ReadBoundsFile(dir, fn string) (BoundsTable, error) {
	return DecodeBounds(io.ReadFile(filepath.Join(dir, fn)))
}

// Find returns the entry under key or MissingBoundsError
func (o BoundsTable) Find(key string) (Bounds, error) {
	b, ok := o[key]
	if !ok {
		return Bounds{}, &MissingBoundsError{Key: key}
	}
	return b, nil
}
