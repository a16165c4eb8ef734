// Copyright 2017 The Liqmet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"sort"
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Registry holds every correlation variant known for one liquid metal
// species plus the "active" variant per property. There is one Registry per
// species, shared by all state objects of that species; selecting a variant
// affects instances constructed thereafter, not instances already built
// (those snapshot the active map at construction).
//
// Mutating operations (Select, SetRootToUse, Merge) are serialized with a
// mutex and readers never observe a partially updated table.
type Registry struct {

	// species data
	Species   string  // species key; e.g. "lead"
	Tmelt     float64 // melting temperature [K]
	Tboil     float64 // boiling temperature [K]
	Qmelt     float64 // melting latent heat [J/kg]
	Qboil     float64 // vaporisation heat [J/kg]
	MolarMass float64 // molar mass [g/mol]
	GuessCoef float64 // default solver seed = GuessCoef * Tmelt

	// tables
	mu       sync.RWMutex
	bounds   BoundsTable
	variants map[string]map[string]*Correlation // name -> corr id -> correlation
	active   map[string]*Correlation            // name -> active correlation
	defaults map[string]string                  // name -> hard-coded default corr id
	roots    map[string]int                     // name -> default root index
	custom   map[string]bool                    // "name/corr" pairs added via Merge
}

// NewRegistry creates a registry for one species. bounds is the species'
// bounds cache; every built-in correlation added later must have an entry.
func NewRegistry(species string, Tmelt, Tboil, Qmelt, Qboil, molarMass, guessCoef float64, bounds BoundsTable) *Registry {
	return &Registry{
		Species:   species,
		Tmelt:     Tmelt,
		Tboil:     Tboil,
		Qmelt:     Qmelt,
		Qboil:     Qboil,
		MolarMass: molarMass,
		GuessCoef: guessCoef,
		bounds:    bounds,
		variants:  make(map[string]map[string]*Correlation),
		active:    make(map[string]*Correlation),
		defaults:  make(map[string]string),
		roots:     make(map[string]int),
		custom:    make(map[string]bool),
	}
}

// DefaultGuess returns the species-characteristic solver seed [K]
func (o *Registry) DefaultGuess() float64 {
	return o.GuessCoef * o.Tmelt
}

// SetDefault declares the hard-coded default variant of a property. Must be
// called before the variants are added.
func (o *Registry) SetDefault(name, corr string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.defaults[name] = corr
}

// Default returns the default correlation id of a property: the declared one,
// otherwise the id of the currently active correlation
func (o *Registry) Default(name string) string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if corr, ok := o.defaults[name]; ok {
		return corr
	}
	if c, ok := o.active[name]; ok {
		return c.Corr
	}
	return ""
}

// Add registers a built-in correlation variant. The first variant added for a
// property becomes active unless a default id was declared, in which case the
// default wins. A correlation without an entry in the species bounds cache is
// a fatal configuration error.
func (o *Registry) Add(c *Correlation) error {
	if err := c.Validate(); err != nil {
		return err
	}
	b, err := o.bounds.Find(c.BoundsKey())
	if err != nil {
		return chk.Err("%s: cannot register %q (%s): %v", o.Species, c.Name, c.Corr, err)
	}
	c.SetBounds(b)
	o.mu.Lock()
	defer o.mu.Unlock()
	o.insert(c)
	return nil
}

// insert stores c in the variant table and updates the active map. Callers
// must hold the write lock.
func (o *Registry) insert(c *Correlation) {
	m, ok := o.variants[c.Name]
	if !ok {
		m = make(map[string]*Correlation)
		o.variants[c.Name] = m
	}
	m[c.Corr] = c
	if cur, ok := o.active[c.Name]; ok {
		if cur.Corr == c.Corr {
			o.active[c.Name] = c // same pair: the new object replaces it
		}
		return
	}
	if def, ok := o.defaults[c.Name]; !ok || def == c.Corr {
		o.active[c.Name] = c
		if !ok {
			o.defaults[c.Name] = c.Corr
		}
	}
}

// Get returns the active correlation of a property
func (o *Registry) Get(name string) (*Correlation, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	c, ok := o.active[name]
	if !ok {
		return nil, &UnknownPropertyError{Species: o.Species, Name: name}
	}
	return c, nil
}

// Variant returns one specific correlation variant of a property
func (o *Registry) Variant(name, corr string) (*Correlation, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	m, ok := o.variants[name]
	if !ok {
		return nil, &UnknownPropertyError{Species: o.Species, Name: name}
	}
	c, ok := m[corr]
	if !ok {
		return nil, &UnknownCorrelationError{Species: o.Species, Name: name, Corr: corr}
	}
	return c, nil
}

// Variants returns the sorted correlation ids known for a property
func (o *Registry) Variants(name string) ([]string, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	m, ok := o.variants[name]
	if !ok {
		return nil, &UnknownPropertyError{Species: o.Species, Name: name}
	}
	ids := make([]string, 0, len(m))
	for corr := range m {
		ids = append(ids, corr)
	}
	sort.Strings(ids)
	return ids, nil
}

// Names returns the sorted property names registered for the species
func (o *Registry) Names() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	names := make([]string, 0, len(o.variants))
	for name := range o.variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select sets the active correlation variant of a property. The selection is
// species-scoped: it affects every state object constructed thereafter.
func (o *Registry) Select(name, corr string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	m, ok := o.variants[name]
	if !ok {
		return &UnknownPropertyError{Species: o.Species, Name: name}
	}
	c, ok := m[corr]
	if !ok {
		return &UnknownCorrelationError{Species: o.Species, Name: name, Corr: corr}
	}
	o.active[name] = c
	return nil
}

// SetRootToUse sets the default root index used when the species is
// constructed from a property whose correlation is not injective. Roots are
// sorted by ascending temperature.
func (o *Registry) SetRootToUse(name string, rootIndex int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.roots[name] = rootIndex
}

// RootToUse returns the default root index of a property (0 if unset)
func (o *Registry) RootToUse(name string) int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.roots[name]
}

// ActiveSnapshot returns a copy of the active map. State objects snapshot the
// map at construction so that later Select or Merge calls do not affect them.
func (o *Registry) ActiveSnapshot() map[string]*Correlation {
	o.mu.RLock()
	defer o.mu.RUnlock()
	snap := make(map[string]*Correlation, len(o.active))
	for name, c := range o.active {
		snap[name] = c
	}
	return snap
}

// BoundsOf returns the extrema of a specific correlation variant: the bounds
// cache entry for built-in correlations, or the extrema computed at merge
// time for user-supplied ones
func (o *Registry) BoundsOf(name, corr string) (Bounds, error) {
	c, err := o.Variant(name, corr)
	if err != nil {
		return Bounds{}, err
	}
	o.mu.RLock()
	defer o.mu.RUnlock()
	if b, err := o.bounds.Find(c.BoundsKey()); err == nil {
		return b, nil
	}
	if c.HasBounds() {
		return Bounds{Min: c.Min, TatMin: c.TatMin, Max: c.Max, TatMax: c.TatMax}, nil
	}
	return Bounds{}, &MissingBoundsError{Key: c.BoundsKey()}
}

// Merge loads user-supplied correlation variants into the registry. For each
// property name appearing in corrs, custom variants previously merged under
// that name are dropped and replaced by the new set; built-in variants are
// kept unless a new correlation redefines the same (name, corr) pair, in
// which case the new object replaces it (including in the active map).
//
// Consistency rule: if after the merge an active selection points at a
// (name, corr) pair that no longer exists, the selection reverts to the
// species default and a warning is emitted; the registry never leaves an
// active entry pointing at a removed object.
//
// Correlations without an entry in the species bounds cache get their
// extrema computed on demand.
func (o *Registry) Merge(corrs ...*Correlation) error {
	for _, c := range corrs {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	// drop previously merged custom variants of the incoming property names
	touched := make(map[string]bool)
	for _, c := range corrs {
		touched[c.Name] = true
	}
	for name := range touched {
		m, ok := o.variants[name]
		if !ok {
			continue
		}
		for corr := range m {
			if o.custom[name+"/"+corr] {
				delete(m, corr)
				delete(o.custom, name+"/"+corr)
			}
		}
		if len(m) == 0 {
			delete(o.variants, name)
		}
	}

	// insert the new set
	for _, c := range corrs {
		if b, err := o.bounds.Find(c.BoundsKey()); err == nil {
			c.SetBounds(b)
		} else if !c.HasBounds() {
			c.ComputeBounds()
		}
		o.insert(c)
		o.custom[c.Name+"/"+c.Corr] = true
	}

	// revert dangling active selections to the species default
	for name, c := range o.active {
		m, ok := o.variants[name]
		if ok {
			if _, ok := m[c.Corr]; ok {
				continue
			}
		}
		if !ok {
			delete(o.active, name)
			Warn(io.Sf("%s: every correlation of property %q was removed; the property is no longer available", o.Species, name))
			continue
		}
		def := o.defaults[name]
		if r, ok := m[def]; ok {
			o.active[name] = r
			Warn(io.Sf("%s: active correlation %q of property %q was removed; reverting to the default correlation %q", o.Species, c.Corr, name, def))
			continue
		}
		// no declared default survived: fall back to the first id in order
		ids := make([]string, 0, len(m))
		for corr := range m {
			ids = append(ids, corr)
		}
		sort.Strings(ids)
		o.active[name] = m[ids[0]]
		Warn(io.Sf("%s: active correlation %q of property %q was removed; reverting to correlation %q", o.Species, c.Corr, name, ids[0]))
	}
	return nil
}
