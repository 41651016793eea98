// Copyright 2025 The Goloads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package loads implements the load-combination engine: collection of
// unfactored load effects by kind and case, factored evaluation of named
// combinations over every case selection, extremes and envelopes, and
// dominance reduction of combination tables
package loads

import (
	"github.com/StructuralTools/goloads/unit"
	"github.com/cpmech/gosl/chk"
)

// LoadCase identifies one named instance of a load kind
type LoadCase struct {
	Kind string // load kind, e.g. "D" for dead or "W" for wind
	Case string // case label within the kind, e.g. "D1" or "W+"
}

// LoadCaseFactor records the factor actually applied to one load case within
// one realized combination instance
type LoadCaseFactor struct {
	Kind   string  // load kind
	Case   string  // case label within the kind
	Factor float64 // scale factor applied
}

// LoadCollector accumulates unfactored load effects keyed by kind and case.
// A collector starts empty, is populated with AddLoad and its variants, and
// is then handed to EvalCombs; evaluation never mutates it. Kind and case
// registration order is preserved so that expansion and evaluation are
// deterministic.
type LoadCollector struct {
	// derived
	kinds []string                            // kind registration order
	cases map[string][]string                 // kind => case registration order
	loads map[string]map[string]unit.Quantity // kind => case => accumulated value
}

// NewLoadCollector returns a new empty collector
func NewLoadCollector() *LoadCollector {
	return &LoadCollector{
		cases: make(map[string][]string),
		loads: make(map[string]map[string]unit.Quantity),
	}
}

// AddLoad accumulates value into the slot of one kind and case. The slot is
// created on first use; calling again for the same kind and case adds to the
// stored value, it does not replace it.
func (o *LoadCollector) AddLoad(kind, cse string, value unit.Quantity) {
	m, ok := o.loads[kind]
	if !ok {
		m = make(map[string]unit.Quantity)
		o.loads[kind] = m
		o.kinds = append(o.kinds, kind)
	}
	cur, ok := m[cse]
	if !ok {
		o.cases[kind] = append(o.cases[kind], cse)
		m[cse] = value
		return
	}
	m[cse] = cur.Add(value)
}

// AddLoadCases accumulates the same value into every given case of one kind
func (o *LoadCollector) AddLoadCases(kind string, cases []string, value unit.Quantity) {
	for _, cse := range cases {
		o.AddLoad(kind, cse, value)
	}
}

// AddLoadKinds accumulates the same value into the given case of every kind
func (o *LoadCollector) AddLoadKinds(kinds []string, cse string, value unit.Quantity) {
	for _, kind := range kinds {
		o.AddLoad(kind, cse, value)
	}
}

// AddLoads accumulates value into several slots at once. A one-element
// collection on either side is broadcast over the other; otherwise kinds and
// cases are paired positionally and the lengths must agree.
func (o *LoadCollector) AddLoads(kinds, cases []string, value unit.Quantity) (err error) {
	switch {
	case len(kinds) == 1:
		o.AddLoadCases(kinds[0], cases, value)
	case len(cases) == 1:
		o.AddLoadKinds(kinds, cases[0], value)
	default:
		if len(kinds) != len(cases) {
			return chk.Err("length mismatch: cannot pair %d load kinds with %d load cases positionally", len(kinds), len(cases))
		}
		for i, kind := range kinds {
			o.AddLoad(kind, cases[i], value)
		}
	}
	return
}

// Kinds returns the registered kinds in registration order
func (o *LoadCollector) Kinds() []string {
	kinds := make([]string, len(o.kinds))
	copy(kinds, o.kinds)
	return kinds
}

// Cases returns the registered cases of one kind in registration order
func (o *LoadCollector) Cases(kind string) []string {
	cases := make([]string, len(o.cases[kind]))
	copy(cases, o.cases[kind])
	return cases
}

// Load returns the accumulated value of one kind and case
func (o *LoadCollector) Load(kind, cse string) (val unit.Quantity, ok bool) {
	m, ok := o.loads[kind]
	if !ok {
		return
	}
	val, ok = m[cse]
	return
}

// IsEmpty tells whether no load has been added yet
func (o *LoadCollector) IsEmpty() bool {
	return len(o.kinds) == 0
}

// CaseSelections returns the Cartesian product of one case per registered
// kind, with kinds in registration order and the last kind's cases cycling
// fastest. An empty collector yields a single empty selection. The product
// depends only on the collector's contents, so it is computed once per
// evaluation pass and shared by every combination.
func (o *LoadCollector) CaseSelections() (selections [][]LoadCase) {
	selections = [][]LoadCase{{}}
	for _, kind := range o.kinds {
		grown := make([][]LoadCase, 0, len(selections)*len(o.cases[kind]))
		for _, sel := range selections {
			for _, cse := range o.cases[kind] {
				next := make([]LoadCase, len(sel), len(sel)+1)
				copy(next, sel)
				grown = append(grown, append(next, LoadCase{kind, cse}))
			}
		}
		selections = grown
	}
	return
}
