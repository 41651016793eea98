// Copyright 2025 The Goloads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loads

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/StructuralTools/goloads/unit"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// LoadComb is a named combination rule: a scale factor per load kind plus a
// time-effect factor carried through to the results. Kinds absent from
// Factors simply do not participate; presence is decided by map membership,
// so an explicit zero factor does participate. A combination is treated as
// immutable once constructed.
type LoadComb struct {
	// input
	Name       string             // combination name, e.g. "16-1"
	TimeFactor float64            // time-effect (load-duration) factor
	Factors    map[string]float64 // kind => scale factor
}

// NewLoadComb returns a new combination with a copy of factors
func NewLoadComb(name string, timeFactor float64, factors map[string]float64) *LoadComb {
	f := make(map[string]float64, len(factors))
	for kind, v := range factors {
		f[kind] = v
	}
	return &LoadComb{Name: name, TimeFactor: timeFactor, Factors: f}
}

// kinds returns the factored kinds in sorted order
func (o *LoadComb) kinds() []string {
	kinds := make([]string, 0, len(o.Factors))
	for kind := range o.Factors {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// String returns a rendering such as "16-2 (Lr): 1.2*D + 1.6*L + 0.5*Lr (time factor 1)"
func (o *LoadComb) String() string {
	parts := make([]string, 0, len(o.Factors))
	for _, kind := range o.kinds() {
		parts = append(parts, io.Sf("%g*%s", o.Factors[kind], kind))
	}
	return io.Sf("%s: %s (time factor %g)", o.Name, strings.Join(parts, " + "), o.TimeFactor)
}

// MarshalJSON encodes the combination as a flat object holding the name, the
// time factor, and one entry per factored kind:
//
//	{"name":"16-1", "time_factor":0.6, "D":1.4}
func (o *LoadComb) MarshalJSON() ([]byte, error) {
	m := make(map[string]interface{}, len(o.Factors)+2)
	m["name"] = o.Name
	m["time_factor"] = o.TimeFactor
	for kind, f := range o.Factors {
		m[kind] = f
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes the flat object format produced by MarshalJSON
func (o *LoadComb) UnmarshalJSON(data []byte) (err error) {
	var m map[string]interface{}
	if err = json.Unmarshal(data, &m); err != nil {
		return
	}
	o.Factors = make(map[string]float64, len(m))
	for key, val := range m {
		switch key {
		case "name":
			s, ok := val.(string)
			if !ok {
				return chk.Err("combination name must be a string: %v", val)
			}
			o.Name = s
		case "time_factor":
			f, ok := val.(float64)
			if !ok {
				return chk.Err("time factor must be a number: %v", val)
			}
			o.TimeFactor = f
		default:
			f, ok := val.(float64)
			if !ok {
				return chk.Err("factor of kind %q must be a number: %v", key, val)
			}
			o.Factors[key] = f
		}
	}
	if o.Name == "" {
		return chk.Err("combination has no name: %s", string(data))
	}
	return
}

// CombResult is the outcome of evaluating one combination against one case
// selection: the factors actually applied and the summed factored value.
// Results are value types and are never mutated after creation.
type CombResult struct {
	Name       string           // combination name
	TimeFactor float64          // time-effect factor of the combination
	Factors    []LoadCaseFactor // factors applied, in kind registration order
	Result     unit.Quantity    // summed factored value
}

// FactorsKey returns a canonical key of the applied factors, used to collapse
// case selections that realize the same factored combination
func (o *CombResult) FactorsKey() string {
	parts := make([]string, len(o.Factors))
	for i, f := range o.Factors {
		parts[i] = io.Sf("%s|%s|%g", f.Kind, f.Case, f.Factor)
	}
	return strings.Join(parts, ";")
}

// FactorsString renders the applied factors, e.g. "1.2*D:D2 + 1.6*L:L2"
func (o *CombResult) FactorsString() string {
	parts := make([]string, len(o.Factors))
	for i, f := range o.Factors {
		parts[i] = io.Sf("%g*%s:%s", f.Factor, f.Kind, f.Case)
	}
	return strings.Join(parts, " + ")
}

// EvalLoads evaluates this combination against every given case selection.
// Kinds without a factor in this combination contribute nothing and are left
// out of the applied-factor set. Selections whose applied sets coincide are
// emitted once, and selections with no applicable factor at all are dropped,
// so the result list holds one entry per distinct realized factoring of this
// combination. Pure function of the collector, the selections, and the
// combination itself.
func (o *LoadComb) EvalLoads(lc *LoadCollector, selections [][]LoadCase) (results []CombResult) {
	seen := make(map[string]bool)
	for _, sel := range selections {
		var factors []LoadCaseFactor
		var sum unit.Quantity
		for _, c := range sel {
			factor, ok := o.Factors[c.Kind]
			if !ok {
				continue
			}
			val, ok := lc.Load(c.Kind, c.Case)
			if !ok {
				chk.Panic("case selection refers to %s:%s which is not in the collector", c.Kind, c.Case)
			}
			term := val.Scale(factor)
			if len(factors) == 0 {
				sum = term
			} else {
				sum = sum.Add(term)
			}
			factors = append(factors, LoadCaseFactor{c.Kind, c.Case, factor})
		}
		if len(factors) == 0 {
			continue
		}
		r := CombResult{Name: o.Name, TimeFactor: o.TimeFactor, Factors: factors, Result: sum}
		key := r.FactorsKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		results = append(results, r)
	}
	return
}
