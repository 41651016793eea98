// Copyright 2025 The Goloads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loads

import (
	"github.com/StructuralTools/goloads/unit"
	"github.com/cpmech/gosl/chk"
)

// FactoredLoads holds every factored result of one evaluation pass together
// with the extremes and envelopes derived from them. For ordering purposes an
// array result counts by its own maximum (for MaxValue) or minimum (for
// MinValue), so MaxValue and MinValue are always scalar quantities.
type FactoredLoads struct {
	Combs []CombResult // every distinct factored result, in evaluation order

	// extremes
	MaxValue    unit.Quantity // greatest result seen
	MinValue    unit.Quantity // smallest result seen
	AbsMaxValue unit.Quantity // magnitude of whichever extreme is larger in magnitude
	MaxComb     CombResult    // result realizing MaxValue
	MinComb     CombResult    // result realizing MinValue
	AbsMaxComb  CombResult    // result realizing AbsMaxValue

	// envelopes
	MaxEnvelope    unit.Quantity // elementwise running maximum over all results
	MinEnvelope    unit.Quantity // elementwise running minimum over all results
	AbsMaxEnvelope unit.Quantity // elementwise maximum of the absolute envelopes
}

// EvalCombs evaluates every given combination against this collector and
// derives the extremes and envelopes of the factored results. The case
// selections are expanded once and shared by all combinations. Each call
// folds from scratch and returns a fresh FactoredLoads; nothing is merged
// across calls. An error is returned when no factored result can be produced
// at all, i.e. with no combinations, an empty collector, or combinations
// sharing no kind with the collector.
//
// Ties are stable: the first result attaining the running maximum or minimum
// keeps it, and when maximum and minimum have equal magnitude the absolute
// extreme is the maximum. For scalar results the envelopes degenerate to the
// corresponding extremes, keeping a uniform interface for downstream
// consumers.
func (o *LoadCollector) EvalCombs(combs []*LoadComb) (fl *FactoredLoads, err error) {
	selections := o.CaseSelections()
	var results []CombResult
	for _, comb := range combs {
		results = append(results, comb.EvalLoads(o, selections)...)
	}
	if len(results) == 0 {
		return nil, chk.Err("empty evaluation: no factored results from %d combinations and %d load kinds", len(combs), len(o.kinds))
	}

	fl = &FactoredLoads{Combs: results}
	first := results[0]
	fl.MaxValue = first.Result.MaxScalar()
	fl.MinValue = first.Result.MinScalar()
	fl.MaxComb = first
	fl.MinComb = first
	envMax := first.Result
	envMin := first.Result
	for _, r := range results[1:] {
		if m := r.Result.MaxScalar(); m.GreaterThan(fl.MaxValue) {
			fl.MaxValue = m
			fl.MaxComb = r
		}
		if m := r.Result.MinScalar(); m.LessThan(fl.MinValue) {
			fl.MinValue = m
			fl.MinComb = r
		}
		envMax = unit.Max(envMax, r.Result)
		envMin = unit.Min(envMin, r.Result)
	}

	if fl.MinValue.Abs().GreaterThan(fl.MaxValue.Abs()) {
		fl.AbsMaxValue = fl.MinValue.Abs()
		fl.AbsMaxComb = fl.MinComb
	} else {
		fl.AbsMaxValue = fl.MaxValue.Abs()
		fl.AbsMaxComb = fl.MaxComb
	}

	if envMax.IsArray() {
		fl.MaxEnvelope = envMax
		fl.MinEnvelope = envMin
		fl.AbsMaxEnvelope = unit.Max(envMax.Abs(), envMin.Abs())
	} else {
		fl.MaxEnvelope = fl.MaxValue
		fl.MinEnvelope = fl.MinValue
		fl.AbsMaxEnvelope = fl.AbsMaxValue
	}
	return
}
