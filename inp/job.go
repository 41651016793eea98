// Copyright 2025 The Goloads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the evaluation job read from a (.yaml) job file
package inp

import (
	"os"

	"github.com/StructuralTools/goloads/asce"
	"github.com/StructuralTools/goloads/loads"
	"github.com/StructuralTools/goloads/unit"
	"github.com/cpmech/gosl/chk"
	"gopkg.in/yaml.v3"
)

// JobLoad holds one load entry of a job file
type JobLoad struct {
	Kind  string    `yaml:"kind"`  // load kind; e.g. "D", "L", "W"
	Case  string    `yaml:"case"`  // load case; defaults to kind when omitted
	Value yaml.Node `yaml:"value"` // number or sequence of numbers
	Unit  string    `yaml:"unit"`  // unit label; e.g. "kip"; empty means dimensionless
}

// JobComb holds one inline combination definition of a job file
type JobComb struct {
	Name       string             `yaml:"name"`        // combination name
	TimeFactor float64            `yaml:"time_factor"` // time-effect factor; 0 means 1
	Factors    map[string]float64 `yaml:"factors"`     // factor per load kind
}

// Job holds global data for one evaluation run
type Job struct {
	Description string    `yaml:"description"` // description of evaluation
	Group       string    `yaml:"group"`       // name of built-in combination group; e.g. "LRFD"
	Combs       []JobComb `yaml:"combs"`       // inline combination definitions
	Loads       []JobLoad `yaml:"loads"`       // load entries
}

// ReadJob reads and validates a job file. A valid job names exactly one of a
// built-in combination group or a set of inline combinations, and has at
// least one load entry with a kind and a value.
func ReadJob(path string) (o *Job, err error) {

	// read file
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read job file %q", path)
	}

	// decode
	o = new(Job)
	err = yaml.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal job file %q: %v", path, err)
	}

	// validate combinations
	if o.Group == "" && len(o.Combs) == 0 {
		return nil, chk.Err("job file %q needs a combination group or inline combs", path)
	}
	if o.Group != "" && len(o.Combs) > 0 {
		return nil, chk.Err("job file %q has both a combination group and inline combs", path)
	}
	for i, c := range o.Combs {
		if c.Name == "" {
			return nil, chk.Err("comb # %d in job file %q has no name", i, path)
		}
		if len(c.Factors) < 1 {
			return nil, chk.Err("comb %q in job file %q has no factors", c.Name, path)
		}
	}

	// validate loads
	if len(o.Loads) < 1 {
		return nil, chk.Err("job file %q has no loads", path)
	}
	for i, l := range o.Loads {
		if l.Kind == "" {
			return nil, chk.Err("load # %d in job file %q has no kind", i, path)
		}
		if l.Value.IsZero() {
			return nil, chk.Err("load %q in job file %q has no value", l.Kind, path)
		}
	}
	return
}

// Collector builds a load collector with every load entry added in file
// order, so repeated kind:case pairs accumulate.
func (o *Job) Collector() (lc *loads.LoadCollector, err error) {
	lc = loads.NewLoadCollector()
	for _, l := range o.Loads {
		cse := l.Case
		if cse == "" {
			cse = l.Kind
		}
		var value unit.Quantity
		if l.Value.Kind == yaml.SequenceNode {
			var vals []float64
			if err = l.Value.Decode(&vals); err != nil {
				return nil, chk.Err("load %s:%s has a non-numeric value: %v", l.Kind, cse, err)
			}
			if len(vals) < 1 {
				return nil, chk.Err("load %s:%s has an empty value sequence", l.Kind, cse)
			}
			value = unit.Array(vals, l.Unit)
		} else {
			var val float64
			if err = l.Value.Decode(&val); err != nil {
				return nil, chk.Err("load %s:%s has a non-numeric value: %v", l.Kind, cse, err)
			}
			value = unit.Scalar(val, l.Unit)
		}
		lc.AddLoad(l.Kind, cse, value)
	}
	return
}

// LoadCombs resolves the combinations of this job: the built-in group when
// one is named, the inline definitions otherwise. Inline combinations
// without a time-effect factor get 1.
func (o *Job) LoadCombs() (combs []*loads.LoadComb, err error) {
	if o.Group != "" {
		return asce.Combs(o.Group)
	}
	combs = make([]*loads.LoadComb, len(o.Combs))
	for i, c := range o.Combs {
		tf := c.TimeFactor
		if tf == 0 {
			tf = 1
		}
		combs[i] = loads.NewLoadComb(c.Name, tf, c.Factors)
	}
	return
}
