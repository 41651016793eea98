// Copyright 2025 The Goloads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package asce provides the built-in ASCE 7 load combinations, named by their
// IBC equation numbers and carrying NDS time-effect factors
package asce

import (
	_ "embed"
	"encoding/json"
	"sort"

	"github.com/StructuralTools/goloads/loads"
	"github.com/cpmech/gosl/chk"
)

// load kinds factored by the built-in combinations:
//
//	D   dead
//	L   live
//	Lr  roof live
//	S   snow
//	R   rain
//	W   wind
//	E   earthquake
//
// Loads collected under other kind names are simply not factored by the
// built-in groups.

//go:embed resources/load_combinations.json
var combsJSON []byte

// groups maps group name ("LRFD", "ASD") to its combination list
var groups map[string][]*loads.LoadComb

func init() {
	if err := json.Unmarshal(combsJSON, &groups); err != nil {
		chk.Panic("cannot parse embedded load combinations: %v", err)
	}
}

// Groups returns the names of the built-in combination groups, sorted
func Groups() []string {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Combs returns the combinations of one built-in group, in code order
func Combs(group string) ([]*loads.LoadComb, error) {
	combs, ok := groups[group]
	if !ok {
		return nil, chk.Err("unknown combination group %q; built-in groups are %v", group, Groups())
	}
	out := make([]*loads.LoadComb, len(combs))
	copy(out, combs)
	return out, nil
}

// MustCombs is like Combs but panics on an unknown group name
func MustCombs(group string) []*loads.LoadComb {
	combs, err := Combs(group)
	if err != nil {
		chk.Panic("%v", err)
	}
	return combs
}
