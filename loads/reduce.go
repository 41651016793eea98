// Copyright 2025 The Goloads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loads

import "math"

// ReduceCombs removes every row of the table that cannot govern a design
// check: a row is discarded when some other row dominates it. Row a dominates
// row b when, in every column, a matches or exceeds b in magnitude with the
// same sign, so b can never control if a is also checked.
//
// Rows are scanned in order and of two rows that dominate each other (equal
// components under different names) the earlier one is kept. Survivors are
// therefore pairwise non-dominating and appear in their original order, and
// reducing an already-reduced table returns it unchanged.
func ReduceCombs(t *Table) *Table {
	r := NewTable(t.Label, t.Cols, t.Units)
	for i, row := range t.Rows {
		discard := false
		for j, other := range t.Rows {
			if j == i {
				continue
			}
			if dominates(other, row) && (j < i || !dominates(row, other)) {
				discard = true
				break
			}
		}
		if !discard {
			vals := make([]float64, len(row))
			copy(vals, row)
			r.Names = append(r.Names, t.Names[i])
			r.Rows = append(r.Rows, vals)
		}
	}
	return r
}

// dominates tells whether row a matches or exceeds row b in magnitude with
// the same sign in every column
func dominates(a, b []float64) bool {
	for i := range a {
		if math.Abs(a[i]) < math.Abs(b[i]) || sign(a[i]) != sign(b[i]) {
			return false
		}
	}
	return true
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
