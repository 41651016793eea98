// Copyright 2025 The Goloads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package unit implements the physical quantity type carried by load effects
package unit

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Quantity holds a scalar or fixed-length array value with an opaque unit
// label. The label is carried through arithmetic and checked for consistency;
// no conversion is ever attempted. Quantities are immutable values: all
// operations return new instances.
//
//  Scalar:  bending moment at one section      => Scalar(12.5, "kip*ft")
//  Array:   reactions at several stations      => Array([]float64{1, 4, 5}, "kip")
type Quantity struct {
	label string    // unit label; empty means dimensionless
	array bool      // array-valued (fixed-length vector) instead of scalar
	vals  []float64 // components; length 1 when scalar
}

// Scalar returns a new scalar quantity
func Scalar(value float64, label string) Quantity {
	return Quantity{label: label, array: false, vals: []float64{value}}
}

// Array returns a new array quantity holding a copy of vals
func Array(vals []float64, label string) Quantity {
	if len(vals) < 1 {
		chk.Panic("unit.Array: cannot create array quantity with no components")
	}
	v := make([]float64, len(vals))
	copy(v, vals)
	return Quantity{label: label, array: true, vals: v}
}

// IsArray tells whether this quantity is array-valued
func (o Quantity) IsArray() bool { return o.array }

// Len returns the number of components; scalars have length 1
func (o Quantity) Len() int { return len(o.vals) }

// Unit returns the unit label
func (o Quantity) Unit() string { return o.label }

// Value returns the value of a scalar quantity
func (o Quantity) Value() float64 {
	if o.array {
		chk.Panic("unit.Value: quantity %v is array-valued", o)
	}
	o.mustBeValid("Value")
	return o.vals[0]
}

// At returns the i-th component
func (o Quantity) At(i int) float64 {
	o.mustBeValid("At")
	return o.vals[i]
}

// Values returns a copy of all components
func (o Quantity) Values() []float64 {
	o.mustBeValid("Values")
	v := make([]float64, len(o.vals))
	copy(v, o.vals)
	return v
}

// Add returns o + p (elementwise). Unit labels must match; a scalar operand
// is broadcast across an array operand; two arrays must have equal length.
func (o Quantity) Add(p Quantity) Quantity {
	o.mustCombine(p, "Add")
	r, q := broadcast(o, p)
	for i, v := range q.vals {
		r.vals[i] += v
	}
	return r
}

// Scale returns o scaled by the dimensionless factor f
func (o Quantity) Scale(f float64) Quantity {
	o.mustBeValid("Scale")
	r := o.clone()
	for i := range r.vals {
		r.vals[i] *= f
	}
	return r
}

// Abs returns the elementwise absolute value of o
func (o Quantity) Abs() Quantity {
	o.mustBeValid("Abs")
	r := o.clone()
	for i := range r.vals {
		r.vals[i] = math.Abs(r.vals[i])
	}
	return r
}

// Neg returns -o
func (o Quantity) Neg() Quantity {
	return o.Scale(-1)
}

// Sign returns the elementwise sign of o: +1, -1, or 0 per component
func (o Quantity) Sign() []float64 {
	o.mustBeValid("Sign")
	s := make([]float64, len(o.vals))
	for i, v := range o.vals {
		switch {
		case v > 0:
			s[i] = 1
		case v < 0:
			s[i] = -1
		}
	}
	return s
}

// MaxScalar reduces o to a scalar quantity for ordering: the own maximum of
// an array quantity, or the quantity itself when scalar
func (o Quantity) MaxScalar() Quantity {
	o.mustBeValid("MaxScalar")
	m := o.vals[0]
	for _, v := range o.vals[1:] {
		m = utl.Max(m, v)
	}
	return Scalar(m, o.label)
}

// MinScalar reduces o to a scalar quantity for ordering: the own minimum of
// an array quantity, or the quantity itself when scalar
func (o Quantity) MinScalar() Quantity {
	o.mustBeValid("MinScalar")
	m := o.vals[0]
	for _, v := range o.vals[1:] {
		m = utl.Min(m, v)
	}
	return Scalar(m, o.label)
}

// GreaterThan compares two scalar quantities with the same unit label
func (o Quantity) GreaterThan(p Quantity) bool {
	o.mustCompare(p, "GreaterThan")
	return o.vals[0] > p.vals[0]
}

// LessThan compares two scalar quantities with the same unit label
func (o Quantity) LessThan(p Quantity) bool {
	o.mustCompare(p, "LessThan")
	return o.vals[0] < p.vals[0]
}

// String returns a representation such as "12.5 kip" or "[1, 4, 5] kip"
func (o Quantity) String() string {
	if len(o.vals) < 1 {
		return "<empty>"
	}
	var l string
	if o.array {
		parts := make([]string, len(o.vals))
		for i, v := range o.vals {
			parts[i] = io.Sf("%g", v)
		}
		l = "[" + strings.Join(parts, ", ") + "]"
	} else {
		l = io.Sf("%g", o.vals[0])
	}
	if o.label != "" {
		l += " " + o.label
	}
	return l
}

// Max returns the elementwise maximum of a and b. Unit labels must match;
// scalars broadcast against arrays as in Add.
func Max(a, b Quantity) Quantity {
	a.mustCombine(b, "Max")
	r, q := broadcast(a, b)
	for i, v := range q.vals {
		r.vals[i] = utl.Max(r.vals[i], v)
	}
	return r
}

// Min returns the elementwise minimum of a and b. Unit labels must match;
// scalars broadcast against arrays as in Add.
func Min(a, b Quantity) Quantity {
	a.mustCombine(b, "Min")
	r, q := broadcast(a, b)
	for i, v := range q.vals {
		r.vals[i] = utl.Min(r.vals[i], v)
	}
	return r
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func (o Quantity) clone() Quantity {
	v := make([]float64, len(o.vals))
	copy(v, o.vals)
	return Quantity{label: o.label, array: o.array, vals: v}
}

// spread turns a scalar into an array of n equal components
func (o Quantity) spread(n int) Quantity {
	v := make([]float64, n)
	for i := range v {
		v[i] = o.vals[0]
	}
	return Quantity{label: o.label, array: true, vals: v}
}

// broadcast aligns the shapes of a and b; the first result is writable
func broadcast(a, b Quantity) (Quantity, Quantity) {
	switch {
	case a.array == b.array:
		return a.clone(), b
	case b.array:
		return a.spread(len(b.vals)), b
	default:
		return a.clone(), b.spread(len(a.vals))
	}
}

func (o Quantity) mustBeValid(op string) {
	if len(o.vals) < 1 {
		chk.Panic("unit.%s: quantity is empty (not created with Scalar or Array)", op)
	}
}

func (o Quantity) mustCombine(p Quantity, op string) {
	o.mustBeValid(op)
	p.mustBeValid(op)
	if o.label != p.label {
		chk.Panic("unit.%s: unit labels differ: %q != %q", op, o.label, p.label)
	}
	if o.array && p.array && len(o.vals) != len(p.vals) {
		chk.Panic("unit.%s: array lengths differ: %d != %d", op, len(o.vals), len(p.vals))
	}
}

func (o Quantity) mustCompare(p Quantity, op string) {
	o.mustBeValid(op)
	p.mustBeValid(op)
	if o.array || p.array {
		chk.Panic("unit.%s: comparison requires scalar quantities; reduce arrays with MaxScalar or MinScalar first", op)
	}
	if o.label != p.label {
		chk.Panic("unit.%s: unit labels differ: %q != %q", op, o.label, p.label)
	}
}
