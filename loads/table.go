// Copyright 2025 The Goloads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loads

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Table is a named set of combination rows, one numeric component per
// direction column, e.g. support reactions in FX..MZ for every evaluated
// combination. It is the dominance reducer's input and output and maps to a
// CSV file via ReadTable and Write.
type Table struct {
	// input
	Label string   // heading of the name column, e.g. "Combination"
	Cols  []string // direction column headings, e.g. FX, FY, MZ
	Units []string // unit label per column; empty means dimensionless

	// derived
	Names []string    // row names, in insertion order
	Rows  [][]float64 // row components, len(Cols) each
}

// NewTable returns an empty table with the given columns. A nil units slice
// stands for all-dimensionless columns.
func NewTable(label string, cols, units []string) *Table {
	if units == nil {
		units = make([]string, len(cols))
	}
	if len(units) != len(cols) {
		chk.Panic("table %q: %d unit labels for %d columns", label, len(units), len(cols))
	}
	c := make([]string, len(cols))
	copy(c, cols)
	u := make([]string, len(units))
	copy(u, units)
	return &Table{Label: label, Cols: c, Units: u}
}

// AddRow appends a named row holding a copy of vals
func (o *Table) AddRow(name string, vals []float64) (err error) {
	if len(vals) != len(o.Cols) {
		return chk.Err("length mismatch: row %q has %d values for %d columns", name, len(vals), len(o.Cols))
	}
	v := make([]float64, len(vals))
	copy(v, vals)
	o.Names = append(o.Names, name)
	o.Rows = append(o.Rows, v)
	return
}

// NumRows returns the number of rows
func (o *Table) NumRows() int { return len(o.Names) }

// Row returns a copy of the first row with the given name
func (o *Table) Row(name string) (vals []float64, ok bool) {
	for i, n := range o.Names {
		if n == name {
			vals = make([]float64, len(o.Rows[i]))
			copy(vals, o.Rows[i])
			return vals, true
		}
	}
	return
}

// Equal tells whether two tables hold exactly the same header and rows
func (o *Table) Equal(p *Table) bool {
	if o.Label != p.Label || len(o.Cols) != len(p.Cols) || len(o.Names) != len(p.Names) {
		return false
	}
	for i := range o.Cols {
		if o.Cols[i] != p.Cols[i] || o.Units[i] != p.Units[i] {
			return false
		}
	}
	for i := range o.Names {
		if o.Names[i] != p.Names[i] {
			return false
		}
		for j := range o.Rows[i] {
			if o.Rows[i][j] != p.Rows[i][j] {
				return false
			}
		}
	}
	return true
}

// ReadTable reads a table from a CSV file. The first header field is the
// table label and the rest are the column headings; every following record
// holds the row name and one cell per column. Cells are either a plain
// number or a number followed by a unit label, e.g. "-12.5 kip"; all cells
// of one column must agree on the label.
func ReadTable(path string) (o *Table, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, chk.Err("cannot open table file: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, chk.Err("cannot parse table file %s: %v", path, err)
	}
	if len(records) < 1 {
		return nil, chk.Err("table file %s has no header record", path)
	}
	header := records[0]
	if len(header) < 2 {
		return nil, chk.Err("table file %s needs a name column and at least one value column", path)
	}
	cols := make([]string, len(header)-1)
	for i, h := range header[1:] {
		cols[i] = strings.TrimSpace(h)
	}
	o = NewTable(strings.TrimSpace(header[0]), cols, nil)
	for _, rec := range records[1:] {
		vals := make([]float64, len(rec)-1)
		for i, cell := range rec[1:] {
			val, label, e := parseCell(cell)
			if e != nil {
				return nil, chk.Err("cell %q in row %q of %s: %v", cell, rec[0], path, e)
			}
			if label != "" {
				if o.Units[i] == "" {
					o.Units[i] = label
				} else if o.Units[i] != label {
					return nil, chk.Err("column %s of %s mixes unit labels %q and %q", o.Cols[i], path, o.Units[i], label)
				}
			}
			vals[i] = val
		}
		o.Names = append(o.Names, strings.TrimSpace(rec[0]))
		o.Rows = append(o.Rows, vals)
	}
	return
}

// Write writes the table to a CSV file in the format read by ReadTable
func (o *Table) Write(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return chk.Err("cannot create table file: %v", err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err = w.Write(append([]string{o.Label}, o.Cols...)); err != nil {
		return chk.Err("cannot write header of %s: %v", path, err)
	}
	rec := make([]string, len(o.Cols)+1)
	for i, name := range o.Names {
		rec[0] = name
		for j, v := range o.Rows[i] {
			if o.Units[j] == "" {
				rec[j+1] = io.Sf("%g", v)
			} else {
				rec[j+1] = io.Sf("%g %s", v, o.Units[j])
			}
		}
		if err = w.Write(rec); err != nil {
			return chk.Err("cannot write row %q of %s: %v", name, path, err)
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return chk.Err("cannot write table file %s: %v", path, err)
	}
	return
}

// parseCell splits a CSV cell into its number and optional unit label
func parseCell(cell string) (val float64, label string, err error) {
	fields := strings.Fields(cell)
	if len(fields) == 0 {
		return 0, "", chk.Err("cell is empty")
	}
	val, err = strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, "", chk.Err("cannot parse number %q", fields[0])
	}
	label = strings.Join(fields[1:], " ")
	return
}
