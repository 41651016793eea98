// Copyright 2025 The Goloads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loads

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_table01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("table01. csv round trip")

	tab := NewTable("Combination", []string{"FX", "FY", "ratio"}, []string{"kip", "kip", ""})
	if err := tab.AddRow("LC1", []float64{1.5, -2, 0.9}); err != nil {
		tst.Errorf("cannot add row: %v\n", err)
		return
	}
	if err := tab.AddRow("LC2", []float64{0, 3.25, 1.1}); err != nil {
		tst.Errorf("cannot add row: %v\n", err)
		return
	}
	chk.IntAssert(tab.NumRows(), 2)

	vals, ok := tab.Row("LC2")
	if !ok {
		tst.Errorf("row LC2 is missing\n")
		return
	}
	chk.Array(tst, "LC2", 1e-17, vals, []float64{0, 3.25, 1.1})
	if _, ok := tab.Row("LC9"); ok {
		tst.Errorf("row LC9 should not exist\n")
		return
	}

	os.MkdirAll("/tmp/goloads", 0755)
	path := filepath.Join("/tmp/goloads", "table01.csv")
	if err := tab.Write(path); err != nil {
		tst.Errorf("cannot write table: %v\n", err)
		return
	}
	back, err := ReadTable(path)
	if err != nil {
		tst.Errorf("cannot read table back: %v\n", err)
		return
	}
	if !back.Equal(tab) {
		tst.Errorf("table read back differs from the written one\n")
		return
	}
	chk.Strings(tst, "units", back.Units, []string{"kip", "kip", ""})
}

func Test_table02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("table02. malformed tables")

	// row length guard
	tab := NewTable("Combination", []string{"FX", "FY"}, nil)
	err := tab.AddRow("LC1", []float64{1})
	if err == nil {
		tst.Errorf("adding a short row should have failed\n")
		return
	}
	if !strings.Contains(err.Error(), "length mismatch") {
		tst.Errorf("wrong error: %v\n", err)
		return
	}

	os.MkdirAll("/tmp/goloads", 0755)

	// a cell that is not a number
	bad := filepath.Join("/tmp/goloads", "table02_bad.csv")
	os.WriteFile(bad, []byte("Combination,FX\nLC1,abc kip\n"), 0644)
	if _, err = ReadTable(bad); err == nil {
		tst.Errorf("reading a non-numeric cell should have failed\n")
		return
	}

	// mixed unit labels in one column
	mixed := filepath.Join("/tmp/goloads", "table02_mixed.csv")
	os.WriteFile(mixed, []byte("Combination,FX\nLC1,1 kip\nLC2,2 lb\n"), 0644)
	if _, err = ReadTable(mixed); err == nil {
		tst.Errorf("reading mixed unit labels should have failed\n")
		return
	}

	// a header alone is a valid empty table
	lone := filepath.Join("/tmp/goloads", "table02_lone.csv")
	os.WriteFile(lone, []byte("Combination,FX\n"), 0644)
	tab, err = ReadTable(lone)
	if err != nil {
		tst.Errorf("reading a header-only table failed: %v\n", err)
		return
	}
	chk.IntAssert(tab.NumRows(), 0)

	// an empty file has no header
	empty := filepath.Join("/tmp/goloads", "table02_empty.csv")
	os.WriteFile(empty, []byte(""), 0644)
	if _, err = ReadTable(empty); err == nil {
		tst.Errorf("reading an empty file should have failed\n")
		return
	}

	// missing file
	if _, err = ReadTable("/tmp/goloads/does_not_exist.csv"); err == nil {
		tst.Errorf("reading a missing file should have failed\n")
		return
	}
}
