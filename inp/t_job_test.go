// Copyright 2025 The Goloads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_job01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("job01. group job with array loads")

	job, err := ReadJob("data/job01.yaml")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if chk.Verbose {
		io.Pforan("job = %+v\n", job)
	}
	chk.String(tst, job.Description, "corner column reactions")
	chk.String(tst, job.Group, "LRFD")
	chk.IntAssert(len(job.Loads), 3)

	lc, err := job.Collector()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Strings(tst, "kinds", lc.Kinds(), []string{"D", "L"})
	chk.Strings(tst, "D cases", lc.Cases("D"), []string{"D"})
	chk.Strings(tst, "L cases", lc.Cases("L"), []string{"L1", "L2"})

	val, ok := lc.Load("D", "D")
	if !ok {
		tst.Errorf("D:D is missing\n")
		return
	}
	chk.Array(tst, "D:D", 1e-15, val.Values(), []float64{4, 8, 12})
	chk.String(tst, val.Unit(), "kip")

	combs, err := job.LoadCombs()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.IntAssert(len(combs), 16)
}

func Test_job02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("job02. inline combinations end to end")

	job, err := ReadJob("data/job02.yaml")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	combs, err := job.LoadCombs()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.IntAssert(len(combs), 2)
	chk.String(tst, combs[0].Name, "gravity")
	chk.Float64(tst, "gravity time factor", 1e-15, combs[0].TimeFactor, 1.0)
	chk.String(tst, combs[1].Name, "uplift")
	chk.Float64(tst, "uplift time factor", 1e-15, combs[1].TimeFactor, 1.6)

	lc, err := job.Collector()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Strings(tst, "kinds", lc.Kinds(), []string{"D", "W"})
	chk.Strings(tst, "W cases", lc.Cases("W"), []string{"W+", "W-"})

	fl, err := lc.EvalCombs(combs)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if chk.Verbose {
		for _, r := range fl.Combs {
			io.Pforan("%s: %v\n", r.Name, r.Result)
		}
	}
	chk.IntAssert(len(fl.Combs), 3)
	chk.Float64(tst, "max", 1e-13, fl.MaxValue.Value(), 12.0)
	chk.String(tst, fl.MaxComb.Name, "gravity")
	chk.Float64(tst, "min", 1e-13, fl.MinValue.Value(), 1.8)
	chk.String(tst, fl.MinComb.Name, "uplift")
	chk.String(tst, fl.MinValue.Unit(), "lb")
}

func Test_job03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("job03. invalid job files")

	for _, fn := range []string{
		"data/job03bad.yaml", // group and inline combs together
		"data/job04bad.yaml", // no loads
		"data/job05bad.yaml", // load without kind
		"data/job06bad.yaml", // load without value
		"data/job08bad.yaml", // neither group nor combs
		"data/nonexistent.yaml",
	} {
		if _, err := ReadJob(fn); err == nil {
			tst.Errorf("%s should not validate\n", fn)
			return
		} else if chk.Verbose {
			io.Pf("%s: %v\n", fn, err)
		}
	}

	// a non-numeric value passes the structural checks but cannot
	// become a quantity
	job, err := ReadJob("data/job07bad.yaml")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	_, err = job.Collector()
	if err == nil {
		tst.Errorf("non-numeric value should not convert\n")
		return
	}
	if !strings.Contains(err.Error(), "non-numeric") {
		tst.Errorf("wrong error: %v\n", err)
		return
	}
}
