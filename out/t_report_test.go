// Copyright 2025 The Goloads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"
	"testing"

	"github.com/StructuralTools/goloads/loads"
	"github.com/StructuralTools/goloads/unit"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// evalArrays evaluates a small moment diagram scenario with array results
func evalArrays(tst *testing.T) *loads.FactoredLoads {
	lc := loads.NewLoadCollector()
	lc.AddLoad("D", "D", unit.Array([]float64{2, 5, 8}, "kip"))
	lc.AddLoad("W", "W+", unit.Array([]float64{1, 1, 2}, "kip"))
	lc.AddLoad("W", "W-", unit.Array([]float64{-4, -1, 0}, "kip"))
	fl, err := lc.EvalCombs([]*loads.LoadComb{
		loads.NewLoadComb("c1", 1, map[string]float64{"D": 1.2, "W": 1.0}),
		loads.NewLoadComb("c2", 1, map[string]float64{"D": 0.9, "W": 1.0}),
	})
	if err != nil {
		tst.Errorf("evaluation failed:\n%v", err)
		return nil
	}
	return fl
}

func Test_report01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report01. extremes and envelopes")

	fl := evalArrays(tst)
	if fl == nil {
		return
	}
	chk.IntAssert(len(fl.Combs), 4)
	chk.Float64(tst, "max", 1e-13, fl.MaxValue.Value(), 11.6)
	chk.Float64(tst, "min", 1e-13, fl.MinValue.Value(), -2.2)

	rep := Report(fl, false)
	if chk.Verbose {
		io.Pf("%s\n", rep)
	}
	for _, want := range []string{"EXTREMES", "ENVELOPES", "c1", "c2", "1.2*D:D + 1*W:W+"} {
		if !strings.Contains(rep, want) {
			tst.Errorf("report is missing %q:\n%s", want, rep)
			return
		}
	}
	if strings.Contains(rep, "RESULTS") {
		tst.Errorf("report should not list results without the all flag\n")
		return
	}

	rep = Report(fl, true)
	if !strings.Contains(rep, "RESULTS (4)") {
		tst.Errorf("report is missing the results section:\n%s", rep)
		return
	}
}

func Test_report02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report02. scalar results have no envelope section")

	lc := loads.NewLoadCollector()
	lc.AddLoad("D", "D", unit.Scalar(10, "lb"))
	fl, err := lc.EvalCombs([]*loads.LoadComb{
		loads.NewLoadComb("c1", 1, map[string]float64{"D": 1.4}),
	})
	if err != nil {
		tst.Errorf("evaluation failed:\n%v", err)
		return
	}

	rep := Report(fl, false)
	if strings.Contains(rep, "ENVELOPES") {
		tst.Errorf("scalar report should not have an envelope section:\n%s", rep)
		return
	}
	if !strings.Contains(rep, "14 lb") {
		tst.Errorf("report is missing the max value:\n%s", rep)
		return
	}
}

func Test_envelope01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("envelope01. diagram export")

	fl := evalArrays(tst)
	if fl == nil {
		return
	}

	// scalar results cannot be drawn
	lc := loads.NewLoadCollector()
	lc.AddLoad("D", "D", unit.Scalar(10, "lb"))
	flScalar, err := lc.EvalCombs([]*loads.LoadComb{
		loads.NewLoadComb("c1", 1, map[string]float64{"D": 1.4}),
	})
	if err != nil {
		tst.Errorf("evaluation failed:\n%v", err)
		return
	}
	if err := SaveEnvelopes(flScalar, "/tmp/goloads/envelope01.png"); err == nil {
		tst.Errorf("scalar results should not be drawable\n")
		return
	}

	if chk.Verbose {
		err := SaveEnvelopes(fl, "/tmp/goloads/envelope01.png")
		if err != nil {
			tst.Errorf("SaveEnvelopes failed:\n%v", err)
			return
		}
		io.Pf("file </tmp/goloads/envelope01.png> written\n")
	}
}
