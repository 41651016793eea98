// Copyright 2025 The Goloads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements evaluation output handling for reports and diagrams
package out

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/StructuralTools/goloads/loads"
)

// Report renders a text report of one evaluation: the extremes with their
// governing combinations and applied factors, the envelopes when the results
// are arrays, and, with all set, every factored result.
func Report(fl *loads.FactoredLoads, all bool) string {
	var b strings.Builder

	// extremes
	fmt.Fprintf(&b, "EXTREMES:\n")
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  max:\t%v\t%s\t%s\n", fl.MaxValue, fl.MaxComb.Name, fl.MaxComb.FactorsString())
	fmt.Fprintf(w, "  min:\t%v\t%s\t%s\n", fl.MinValue, fl.MinComb.Name, fl.MinComb.FactorsString())
	fmt.Fprintf(w, "  abs max:\t%v\t%s\t%s\n", fl.AbsMaxValue, fl.AbsMaxComb.Name, fl.AbsMaxComb.FactorsString())
	w.Flush()

	// envelopes
	if fl.MaxEnvelope.IsArray() {
		fmt.Fprintf(&b, "\nENVELOPES:\n")
		w = tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  max:\t%v\n", fl.MaxEnvelope)
		fmt.Fprintf(w, "  min:\t%v\n", fl.MinEnvelope)
		fmt.Fprintf(w, "  abs max:\t%v\n", fl.AbsMaxEnvelope)
		w.Flush()
	}

	// all factored results
	if all {
		fmt.Fprintf(&b, "\nRESULTS (%d):\n", len(fl.Combs))
		w = tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		for _, r := range fl.Combs {
			fmt.Fprintf(w, "  %s\t%v\t%s\n", r.Name, r.Result, r.FactorsString())
		}
		w.Flush()
	}
	return b.String()
}
