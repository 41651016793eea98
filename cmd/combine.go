// Copyright 2025 The Goloads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/StructuralTools/goloads/inp"
	"github.com/StructuralTools/goloads/out"
	"github.com/spf13/cobra"
)

var (
	combineJobFile string
	combineAll     bool
	combinePlot    string
)

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Evaluate the load combinations of a job file",
	Long: `Evaluate the load combinations of a YAML job file.

The job file names a built-in combination group (LRFD or ASD) or defines
inline combinations, and lists the loads by kind and case. Every
combination is expanded over the load cases, the factored results are
collapsed to the distinct ones, and the extremes and envelopes are
reported with their governing combinations.

Examples:
  # evaluate with the built-in LRFD group
  goloads combine -f job.yaml

  # list every factored result and save the envelope diagram
  goloads combine -f job.yaml --all --plot envelopes.png`,
	RunE: runCombine,
}

func init() {
	rootCmd.AddCommand(combineCmd)
	combineCmd.Flags().StringVarP(&combineJobFile, "file", "f", "", "job file (.yaml)")
	combineCmd.Flags().BoolVarP(&combineAll, "all", "a", false, "list every factored result")
	combineCmd.Flags().StringVarP(&combinePlot, "plot", "p", "", "save an envelope diagram (.png, .svg, .pdf)")
	combineCmd.MarkFlagRequired("file")
}

func runCombine(cmd *cobra.Command, args []string) error {
	job, err := inp.ReadJob(combineJobFile)
	if err != nil {
		return err
	}
	lc, err := job.Collector()
	if err != nil {
		return err
	}
	combs, err := job.LoadCombs()
	if err != nil {
		return err
	}
	fl, err := lc.EvalCombs(combs)
	if err != nil {
		return err
	}

	if job.Description != "" {
		fmt.Printf("%s\n\n", job.Description)
	}
	fmt.Print(out.Report(fl, combineAll))

	if combinePlot != "" {
		if err := out.SaveEnvelopes(fl, combinePlot); err != nil {
			return err
		}
		fmt.Printf("\nfile <%s> written\n", combinePlot)
	}
	return nil
}
