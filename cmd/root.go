// Copyright 2025 The Goloads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the goloads command line interface
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goloads",
	Short: "Structural load combination evaluator",
	Long: `goloads - structural load combination evaluator

Collect loads by kind and case, evaluate load combinations such as the
ASCE 7-16 strength (LRFD) and allowable stress (ASD) groups, and report
the extremes, the governing combinations, and the envelopes of the
factored results.

Load kinds follow ASCE 7-16 Chapter 2:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  S  - Snow load
  R  - Rain load
  W  - Wind load
  E  - Earthquake load

Use 'goloads --help' to see available commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
