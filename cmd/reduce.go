// Copyright 2025 The Goloads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/StructuralTools/goloads/loads"
	"github.com/spf13/cobra"
)

var (
	reduceInFile  string
	reduceOutFile string
)

var reduceCmd = &cobra.Command{
	Use:   "reduce",
	Short: "Discard dominated rows of a load case table",
	Long: `Discard dominated rows of a load case table.

A row is dominated when another row is at least as large in magnitude in
every column with matching signs, so checking the surviving rows covers
the discarded ones. Typical input is a reaction or member force table
exported from a structural analysis, one row per load case.

The table is CSV with a header row; cells may carry a unit suffix, e.g.
"12.5 kip".

Example:
  goloads reduce -i reactions.csv -o reduced.csv`,
	RunE: runReduce,
}

func init() {
	rootCmd.AddCommand(reduceCmd)
	reduceCmd.Flags().StringVarP(&reduceInFile, "in", "i", "", "input table (.csv)")
	reduceCmd.Flags().StringVarP(&reduceOutFile, "out", "o", "", "output table (.csv)")
	reduceCmd.MarkFlagRequired("in")
	reduceCmd.MarkFlagRequired("out")
}

func runReduce(cmd *cobra.Command, args []string) error {
	table, err := loads.ReadTable(reduceInFile)
	if err != nil {
		return err
	}
	reduced := loads.ReduceCombs(table)
	if err := reduced.Write(reduceOutFile); err != nil {
		return err
	}
	fmt.Printf("kept %d of %d load cases\nfile <%s> written\n", reduced.NumRows(), table.NumRows(), reduceOutFile)
	return nil
}
