// Copyright 2025 The Goloads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/StructuralTools/goloads/asce"
	"github.com/spf13/cobra"
)

var combsGroup string

var combsCmd = &cobra.Command{
	Use:   "combs",
	Short: "List the built-in load combination groups",
	Long: `List the built-in load combination groups and their factors.

The groups follow ASCE 7-16 Section 2.3 (strength design, LRFD) and
Section 2.4 (allowable stress design, ASD), with the NDS time-effect
and load-duration factors attached to each combination.

Examples:
  goloads combs
  goloads combs --group LRFD`,
	RunE: runCombs,
}

func init() {
	rootCmd.AddCommand(combsCmd)
	combsCmd.Flags().StringVarP(&combsGroup, "group", "g", "", "show only this group")
}

func runCombs(cmd *cobra.Command, args []string) error {
	groups := asce.Groups()
	if combsGroup != "" {
		groups = []string{combsGroup}
	}
	for _, g := range groups {
		combs, err := asce.Combs(g)
		if err != nil {
			return err
		}
		fmt.Printf("%s:\n", g)
		for _, c := range combs {
			fmt.Printf("  %v\n", c)
		}
		fmt.Println()
	}
	return nil
}
