// Copyright 2025 The Goloads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const Version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goloads",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("goloads v%s\n", Version)
		fmt.Println("Structural load combination evaluator")
		fmt.Println("Load combinations per ASCE 7-16 and 2018 IBC")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
