// Copyright 2025 The Goloads Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "github.com/StructuralTools/goloads/cmd"

func main() {
	cmd.Execute()
}
