// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the Kyle Authors

// Package main is the entrypoint for the kyle binary.
package main

import (
	"github.com/darhebkf/kyle/src/cmd"
)

func main() {
	cmd.Execute()
}
