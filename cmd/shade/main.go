// Shade - colour scheme generator
//
// Shade averages hex colours and derives complementary, analogous and
// monochromatic schemes from the result.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/shade/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
