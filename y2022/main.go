// Command y2022 solves Advent of Code 2022.
//
// Inputs are read from inputs/day<N>.txt; see -help for the flags.
package main

import (
	"embed"

	"github.com/tallyfold/aoc"
)

func main() {
	aoc.Run(2022, source, &solver{})
}

//go:embed day*.go
var source embed.FS

type solver struct {
	*aoc.Puzzle
}
