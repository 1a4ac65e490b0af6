// Package wordsearch counts word placements in a letter grid using
// wildcard kernels.
//
// A Kernel is a small pattern of rows anchored at its top-left cell; '*'
// matches any letter and rows may be shorter than the widest one. Count
// slides every kernel over every anchor position and counts exact matches.
package wordsearch

import (
	"github.com/katalvlaran/gridwalk/grid"
)

// Wildcard matches any letter in a Kernel.
const Wildcard = '*'

// Kernel is a pattern of rows; Kernel[dy][dx] is matched against the cell at
// anchor+(dx, dy).
type Kernel []string

// XMAS finds the word XMAS in all eight orientations.
var XMAS = []Kernel{
	{"XMAS"},
	{"SAMX"},
	{"X", "M", "A", "S"},
	{"S", "A", "M", "X"},
	{"X", "*M", "**A", "***S"},
	{"S", "*A", "**M", "***X"},
	{"***S", "**A", "*M", "X"},
	{"***X", "**M", "*A", "S"},
}

// CrossMAS finds two MAS words crossing diagonally on their A.
var CrossMAS = []Kernel{
	{"M*M", "*A*", "S*S"},
	{"S*M", "*A*", "S*M"},
	{"M*S", "*A*", "M*S"},
	{"S*S", "*A*", "M*M"},
}

// MatchAt reports whether k matches g anchored at p. A letter that falls
// outside the grid fails the match; a wildcard there does not.
func (k Kernel) MatchAt(g *grid.Grid[rune], p grid.Pos) bool {
	for dy, row := range k {
		dx := 0
		for _, want := range row {
			if want != Wildcard {
				got, ok := g.Get(p.Add(grid.P(dx, dy)))
				if !ok || got != want {
					return false
				}
			}
			dx++
		}
	}
	return true
}

// Count returns the number of (kernel, anchor) matches over all of g.
func Count(g *grid.Grid[rune], kernels []Kernel) int {
	n := 0
	for _, k := range kernels {
		for p := range g.Positions() {
			if k.MatchAt(g, p) {
				n++
			}
		}
	}
	return n
}

// Solver answers the word-search puzzle: XMAS words, then X-MAS crosses.
type Solver struct{}

// Parse reads the letter grid.
func (Solver) Parse(input string) (*grid.Grid[rune], error) {
	return grid.Runes(input)
}

// Part1 counts XMAS placements.
func (Solver) Part1(g *grid.Grid[rune]) (any, error) {
	return Count(g, XMAS), nil
}

// Part2 counts X-MAS crosses.
func (Solver) Part2(g *grid.Grid[rune]) (any, error) {
	return Count(g, CrossMAS), nil
}
