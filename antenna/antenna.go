// Package antenna locates the antinodes produced by pairs of same-frequency
// antennas on a map.
//
// Every non-'.' cell is an antenna whose rune is its frequency. For two
// antennas a and b of one frequency with offset d = b-a:
//
//   - the direct antinodes are a-d and b+d;
//   - the harmonic antinodes are every a+k·d, k any integer, that is on the map.
//
// Antinodes off the map are discarded; overlapping antinodes count once.
package antenna

import (
	"slices"

	"golang.org/x/exp/maps"

	"github.com/katalvlaran/gridwalk/grid"
)

// Empty marks a cell without an antenna.
const Empty = '.'

// Frequencies groups antenna positions by frequency, each group in row-major order.
func Frequencies(g *grid.Grid[rune]) map[rune][]grid.Pos {
	freqs := make(map[rune][]grid.Pos)
	for p, r := range g.All() {
		if r != Empty {
			freqs[r] = append(freqs[r], p)
		}
	}
	return freqs
}

// Antinodes returns the distinct antinodes on g in row-major order. harmonic
// selects the full line of multiples instead of the two direct points.
func Antinodes(g *grid.Grid[rune], harmonic bool) []grid.Pos {
	nodes := make(map[grid.Pos]struct{})
	mark := func(p grid.Pos) bool {
		if !g.Contains(p) {
			return false
		}
		nodes[p] = struct{}{}
		return true
	}

	for _, group := range Frequencies(g) {
		for i, a := range group {
			for _, b := range group[i+1:] {
				d := b.Sub(a)
				if !harmonic {
					mark(a.Sub(d))
					mark(b.Add(d))
					continue
				}
				// Walk the line through a both ways until it leaves the map.
				for k := 0; mark(a.Add(d.Mul(k))); k++ {
				}
				for k := -1; mark(a.Add(d.Mul(k))); k-- {
				}
			}
		}
	}

	out := maps.Keys(nodes)
	slices.SortFunc(out, grid.Compare)
	return out
}

// Solver answers the antenna puzzle: direct antinodes, then harmonic ones.
type Solver struct{}

// Parse reads the antenna map.
func (Solver) Parse(input string) (*grid.Grid[rune], error) {
	return grid.Runes(input)
}

// Part1 counts the direct antinodes.
func (Solver) Part1(g *grid.Grid[rune]) (any, error) {
	return len(Antinodes(g, false)), nil
}

// Part2 counts the harmonic antinodes.
func (Solver) Part2(g *grid.Grid[rune]) (any, error) {
	return len(Antinodes(g, true)), nil
}
