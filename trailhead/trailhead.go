// Package trailhead scores hiking trails on a topographic map.
//
// A trail starts at height 0, rises by exactly one per orthogonal step and
// ends at height 9. A trailhead's score is the number of distinct 9s it can
// reach; its rating is the number of distinct trails it starts.
package trailhead

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridwalk/flood"
	"github.com/katalvlaran/gridwalk/grid"
)

// Impassable is the height stored for '.' cells. No trail can enter it.
const Impassable = -1

// ErrBadHeight is returned for a map cell that is neither a digit nor '.'.
var ErrBadHeight = errors.New("trailhead: invalid height")

// Parse reads a map of digit heights.
func Parse(input string) (*grid.Grid[int], error) {
	return grid.Parse(input, func(_ grid.Pos, r rune) (int, error) {
		switch {
		case r == '.':
			return Impassable, nil
		case r >= '0' && r <= '9':
			return int(r - '0'), nil
		}
		return 0, fmt.Errorf("%w: %q", ErrBadHeight, r)
	})
}

// Solver answers the trail puzzle: summed scores, then summed ratings.
type Solver struct{}

// Parse reads the height map.
func (Solver) Parse(input string) (*grid.Grid[int], error) {
	return Parse(input)
}

// Part1 sums the trailhead scores.
func (Solver) Part1(g *grid.Grid[int]) (any, error) {
	return flood.Total(g, flood.WithMode(flood.Reachable))
}

// Part2 sums the trailhead ratings.
func (Solver) Part2(g *grid.Grid[int]) (any, error) {
	return flood.Total(g, flood.WithMode(flood.Paths))
}
