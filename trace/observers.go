package trace

import (
	"github.com/katalvlaran/gridwalk/direction"
	"github.com/katalvlaran/gridwalk/grid"
)

// Visited walks the full path and returns every position the walker
// occupied, the start included.
func Visited[T any](g *grid.Grid[T], start grid.Pos, dir direction.Dir, blocked func(T) bool, opts ...Option) (map[grid.Pos]struct{}, error) {
	seen := make(map[grid.Pos]struct{})
	_, err := Walk(g, start, dir, blocked, func(p grid.Pos, _ direction.Dir) Signal {
		seen[p] = struct{}{}
		return Continue
	}, opts...)
	if err != nil {
		return nil, err
	}
	return seen, nil
}

// Loops reports whether the walk revisits a (position, heading) state, which
// proves it would never leave the grid. It stops at the first repeat.
func Loops[T any](g *grid.Grid[T], start grid.Pos, dir direction.Dir, blocked func(T) bool, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGridNil
	}
	states := newStateSet(g.Width(), g.Height())
	res, err := Walk(g, start, dir, blocked, func(p grid.Pos, d direction.Dir) Signal {
		if !states.add(p, d) {
			return Stop
		}
		return Continue
	}, opts...)
	if err != nil {
		return false, err
	}
	return res.Outcome == Stopped, nil
}

// stateSet records visited (position, heading) pairs as one bitmask of
// headings per cell, indexed row-major.
type stateSet struct {
	width int
	bits  []uint8
}

func newStateSet(width, height int) *stateSet {
	return &stateSet{width: width, bits: make([]uint8, width*height)}
}

// add records (p, d) and reports whether it was new. p must be in bounds.
func (s *stateSet) add(p grid.Pos, d direction.Dir) bool {
	i := p.Y*s.width + p.X
	mask := uint8(1) << d
	if s.bits[i]&mask != 0 {
		return false
	}
	s.bits[i] |= mask
	return true
}
