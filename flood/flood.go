package flood

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/gridwalk/grid"
)

// Score counts the peak cells (Reachable) or peak paths (Paths) climbing from
// start. A start that does not hold the base value scores 0.
// Returns ErrGridNil, ErrBadStart or ErrOptionViolation for invalid input;
// Base and Peak must be representable in T.
func Score[T constraints.Integer](g *grid.Grid[T], start grid.Pos, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGridNil
	}
	o, err := buildFor[T](opts)
	if err != nil {
		return 0, err
	}
	v, ok := g.Get(start)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrBadStart, start)
	}
	if v != T(o.Base) {
		return 0, nil
	}

	return climb(g, start, o), nil
}

// Total sums Score over every cell of g in row-major order.
func Total[T constraints.Integer](g *grid.Grid[T], opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGridNil
	}
	o, err := buildFor[T](opts)
	if err != nil {
		return 0, err
	}
	total := 0
	for p, v := range g.All() {
		if v == T(o.Base) {
			total += climb(g, p, o)
		}
	}
	return total, nil
}

// buildFor is build plus a range check of Base and Peak against T.
func buildFor[T constraints.Integer](opts []Option) (Options, error) {
	o, err := build(opts)
	if err != nil {
		return o, err
	}
	for _, v := range [...]int{o.Base, o.Peak} {
		if !fits[T](v) {
			return o, fmt.Errorf("%w: %d does not fit in %T", ErrOptionViolation, v, T(0))
		}
	}
	return o, nil
}

// fits reports whether v converts to T and back unchanged.
func fits[T constraints.Integer](v int) bool {
	t := T(v)
	return int(t) == v && (t < 0) == (v < 0)
}

// climb runs the stack-based search from a validated start. Expanded cells
// hold values in [Base, Peak), so h+1 never wraps.
func climb[T constraints.Integer](g *grid.Grid[T], start grid.Pos, o Options) int {
	var seen map[grid.Pos]struct{}
	if o.Mode == Reachable {
		seen = map[grid.Pos]struct{}{start: {}}
	}
	score := 0
	open := []grid.Pos{start}
	for len(open) > 0 {
		cur := open[len(open)-1]
		open = open[:len(open)-1]
		h := g.At(cur)
		if h == T(o.Peak) {
			score++
			continue
		}
		for _, n := range cur.Neighbors() {
			nv, ok := g.Get(n)
			if !ok || nv != h+1 {
				continue
			}
			if seen != nil {
				if _, dup := seen[n]; dup {
					continue
				}
				seen[n] = struct{}{}
			}
			open = append(open, n)
		}
	}
	return score
}
