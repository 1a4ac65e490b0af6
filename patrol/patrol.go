package patrol

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/exp/maps"

	"github.com/katalvlaran/gridwalk/direction"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/trace"
)

// Sentinel errors for floor-plan parsing.
var (
	// ErrNoStart indicates the plan has no '^' marker.
	ErrNoStart = errors.New("patrol: no start marker")
	// ErrMultipleStarts indicates more than one '^' marker.
	ErrMultipleStarts = errors.New("patrol: more than one start marker")
	// ErrUnexpectedRune indicates a rune other than '.', '#' or '^'.
	ErrUnexpectedRune = errors.New("patrol: unexpected rune")
)

// Cell is a floor-plan cell.
type Cell uint8

const (
	// Free can be walked on.
	Free Cell = iota
	// Obstacle turns the guard.
	Obstacle
)

// Heading is the direction the guard faces at the start.
const Heading = direction.North

// Map is a parsed floor plan and the guard's start position.
type Map struct {
	Grid  *grid.Grid[Cell]
	Start grid.Pos
}

// Parse reads a floor plan of '.', '#' and exactly one '^'.
func Parse(input string) (Map, error) {
	var starts []grid.Pos
	g, err := grid.Parse(input, func(p grid.Pos, r rune) (Cell, error) {
		switch r {
		case '.':
			return Free, nil
		case '#':
			return Obstacle, nil
		case '^':
			starts = append(starts, p)
			return Free, nil
		}
		return Free, fmt.Errorf("%w %q", ErrUnexpectedRune, r)
	})
	if err != nil {
		return Map{}, err
	}
	switch len(starts) {
	case 0:
		return Map{}, ErrNoStart
	case 1:
		return Map{Grid: g, Start: starts[0]}, nil
	}
	return Map{}, fmt.Errorf("%w: %v", ErrMultipleStarts, starts)
}

func blocked(c Cell) bool { return c == Obstacle }

// Path returns every cell the guard visits, in row-major order.
func (m Map) Path(opts ...trace.Option) ([]grid.Pos, error) {
	seen, err := trace.Visited(m.Grid, m.Start, Heading, blocked, opts...)
	if err != nil {
		return nil, err
	}
	path := maps.Keys(seen)
	slices.SortFunc(path, grid.Compare)
	return path, nil
}

// LoopObstacles returns, in row-major order, every cell of the guard's path
// (start excluded) where one added obstacle makes the walk loop.
// workers > 1 runs trials concurrently on cloned grids; m.Grid is never
// shared between goroutines and is unchanged when LoopObstacles returns.
func (m Map) LoopObstacles(ctx context.Context, workers int) ([]grid.Pos, error) {
	path, err := m.Path(trace.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	candidates := slices.DeleteFunc(path, func(p grid.Pos) bool { return p == m.Start })

	hits := make([]bool, len(candidates))
	if workers <= 1 {
		err = trial(ctx, m.Grid, m.Start, candidates, hits, 0, 1)
	} else {
		err = m.parallel(ctx, candidates, hits, workers)
	}
	if err != nil {
		return nil, err
	}

	var loops []grid.Pos
	for i, hit := range hits {
		if hit {
			loops = append(loops, candidates[i])
		}
	}
	return loops, nil
}

// parallel splits candidates round-robin over workers, each owning a clone.
func (m Map) parallel(ctx context.Context, candidates []grid.Pos, hits []bool, workers int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			// Each worker writes only hits[offset::workers].
			if err := trial(ctx, m.Grid.Clone(), m.Start, candidates, hits, offset, workers); err != nil {
				once.Do(func() {
					firstErr = err
					cancel()
				})
			}
		}(w)
	}
	wg.Wait()
	return firstErr
}

// trial places an obstacle at candidates[i] for i = offset, offset+stride, ...,
// runs the loop check and restores the cell.
func trial(ctx context.Context, g *grid.Grid[Cell], start grid.Pos, candidates []grid.Pos, hits []bool, offset, stride int) error {
	for i := offset; i < len(candidates); i += stride {
		p := candidates[i]
		cell := g.Ptr(p)
		prev := *cell
		*cell = Obstacle
		loops, err := trace.Loops(g, start, Heading, blocked, trace.WithContext(ctx))
		*cell = prev
		if err != nil {
			return fmt.Errorf("patrol: trial at %v: %w", p, err)
		}
		hits[i] = loops
	}
	return nil
}

// Solver answers the patrol puzzle.
type Solver struct {
	// Workers bounds concurrent obstacle trials in Part2.
	Workers int
}

// Parse reads the floor plan.
func (Solver) Parse(input string) (Map, error) {
	return Parse(input)
}

// Part1 counts the distinct cells on the guard's path.
func (Solver) Part1(m Map) (any, error) {
	path, err := m.Path()
	if err != nil {
		return nil, err
	}
	return len(path), nil
}

// Part2 counts the obstacle placements that trap the guard.
func (s Solver) Part2(m Map) (any, error) {
	loops, err := m.LoopObstacles(context.Background(), s.Workers)
	if err != nil {
		return nil, err
	}
	return len(loops), nil
}
