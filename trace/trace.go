package trace

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/direction"
	"github.com/katalvlaran/gridwalk/grid"
)

// walker encapsulates the mutable state of a single walk.
type walker[T any] struct {
	grid    *grid.Grid[T]
	blocked func(T) bool
	observe Observer
	opts    Options
	done    <-chan struct{}
	res     Result
	// consecutive turns without a move
	spins int
}

// Walk runs a walk on g from start heading dir. A cell blocks the walker when
// blocked returns true for its value; a nil blocked blocks nothing. A nil
// observe never stops the walk.
//
// The walk ends with Outcome Exited or Stopped and a nil error, or with
// ErrGridNil, ErrBadStart, ErrBadDirection, ErrOptionViolation, ErrStepLimit,
// ErrTrapped or the context's error. The Result is valid in every case.
func Walk[T any](g *grid.Grid[T], start grid.Pos, dir direction.Dir, blocked func(T) bool, observe Observer, opts ...Option) (Result, error) {
	res := Result{Pos: start, Dir: dir}
	if g == nil {
		return res, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return res, o.err
	}
	if !dir.Valid() {
		return res, fmt.Errorf("%w: %v", ErrBadDirection, dir)
	}
	if blocked == nil {
		blocked = func(T) bool { return false }
	}
	if observe == nil {
		observe = func(grid.Pos, direction.Dir) Signal { return Continue }
	}
	v, ok := g.Get(start)
	if !ok {
		return res, fmt.Errorf("%w: %v is off the grid", ErrBadStart, start)
	}
	if blocked(v) {
		return res, fmt.Errorf("%w: %v is blocked", ErrBadStart, start)
	}

	w := &walker[T]{
		grid:    g,
		blocked: blocked,
		observe: observe,
		opts:    o,
		done:    o.Ctx.Done(),
		res:     res,
	}
	err := w.loop()
	return w.res, err
}

// loop advances the walker until it exits, is stopped or fails.
func (w *walker[T]) loop() error {
	for {
		if w.done != nil {
			select {
			case <-w.done:
				return w.opts.Ctx.Err()
			default:
			}
		}
		if w.opts.MaxSteps > 0 && w.res.Steps >= w.opts.MaxSteps {
			return fmt.Errorf("%w: %d steps", ErrStepLimit, w.opts.MaxSteps)
		}

		w.res.Steps++
		if w.observe(w.res.Pos, w.res.Dir) == Stop {
			w.res.Outcome = Stopped
			return nil
		}

		next := w.res.Pos.Step(w.res.Dir)
		v, ok := w.grid.Get(next)
		if !ok {
			w.res.Outcome = Exited
			return nil
		}
		if w.blocked(v) {
			if err := w.turn(); err != nil {
				return err
			}
			continue
		}
		w.res.Pos = next
		w.res.Moves++
		w.spins = 0
	}
}

// turn rotates in place. Four turns without a move mean every side is
// blocked; the observer has already seen the repeated heading by then.
func (w *walker[T]) turn() error {
	if w.spins >= 4 {
		return fmt.Errorf("%w: at %v", ErrTrapped, w.res.Pos)
	}
	d := w.opts.Turn(w.res.Dir)
	if !d.Valid() {
		return fmt.Errorf("%w: turn produced %v", ErrBadDirection, d)
	}
	w.res.Dir = d
	w.res.Turns++
	w.spins++
	return nil
}
