package trace

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridwalk/direction"
	"github.com/katalvlaran/gridwalk/grid"
)

// Sentinel errors for trace execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("trace: grid is nil")

	// ErrBadStart is returned when the start position is off the grid or blocked.
	ErrBadStart = errors.New("trace: invalid start position")

	// ErrBadDirection is returned when the start heading is not a cardinal direction.
	ErrBadDirection = errors.New("trace: invalid start direction")

	// ErrStepLimit is returned when a walk exceeds the WithMaxSteps bound.
	ErrStepLimit = errors.New("trace: step limit exceeded")

	// ErrTrapped is returned when every heading from a cell is blocked.
	ErrTrapped = errors.New("trace: walker is enclosed on all sides")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("trace: invalid option supplied")
)

// Signal is an observer's verdict for the current step.
type Signal uint8

const (
	// Continue lets the walk take its next step.
	Continue Signal = iota
	// Stop ends the walk immediately with Outcome Stopped.
	Stop
)

// Observer inspects each state of a walk before the walker acts on it.
type Observer func(p grid.Pos, d direction.Dir) Signal

// Outcome tells how a walk terminated.
type Outcome uint8

const (
	// Exited means the next step would have left the grid.
	Exited Outcome = iota
	// Stopped means the observer returned Stop.
	Stopped
)

// String returns "exited" or "stopped".
func (o Outcome) String() string {
	if o == Stopped {
		return "stopped"
	}
	return "exited"
}

// Result summarises a finished walk.
type Result struct {
	// Outcome is the terminal condition.
	Outcome Outcome
	// Pos and Dir are the final state, the one last shown to the observer.
	Pos grid.Pos
	Dir direction.Dir
	// Steps counts observer calls; Moves and Turns split the actions taken.
	Steps, Moves, Turns int
}

// Option configures a walk via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the tunable parameters of a walk.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxSteps, if > 0, fails the walk with ErrStepLimit once the observer
	// has been called MaxSteps times without the walk ending.
	// 0 disables the limit.
	MaxSteps int

	// Turn is the rotation applied when the cell ahead is blocked.
	Turn func(direction.Dir) direction.Dir

	err error
}

// DefaultOptions returns Options with a background context, no step
// limit and a clockwise turn.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxSteps: 0,
		Turn:     direction.Dir.TurnRight,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps bounds the number of observer calls.
//
//	n > 0: limit to n steps
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithTurn replaces the clockwise turn taken in front of a blocked cell.
// A nil fn is an option violation.
func WithTurn(fn func(direction.Dir) direction.Dir) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: Turn cannot be nil", ErrOptionViolation)
			return
		}
		o.Turn = fn
	}
}
