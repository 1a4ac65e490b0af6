package flood

import (
	"errors"
	"fmt"
)

// Sentinel errors for flood scoring.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("flood: grid is nil")

	// ErrBadStart is returned when the start position is off the grid.
	ErrBadStart = errors.New("flood: start position out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("flood: invalid option supplied")
)

// Mode selects what Score counts.
type Mode uint8

const (
	// Reachable counts distinct peak cells reachable from the start.
	Reachable Mode = iota
	// Paths counts distinct climbing paths from the start to any peak cell.
	Paths
)

// Option configures scoring via functional arguments.
type Option func(*Options)

// Options holds the scoring parameters.
type Options struct {
	// Mode selects Reachable or Paths counting.
	Mode Mode
	// Base is the value a start cell must hold to score at all.
	Base int
	// Peak is the value whose cells are counted. Must be > Base.
	Peak int

	err error
}

// DefaultOptions returns Reachable mode, Base 0 and Peak 9.
func DefaultOptions() Options {
	return Options{Mode: Reachable, Base: 0, Peak: 9}
}

// WithMode selects the counting mode.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != Reachable && m != Paths {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, m)
			return
		}
		o.Mode = m
	}
}

// WithBase sets the required start value.
func WithBase(v int) Option {
	return func(o *Options) { o.Base = v }
}

// WithPeak sets the counted value.
func WithPeak(v int) Option {
	return func(o *Options) { o.Peak = v }
}

func build(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.Peak <= o.Base {
		return o, fmt.Errorf("%w: Peak (%d) must exceed Base (%d)", ErrOptionViolation, o.Peak, o.Base)
	}
	return o, nil
}
