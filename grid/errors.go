package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no rows, no columns or a non-positive size.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrTooLarge indicates a width×height that does not fit in an int.
	ErrTooLarge = errors.New("grid: cell count overflows int")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds is matched by every *OutOfBoundsError.
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")
	// ErrNoDirection indicates a vector that is not a cardinal unit direction.
	ErrNoDirection = errors.New("grid: vector has no cardinal direction")
)

// OutOfBoundsError reports the coordinates of a rejected access.
type OutOfBoundsError struct {
	X, Y int
}

// Error implements error.
func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("grid: coordinates (%d, %d) out of bounds", e.X, e.Y)
}

// Unwrap lets errors.Is(err, ErrOutOfBounds) match.
func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}
