package grid

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// Grid is a dense, rectangular table of values stored in row-major order.
// Width and Height are fixed at construction. A Grid is not safe for
// concurrent mutation; use Clone to give each goroutine its own copy.
type Grid[T any] struct {
	width, height int
	cells         []T
}

// FromRows builds a grid from rows[y][x]. The input is deep-copied.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs from the first.
// Complexity: O(W×H).
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]T, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		cells = append(cells, row...)
	}

	return &Grid[T]{width: w, height: h, cells: cells}, nil
}

// Filled builds a width×height grid with every cell set to value.
// Returns ErrEmptyGrid for a non-positive size and ErrTooLarge when
// width×height overflows int.
// Complexity: O(W×H).
func Filled[T any](width, height int, value T) (*Grid[T], error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	cells := make([]T, width*height)
	for i := range cells {
		cells[i] = value
	}

	return &Grid[T]{width: width, height: height, cells: cells}, nil
}

// FromFunc builds a width×height grid by calling f once per position in
// row-major order. Returns ErrEmptyGrid or ErrTooLarge as Filled does.
// Complexity: O(W×H) calls to f.
func FromFunc[T any](width, height int, f func(Pos) T) (*Grid[T], error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	cells := make([]T, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cells = append(cells, f(Pos{x, y}))
		}
	}

	return &Grid[T]{width: width, height: height, cells: cells}, nil
}

// Must returns g, panicking if err is non-nil. It wraps the constructors
// for callers whose input is known to be well-formed.
func Must[T any](g *Grid[T], err error) *Grid[T] {
	if err != nil {
		panic(err)
	}
	return g
}

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: size %d×%d", ErrEmptyGrid, width, height)
	}
	if width > math.MaxInt/height {
		return fmt.Errorf("%w: size %d×%d", ErrTooLarge, width, height)
	}
	return nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Len returns Width×Height.
func (g *Grid[T]) Len() int { return len(g.cells) }

// Contains reports whether p lies inside the grid.
// Complexity: O(1).
func (g *Grid[T]) Contains(p Pos) bool {
	return p.InBounds(g.width, g.height)
}

// index maps p to its row-major offset: Y*Width + X. p must be in bounds.
func (g *Grid[T]) index(p Pos) int {
	return p.Y*g.width + p.X
}

// Get returns the value at p. ok is false when p is out of bounds.
// Complexity: O(1).
func (g *Grid[T]) Get(p Pos) (v T, ok bool) {
	if !g.Contains(p) {
		return v, false
	}
	return g.cells[g.index(p)], true
}

// At returns the value at p. It panics with an *OutOfBoundsError if p is
// out of bounds; use it only where bounds are already established.
// Complexity: O(1).
func (g *Grid[T]) At(p Pos) T {
	return *g.Ptr(p)
}

// Ptr returns a pointer to the cell at p, valid until the grid is discarded.
// It panics with an *OutOfBoundsError if p is out of bounds.
// Complexity: O(1).
func (g *Grid[T]) Ptr(p Pos) *T {
	if !g.Contains(p) {
		panic(&OutOfBoundsError{X: p.X, Y: p.Y})
	}
	return &g.cells[g.index(p)]
}

// Set replaces the value at p. It returns an *OutOfBoundsError, leaving the
// grid untouched, if p is out of bounds.
// Complexity: O(1).
func (g *Grid[T]) Set(p Pos, v T) error {
	if !g.Contains(p) {
		return &OutOfBoundsError{X: p.X, Y: p.Y}
	}
	g.cells[g.index(p)] = v
	return nil
}

// Clone returns a deep copy of the grid's storage. Values themselves are
// copied by assignment.
// Complexity: O(W×H).
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{width: g.width, height: g.height, cells: cells}
}

// Rows returns a copy of the grid as rows[y][x].
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, g.height)
	for y := range rows {
		rows[y] = make([]T, g.width)
		copy(rows[y], g.cells[y*g.width:(y+1)*g.width])
	}
	return rows
}

// Positions yields every in-bounds position in row-major order.
func (g *Grid[T]) Positions() iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				if !yield(Pos{x, y}) {
					return
				}
			}
		}
	}
}

// Cells yields a copy of every value in row-major order.
func (g *Grid[T]) Cells() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.cells {
			if !yield(v) {
				return
			}
		}
	}
}

// CellPtrs yields a pointer to every cell in row-major order. Writes through
// the pointers update the grid.
func (g *Grid[T]) CellPtrs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range g.cells {
			if !yield(&g.cells[i]) {
				return
			}
		}
	}
}

// All yields every (position, value) pair in row-major order.
func (g *Grid[T]) All() iter.Seq2[Pos, T] {
	return func(yield func(Pos, T) bool) {
		for i, v := range g.cells {
			if !yield(Pos{i % g.width, i / g.width}, v) {
				return
			}
		}
	}
}

// Format renders the grid one row per line, concatenating cell(p, v) for
// each cell of the row.
func (g *Grid[T]) Format(cell func(p Pos, v T) string) string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := Pos{x, y}
			sb.WriteString(cell(p, g.cells[g.index(p)]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String renders the grid with each value formatted by %v and separated by a space.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(&sb, g.cells[y*g.width+x])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
