// Package grid provides a dense, rectangular 2D container together with the
// signed position algebra used to index it.
//
// What:
//
//   - Pos is a signed (X, Y) pair used both as an absolute coordinate and as an
//     offset. X grows to the right (east), Y grows downwards (south).
//   - Grid[T] owns a row-major table of Width×Height values. It is built once
//     (FromRows, Filled, FromFunc or Parse), mutated in place with Set or Ptr,
//     and never resized.
//
// Access tiers:
//
//   - Get and Set are bounds-checked. Get reports absence with ok == false;
//     Set returns an *OutOfBoundsError carrying the offending coordinates.
//   - At and Ptr skip the "absence" path: an out-of-bounds position is a
//     programming error and panics with an *OutOfBoundsError.
//
// Enumeration:
//
//   - Positions, Cells, CellPtrs and All iterate in row-major order
//     (y outer, x inner). This is the canonical order for any "for every cell"
//     algorithm built on the grid.
//
// Arithmetic:
//
//   - Pos.Add, Pos.Sub and Pos.Mul saturate at the int range instead of
//     wrapping, so a scaled offset can never wrap back into a grid.
//
// Errors:
//
//   - ErrEmptyGrid: no rows, no columns, or a non-positive size.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrOutOfBounds: matched by every *OutOfBoundsError.
//   - ErrNoDirection: a vector that is not a cardinal unit direction.
//
// Complexity:
//
//   - Construction and Clone: O(W×H) time and memory.
//   - Get, Set, At, Ptr, Contains: O(1).
package grid
