package grid

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/gridwalk/direction"
	"github.com/katalvlaran/gridwalk/internal/satmath"
)

// Pos is a signed position or offset. It has no inherent bounds; whether a
// Pos is valid depends on the grid it is used with.
type Pos struct {
	X, Y int
}

// P is shorthand for Pos{X: x, Y: y}.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// Unit offsets for each cardinal direction. North is towards smaller Y.
var dirOffsets = [...]Pos{
	direction.North: {0, -1},
	direction.East:  {1, 0},
	direction.South: {0, 1},
	direction.West:  {-1, 0},
}

// FromDir returns the unit offset of d. It panics if d is not a valid direction.
func FromDir(d direction.Dir) Pos {
	return dirOffsets[d]
}

// Add returns p+q, saturating each component.
// Complexity: O(1).
func (p Pos) Add(q Pos) Pos {
	return Pos{satmath.Add(p.X, q.X), satmath.Add(p.Y, q.Y)}
}

// Sub returns p-q, saturating each component.
func (p Pos) Sub(q Pos) Pos {
	return Pos{satmath.Sub(p.X, q.X), satmath.Sub(p.Y, q.Y)}
}

// Mul returns p scaled by k, saturating each component.
// Complexity: O(1).
func (p Pos) Mul(k int) Pos {
	return Pos{satmath.Mul(p.X, k), satmath.Mul(p.Y, k)}
}

// Step returns the position one cell away from p in direction d.
func (p Pos) Step(d direction.Dir) Pos {
	return p.Add(FromDir(d))
}

// AddAssign adds q to p in place.
func (p *Pos) AddAssign(q Pos) {
	*p = p.Add(q)
}

// SubAssign subtracts q from p in place.
func (p *Pos) SubAssign(q Pos) {
	*p = p.Sub(q)
}

// MulAssign scales p by k in place.
func (p *Pos) MulAssign(k int) {
	*p = p.Mul(k)
}

// Neighbors returns the four axis-aligned positions at distance 1, in the
// order west, east, north, south. The result is not bounds-checked.
// Complexity: O(1).
func (p Pos) Neighbors() [4]Pos {
	return [4]Pos{
		p.Add(Pos{-1, 0}),
		p.Add(Pos{1, 0}),
		p.Add(Pos{0, -1}),
		p.Add(Pos{0, 1}),
	}
}

// InBounds reports whether 0 <= X < width and 0 <= Y < height.
// Complexity: O(1).
func (p Pos) InBounds(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// Manhattan returns |p.X-q.X| + |p.Y-q.Y|, saturating.
// Complexity: O(1).
func (p Pos) Manhattan(q Pos) int {
	d := p.Sub(q)
	return satmath.Add(satmath.Abs(d.X), satmath.Abs(d.Y))
}

// ToDir classifies p by the sign of each component. Exactly one component
// must be non-zero; zero and diagonal vectors wrap ErrNoDirection.
// Complexity: O(1).
func (p Pos) ToDir() (direction.Dir, error) {
	switch [2]int{satmath.Sign(p.X), satmath.Sign(p.Y)} {
	case [2]int{1, 0}:
		return direction.East, nil
	case [2]int{-1, 0}:
		return direction.West, nil
	case [2]int{0, 1}:
		return direction.South, nil
	case [2]int{0, -1}:
		return direction.North, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrNoDirection, p)
}

// MustDir is ToDir for callers that have already established p is cardinal.
// It panics otherwise.
func (p Pos) MustDir() direction.Dir {
	d, err := p.ToDir()
	if err != nil {
		panic(err)
	}
	return d
}

// Compare orders positions row-major: by Y, then by X.
// It returns -1, 0 or +1 and is suitable for slices.SortFunc.
func Compare(a, b Pos) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// String renders p as "Pos(x, y)".
func (p Pos) String() string {
	return fmt.Sprintf("Pos(%d, %d)", p.X, p.Y)
}
