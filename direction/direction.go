package direction

import "strconv"

// Dir is a cardinal direction. The zero value is North.
type Dir uint8

// The cardinal directions, in clockwise order starting at North.
const (
	North Dir = iota
	East
	South
	West
)

// count is the number of cardinal directions; rotations work modulo count.
const count = 4

// Axis is the movement axis a direction travels along.
type Axis uint8

const (
	// Horizontal is the axis of East and West.
	Horizontal Axis = iota
	// Vertical is the axis of North and South.
	Vertical
)

// All returns the four directions in clockwise order starting at North.
func All() [count]Dir {
	return [count]Dir{North, East, South, West}
}

// Valid reports whether d is one of the four declared directions.
func (d Dir) Valid() bool {
	return d < count
}

// Axis returns the axis d moves along.
func (d Dir) Axis() Axis {
	if d == East || d == West {
		return Horizontal
	}
	return Vertical
}

// Opposite returns d rotated by 180°.
func (d Dir) Opposite() Dir {
	return (d + 2) % count
}

// TurnRight returns d rotated 90° clockwise.
func (d Dir) TurnRight() Dir {
	return (d + 1) % count
}

// TurnLeft returns d rotated 90° counter-clockwise.
func (d Dir) TurnLeft() Dir {
	return (d + count - 1) % count
}

// String returns the direction name, or "Dir(n)" for values outside the enumeration.
func (d Dir) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Dir(" + strconv.Itoa(int(d)) + ")"
	}
}

// String returns "Horizontal" or "Vertical".
func (a Axis) String() string {
	if a == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}
