// Package direction models the four cardinal directions of a 4-connected grid.
//
// What:
//
//   - Dir is a closed enumeration: North, East, South, West (clockwise order).
//   - Axis reports the movement axis of a direction: Horizontal or Vertical.
//   - Opposite, TurnRight and TurnLeft are pure rotations by 180° and ±90°.
//
// Guarantees:
//
//   - TurnRight(TurnLeft(d)) == d and Opposite(Opposite(d)) == d for every d.
//   - Four consecutive TurnRight calls return the original direction.
//
// Complexity:
//
//   - Every operation is O(1) with no allocation.
//
// Directions carry no grid context. Converting a direction into a unit offset
// lives with the position type in package grid (grid.FromDir).
package direction
