// Package trace runs step-and-observe walks over a grid.
//
// A walker holds a position and a heading. Each step it:
//
//  1. calls the Observer with (position, heading); Stop ends the walk,
//  2. looks at the cell ahead; off the grid ends the walk,
//  3. turns (clockwise by default) if that cell is blocked, staying in place,
//  4. otherwise moves onto it.
//
// The two endings are reported separately (Stopped vs Exited), which is how
// callers tell "my observer found what it wanted" (for example a repeated
// state, i.e. a loop) from "the walker left the area".
//
// The engine keeps no state between calls: a walk is a pure function of the
// grid, the start state and the blocked predicate, plus whatever the
// observer accumulates. Visited and Loops are the two standard observers.
//
// Options:
//
//   - WithContext: cancellation, checked once per step.
//   - WithMaxSteps: bounded stepping; exceeding the bound yields ErrStepLimit.
//   - WithTurn: replace the clockwise turn with another rotation.
//
// Complexity:
//
//   - Walk: O(S) for S steps, no allocation beyond the observer's own.
//   - Visited: O(S) time, O(W×H) memory.
//   - Loops: O(S) time with S ≤ 4×W×H before a repeat is guaranteed, O(W×H) memory.
package trace
