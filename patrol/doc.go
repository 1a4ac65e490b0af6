// Package patrol simulates a guard walking a floor plan and finds where a
// single extra obstacle would trap the guard in a loop.
//
// The guard starts on '^' facing north, walks forward and turns right in
// front of every '#'. Part 1 counts the distinct cells visited before the
// guard leaves the map. Part 2 tries an obstacle on every visited cell except
// the start and counts the placements that make the walk loop.
//
// LoopObstacles mutates the map in place, one trial at a time, and restores
// each cell before the next trial. With more than one worker every goroutine
// gets its own clone of the grid instead.
package patrol
