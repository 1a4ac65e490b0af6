// Package gridwalk is a small toolkit for puzzles played on rectangular
// character maps: positions, directions, a dense generic grid, and the two
// search engines most such puzzles reduce to.
//
// 🚀 What is inside?
//
//	direction/  — the four cardinal headings, turns and opposites
//	grid/       — Pos algebra (saturating) + Grid[T] container, parsing, iteration
//	trace/      — step-by-step walker: move until blocked, turn, detect loops
//	flood/      — stack-based climb scoring (reachable peaks or distinct paths)
//	runner/     — puzzle harness: YAML config, logrus logging, day registry
//
// Puzzle packages built on top:
//
//	wordsearch/ — kernel matching with wildcards
//	patrol/     — guard walk and loop-inducing obstacles (parallel trials)
//	antenna/    — antinode lines between same-frequency antennas
//	trailhead/  — hiking trail scores and ratings
//
// Quick ASCII example (trace.Walk heading North from ^):
//
//	....#.....        ....#.....
//	.........#        ....XXXXX#
//	..........   →    ....X...X.
//	..#.......        ..#.X...X.
//	....^.....        ....X...X.
//
// Run a puzzle:
//
//	go run ./cmd/gridwalk -day 6 -workers 4 input.txt
package gridwalk
