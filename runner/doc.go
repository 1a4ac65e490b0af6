// Package runner feeds puzzle input through a Solver and reports both answers.
//
// A Solver parses the raw input once and answers two parts from the parsed
// value. Run logs progress through a logrus.FieldLogger and writes
//
//	[Part 1] <answer>
//	[Part 2] <answer>
//
// to its output. Config carries the shared knobs (input path, day, worker
// count, logging) and can be loaded from YAML; command-line flags override it.
package runner
