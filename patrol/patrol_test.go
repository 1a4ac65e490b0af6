package patrol_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/patrol"
)

const reference = `
....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

// Three obstacles: the guard walks 10 cells and leaves; an obstacle at
// (4,4) is the only placement that closes a loop.
const small = `
..#...
.....#
......
.#....
..^...
......
`

// PatrolSuite exercises parsing, path tracing and loop search.
type PatrolSuite struct {
	suite.Suite
	ref Map
}

// Map aliases patrol.Map to keep the fixture field short.
type Map = patrol.Map

func (s *PatrolSuite) SetupTest() {
	m, err := patrol.Parse(reference)
	require.NoError(s.T(), err)
	s.ref = m
}

// TestParse checks the start marker and cell mapping.
func (s *PatrolSuite) TestParse() {
	s.Equal(grid.P(4, 6), s.ref.Start)
	s.Equal(10, s.ref.Grid.Width())
	s.Equal(patrol.Obstacle, s.ref.Grid.At(grid.P(4, 0)))
	s.Equal(patrol.Free, s.ref.Grid.At(s.ref.Start))
}

// TestParse_Errors verifies every rejected floor plan.
func (s *PatrolSuite) TestParse_Errors() {
	_, err := patrol.Parse("...\n.#.")
	s.ErrorIs(err, patrol.ErrNoStart)
	_, err = patrol.Parse("^.\n.^")
	s.ErrorIs(err, patrol.ErrMultipleStarts)
	_, err = patrol.Parse("^.\n.x")
	s.ErrorIs(err, patrol.ErrUnexpectedRune)
	_, err = patrol.Parse("^.\n.")
	s.ErrorIs(err, grid.ErrNonRectangular)
}

// TestPath counts the distinct cells and is repeatable.
func (s *PatrolSuite) TestPath() {
	first, err := s.ref.Path()
	s.Require().NoError(err)
	s.Len(first, 41)
	second, err := s.ref.Path()
	s.Require().NoError(err)
	s.Equal(first, second)
}

// TestLoopObstacles_Serial finds the six trapping placements and restores the grid.
func (s *PatrolSuite) TestLoopObstacles_Serial() {
	before := s.ref.Grid.Rows()
	loops, err := s.ref.LoopObstacles(context.Background(), 1)
	s.Require().NoError(err)
	s.Equal([]grid.Pos{{X: 3, Y: 6}, {X: 6, Y: 7}, {X: 7, Y: 7}, {X: 1, Y: 8}, {X: 3, Y: 8}, {X: 7, Y: 9}}, loops)
	s.Equal(before, s.ref.Grid.Rows(), "every trial must restore its cell")
}

// TestLoopObstacles_Parallel must agree with the serial search.
func (s *PatrolSuite) TestLoopObstacles_Parallel() {
	before := s.ref.Grid.Rows()
	serial, err := s.ref.LoopObstacles(context.Background(), 1)
	s.Require().NoError(err)
	for _, workers := range []int{2, 3, 64} {
		got, err := s.ref.LoopObstacles(context.Background(), workers)
		s.Require().NoError(err)
		s.Equal(serial, got, "workers=%d", workers)
	}
	s.Equal(before, s.ref.Grid.Rows())
}

// TestLoopObstacles_Cancelled surfaces the context error.
func (s *PatrolSuite) TestLoopObstacles_Cancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.ref.LoopObstacles(ctx, 4)
	s.ErrorIs(err, context.Canceled)
}

// TestSmallLayout is the hand-traced 6×6 regression.
func (s *PatrolSuite) TestSmallLayout() {
	m, err := patrol.Parse(small)
	s.Require().NoError(err)
	path, err := m.Path()
	s.Require().NoError(err)
	s.Len(path, 10)
	loops, err := m.LoopObstacles(context.Background(), 1)
	s.Require().NoError(err)
	s.Equal([]grid.Pos{{X: 4, Y: 4}}, loops)
}

// TestSolver runs both parts through the Solver.
func (s *PatrolSuite) TestSolver() {
	solver := patrol.Solver{Workers: 2}
	m, err := solver.Parse(reference)
	s.Require().NoError(err)
	p1, err := solver.Part1(m)
	s.Require().NoError(err)
	s.Equal(41, p1)
	p2, err := solver.Part2(m)
	s.Require().NoError(err)
	s.Equal(6, p2)
}

func TestPatrolSuite(t *testing.T) {
	suite.Run(t, new(PatrolSuite))
}
