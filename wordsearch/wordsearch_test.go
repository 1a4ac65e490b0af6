package wordsearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/wordsearch"
)

const sample = `
MMMSXXMASM
MSAMXMSMSA
AMXSXMAAMM
MSAMASMSMX
XMASAMXAMM
XXAMMXXAMA
SMSMSASXSS
SAXAMASAAA
MAMMMXMMMM
MXMXAXMASX
`

func TestSolver(t *testing.T) {
	var s wordsearch.Solver
	g, err := s.Parse(sample)
	require.NoError(t, err)

	p1, err := s.Part1(g)
	require.NoError(t, err)
	assert.Equal(t, 18, p1)

	p2, err := s.Part2(g)
	require.NoError(t, err)
	assert.Equal(t, 9, p2)
}

func TestMatchAt(t *testing.T) {
	g := grid.Must(grid.Runes("XMAS\n.M..\n..A.\n...S"))
	diag := wordsearch.Kernel{"X", "*M", "**A", "***S"}
	assert.True(t, diag.MatchAt(g, grid.P(0, 0)))
	assert.True(t, wordsearch.Kernel{"XMAS"}.MatchAt(g, grid.P(0, 0)))
	assert.False(t, wordsearch.Kernel{"XMAS"}.MatchAt(g, grid.P(0, 1)))

	// Wildcards may hang off the grid; letters may not.
	assert.True(t, wordsearch.Kernel{"S*"}.MatchAt(g, grid.P(3, 3)))
	assert.False(t, wordsearch.Kernel{"SX"}.MatchAt(g, grid.P(3, 3)))
	assert.Equal(t, 2, wordsearch.Count(g, wordsearch.XMAS))
}

// TestCount_NonSquare guards against assuming a square grid.
func TestCount_NonSquare(t *testing.T) {
	g := grid.Must(grid.Runes("..XMAS\nSAMX.."))
	assert.Equal(t, 2, wordsearch.Count(g, wordsearch.XMAS))
}
