package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/direction"
	"github.com/katalvlaran/gridwalk/grid"
)

// TestPos_Arithmetic covers the value and in-place operators.
func TestPos_Arithmetic(t *testing.T) {
	a, b := grid.P(3, -2), grid.P(-1, 5)
	assert.Equal(t, grid.P(2, 3), a.Add(b))
	assert.Equal(t, grid.P(4, -7), a.Sub(b))
	assert.Equal(t, grid.P(-9, 6), a.Mul(-3))
	assert.Equal(t, grid.P(0, 0), a.Mul(0))

	p := a
	p.AddAssign(b)
	assert.Equal(t, grid.P(2, 3), p)
	p.SubAssign(b)
	assert.Equal(t, a, p)
	p.MulAssign(2)
	assert.Equal(t, grid.P(6, -4), p)
}

// TestPos_Saturation checks that large offsets clamp instead of wrapping.
func TestPos_Saturation(t *testing.T) {
	far := grid.P(math.MaxInt-1, math.MinInt+1)
	assert.Equal(t, grid.P(math.MaxInt, math.MinInt), far.Add(grid.P(10, -10)))
	assert.Equal(t, grid.P(math.MaxInt, math.MinInt), grid.P(3, -3).Mul(math.MaxInt))

	g := grid.Must(grid.Filled(5, 5, 0))
	// A wrapped product would come back near the origin; a saturated one cannot.
	huge := grid.P(1, 1).Mul(math.MaxInt).Add(grid.P(2, 2))
	assert.False(t, g.Contains(huge))
}

// TestPos_Neighbors verifies order, count and distance of Neighbors.
func TestPos_Neighbors(t *testing.T) {
	p := grid.P(4, 7)
	n := p.Neighbors()
	assert.Equal(t, [4]grid.Pos{{3, 7}, {5, 7}, {4, 6}, {4, 8}}, n)
	for _, q := range n {
		assert.Equal(t, 1, p.Manhattan(q))
	}

	// Not bounds-filtered.
	assert.Contains(t, grid.P(0, 0).Neighbors(), grid.P(-1, 0))
}

// TestPos_InBounds checks the half-open bounds on both axes.
func TestPos_InBounds(t *testing.T) {
	cases := []struct {
		p    grid.Pos
		want bool
	}{
		{grid.P(0, 0), true},
		{grid.P(2, 1), true},
		{grid.P(3, 1), false},
		{grid.P(2, 2), false},
		{grid.P(-1, 0), false},
		{grid.P(0, -1), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.p.InBounds(3, 2), "%v", tc.p)
	}
}

// TestPos_DirectionRoundTrip covers FromDir/ToDir for every direction.
func TestPos_DirectionRoundTrip(t *testing.T) {
	assert.Equal(t, grid.P(0, -1), grid.FromDir(direction.North))
	assert.Equal(t, grid.P(0, 1), grid.FromDir(direction.South))
	assert.Equal(t, grid.P(-1, 0), grid.FromDir(direction.West))
	assert.Equal(t, grid.P(1, 0), grid.FromDir(direction.East))

	for _, d := range direction.All() {
		got, err := grid.FromDir(d).ToDir()
		require.NoError(t, err)
		assert.Equal(t, d, got)
		assert.Equal(t, grid.FromDir(d).Mul(-1), grid.FromDir(d.Opposite()))
		assert.Equal(t, grid.P(2, 2).Add(grid.FromDir(d)), grid.P(2, 2).Step(d))
	}
}

// TestPos_ToDir classifies by sign, so long axis-aligned vectors qualify.
func TestPos_ToDir(t *testing.T) {
	d, err := grid.P(0, -12).ToDir()
	require.NoError(t, err)
	assert.Equal(t, direction.North, d)
	assert.Equal(t, direction.East, grid.P(40, 0).MustDir())

	for _, p := range []grid.Pos{{0, 0}, {1, 1}, {-3, 2}} {
		_, err := p.ToDir()
		assert.ErrorIs(t, err, grid.ErrNoDirection, "%v", p)
	}
	assert.Panics(t, func() { grid.P(1, -1).MustDir() })
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, grid.Compare(grid.P(5, 0), grid.P(0, 1)))
	assert.Equal(t, 1, grid.Compare(grid.P(2, 1), grid.P(1, 1)))
	assert.Equal(t, 0, grid.Compare(grid.P(2, 1), grid.P(2, 1)))
	assert.Equal(t, "Pos(2, -1)", grid.P(2, -1).String())
}
