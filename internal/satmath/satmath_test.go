package satmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounds(t *testing.T) {
	assert.Equal(t, int8(math.MaxInt8), Max[int8]())
	assert.Equal(t, int8(math.MinInt8), Min[int8]())
	assert.Equal(t, int64(math.MaxInt64), Max[int64]())
	assert.Equal(t, math.MinInt, Min[int]())
}

func TestAdd(t *testing.T) {
	cases := []struct {
		name    string
		a, b, w int8
	}{
		{"Plain", 3, 4, 7},
		{"Negative", -3, -4, -7},
		{"MixedSigns", 100, -120, -20},
		{"ClampHigh", 100, 100, math.MaxInt8},
		{"ClampLow", -100, -100, math.MinInt8},
		{"EdgeHigh", 127, 0, 127},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.w, Add(tc.a, tc.b))
		})
	}
}

func TestSub(t *testing.T) {
	assert.Equal(t, int8(-1), Sub[int8](3, 4))
	assert.Equal(t, int8(math.MaxInt8), Sub[int8](100, -100))
	assert.Equal(t, int8(math.MinInt8), Sub[int8](-100, 100))
	assert.Equal(t, int8(math.MinInt8), Sub[int8](-1, 127))
	assert.Equal(t, int8(math.MaxInt8), Sub[int8](0, math.MinInt8))
}

func TestMul(t *testing.T) {
	assert.Equal(t, int8(0), Mul[int8](0, 100))
	assert.Equal(t, int8(-120), Mul[int8](-12, 10))
	assert.Equal(t, int8(math.MinInt8), Mul[int8](-64, 2))
	assert.Equal(t, int8(math.MinInt8), Mul[int8](-64, 3))
	assert.Equal(t, int8(math.MaxInt8), Mul[int8](-64, -3))
	assert.Equal(t, int8(math.MaxInt8), Mul[int8](64, 2))
	assert.Equal(t, int8(-127), Mul[int8](127, -1))
	assert.Equal(t, int8(math.MaxInt8), Mul[int8](math.MinInt8, -1))
	assert.Equal(t, math.MaxInt, Mul(math.MaxInt/2+1, 2))
	assert.Equal(t, -6, Mul(2, -3))
}

func TestAbsSign(t *testing.T) {
	assert.Equal(t, int8(5), Abs[int8](-5))
	assert.Equal(t, int8(math.MaxInt8), Abs[int8](math.MinInt8))
	assert.Equal(t, -1, Sign(-42))
	assert.Equal(t, 0, Sign(0))
	assert.Equal(t, 1, Sign(7))
}
