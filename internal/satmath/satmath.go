// Package satmath implements saturating arithmetic over signed integers.
//
// Results that would overflow are clamped to the minimum or maximum value
// of T instead of wrapping around. Grid coordinates are small, but offsets
// get scaled by arbitrary multipliers (antinode harmonics, long walks), and a
// wrapped coordinate could land back inside a grid; a clamped one never does.
package satmath

import (
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Max returns the largest value representable by T.
func Max[T constraints.Signed]() T {
	var zero T
	n := uint(unsafe.Sizeof(zero)*8 - 1)
	return T(uint64(1)<<n - 1)
}

// Min returns the smallest value representable by T.
func Min[T constraints.Signed]() T {
	return -Max[T]() - 1
}

// Add returns a+b clamped to the range of T.
func Add[T constraints.Signed](a, b T) T {
	s := a + b
	// Overflow iff both operands share a sign that the sum does not.
	if (a >= 0) == (b >= 0) && (s >= 0) != (a >= 0) {
		if a >= 0 {
			return Max[T]()
		}
		return Min[T]()
	}
	return s
}

// Sub returns a-b clamped to the range of T.
func Sub[T constraints.Signed](a, b T) T {
	d := a - b
	if (a >= 0) != (b >= 0) && (d >= 0) != (a >= 0) {
		if a >= 0 {
			return Max[T]()
		}
		return Min[T]()
	}
	return d
}

// Mul returns a*k clamped to the range of T.
func Mul[T constraints.Signed](a, k T) T {
	if a == 0 || k == 0 {
		return 0
	}
	negative := (a < 0) != (k < 0)
	hi, lo := bits.Mul64(abs64(int64(a)), abs64(int64(k)))
	limit := uint64(Max[T]())
	if negative {
		limit++
	}
	if hi != 0 || lo > limit {
		if negative {
			return Min[T]()
		}
		return Max[T]()
	}
	if negative {
		// lo may equal |Min|, which only fits after the negation.
		return T(-int64(lo-1) - 1)
	}
	return T(lo)
}

// Abs returns |a|, with Abs(Min) saturating to Max.
func Abs[T constraints.Signed](a T) T {
	if a >= 0 {
		return a
	}
	if a == Min[T]() {
		return Max[T]()
	}
	return -a
}

// Sign returns -1, 0 or 1 according to the sign of a.
func Sign[T constraints.Signed](a T) T {
	switch {
	case a > 0:
		return 1
	case a < 0:
		return -1
	default:
		return 0
	}
}

func abs64(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}
