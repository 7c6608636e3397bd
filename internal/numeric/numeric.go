// Package numeric holds small generic numeric helpers used by the
// denoising layer, kept separate so the domain packages stay focused
// on MODWT semantics rather than scalar arithmetic.
package numeric

import "golang.org/x/exp/constraints"

// Abs returns the absolute value of x for any ordered, signed
// floating-point type.
func Abs[T constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of a and b.
func Max[T constraints.Float](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Sign returns -1, 0, or 1 according to the sign of x.
func Sign[T constraints.Float](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
