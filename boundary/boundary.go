// Package boundary implements the index-mapping policies the MODWT
// kernel uses to resolve out-of-range sample requests (spec §4.2). Every
// function here is pure and allocation-free.
package boundary

import "github.com/gowavelet/modwt/modwterr"

// Mode selects how an index outside [0, N) is resolved.
type Mode int

const (
	// Periodic wraps the index modulo N.
	Periodic Mode = iota
	// ZeroPadding treats every out-of-range sample as zero.
	ZeroPadding
	// Symmetric reflects the index about both boundaries (whole-point
	// reflection).
	Symmetric
)

func (m Mode) String() string {
	switch m {
	case Periodic:
		return "periodic"
	case ZeroPadding:
		return "zero-padding"
	case Symmetric:
		return "symmetric"
	default:
		return "unknown"
	}
}

// Valid reports whether m is one of the three defined modes.
func (m Mode) Valid() bool {
	return m == Periodic || m == ZeroPadding || m == Symmetric
}

// Resolve maps a requested index k into a signal of length n under mode
// m, returning the source index to read and the weight to apply (0 for
// ZeroPadding when k falls outside the signal, 1 otherwise). It returns
// InvalidSignal for n < 1 and InvalidBoundaryMode for an unrecognized
// mode.
func Resolve(k, n int, m Mode) (index int, weight float64, err error) {
	if n < 1 {
		return 0, 0, modwterr.New(modwterr.InvalidSignal, "n", n, "n >= 1")
	}
	switch m {
	case Periodic:
		return periodic(k, n), 1, nil
	case ZeroPadding:
		if k < 0 || k >= n {
			return 0, 0, nil
		}
		return k, 1, nil
	case Symmetric:
		return symmetric(k, n), 1, nil
	default:
		return 0, 0, modwterr.New(modwterr.InvalidBoundaryMode, "mode", int(m), "Periodic, ZeroPadding or Symmetric")
	}
}

// periodic implements source = ((k mod n) + n) mod n.
func periodic(k, n int) int {
	r := k % n
	if r < 0 {
		r += n
	}
	return r
}

// symmetric implements whole-point reflection about 0 and n-1, with
// period 2(n-1) for n > 1. A signal of length 1 has no interior to
// reflect into, so every index maps to 0.
func symmetric(k, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * (n - 1)
	r := k % period
	if r < 0 {
		r += period
	}
	if r >= n {
		r = period - r
	}
	return r
}
