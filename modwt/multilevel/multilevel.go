// Package multilevel implements the cascaded Multi-Level MODWT (spec
// §4.4), equivalent to the Stationary Wavelet Transform: J single-level
// decompositions applied in sequence to the running approximation, each
// at twice the dilation of the last.
package multilevel

import (
	"github.com/gowavelet/modwt/boundary"
	"github.com/gowavelet/modwt/modwt"
	"github.com/gowavelet/modwt/modwterr"
	"github.com/gowavelet/modwt/wavelet"
)

// Result is the ordered output of a J-level decomposition: Details[j-1]
// is detail_j for j=1..J, and Approx is the final-level approximation
// approx_J. Every array has length N (spec §3: MultiLevelResult).
type Result struct {
	Details []*modwt.SingleLevelResult
	Approx  []float64
	Levels  int
}

func newResult(levels, n int) *Result {
	details := make([]*modwt.SingleLevelResult, levels)
	return &Result{Details: details, Levels: levels, Approx: make([]float64, n)}
}

// Detail returns detail_j (1-indexed, j=1..J) or nil if j is out of
// range.
func (r *Result) Detail(j int) []float64 {
	if r == nil || j < 1 || j > len(r.Details) {
		return nil
	}
	return r.Details[j-1].Detail
}

// Len returns the shared coefficient length N, 0 for a nil result.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Approx)
}

// MaxLevel returns the largest J with (L-1)*(2^J-1) < n, the admissible
// decomposition depth ceiling for a filter of length l against a signal
// of length n (spec §4.4).
func MaxLevel(n, l int) int {
	if n < 1 || l < 2 {
		return 0
	}
	j := 0
	for {
		dilatedSpan := (l - 1) * ((1 << uint(j+1)) - 1)
		if dilatedSpan >= n {
			break
		}
		j++
	}
	return j
}

// Forward cascades J single-level MODWT decompositions, feeding each
// level's approximation into the next (spec §4.4: forward). At level j
// the base filters are applied at dilation 2^(j-1) to the running
// approximation, not to the original signal.
func Forward(signal []float64, w *wavelet.Wavelet, mode boundary.Mode, levels int) (*Result, error) {
	if err := modwterr.CheckSignal(signal); err != nil {
		return nil, err
	}
	if w == nil {
		return nil, modwterr.New(modwterr.InvalidWavelet, "wavelet", nil, "non-nil *wavelet.Wavelet")
	}
	maxLevel := MaxLevel(len(signal), w.Length())
	if err := modwterr.CheckLevel(levels, maxLevel); err != nil {
		return nil, err
	}

	result := newResult(levels, len(signal))
	current := signal
	for j := 1; j <= levels; j++ {
		level, err := modwt.ForwardAtLevel(current, w, mode, j)
		if err != nil {
			return nil, err
		}
		result.Details[j-1] = level
		current = level.Approx
	}
	copy(result.Approx, current)
	return result, nil
}

// Inverse reverses a J-level decomposition, starting from approx_J and
// combining it with detail_J, detail_(J-1), ..., detail_1 in turn (spec
// §4.4: inverse).
func Inverse(result *Result, w *wavelet.Wavelet, mode boundary.Mode) ([]float64, error) {
	if result == nil || result.Levels == 0 {
		return nil, modwterr.New(modwterr.InvalidArgument, "result", nil, "non-nil multi-level Result")
	}
	if w == nil {
		return nil, modwterr.New(modwterr.InvalidWavelet, "wavelet", nil, "non-nil *wavelet.Wavelet")
	}

	current := append([]float64(nil), result.Approx...)
	for j := result.Levels; j >= 1; j-- {
		detailLevel := result.Details[j-1]
		if detailLevel == nil {
			return nil, modwterr.New(modwterr.InvalidArgument, "detail", j, "non-nil detail level")
		}
		single := &modwt.SingleLevelResult{Approx: current, Detail: detailLevel.Detail}
		next, err := modwt.InverseAtLevel(single, w, mode, j)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}
