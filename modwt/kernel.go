package modwt

import (
	"github.com/gowavelet/modwt/boundary"
	"github.com/gowavelet/modwt/internal/workerpool"
	"github.com/gowavelet/modwt/modwterr"
	"github.com/gowavelet/modwt/wavelet"
)

const invSqrt2 = 0.7071067811865476 // 1/√2

// Forward computes the base-level (j=1) MODWT of signal under the given
// wavelet and boundary mode (spec §6: MODWT_forward).
func Forward(signal []float64, w *wavelet.Wavelet, mode boundary.Mode) (*SingleLevelResult, error) {
	return ForwardAtLevel(signal, w, mode, 1)
}

// ForwardAtLevel computes the MODWT at an arbitrary level j, using the
// level-j dilated filter (spec §4.3, §4.4): dilation = 2^(j-1). The
// Multi-Level Engine calls this directly for j>1; the public Forward
// above is the j=1 special case.
func ForwardAtLevel(signal []float64, w *wavelet.Wavelet, mode boundary.Mode, level int) (*SingleLevelResult, error) {
	if err := validateInputs(signal, w, mode, level); err != nil {
		return nil, err
	}

	n := len(signal)
	dilation := 1 << uint(level-1)
	h, g := w.HDec(), w.GDec()

	approx := make([]float64, n)
	detail := make([]float64, n)

	convolveRange := func(start, end int) {
		for t := start; t < end; t++ {
			var a float64
			for k := 0; k < len(h); k++ {
				idx, weight, err := boundary.Resolve(t-k*dilation, n, mode)
				if err != nil || weight == 0 {
					continue
				}
				a += h[k] * invSqrt2 * signal[idx]
			}
			var d float64
			for k := 0; k < len(g); k++ {
				idx, weight, err := boundary.Resolve(t-k*dilation, n, mode)
				if err != nil || weight == 0 {
					continue
				}
				d += g[k] * invSqrt2 * signal[idx]
			}
			approx[t] = a
			detail[t] = d
		}
	}

	if n >= workerpool.ParallelThreshold {
		workerpool.Default().ParallelFor(n, convolveRange)
	} else {
		convolveRange(0, n)
	}

	return &SingleLevelResult{Approx: approx, Detail: detail}, nil
}

// Inverse reconstructs the signal from a base-level (j=1) SingleLevelResult
// (spec §6: MODWT_inverse).
func Inverse(result *SingleLevelResult, w *wavelet.Wavelet, mode boundary.Mode) ([]float64, error) {
	return InverseAtLevel(result, w, mode, 1)
}

// InverseAtLevel reconstructs the signal from a level-j SingleLevelResult
// using the same dilation the forward transform used at that level.
func InverseAtLevel(result *SingleLevelResult, w *wavelet.Wavelet, mode boundary.Mode, level int) ([]float64, error) {
	if result == nil {
		return nil, modwterr.New(modwterr.InvalidArgument, "result", nil, "non-nil SingleLevelResult")
	}
	if err := modwterr.CheckEqualLength(result.Approx, result.Detail); err != nil {
		return nil, err
	}
	if err := validateInputs(result.Approx, w, mode, level); err != nil {
		return nil, err
	}

	n := len(result.Approx)
	dilation := 1 << uint(level-1)
	hRec, gRec := w.HRec(), w.GRec()
	recon := make([]float64, n)

	convolveRange := func(start, end int) {
		for t := start; t < end; t++ {
			var v float64
			for k := 0; k < len(hRec); k++ {
				idx, weight, err := boundary.Resolve(t+k*dilation, n, mode)
				if err != nil || weight == 0 {
					continue
				}
				v += hRec[k] * invSqrt2 * result.Approx[idx]
			}
			for k := 0; k < len(gRec); k++ {
				idx, weight, err := boundary.Resolve(t+k*dilation, n, mode)
				if err != nil || weight == 0 {
					continue
				}
				v += gRec[k] * invSqrt2 * result.Detail[idx]
			}
			recon[t] = v
		}
	}

	if n >= workerpool.ParallelThreshold {
		workerpool.Default().ParallelFor(n, convolveRange)
	} else {
		convolveRange(0, n)
	}

	return recon, nil
}

func validateInputs(signal []float64, w *wavelet.Wavelet, mode boundary.Mode, level int) error {
	if err := modwterr.CheckSignal(signal); err != nil {
		return err
	}
	if w == nil {
		return modwterr.New(modwterr.InvalidWavelet, "wavelet", nil, "non-nil *wavelet.Wavelet")
	}
	if !mode.Valid() {
		return modwterr.New(modwterr.InvalidBoundaryMode, "mode", int(mode), "Periodic, ZeroPadding or Symmetric")
	}
	if level < 1 {
		return modwterr.New(modwterr.InvalidLevel, "level", level, "level >= 1")
	}
	return nil
}
