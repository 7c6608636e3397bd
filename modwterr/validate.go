package modwterr

import (
	"fmt"
	"math"
)

// CheckSignal validates a sample sequence against spec §4.3's failure
// modes: nil/empty input, or any NaN/±Inf sample. It returns an
// *Error pointing at the first offending index, mirroring the
// teacher's BaseOptions.Validate pattern of eager, total validation.
func CheckSignal(signal []float64) error {
	if len(signal) == 0 {
		return New(InvalidSignal, "signal", len(signal), "length >= 1")
	}
	for i, v := range signal {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return AtIndex(InvalidSignal, "signal", i, v, "finite value")
		}
	}
	return nil
}

// CheckEqualLength validates that two coefficient arrays share the
// signal length N required by spec §3 (SingleLevelResult invariant).
func CheckEqualLength(approx, detail []float64) error {
	if len(approx) != len(detail) {
		return New(InvalidArgument, "detail", len(detail), fmt.Sprintf("length %d to match approx", len(approx)))
	}
	return nil
}

// CheckLevel validates a requested decomposition depth against the
// admissible maximum computed from signal length n and filter length l
// (spec §4.4: largest J with (L-1)(2^J-1) < N).
func CheckLevel(level, maxLevel int) error {
	if level < 1 {
		return New(InvalidLevel, "levels", level, "levels >= 1")
	}
	if level > maxLevel {
		return New(InvalidLevel, "levels", level, fmt.Sprintf("levels <= %d for this signal length and wavelet", maxLevel))
	}
	return nil
}
