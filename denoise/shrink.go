package denoise

import "github.com/gowavelet/modwt/internal/numeric"

// ThresholdType selects the shrinkage rule applied once τ_j is known
// (spec §4.5 step 4).
type ThresholdType int

const (
	Soft ThresholdType = iota
	Hard
)

func (t ThresholdType) String() string {
	if t == Hard {
		return "HARD"
	}
	return "SOFT"
}

// shrink applies ThresholdType t with threshold tau to x in place.
func shrink(x []float64, tau float64, t ThresholdType) {
	switch t {
	case Soft:
		for i, v := range x {
			mag := numeric.Abs(v) - tau
			if mag <= 0 {
				x[i] = 0
				continue
			}
			x[i] = numeric.Sign(v) * mag
		}
	case Hard:
		for i, v := range x {
			if numeric.Abs(v) <= tau {
				x[i] = 0
			}
		}
	}
}
