package denoise

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/gowavelet/modwt/internal/numeric"
)

// Method selects the threshold formula applied to each detail level
// (spec §4.5 step 3).
type Method int

const (
	Universal Method = iota
	Minimax
	Sure
	Bayes
)

func (m Method) String() string {
	switch m {
	case Universal:
		return "UNIVERSAL"
	case Minimax:
		return "MINIMAX"
	case Sure:
		return "SURE"
	case Bayes:
		return "BAYES"
	default:
		return "UNKNOWN"
	}
}

// bayesEpsilon guards the BAYES formula's denominator against a zero
// variance estimate (spec §4.5: "+ ε").
const bayesEpsilon = 1e-12

// threshold computes τ_j for detail level detail, given the per-level
// scaled noise estimate sigma and the original (level-1) detail length
// n used by UNIVERSAL/MINIMAX's log(N) term.
func threshold(method Method, detail []float64, sigma float64, n int) float64 {
	switch method {
	case Universal:
		return sigma * math.Sqrt(2*math.Log(float64(n)))
	case Minimax:
		return minimaxThreshold(sigma, n)
	case Sure:
		return sureThreshold(detail, sigma)
	case Bayes:
		return bayesThreshold(detail, sigma)
	default:
		return sigma * math.Sqrt(2*math.Log(float64(n)))
	}
}

// minimaxThreshold implements spec §4.5's piecewise MINIMAX formula:
// zero for short signals, otherwise a log2(N)-linear approximation to
// the tabulated minimax risk coefficient.
func minimaxThreshold(sigma float64, n int) float64 {
	if n <= 32 {
		return 0
	}
	return sigma * (0.3936 + 0.1829*math.Log2(float64(n)))
}

// bayesThreshold implements spec §4.5's BAYES rule:
// τ = σ² / √(max(var(detail)−σ², 0) + ε).
func bayesThreshold(detail []float64, sigma float64) float64 {
	v := variance(detail)
	signal := numeric.Max(v-sigma*sigma, 0)
	return sigma * sigma / math.Sqrt(signal+bayesEpsilon)
}

// sureThreshold implements Stein's Unbiased Risk Estimate threshold
// search: normalize detail by sigma, sort squared magnitudes ascending,
// and pick the candidate threshold minimizing the SURE risk functional
// (Donoho & Johnstone, 1995).
func sureThreshold(detail []float64, sigma float64) float64 {
	n := len(detail)
	if n == 0 || sigma == 0 {
		return 0
	}

	squared := make([]float64, n)
	for i, v := range detail {
		normalized := v / sigma
		squared[i] = normalized * normalized
	}
	sort.Float64s(squared)

	cumsum := make([]float64, n)
	copy(cumsum, squared)
	floats.CumSum(cumsum, squared)

	bestRisk := math.Inf(1)
	bestSquared := squared[0]
	for i := 0; i < n; i++ {
		risk := (float64(n) - 2*float64(i+1) + cumsum[i] + float64(n-1-i)*squared[i]) / float64(n)
		if risk < bestRisk {
			bestRisk = risk
			bestSquared = squared[i]
		}
	}
	return sigma * math.Sqrt(bestSquared)
}
