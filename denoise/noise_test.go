package denoise

import (
	"math/rand/v2"
	"sort"
	"testing"
)

// bruteForceMedian sorts a copy of x fully and reads off the middle
// element(s); this is the reference TestMedianMatchesBruteForce checks
// the quickselect-based median against (spec §9: "test against a
// brute-force sort for small N").
func bruteForceMedian(x []float64) float64 {
	sorted := append([]float64(nil), x...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func TestMedianMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 0))
	for trial := 0; trial < 200; trial++ {
		n := rng.IntN(40) + 1
		x := make([]float64, n)
		for i := range x {
			x[i] = rng.Float64()*20 - 10
		}
		got := median(x)
		want := bruteForceMedian(x)
		if got != want {
			t.Fatalf("trial %d: median(%v) = %v, want %v", trial, x, got, want)
		}
	}
}

func TestMedianSingleAndPair(t *testing.T) {
	if got := median([]float64{5}); got != 5 {
		t.Errorf("median([5]) = %v, want 5", got)
	}
	if got := median([]float64{1, 3}); got != 2 {
		t.Errorf("median([1,3]) = %v, want 2", got)
	}
	if got := median(nil); got != 0 {
		t.Errorf("median(nil) = %v, want 0", got)
	}
}

func TestSelectNthMatchesSortedOrder(t *testing.T) {
	rng := rand.New(rand.NewPCG(23, 0))
	for trial := 0; trial < 100; trial++ {
		n := rng.IntN(30) + 1
		x := make([]float64, n)
		for i := range x {
			x[i] = rng.Float64() * 100
		}
		sorted := append([]float64(nil), x...)
		sort.Float64s(sorted)

		for k := 0; k < n; k++ {
			work := append([]float64(nil), x...)
			got := selectNth(work, k)
			if got != sorted[k] {
				t.Fatalf("trial %d: selectNth(x, %d) = %v, want %v", trial, k, got, sorted[k])
			}
		}
	}
}
