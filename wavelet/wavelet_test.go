package wavelet_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowavelet/modwt/modwterr"
	"github.com/gowavelet/modwt/wavelet"
)

// TestCatalogNormalization verifies spec §8 property 2: for every
// cataloged wavelet, Σh²-1 and Σg²-1 are each within 2e-10.
func TestCatalogNormalization(t *testing.T) {
	const tol = 2e-10
	for _, name := range wavelet.List() {
		name := name
		t.Run(name, func(t *testing.T) {
			w, err := wavelet.Lookup(name)
			require.NoError(t, err)

			for _, f := range []struct {
				label string
				taps  []float64
			}{
				{"hDec", w.HDec()}, {"gDec", w.GDec()},
				{"hRec", w.HRec()}, {"gRec", w.GRec()},
			} {
				sum := 0.0
				for _, v := range f.taps {
					sum += v * v
				}
				if diff := math.Abs(sum - 1); diff > tol {
					t.Errorf("%s: Σ%s²=%v, want within %v of 1", name, f.label, sum, tol)
				}
			}
		})
	}
}

func TestCatalogOrthogonalSharesFilters(t *testing.T) {
	w, err := wavelet.Lookup("db4")
	require.NoError(t, err)
	require.Equal(t, wavelet.Orthogonal, w.Kind())
	require.Equal(t, w.HDec(), w.HRec())
	require.Equal(t, w.GDec(), w.GRec())
}

func TestCatalogBiorthogonalFiltersDiffer(t *testing.T) {
	w, err := wavelet.Lookup("bior4.4")
	require.NoError(t, err)
	require.Equal(t, wavelet.Biorthogonal, w.Kind())
	require.NotEqual(t, w.HDec(), w.HRec())
}

func TestLookupUnknown(t *testing.T) {
	_, err := wavelet.Lookup("not-a-wavelet")
	require.Error(t, err)
	require.True(t, modwterr.Is(err, modwterr.InvalidWavelet))
}

func TestSupportedExcludesBiorthogonalFromDenoise(t *testing.T) {
	ortho, err := wavelet.Supported("sym4")
	require.NoError(t, err)
	require.Contains(t, ortho, wavelet.TransformDenoise)

	bio, err := wavelet.Supported("bior2.2")
	require.NoError(t, err)
	require.NotContains(t, bio, wavelet.TransformDenoise)
}

func TestListIsSortedAndNonEmpty(t *testing.T) {
	names := wavelet.List()
	require.NotEmpty(t, names)
	for i := 1; i < len(names); i++ {
		require.Less(t, names[i-1], names[i])
	}
}

func TestHighOrderDaubechiesAndSymletGenerated(t *testing.T) {
	for _, name := range []string{"db11", "db20", "sym9", "sym20", "coif4", "coif5"} {
		w, err := wavelet.Lookup(name)
		require.NoErrorf(t, err, "lookup %s", name)
		require.NotZero(t, w.Length())
	}
}
