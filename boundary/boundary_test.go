package boundary_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowavelet/modwt/boundary"
	"github.com/gowavelet/modwt/modwterr"
)

func TestPeriodic(t *testing.T) {
	cases := []struct {
		k, n, want int
	}{
		{0, 8, 0}, {7, 8, 7}, {8, 8, 0}, {-1, 8, 7}, {-9, 8, 7}, {16, 8, 0},
	}
	for _, c := range cases {
		idx, weight, err := boundary.Resolve(c.k, c.n, boundary.Periodic)
		require.NoError(t, err)
		require.Equal(t, c.want, idx)
		require.Equal(t, 1.0, weight)
	}
}

func TestZeroPadding(t *testing.T) {
	idx, weight, err := boundary.Resolve(3, 8, boundary.ZeroPadding)
	require.NoError(t, err)
	require.Equal(t, 3, idx)
	require.Equal(t, 1.0, weight)

	_, weight, err = boundary.Resolve(-1, 8, boundary.ZeroPadding)
	require.NoError(t, err)
	require.Equal(t, 0.0, weight)

	_, weight, err = boundary.Resolve(8, 8, boundary.ZeroPadding)
	require.NoError(t, err)
	require.Equal(t, 0.0, weight)
}

func TestSymmetricMatchesSpecExamples(t *testing.T) {
	idx, _, err := boundary.Resolve(-1, 8, boundary.Symmetric)
	require.NoError(t, err)
	require.Equal(t, 1, idx)

	idx, _, err = boundary.Resolve(8, 8, boundary.Symmetric)
	require.NoError(t, err)
	require.Equal(t, 6, idx)
}

func TestInvalidSignalLength(t *testing.T) {
	_, _, err := boundary.Resolve(0, 0, boundary.Periodic)
	require.True(t, modwterr.Is(err, modwterr.InvalidSignal))
}

func TestInvalidMode(t *testing.T) {
	_, _, err := boundary.Resolve(0, 8, boundary.Mode(99))
	require.True(t, modwterr.Is(err, modwterr.InvalidBoundaryMode))
}
