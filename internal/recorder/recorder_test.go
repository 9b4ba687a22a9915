package recorder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"localsearch/internal/example/linearcost"
	"localsearch/internal/recorder"
)

func withCost(n int, cost float64) *linearcost.Solution {
	sol := linearcost.New(n)
	sol.ComputeCost = func(perm []int) float64 { return cost }
	sol.UpdateCost()
	return sol
}

func TestBestEverRecorder_InitialBestCostIsPositiveInfinity(t *testing.T) {
	rec := recorder.NewBestEverRecorder(linearcost.New(3))
	require.True(t, rec.BestCost() > 1e300)
}

func TestBestEverRecorder_AcceptsOnlyStrictImprovements(t *testing.T) {
	rec := recorder.NewBestEverRecorder(linearcost.New(3))

	improved, err := rec.Accept(withCost(3, 10))
	require.NoError(t, err)
	require.True(t, improved)
	require.Equal(t, 10.0, rec.BestCost())

	improved, err = rec.Accept(withCost(3, 10))
	require.NoError(t, err)
	require.False(t, improved) // tie is not an improvement
	require.Equal(t, 10.0, rec.BestCost())

	improved, err = rec.Accept(withCost(3, 15))
	require.NoError(t, err)
	require.False(t, improved)
	require.Equal(t, 10.0, rec.BestCost())

	improved, err = rec.Accept(withCost(3, 4))
	require.NoError(t, err)
	require.True(t, improved)
	require.Equal(t, 4.0, rec.BestCost())
}

func TestBestEverRecorder_BestIsAnIndependentSnapshot(t *testing.T) {
	rec := recorder.NewBestEverRecorder(linearcost.New(4))
	src := withCost(4, 1)
	_, err := rec.Accept(src)
	require.NoError(t, err)

	src.ApplySwap(0, 1)
	require.NotEqual(t, src.Perm(), rec.Best().(*linearcost.Solution).Perm())
}
