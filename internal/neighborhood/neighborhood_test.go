package neighborhood_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"localsearch/internal/example/linearcost"
	"localsearch/internal/neighborhood"
)

func TestStochasticSwapNeighborhood_RefreshKeepsMoveIdentitiesStable(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n, err := neighborhood.NewStochasticSwapNeighborhood(rng, 4)
	require.NoError(t, err)

	sol := linearcost.New(10)
	n.Refresh(sol)
	before := n.Moves()

	n.Refresh(sol)
	after := n.Moves()

	require.Len(t, after, 4)
	for i := range before {
		require.Same(t, before[i], after[i]) // same *SwapElements identity, contents may differ
	}
}

func TestStochasticSwapNeighborhood_RejectsZeroK(t *testing.T) {
	_, err := neighborhood.NewStochasticSwapNeighborhood(rand.New(rand.NewSource(1)), 0)
	require.Error(t, err)
}

func TestFullSwapNeighborhood_EnumeratesEveryUnorderedPair(t *testing.T) {
	n, err := neighborhood.NewFullSwapNeighborhood(4)
	require.NoError(t, err)
	require.Len(t, n.Moves(), 4*3/2)
}

func TestFullSwapNeighborhood_RefreshIsANoOp(t *testing.T) {
	n, err := neighborhood.NewFullSwapNeighborhood(4)
	require.NoError(t, err)
	before := n.Moves()
	n.Refresh(linearcost.New(4))
	after := n.Moves()
	require.Equal(t, len(before), len(after))
	for i := range before {
		require.Same(t, before[i], after[i])
	}
}

func TestFullInvertNeighborhood_EnumeratesOrderedPairsExcludingSelf(t *testing.T) {
	n, err := neighborhood.NewFullInvertNeighborhood(4)
	require.NoError(t, err)
	require.Len(t, n.Moves(), 4*3)
}
