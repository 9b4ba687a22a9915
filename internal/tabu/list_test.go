package tabu_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"localsearch/internal/move"
	"localsearch/internal/tabu"
)

func TestList_AddedMoveIsTabuUntilExpiry(t *testing.T) {
	l := tabu.NewList(8)
	m := move.NewSwapElements(1, 2)
	l.Add(m, 10)

	require.True(t, l.IsTabu(move.NewSwapElements(1, 2), 5))
	require.False(t, l.IsTabu(move.NewSwapElements(1, 2), 10)) // expiry is exclusive
}

func TestList_HashCollisionRequiresEquals(t *testing.T) {
	l := tabu.NewList(8)
	l.Add(move.NewInvertSubsequence(1, 2), 10) // same Hash() formula as SwapElements(1,2)
	require.False(t, l.IsTabu(move.NewSwapElements(1, 2), 5))
}

func TestList_UnknownMoveIsNotTabu(t *testing.T) {
	l := tabu.NewList(8)
	require.False(t, l.IsTabu(move.NewSwapElements(0, 1), 0))
}

func TestList_EvictsOldestSlotAtCapacity(t *testing.T) {
	l := tabu.NewList(8)
	for i := 0; i < 8; i++ {
		l.Add(move.NewSwapElements(i, i+100), 1000)
	}
	// the 9th Add evicts slot 0, forgetting SwapElements(0,100)
	l.Add(move.NewSwapElements(200, 201), 1000)
	require.False(t, l.IsTabu(move.NewSwapElements(0, 100), 0))
	require.True(t, l.IsTabu(move.NewSwapElements(200, 201), 0))
}
