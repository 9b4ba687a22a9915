package neighborhood

import (
	"localsearch/internal/core"
	"localsearch/internal/move"
)

// FullSwapNeighborhood enumerates every unordered index pair (i<j) for a
// problem of the given size, once at construction. Refresh is a no-op:
// the neighborhood never changes shape across iterations.
type FullSwapNeighborhood struct {
	moves []*move.SwapElements
}

// NewFullSwapNeighborhood allocates n*(n-1)/2 SwapElements covering all
// unordered index pairs. n must be >= 2.
func NewFullSwapNeighborhood(n int) (*FullSwapNeighborhood, error) {
	if n < 2 {
		return nil, core.InvalidParameterf("n must be >= 2 (got %d)", n)
	}
	moves := make([]*move.SwapElements, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			moves = append(moves, move.NewSwapElements(i, j))
		}
	}
	return &FullSwapNeighborhood{moves: moves}, nil
}

// Refresh is a no-op: the full swap neighborhood is static.
func (n *FullSwapNeighborhood) Refresh(sol core.EvaluableSolution) {}

// Moves returns the full move set as plain Moves.
func (n *FullSwapNeighborhood) Moves() []move.Move {
	out := make([]move.Move, len(n.moves))
	for i, m := range n.moves {
		out[i] = m
	}
	return out
}

// TabuMoves returns the full move set as TabuMoves.
func (n *FullSwapNeighborhood) TabuMoves() []move.TabuMove {
	out := make([]move.TabuMove, len(n.moves))
	for i, m := range n.moves {
		out[i] = m
	}
	return out
}
