package neighborhood

import (
	"localsearch/internal/core"
	"localsearch/internal/move"
)

// FullInvertNeighborhood enumerates every ordered index pair (i,j) with
// i != j for a problem of the given size, once at construction. Refresh
// is a no-op.
type FullInvertNeighborhood struct {
	moves []*move.InvertSubsequence
}

// NewFullInvertNeighborhood allocates n*(n-1) InvertSubsequence
// instances for all ordered pairs (i,j) with i != j. n must be >= 2.
func NewFullInvertNeighborhood(n int) (*FullInvertNeighborhood, error) {
	if n < 2 {
		return nil, core.InvalidParameterf("n must be >= 2 (got %d)", n)
	}
	moves := make([]*move.InvertSubsequence, 0, n*(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			moves = append(moves, move.NewInvertSubsequence(i, j))
		}
	}
	return &FullInvertNeighborhood{moves: moves}, nil
}

// Refresh is a no-op: the full invert neighborhood is static.
func (n *FullInvertNeighborhood) Refresh(sol core.EvaluableSolution) {}

// Moves returns the full move set as plain Moves.
func (n *FullInvertNeighborhood) Moves() []move.Move {
	out := make([]move.Move, len(n.moves))
	for i, m := range n.moves {
		out[i] = m
	}
	return out
}

// TabuMoves returns the full move set as TabuMoves.
func (n *FullInvertNeighborhood) TabuMoves() []move.TabuMove {
	out := make([]move.TabuMove, len(n.moves))
	for i, m := range n.moves {
		out[i] = m
	}
	return out
}
