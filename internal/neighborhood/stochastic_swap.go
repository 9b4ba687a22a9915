package neighborhood

import (
	"math/rand"

	"localsearch/internal/core"
	"localsearch/internal/move"
)

// permutationSized is the minimal capability Refresh needs from the
// solution: its size. permutation.Solution (and anything embedding it)
// satisfies this.
type permutationSized interface {
	Size() int
}

// StochasticSwapNeighborhood holds exactly k SwapElements instances for
// its entire lifetime. Refresh rewrites each in place (no allocation):
// it draws p1, p2 uniformly from [0, n), re-drawing p2 on collision, and
// stores the normalized pair via SwapElements.Set.
type StochasticSwapNeighborhood struct {
	rng   *rand.Rand
	moves []*move.SwapElements
}

// NewStochasticSwapNeighborhood builds a neighborhood of k swap moves
// driven by rng. k must be > 0.
func NewStochasticSwapNeighborhood(rng *rand.Rand, k int) (*StochasticSwapNeighborhood, error) {
	if rng == nil {
		return nil, core.InvalidParameterf("rng must not be nil")
	}
	if k <= 0 {
		return nil, core.InvalidParameterf("k must be > 0 (got %d)", k)
	}
	moves := make([]*move.SwapElements, k)
	for i := range moves {
		moves[i] = move.NewSwapElements(0, 0)
	}
	return &StochasticSwapNeighborhood{rng: rng, moves: moves}, nil
}

// Refresh redraws every move's (p1, p2) pair in place against sol's
// current size. The move slice's memory identities never change across
// calls.
func (n *StochasticSwapNeighborhood) Refresh(sol core.EvaluableSolution) {
	sized, ok := sol.(permutationSized)
	if !ok {
		return
	}
	size := sized.Size()
	if size < 2 {
		return
	}
	for _, m := range n.moves {
		p1 := n.rng.Intn(size)
		p2 := n.rng.Intn(size)
		for p1 == p2 {
			p2 = n.rng.Intn(size)
		}
		m.Set(p1, p2)
	}
}

// Moves returns the current move set as plain Moves.
func (n *StochasticSwapNeighborhood) Moves() []move.Move {
	out := make([]move.Move, len(n.moves))
	for i, m := range n.moves {
		out[i] = m
	}
	return out
}

// TabuMoves returns the current move set as TabuMoves, for consumption
// by the Tabu Search driver.
func (n *StochasticSwapNeighborhood) TabuMoves() []move.TabuMove {
	out := make([]move.TabuMove, len(n.moves))
	for i, m := range n.moves {
		out[i] = m
	}
	return out
}
