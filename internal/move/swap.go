package move

import "localsearch/internal/core"

// SwapElements is a move that exchanges the elements at two positions.
// It is always stored normalized: p1 = min(a, b), p2 = max(a, b).
type SwapElements struct {
	p1, p2 int
}

// NewSwapElements builds a normalized SwapElements from a and b in
// either order.
func NewSwapElements(a, b int) *SwapElements {
	m := &SwapElements{}
	m.Set(a, b)
	return m
}

// Set re-normalizes the move in place. This is the single mutator
// exposed for StochasticSwapNeighborhood's refresh step.
func (m *SwapElements) Set(a, b int) {
	if a < b {
		m.p1, m.p2 = a, b
	} else {
		m.p1, m.p2 = b, a
	}
}

// Positions returns the normalized (p1, p2) pair.
func (m *SwapElements) Positions() (int, int) { return m.p1, m.p2 }

// Evaluate returns sol.Cost() + sol.EvaluateSwapDelta(p1, p2).
func (m *SwapElements) Evaluate(sol core.EvaluableSolution) (float64, error) {
	p, err := asPermutationProblem(sol)
	if err != nil {
		return 0, err
	}
	return p.Cost() + p.EvaluateSwapDelta(m.p1, m.p2), nil
}

// Apply performs the swap on sol.
func (m *SwapElements) Apply(sol core.EvaluableSolution) error {
	p, err := asPermutationProblem(sol)
	if err != nil {
		return err
	}
	p.ApplySwap(m.p1, m.p2)
	return nil
}

// Clone returns an independent copy of the move.
func (m *SwapElements) Clone() TabuMove {
	return &SwapElements{p1: m.p1, p2: m.p2}
}

// Hash mixes p1 and p2 deterministically: (p1 << 16) xor p2. Stable
// within a library version; not cryptographic.
func (m *SwapElements) Hash() uint64 {
	return uint64(m.p1)<<16 ^ uint64(m.p2)
}

// Equals reports field equality against another SwapElements.
// Cross-variant comparisons (e.g. against *InvertSubsequence) are false.
func (m *SwapElements) Equals(other TabuMove) bool {
	o, ok := other.(*SwapElements)
	if !ok {
		return false
	}
	return m.p1 == o.p1 && m.p2 == o.p2
}

// OppositeOf returns a clone of self: swapping (p1, p2) is its own
// inverse, so the move that undoes it is identical.
func (m *SwapElements) OppositeOf() TabuMove {
	return m.Clone()
}
