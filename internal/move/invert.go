package move

import "localsearch/internal/core"

// InvertSubsequence reverses the circular subsequence running from
// position p1 to position p2 inclusive, wrapping around when p1 > p2.
// Unlike SwapElements it is not normalized: (p1, p2) and (p2, p1)
// describe different arcs, and equality distinguishes them.
type InvertSubsequence struct {
	p1, p2 int
}

// NewInvertSubsequence builds an InvertSubsequence over the arc from a
// to b, in that direction.
func NewInvertSubsequence(a, b int) *InvertSubsequence {
	return &InvertSubsequence{p1: a, p2: b}
}

// Set changes the arc in place, without normalizing.
func (m *InvertSubsequence) Set(a, b int) {
	m.p1, m.p2 = a, b
}

// Positions returns the (p1, p2) pair as given.
func (m *InvertSubsequence) Positions() (int, int) { return m.p1, m.p2 }

// pairCount returns floor(length/2), the number of paired swaps needed
// to reverse the arc, where length = (p2-p1+1) mod n, using n itself
// when that mod is 0.
func pairCount(p1, p2, n int) int {
	length := ((p2-p1+1)%n + n) % n
	if length == 0 {
		length = n
	}
	return length / 2
}

// Evaluate sums the per-swap deltas along the reversal path without
// mutating sol: each term is EvaluateSwapDelta(from, to) computed
// against the same, unswapped state, matching InvertSubsequence.Apply's
// traversal order exactly.
func (m *InvertSubsequence) Evaluate(sol core.EvaluableSolution) (float64, error) {
	p, err := asPermutationProblem(sol)
	if err != nil {
		return 0, err
	}
	n := p.Size()
	pairs := pairCount(m.p1, m.p2, n)
	var delta float64
	for ii := 0; ii < pairs; ii++ {
		from := (m.p1 + ii) % n
		to := (n + m.p2 - ii) % n
		delta += p.EvaluateSwapDelta(from, to)
	}
	return p.Cost() + delta, nil
}

// Apply reverses the arc via pairCount paired calls to ApplySwap, each
// evaluated against the state left by the previous swap in the loop.
func (m *InvertSubsequence) Apply(sol core.EvaluableSolution) error {
	p, err := asPermutationProblem(sol)
	if err != nil {
		return err
	}
	n := p.Size()
	pairs := pairCount(m.p1, m.p2, n)
	for ii := 0; ii < pairs; ii++ {
		from := (m.p1 + ii) % n
		to := (n + m.p2 - ii) % n
		p.ApplySwap(from, to)
	}
	return nil
}

// Clone returns an independent copy of the move.
func (m *InvertSubsequence) Clone() TabuMove {
	return &InvertSubsequence{p1: m.p1, p2: m.p2}
}

// Hash mixes p1 and p2 deterministically, same formula as SwapElements.
func (m *InvertSubsequence) Hash() uint64 {
	return uint64(m.p1)<<16 ^ uint64(m.p2)
}

// Equals reports field equality against another InvertSubsequence,
// direction-sensitive: (a,b) != (b,a).
func (m *InvertSubsequence) Equals(other TabuMove) bool {
	o, ok := other.(*InvertSubsequence)
	if !ok {
		return false
	}
	return m.p1 == o.p1 && m.p2 == o.p2
}

// OppositeOf returns a clone of self: reversing the arc twice restores
// it, so the move that undoes it is identical.
func (m *InvertSubsequence) OppositeOf() TabuMove {
	return m.Clone()
}
