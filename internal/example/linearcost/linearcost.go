// Package linearcost implements a toy permutation problem:
// cost(pi) = sum_i pi[i]*i. It exists only to give the library's tests
// and the demo CLI a trivial, hand-verifiable problem to run end to
// end.
package linearcost

import (
	"localsearch/internal/core"
	"localsearch/internal/permutation"
)

// Solution is a permutation.Solution wired to the sum_i pi[i]*i cost.
type Solution struct {
	permutation.Solution
}

// New builds a Solution of size n, with pi = (0,...,n-1) and cost
// already computed (callers need not call UpdateCost separately, unlike
// the bare permutation.Solution contract, since this problem has no
// extra state to set up first).
func New(n int) *Solution {
	s := &Solution{Solution: permutation.New(n)}
	s.ComputeCost = computeCost
	s.EvaluateSwap = evaluateSwapDelta
	s.UpdateCost()
	return s
}

func computeCost(perm []int) float64 {
	var total float64
	for i, v := range perm {
		total += float64(v) * float64(i)
	}
	return total
}

// evaluateSwapDelta returns the cost change from swapping perm[i] and
// perm[j]: the only terms that change are the two positions' own
// contributions, v*idx.
func evaluateSwapDelta(perm []int, i, j int) float64 {
	vi, vj := perm[i], perm[j]
	before := float64(vi)*float64(i) + float64(vj)*float64(j)
	after := float64(vj)*float64(i) + float64(vi)*float64(j)
	return after - before
}

// CopyFrom deep-copies other onto the receiver. other must be a *Solution.
func (s *Solution) CopyFrom(other core.EvaluableSolution) error {
	o, ok := other.(*Solution)
	if !ok {
		return core.TypeMismatchf("linearcost: CopyFrom expects *Solution, got %T", other)
	}
	return s.Solution.CopyFrom(&o.Solution)
}
