// Package permutation provides the concrete solution skeleton for
// permutation problems: a solution whose state is an ordering of
// {0,...,n-1}, with an incremental-cost discipline around swaps.
//
// Concrete problems (internal/example/qap, internal/example/linearcost)
// embed Solution and supply ComputeCost/EvaluateSwap.
package permutation

import (
	"math/rand"

	"localsearch/internal/core"
)

// CostFunc computes the full cost of the permutation from scratch. It is
// invoked once, by UpdateCost, before a search starts — per-iteration cost
// bookkeeping flows entirely through EvaluateSwap/ApplySwap afterwards.
type CostFunc func(perm []int) float64

// SwapDeltaFunc returns cost(perm with i<->j) - cost(perm), without
// mutating perm. Its correctness is a user obligation; the library does
// not audit it.
type SwapDeltaFunc func(perm []int, i, j int) float64

// Solution is the permutation skeleton. It is meant to be embedded, not
// used bare: a concrete problem type embeds Solution and wires
// ComputeCost/EvaluateSwap to its own data.
type Solution struct {
	perm       []int
	cachedCost float64

	// ComputeCost and EvaluateSwap are supplied by the embedding problem.
	// They are plain fields (not methods to override) because Go has no
	// virtual dispatch through embedding — a problem that forgets to set
	// them will panic on first use rather than silently computing a
	// wrong, but defined, cost.
	ComputeCost  CostFunc
	EvaluateSwap SwapDeltaFunc
}

// New initializes pi = (0, 1, ..., n-1) and cached cost = 0. Callers
// must call UpdateCost once — after setting ComputeCost and any
// problem-specific state — before searching.
func New(n int) Solution {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return Solution{perm: perm}
}

// IsFeasibleSolution implements core.FeasibleSolution.
func (s *Solution) IsFeasibleSolution() {}

// Size returns n, the permutation length.
func (s *Solution) Size() int { return len(s.perm) }

// Perm returns the current permutation. The returned slice is owned by
// the solution; callers must not mutate it.
func (s *Solution) Perm() []int { return s.perm }

// At returns the job/element at position i.
func (s *Solution) At(i int) int { return s.perm[i] }

// Cost returns the cached cost of the current permutation.
func (s *Solution) Cost() float64 { return s.cachedCost }

// UpdateCost recomputes the cost from scratch via ComputeCost and caches
// it. Must be called once after construction, before the first search
// step, because ComputeCost depends on problem state not yet set at
// construction time.
func (s *Solution) UpdateCost() {
	s.cachedCost = s.ComputeCost(s.perm)
}

// EvaluateSwapDelta returns EvaluateSwap(perm, i, j): the delta Move
// implementations consult without mutating the solution.
func (s *Solution) EvaluateSwapDelta(i, j int) float64 {
	return s.EvaluateSwap(s.perm, i, j)
}

// ApplySwap exchanges positions i and j and updates the cached cost by
// the delta EvaluateSwap reports. Order matters: EvaluateSwap is always
// evaluated against the pre-swap state.
func (s *Solution) ApplySwap(i, j int) {
	s.cachedCost += s.EvaluateSwap(s.perm, i, j)
	s.perm[i], s.perm[j] = s.perm[j], s.perm[i]
}

// CopyFrom deep-copies perm and cached cost from another permutation
// solution of the same concrete type. Concrete problems should call this
// from their own CopyFrom after the type assertion on the outer type.
func (s *Solution) CopyFrom(other *Solution) error {
	if len(other.perm) != len(s.perm) {
		s.perm = make([]int, len(other.perm))
	}
	copy(s.perm, other.perm)
	s.cachedCost = other.cachedCost
	return nil
}

// RandomShuffle performs a Fisher-Yates shuffle of the permutation using
// rng as the uniform integer source over [0, n), then recomputes the
// cost via UpdateCost.
func RandomShuffle(s *Solution, rng *rand.Rand) {
	p := s.perm
	for i := len(p) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	s.UpdateCost()
}

// Perturbate performs k random swaps with i != j drawn uniformly from
// [0, n), re-rolling j on collision. Unlike RandomShuffle it goes through
// ApplySwap, so the cached cost stays correct incrementally rather than
// being recomputed from scratch.
func Perturbate(s *Solution, k int, rng *rand.Rand) {
	n := s.Size()
	if n < 2 {
		return
	}
	for t := 0; t < k; t++ {
		i := rng.Intn(n)
		j := rng.Intn(n)
		for j == i {
			j = rng.Intn(n)
		}
		s.ApplySwap(i, j)
	}
}

// Validate checks that perm is a permutation of {0,...,n-1}: the
// invariant every permutation.Solution must satisfy at every observable
// moment.
func Validate(perm []int) error {
	n := len(perm)
	seen := make([]bool, n)
	for i, v := range perm {
		if v < 0 || v >= n {
			return core.InvalidParameterf("perm[%d]=%d out of range [0,%d)", i, v, n)
		}
		if seen[v] {
			return core.InvalidParameterf("duplicate value %d in permutation", v)
		}
		seen[v] = true
	}
	return nil
}
