// Package qap implements the Quadratic Assignment Problem as an example
// permutation.Solution: assign n facilities to n locations to minimize
// sum_{i,j} flow[i][j] * dist[pi[i]][pi[j]], where pi[i] is the location
// assigned to facility i.
//
// QAP is a canonical example of a permutation-based optimization
// problem and, unlike flow-shop makespan, it admits an O(n) incremental
// swap delta — exactly the discipline permutation.Solution's
// EvaluateSwap contract requires.
package qap

import (
	"localsearch/internal/core"
	"localsearch/internal/permutation"
)

// Instance holds the problem data: an n x n flow matrix between
// facilities and an n x n distance matrix between locations. Matrix
// storage and Validate follow the same shape as a flow-shop processing
// time matrix, adapted from a single ProcTimes matrix to the
// flow/distance pair QAP needs.
type Instance struct {
	N    int
	Flow [][]float64
	Dist [][]float64
}

// NewInstance validates and returns an Instance.
func NewInstance(n int, flow, dist [][]float64) (*Instance, error) {
	inst := &Instance{N: n, Flow: flow, Dist: dist}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}

// Validate checks that both matrices are square of size n.
func (inst *Instance) Validate() error {
	if inst.N <= 0 {
		return core.InvalidParameterf("n must be > 0 (got %d)", inst.N)
	}
	if err := validateSquare(inst.Flow, inst.N, "flow"); err != nil {
		return err
	}
	if err := validateSquare(inst.Dist, inst.N, "dist"); err != nil {
		return err
	}
	return nil
}

func validateSquare(m [][]float64, n int, name string) error {
	if len(m) != n {
		return core.InvalidParameterf("%s matrix must have %d rows (got %d)", name, n, len(m))
	}
	for i, row := range m {
		if len(row) != n {
			return core.InvalidParameterf("%s matrix row %d must have %d cols (got %d)", name, i, n, len(row))
		}
	}
	return nil
}

// Solution is a permutation.Solution wired to the QAP cost.
type Solution struct {
	permutation.Solution
	inst *Instance
}

// New builds a Solution of size inst.N, with pi = (0,...,n-1). Callers
// must call UpdateCost once before searching, as for any
// permutation.Solution.
func New(inst *Instance) (*Solution, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	s := &Solution{Solution: permutation.New(inst.N), inst: inst}
	s.ComputeCost = s.computeCost
	s.EvaluateSwap = s.evaluateSwapDelta
	return s, nil
}

func (s *Solution) computeCost(perm []int) float64 {
	var total float64
	n := s.inst.N
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			total += s.inst.Flow[i][j] * s.inst.Dist[perm[i]][perm[j]]
		}
	}
	return total
}

// evaluateSwapDelta computes the O(n) cost delta of swapping the
// assignments at facility positions r and s, by summing only the terms
// of the double sum that involve r or s, before and after.
func (s *Solution) evaluateSwapDelta(perm []int, r, sPos int) float64 {
	if r == sPos {
		return 0
	}
	flow, dist := s.inst.Flow, s.inst.Dist
	n := s.inst.N
	a, b := perm[r], perm[sPos]

	var delta float64
	for k := 0; k < n; k++ {
		if k == r || k == sPos {
			continue
		}
		pk := perm[k]
		// Group A: i in {r,s}, j = k.
		delta += flow[r][k] * (dist[b][pk] - dist[a][pk])
		delta += flow[sPos][k] * (dist[a][pk] - dist[b][pk])
		// Group B: i = k, j in {r,s}.
		delta += flow[k][r] * (dist[pk][b] - dist[pk][a])
		delta += flow[k][sPos] * (dist[pk][a] - dist[pk][b])
	}

	// Group C: i,j both in {r,s}.
	before := flow[r][r]*dist[a][a] + flow[r][sPos]*dist[a][b] + flow[sPos][r]*dist[b][a] + flow[sPos][sPos]*dist[b][b]
	after := flow[r][r]*dist[b][b] + flow[r][sPos]*dist[b][a] + flow[sPos][r]*dist[a][b] + flow[sPos][sPos]*dist[a][a]
	delta += after - before

	return delta
}

// CopyFrom deep-copies other onto the receiver. other must be a
// *Solution over the same Instance.
func (s *Solution) CopyFrom(other core.EvaluableSolution) error {
	o, ok := other.(*Solution)
	if !ok {
		return core.TypeMismatchf("qap: CopyFrom expects *Solution, got %T", other)
	}
	return s.Solution.CopyFrom(&o.Solution)
}
