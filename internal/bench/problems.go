package bench

import (
	"math/rand"

	"localsearch/internal/core"
	"localsearch/internal/example/linearcost"
	"localsearch/internal/example/qap"
	"localsearch/internal/permutation"
)

// LinearCostProblem returns a ProblemFactory building an n-element
// linearcost.Solution with a seed-determined random starting
// permutation.
func LinearCostProblem(n int) ProblemFactory {
	return func(seed int64) (core.EvaluableSolution, error) {
		sol := linearcost.New(n)
		permutation.RandomShuffle(&sol.Solution, randForSeed(seed))
		return sol, nil
	}
}

// RandomQAPInstance builds an n x n QAP instance with flow and distance
// entries drawn uniformly from [lo, hi) using the given rng, in the
// same shape as a random flow-shop processing-time instance.
func RandomQAPInstance(n int, lo, hi float64, rng *rand.Rand) (*qap.Instance, error) {
	flow := make([][]float64, n)
	dist := make([][]float64, n)
	for i := 0; i < n; i++ {
		flow[i] = make([]float64, n)
		dist[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			flow[i][j] = lo + rng.Float64()*(hi-lo)
			dist[i][j] = lo + rng.Float64()*(hi-lo)
		}
	}
	return qap.NewInstance(n, flow, dist)
}

// QAPProblem returns a ProblemFactory building a random n-facility QAP
// instance and a random starting permutation, both derived from seed so
// the same seed always reproduces the same run.
func QAPProblem(n int, lo, hi float64) ProblemFactory {
	return func(seed int64) (core.EvaluableSolution, error) {
		rng := randForSeed(seed)
		inst, err := RandomQAPInstance(n, lo, hi, rng)
		if err != nil {
			return nil, err
		}
		sol, err := qap.New(inst)
		if err != nil {
			return nil, err
		}
		permutation.RandomShuffle(&sol.Solution, rng)
		return sol, nil
	}
}
