package main

import (
	"fmt"
	"math/rand"

	"localsearch/internal/anneal"
	"localsearch/internal/bench"
	"localsearch/internal/cooling"
	"localsearch/internal/core"
	"localsearch/internal/neighborhood"
	"localsearch/internal/opt"
	"localsearch/internal/recorder"
	"localsearch/internal/tabusearch"
	"localsearch/internal/termination"
)

// buildProblem returns a fresh working solution for the named problem.
func buildProblem(cfg RunConfig, seed int64) (core.EvaluableSolution, error) {
	switch cfg.Problem {
	case "qap":
		return bench.QAPProblem(cfg.Size, 1, 99)(seed)
	case "linearcost":
		return bench.LinearCostProblem(cfg.Size)(seed)
	default:
		return nil, fmt.Errorf("unknown problem %q (want qap or linearcost)", cfg.Problem)
	}
}

// buildOptimizer builds the solver named by cfg.Policy, templated on a
// fresh instance of working's concrete type for the recorder's snapshot
// slot.
func buildOptimizer(cfg RunConfig, working core.EvaluableSolution, rng *rand.Rand) (opt.Optimizer, error) {
	template, err := buildProblem(cfg, 0)
	if err != nil {
		return nil, err
	}
	rec := recorder.NewBestEverRecorder(template)

	switch cfg.Policy {
	case "anneal":
		neigh, err := neighborhood.NewStochasticSwapNeighborhood(rng, 1)
		if err != nil {
			return nil, err
		}
		term := termination.Compose(termination.NewIterationCap(cfg.MaxIters))
		schedule, err := cooling.NewExponentialCooling(cfg.Alpha)
		if err != nil {
			return nil, err
		}
		saCfg := anneal.Config{TStart: cfg.TStart, TStop: cfg.TStop, K: 1.0}
		solver, err := anneal.New(working, rec, neigh, term, schedule, saCfg, rng)
		if err != nil {
			return nil, err
		}
		solver.Subscribe(anneal.NewLoggingObserver(nil))
		return solver, nil

	case "tabu":
		neigh, err := neighborhood.NewStochasticSwapNeighborhood(rng, 20)
		if err != nil {
			return nil, err
		}
		term := termination.Compose(termination.NewIterationCap(cfg.MaxIters))
		tsCfg := tabusearch.Config{Tenure: cfg.Tenure, TenureJitter: 3, ListCapacity: 64}
		solver, err := tabusearch.New(working, rec, neigh, term, tsCfg, rng.Intn)
		if err != nil {
			return nil, err
		}
		solver.Subscribe(tabusearch.NewLoggingObserver(nil))
		return solver, nil

	default:
		return nil, fmt.Errorf("unknown policy %q (want anneal or tabu)", cfg.Policy)
	}
}
