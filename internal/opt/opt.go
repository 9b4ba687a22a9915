// Package opt defines the thin Optimizer interface both search drivers
// (anneal.Solver, tabusearch.Solver) satisfy, so internal/bench can run
// either one over the same harness without knowing which policy it is
// driving.
package opt

import (
	"context"
	"time"

	"localsearch/internal/core"
)

// Optimizer runs a local search over a solution until some termination
// condition fires.
type Optimizer interface {
	Solve(ctx context.Context, working core.EvaluableSolution) (Result, error)
}

// Result summarizes one completed (or cancelled) search run.
type Result struct {
	BestCost   float64
	Iterations int
	Duration   time.Duration
	Meta       map[string]any
}
