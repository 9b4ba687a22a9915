// Package recorder tracks the best solution observed during a search.
package recorder

import (
	"math"

	"localsearch/internal/core"
)

// Recorder is offered every accepted solution during a search and
// decides whether to keep it as the new best.
type Recorder interface {
	// Accept compares sol's cost to the stored best; if strictly
	// better, it overwrites the snapshot (via CopyFrom) and returns
	// true, else returns false.
	Accept(sol core.EvaluableSolution) (bool, error)

	// BestCost returns the cost of the stored best snapshot (+Inf if
	// nothing has been accepted yet).
	BestCost() float64
}

// BestEverRecorder holds a deep-copied snapshot of the best solution
// seen and its cost. The snapshot must be initialized by the caller with
// a valid same-type solution template before the first Accept call.
type BestEverRecorder struct {
	best     core.EvaluableSolution
	bestCost float64
}

// NewBestEverRecorder builds a recorder whose snapshot slot is
// initialized to template (any same-concrete-type placeholder the
// caller owns; its contents are irrelevant since the first accepted
// solution always overwrites it).
func NewBestEverRecorder(template core.EvaluableSolution) *BestEverRecorder {
	return &BestEverRecorder{best: template, bestCost: math.Inf(1)}
}

// Accept implements Recorder.
func (r *BestEverRecorder) Accept(sol core.EvaluableSolution) (bool, error) {
	cost := sol.Cost()
	if cost >= r.bestCost {
		return false, nil
	}
	if err := r.best.CopyFrom(sol); err != nil {
		return false, err
	}
	r.bestCost = cost
	return true, nil
}

// BestCost implements Recorder.
func (r *BestEverRecorder) BestCost() float64 { return r.bestCost }

// Best returns the recorder's snapshot of the best solution seen. The
// caller must not mutate it.
func (r *BestEverRecorder) Best() core.EvaluableSolution { return r.best }
