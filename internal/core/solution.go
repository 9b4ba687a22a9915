// Package core defines the polymorphic contracts shared by every solution,
// move and move manager in the library. It intentionally has no
// implementations of its own — concrete problems live in internal/example,
// concrete solution skeletons live in internal/permutation.
package core

// FeasibleSolution is a point in the search space. It carries no required
// behavior beyond identity: algorithms that implement their own recorder
// and termination criteria need nothing more than this.
type FeasibleSolution interface {
	// IsFeasibleSolution is a marker method only. It exists so that
	// FeasibleSolution is not satisfied by every empty interface{}.
	IsFeasibleSolution()
}

// EvaluableSolution is a FeasibleSolution exposing a scalar cost and deep
// copy onto another same-concrete-type instance. BestEverRecorder requires
// this; a bare FeasibleSolution does not suffice for it.
type EvaluableSolution interface {
	FeasibleSolution

	// Cost returns the scalar objective value of the current state. Lower
	// is better: every driver in this library is a minimizer.
	Cost() float64

	// CopyFrom deep-copies the state of other onto the receiver. It must
	// return TypeMismatch if other is not the same concrete type as the
	// receiver.
	CopyFrom(other EvaluableSolution) error
}
