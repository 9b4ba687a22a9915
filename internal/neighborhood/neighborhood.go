// Package neighborhood provides the MoveManager contract and the three
// move managers the library ships for permutation problems: a
// memory-stable stochastic swap sampler and two front-loaded exhaustive
// enumerations (swap, invert).
package neighborhood

import (
	"localsearch/internal/core"
	"localsearch/internal/move"
)

// MoveManager is a refreshable, iterable collection of moves. Refresh
// updates the move set for the current solution (a no-op for static
// neighborhoods); Moves returns the current move set in a fixed
// iteration order. Iteration must not be invalidated by anything the
// driver does between Refresh calls other than calling Refresh again.
type MoveManager interface {
	Refresh(sol core.EvaluableSolution)
	Moves() []move.Move
}
