// Package termination provides the composable stop predicates that gate
// the outer loop of every search driver in this library. The chain is a
// plain slice evaluated short-circuit rather than a heap-allocated
// linked list: same chain-of-responsibility semantics, no
// pointer-chasing lifetimes.
package termination

import "localsearch/internal/core"

// Criterion is a single stop predicate: Done reports whether this
// criterion alone says to stop; Reset restores its internal state (the
// iteration/no-improvement counters it may track).
type Criterion interface {
	Done(sol core.EvaluableSolution) bool
	Reset()
}

// Chain composes criteria: it stops as soon as any member does, in
// order, and resets every member on Reset. An empty chain never stops
// (equivalent to Never).
type Chain struct {
	criteria []Criterion
}

// Compose builds a Chain from criteria, evaluated in the given order.
func Compose(criteria ...Criterion) *Chain {
	return &Chain{criteria: criteria}
}

// Done reports whether any criterion in the chain says to stop. It
// short-circuits left to right: once a criterion returns true, later
// ones are not consulted on this call, matching the chain-of-
// responsibility "if this node says stop, stop; otherwise delegate"
// semantics.
func (c *Chain) Done(sol core.EvaluableSolution) bool {
	for _, crit := range c.criteria {
		if crit.Done(sol) {
			return true
		}
	}
	return false
}

// Reset resets every criterion in the chain.
func (c *Chain) Reset() {
	for _, crit := range c.criteria {
		crit.Reset()
	}
}
