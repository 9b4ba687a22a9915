package termination

import (
	"math"

	"localsearch/internal/core"
)

// IterationCap stops as soon as its internal counter reaches zero. Each
// call that returns false decrements the counter; Reset restores it to
// max. It returns true on exactly the (max+1)-th call.
type IterationCap struct {
	max        int
	iterations int
}

// NewIterationCap builds an IterationCap with the given maximum.
func NewIterationCap(max int) *IterationCap {
	return &IterationCap{max: max, iterations: max}
}

// Done implements Criterion.
func (c *IterationCap) Done(sol core.EvaluableSolution) bool {
	if c.iterations <= 0 {
		return true
	}
	c.iterations--
	return false
}

// Reset restores the iteration counter to max.
func (c *IterationCap) Reset() {
	c.iterations = c.max
}

// NoImprovement stops after max consecutive calls whose cost has not
// improved on the best seen by more than epsilon.
type NoImprovement struct {
	max     int
	epsilon float64

	bestCost        float64
	iterationsLeft  int
	totalIterations int
	resets          int
	secondGuess     int
}

// NewNoImprovement builds a NoImprovement criterion with the given
// window and tolerance.
func NewNoImprovement(max int, epsilon float64) *NoImprovement {
	c := &NoImprovement{max: max, epsilon: epsilon}
	c.Reset()
	return c
}

// Done implements Criterion.
func (c *NoImprovement) Done(sol core.EvaluableSolution) bool {
	current := sol.Cost()
	if current < c.bestCost-c.epsilon {
		c.bestCost = current
		if gained := c.max - c.iterationsLeft; gained > c.secondGuess {
			c.secondGuess = gained
		}
		c.iterationsLeft = c.max
		c.resets++
	}

	if c.iterationsLeft <= 0 {
		return true
	}
	c.totalIterations++
	c.iterationsLeft--
	return false
}

// Reset restores the criterion to its initial state: unseen best cost
// (+Inf), full iteration budget, and zeroed counters.
func (c *NoImprovement) Reset() {
	c.bestCost = math.Inf(1)
	c.iterationsLeft = c.max
	c.totalIterations = 0
	c.resets = 0
	c.secondGuess = 0
}

// SecondGuess returns the largest number of iterations this criterion
// ever let pass between two improving resets.
func (c *NoImprovement) SecondGuess() int { return c.secondGuess }

// Iterations returns the total number of non-terminal calls observed.
func (c *NoImprovement) Iterations() int { return c.totalIterations }

// Resets returns how many times an improvement reset the window.
func (c *NoImprovement) Resets() int { return c.resets }

// CostThreshold stops as soon as the solution's cost drops below
// level + epsilon.
type CostThreshold struct {
	level   float64
	epsilon float64
}

// NewCostThreshold builds a CostThreshold criterion.
func NewCostThreshold(level, epsilon float64) *CostThreshold {
	return &CostThreshold{level: level, epsilon: epsilon}
}

// Done implements Criterion.
func (c *CostThreshold) Done(sol core.EvaluableSolution) bool {
	return sol.Cost() < c.level+c.epsilon
}

// Reset is a no-op: CostThreshold carries no mutable state.
func (c *CostThreshold) Reset() {}

// Never always returns false. It is not meant to be chained with other
// criteria (chaining it is harmless but pointless: it never stops and
// carries no state to reset).
type Never struct{}

// Done always returns false.
func (Never) Done(sol core.EvaluableSolution) bool { return false }

// Reset is a no-op.
func (Never) Reset() {}
