// Package cooling provides the temperature update functions Simulated
// Annealing consults once per outer iteration.
package cooling

import (
	"localsearch/internal/core"
)

// Schedule maps the current temperature and working solution to the
// next temperature.
type Schedule interface {
	Next(temp float64, sol core.EvaluableSolution) float64
}

// ExponentialCooling implements the classic Kirkpatrick schedule:
// T' = alpha * T, with 0 < alpha < 1.
type ExponentialCooling struct {
	alpha float64
}

// NewExponentialCooling validates alpha and returns an ExponentialCooling
// schedule. alpha must satisfy 0 < alpha < 1.
func NewExponentialCooling(alpha float64) (*ExponentialCooling, error) {
	if alpha <= 0 || alpha >= 1 {
		return nil, core.InvalidParameterf("alpha must be in (0,1) (got %f)", alpha)
	}
	return &ExponentialCooling{alpha: alpha}, nil
}

// Next returns alpha * temp.
func (c *ExponentialCooling) Next(temp float64, sol core.EvaluableSolution) float64 {
	return temp * c.alpha
}

// LinearCooling implements the Randelman-Grest schedule:
// T' = max(0, T - delta), with delta > 0.
type LinearCooling struct {
	delta float64
}

// NewLinearCooling validates delta and returns a LinearCooling schedule.
// delta must be > 0.
func NewLinearCooling(delta float64) (*LinearCooling, error) {
	if delta <= 0 {
		return nil, core.InvalidParameterf("delta must be > 0 (got %f)", delta)
	}
	return &LinearCooling{delta: delta}, nil
}

// Next returns max(0, temp - delta).
func (c *LinearCooling) Next(temp float64, sol core.EvaluableSolution) float64 {
	next := temp - c.delta
	if next < 0 {
		return 0
	}
	return next
}
