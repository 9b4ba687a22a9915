package anneal

import "localsearch/internal/core"

// Config holds the constants of a Simulated Annealing run: the starting
// temperature, the temperature floor at which the search stops
// regardless of the termination chain, and the Boltzmann constant used
// in the Metropolis test.
type Config struct {
	TStart float64
	TStop  float64
	K      float64
}

// DefaultConfig returns TStop=1e-7 and K=1.0. TStart has no sane
// default: callers must always set it.
func DefaultConfig(tStart float64) Config {
	return Config{TStart: tStart, TStop: 1e-7, K: 1.0}
}

// Validate checks the config's invariants.
func (c Config) Validate() error {
	if c.TStart <= 0 {
		return core.InvalidParameterf("TStart must be > 0 (got %f)", c.TStart)
	}
	if c.TStop < 0 {
		return core.InvalidParameterf("TStop must be >= 0 (got %f)", c.TStop)
	}
	if c.TStop >= c.TStart {
		return core.InvalidParameterf("TStop must be < TStart (got %f >= %f)", c.TStop, c.TStart)
	}
	if c.K <= 0 {
		return core.InvalidParameterf("K must be > 0 (got %f)", c.K)
	}
	return nil
}
