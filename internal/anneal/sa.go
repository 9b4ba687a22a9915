// Package anneal implements the Simulated Annealing search driver:
// Metropolis acceptance, cooling schedules, the termination chain, and
// best-solution recording, all borrowed for the duration of Search.
package anneal

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"localsearch/internal/core"
	"localsearch/internal/cooling"
	"localsearch/internal/neighborhood"
	"localsearch/internal/opt"
	"localsearch/internal/recorder"
	"localsearch/internal/termination"
)

// Solver is the Simulated Annealing search driver. It borrows (never
// owns) the working solution, recorder, neighborhood, termination chain
// and cooling schedule for the duration of Search.
type Solver struct {
	Working      core.EvaluableSolution
	Recorder     recorder.Recorder
	Neighborhood neighborhood.MoveManager
	Termination  termination.Criterion
	Schedule     cooling.Schedule
	Cfg          Config
	Rng          *rand.Rand

	observers []Observer

	currentTemp float64
	iteration   int
}

// New validates cfg and returns a ready-to-run Solver. rng must be
// non-nil: it drives the Metropolis uniform_01 draws and is owned
// exclusively by this Solver (not reentrant, not shared).
func New(
	working core.EvaluableSolution,
	rec recorder.Recorder,
	moves neighborhood.MoveManager,
	term termination.Criterion,
	schedule cooling.Schedule,
	cfg Config,
	rng *rand.Rand,
) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, core.InvalidParameterf("rng must not be nil")
	}
	return &Solver{
		Working:      working,
		Recorder:     rec,
		Neighborhood: moves,
		Termination:  term,
		Schedule:     schedule,
		Cfg:          cfg,
		Rng:          rng,
	}, nil
}

// Subscribe registers an observer to be notified of MoveMade/
// ImprovementMade transitions. Subscribe must not be called concurrently
// with Search.
func (s *Solver) Subscribe(obs Observer) {
	s.observers = append(s.observers, obs)
}

// CurrentTemp returns the current annealing temperature. Meaningful only
// during or after a call to Search.
func (s *Solver) CurrentTemp() float64 { return s.currentTemp }

// Search runs the main Simulated Annealing loop until the termination
// chain fires, the temperature drops to or below TStop, or ctx is
// cancelled. It returns ctx.Err() if cancellation stopped the search
// early.
func (s *Solver) Search(ctx context.Context) error {
	s.currentTemp = s.Cfg.TStart
	s.iteration = 0

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.Termination.Done(s.Working) || s.currentTemp <= s.Cfg.TStop {
			return nil
		}

		base := s.Working.Cost()
		s.Neighborhood.Refresh(s.Working)

		for _, m := range s.Neighborhood.Moves() {
			cost, err := m.Evaluate(s.Working)
			if err != nil {
				return err
			}
			delta := cost - base
			accept := delta < 0
			if !accept {
				p := math.Exp(-delta / (s.Cfg.K * s.currentTemp))
				accept = s.Rng.Float64() < p
			}
			if !accept {
				continue
			}

			if err := m.Apply(s.Working); err != nil {
				return err
			}
			s.emitAccepted(ctx)
			break
		}

		// A schedule returning a negative temperature is not clamped:
		// TStop >= 0 (Config.Validate) so the next iteration's check
		// stops the loop on its own.
		s.currentTemp = s.Schedule.Next(s.currentTemp, s.Working)
		s.iteration++
	}
}

// Solve implements opt.Optimizer, so internal/bench can run an
// anneal.Solver through the same harness as a tabusearch.Solver.
func (s *Solver) Solve(ctx context.Context, working core.EvaluableSolution) (opt.Result, error) {
	start := time.Now()
	s.Working = working
	err := s.Search(ctx)
	return opt.Result{
		BestCost:   s.Recorder.BestCost(),
		Iterations: s.iteration,
		Duration:   time.Since(start),
		Meta: map[string]any{
			"final_temp": s.currentTemp,
		},
	}, err
}

func (s *Solver) emitAccepted(ctx context.Context) {
	improved, err := s.Recorder.Accept(s.Working)
	if err == nil && improved {
		s.notify(ctx, ImprovementMade)
	}
	s.notify(ctx, MoveMade)
}

func (s *Solver) notify(ctx context.Context, state State) {
	if len(s.observers) == 0 {
		return
	}
	ev := Event{
		ID:        uuid.New(),
		State:     state,
		Iteration: s.iteration,
		Cost:      s.Working.Cost(),
		BestCost:  s.Recorder.BestCost(),
		Temp:      s.currentTemp,
	}
	for _, obs := range s.observers {
		obs.Notify(ctx, ev)
	}
}
