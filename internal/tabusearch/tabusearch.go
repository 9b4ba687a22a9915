// Package tabusearch implements the Tabu Search driver: a
// generalization of Simulated Annealing's same Move/MoveManager/
// Recorder shape, paired with a tabu list instead of a cooling
// schedule.
package tabusearch

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"localsearch/internal/core"
	"localsearch/internal/move"
	"localsearch/internal/opt"
	"localsearch/internal/recorder"
	"localsearch/internal/tabu"
	"localsearch/internal/termination"
)

// MoveManager is the capability the Tabu Search driver needs from a
// neighborhood: refresh, and the move set as TabuMoves (not plain
// Moves, since every candidate must carry Hash/Equals/OppositeOf).
type MoveManager interface {
	Refresh(sol core.EvaluableSolution)
	TabuMoves() []move.TabuMove
}

// Solver is the Tabu Search driver. It borrows the working solution,
// recorder, neighborhood and termination chain for the duration of
// Search, exactly like anneal.Solver does for Simulated Annealing.
type Solver struct {
	Working      core.EvaluableSolution
	Recorder     recorder.Recorder
	Neighborhood MoveManager
	Termination  termination.Criterion
	Cfg          Config

	rngJitter func(n int) int // injected for determinism in tests; see New

	list      *tabu.List
	iteration int
	observers []Observer
}

// Observer receives Tabu Search notifications. Event mirrors anneal's
// notification shape: a Tabu Search run raises the same
// accepted/improved transition, just without a temperature to report.
type Observer interface {
	Notify(ctx context.Context, ev Event)
}

// Event is a read-only notification of an accepted move.
type Event struct {
	ID        string
	Improved  bool
	Iteration int
	Cost      float64
	BestCost  float64
}

// New validates cfg and returns a ready-to-run Solver.
func New(
	working core.EvaluableSolution,
	rec recorder.Recorder,
	moves MoveManager,
	term termination.Criterion,
	cfg Config,
	jitter func(n int) int,
) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if jitter == nil {
		jitter = func(n int) int { return 0 }
	}
	return &Solver{
		Working:      working,
		Recorder:     rec,
		Neighborhood: moves,
		Termination:  term,
		Cfg:          cfg,
		rngJitter:    jitter,
		list:         tabu.NewList(cfg.ListCapacity),
	}, nil
}

// Subscribe registers an observer.
func (s *Solver) Subscribe(obs Observer) {
	s.observers = append(s.observers, obs)
}

// Search runs the Tabu Search main loop until the termination chain
// fires or ctx is cancelled.
func (s *Solver) Search(ctx context.Context) error {
	s.iteration = 0

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.Termination.Done(s.Working) {
			return nil
		}

		s.Neighborhood.Refresh(s.Working)
		moves := s.Neighborhood.TabuMoves()

		var (
			bestMove     move.TabuMove
			bestCost     = math.Inf(1)
			fallbackMove move.TabuMove
			fallbackCost = math.Inf(1)
		)

		for _, m := range moves {
			cost, err := m.Evaluate(s.Working)
			if err != nil {
				return err
			}

			if cost < fallbackCost {
				fallbackCost = cost
				fallbackMove = m
			}

			aspiration := cost < s.Recorder.BestCost()
			if s.list.IsTabu(m, s.iteration) && !aspiration {
				continue
			}
			if cost < bestCost {
				bestCost = cost
				bestMove = m
			}
		}

		chosen := bestMove
		if chosen == nil {
			chosen = fallbackMove
		}
		if chosen == nil {
			return core.NoMovesAvailablef("tabusearch: neighborhood offered no moves")
		}

		if err := chosen.Apply(s.Working); err != nil {
			return err
		}

		tenure := s.Cfg.Tenure
		if s.Cfg.TenureJitter > 0 {
			tenure += s.rngJitter(s.Cfg.TenureJitter + 1)
		}
		s.list.Add(chosen.OppositeOf(), s.iteration+tenure)

		improved, err := s.Recorder.Accept(s.Working)
		if err != nil {
			return err
		}
		s.notify(ctx, improved)

		s.iteration++
	}
}

// Solve implements opt.Optimizer, so internal/bench can run a
// tabusearch.Solver through the same harness as an anneal.Solver.
func (s *Solver) Solve(ctx context.Context, working core.EvaluableSolution) (opt.Result, error) {
	start := time.Now()
	s.Working = working
	err := s.Search(ctx)
	return opt.Result{
		BestCost:   s.Recorder.BestCost(),
		Iterations: s.iteration,
		Duration:   time.Since(start),
	}, err
}

func (s *Solver) notify(ctx context.Context, improved bool) {
	if len(s.observers) == 0 {
		return
	}
	ev := Event{
		ID:        uuid.New().String(),
		Improved:  improved,
		Iteration: s.iteration,
		Cost:      s.Working.Cost(),
		BestCost:  s.Recorder.BestCost(),
	}
	for _, obs := range s.observers {
		obs.Notify(ctx, ev)
	}
}
