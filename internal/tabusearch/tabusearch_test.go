package tabusearch_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"localsearch/internal/core"
	"localsearch/internal/example/linearcost"
	"localsearch/internal/move"
	"localsearch/internal/neighborhood"
	"localsearch/internal/recorder"
	"localsearch/internal/tabusearch"
	"localsearch/internal/termination"
)

func newSolver(t *testing.T, n int, seed int64, maxIters int) (*tabusearch.Solver, *linearcost.Solution) {
	t.Helper()
	sol := linearcost.New(n)
	rng := rand.New(rand.NewSource(seed))
	neigh, err := neighborhood.NewStochasticSwapNeighborhood(rng, 6)
	require.NoError(t, err)
	term := termination.Compose(termination.NewIterationCap(maxIters))
	rec := recorder.NewBestEverRecorder(linearcost.New(n))
	cfg := tabusearch.DefaultConfig()

	solver, err := tabusearch.New(sol, rec, neigh, term, cfg, rng.Intn)
	require.NoError(t, err)
	return solver, sol
}

func TestSearch_ImprovesOrMatchesInitialCost(t *testing.T) {
	solver, sol := newSolver(t, 8, 1, 100)
	startCost := sol.Cost()
	require.NoError(t, solver.Search(context.Background()))
	require.LessOrEqual(t, solver.Recorder.BestCost(), startCost)
}

func TestSearch_RespectsContextCancellation(t *testing.T) {
	solver, _ := newSolver(t, 30, 1, 10000)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := solver.Search(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolve_ImplementsOptOptimizer(t *testing.T) {
	solver, sol := newSolver(t, 6, 3, 50)
	res, err := solver.Solve(context.Background(), sol)
	require.NoError(t, err)
	require.Equal(t, res.BestCost, solver.Recorder.BestCost())
}

func TestDefaultConfig_HasSaneDefaults(t *testing.T) {
	cfg := tabusearch.DefaultConfig()
	require.Equal(t, 7, cfg.Tenure)
	require.Equal(t, 3, cfg.TenureJitter)
	require.NoError(t, cfg.Validate())
}

// scriptedSolution is a bare core.EvaluableSolution whose cost is whatever
// the last applied scriptedMove set it to.
type scriptedSolution struct {
	cost float64
}

func (s *scriptedSolution) IsFeasibleSolution() {}
func (s *scriptedSolution) Cost() float64       { return s.cost }

func (s *scriptedSolution) CopyFrom(other core.EvaluableSolution) error {
	o, ok := other.(*scriptedSolution)
	if !ok {
		return core.TypeMismatchf("scriptedSolution.CopyFrom: got %T", other)
	}
	s.cost = o.cost
	return nil
}

// scriptedMove always evaluates to, and applies, a fixed cost — it exists
// to script a Tabu Search iteration move-by-move instead of relying on a
// real problem's neighborhood, so a tabu move can be made to beat the
// recorder's best on cue.
type scriptedMove struct {
	id   uint64
	cost float64
}

func (m *scriptedMove) Evaluate(core.EvaluableSolution) (float64, error) { return m.cost, nil }

func (m *scriptedMove) Apply(sol core.EvaluableSolution) error {
	sol.(*scriptedSolution).cost = m.cost
	return nil
}

func (m *scriptedMove) Clone() move.TabuMove { c := *m; return &c }

func (m *scriptedMove) Hash() uint64 { return m.id }

func (m *scriptedMove) OppositeOf() move.TabuMove { return m.Clone() }

func (m *scriptedMove) Equals(other move.TabuMove) bool {
	o, ok := other.(*scriptedMove)
	return ok && o.id == m.id
}

// scriptedNeighborhood hands out one fixed batch of moves per call to
// TabuMoves, in order, so a test can script exactly what a Tabu Search
// iteration sees.
type scriptedNeighborhood struct {
	batches [][]move.TabuMove
	calls   int
}

func (n *scriptedNeighborhood) Refresh(core.EvaluableSolution) {}

func (n *scriptedNeighborhood) TabuMoves() []move.TabuMove {
	batch := n.batches[n.calls]
	n.calls++
	return batch
}

// TestSearch_AspirationOverridesTabuWhenACandidateImprovesOnTheRecordersBest
// scripts two iterations: the first applies move A (cost 5), which tabus
// its own reversal. The second iteration offers A again — now cheaper
// (cost 3) than both the recorder's current best (5) and a non-tabu
// alternative B (cost 4) — and a plain "skip tabu moves" driver would have
// to settle for B. The aspiration criterion lets A win anyway.
func TestSearch_AspirationOverridesTabuWhenACandidateImprovesOnTheRecordersBest(t *testing.T) {
	a := &scriptedMove{id: 1, cost: 5}
	b := &scriptedMove{id: 2, cost: 8}
	aAgain := &scriptedMove{id: 1, cost: 3}
	bAgain := &scriptedMove{id: 2, cost: 4}

	neigh := &scriptedNeighborhood{batches: [][]move.TabuMove{
		{a, b},
		{aAgain, bAgain},
	}}

	working := &scriptedSolution{cost: 10}
	rec := recorder.NewBestEverRecorder(&scriptedSolution{})
	term := termination.Compose(termination.NewIterationCap(2))
	cfg := tabusearch.Config{Tenure: 5, TenureJitter: 0, ListCapacity: 8}

	solver, err := tabusearch.New(working, rec, neigh, term, cfg, nil)
	require.NoError(t, err)
	require.NoError(t, solver.Search(context.Background()))

	require.Equal(t, 3.0, solver.Recorder.BestCost(),
		"aspiration should have let the tabu move (cost 3) win over the non-tabu alternative (cost 4)")
}
