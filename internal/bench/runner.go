// Package bench is a CSV benchmarking harness: a problem-agnostic
// runner for any opt.Optimizer (anneal.Solver or tabusearch.Solver)
// against any ProblemFactory (internal/example/linearcost,
// internal/example/qap), generalized from a fixed flow-shop
// five-solver comparison.
package bench

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"localsearch/internal/core"
	"localsearch/internal/opt"
)

// ProblemFactory builds a fresh working solution for one run, seeded so
// repeated calls with the same seed reproduce the same starting point.
type ProblemFactory func(seed int64) (core.EvaluableSolution, error)

// Algorithm names a solver-construction strategy. Factory is called once
// per run so each run gets its own Solver (and its own *rand.Rand).
type Algorithm struct {
	Name    string
	Factory func(seed int64) opt.Optimizer
}

// Case is one benchmarked scenario: a problem size run through one
// instance seed, repeated Runs times with different solver seeds.
type Case struct {
	ProblemName  string
	Size         int
	InstanceSeed int64
	Problem      ProblemFactory
}

// Record summarizes Runs runs of one Algorithm against one Case.
type Record struct {
	Algo        string
	ProblemName string
	Size        int
	Runs        int

	TimeBestMs float64
	TimeMeanMs float64
	TimeStdMs  float64

	CostBest float64
	CostMean float64
	CostStd  float64
}

// Runner drives repeated runs of an Algorithm against a Case.
type Runner struct {
	Runs          int
	BaseSeed      int64
	PerRunTimeout time.Duration // 0 = no timeout
}

// RunCase runs algo against c.Problem, Runner.Runs times, and summarizes
// the resulting costs and wall-clock durations.
func (r Runner) RunCase(ctx context.Context, c Case, algo Algorithm) (Record, error) {
	costs := make([]float64, 0, r.Runs)
	timesMs := make([]float64, 0, r.Runs)

	for i := 0; i < r.Runs; i++ {
		runSeed := r.BaseSeed + int64(i)

		working, err := c.Problem(c.InstanceSeed + runSeed)
		if err != nil {
			return Record{}, fmt.Errorf("run %d: build problem: %w", i, err)
		}
		op := algo.Factory(runSeed)

		runCtx := ctx
		cancel := func() {}
		if r.PerRunTimeout > 0 {
			runCtx, cancel = context.WithTimeout(ctx, r.PerRunTimeout)
		}
		start := time.Now()
		res, err := op.Solve(runCtx, working)
		dur := time.Since(start)
		cancel()

		if err != nil && runCtx.Err() != nil {
			return Record{}, fmt.Errorf("run %d: cancelled/timeout: %w", i, err)
		}
		if err != nil {
			return Record{}, fmt.Errorf("run %d: solve error: %w", i, err)
		}

		costs = append(costs, res.BestCost)
		timesMs = append(timesMs, float64(dur.Microseconds())/1000.0)
	}

	costStats := CalcFloatStats(costs)
	tStats := CalcFloatStats(timesMs)

	return Record{
		Algo:        algo.Name,
		ProblemName: c.ProblemName,
		Size:        c.Size,
		Runs:        r.Runs,

		TimeBestMs: tStats.Best,
		TimeMeanMs: tStats.Mean,
		TimeStdMs:  tStats.Std,

		CostBest: costStats.Best,
		CostMean: costStats.Mean,
		CostStd:  costStats.Std,
	}, nil
}

// WriteCSV writes records to path, creating parent directories as needed.
func WriteCSV(path string, records []Record) error {
	if err := os.MkdirAll(dirOf(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"algo", "problem", "size", "runs",
		"time_best_ms", "time_mean_ms", "time_std_ms",
		"cost_best", "cost_mean", "cost_std",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.Algo,
			r.ProblemName,
			itoa(r.Size),
			itoa(r.Runs),

			ftoa(r.TimeBestMs),
			ftoa(r.TimeMeanMs),
			ftoa(r.TimeStdMs),

			ftoa(r.CostBest),
			ftoa(r.CostMean),
			ftoa(r.CostStd),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
