package bench_test

import (
	"context"
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"localsearch/internal/anneal"
	"localsearch/internal/bench"
	"localsearch/internal/cooling"
	"localsearch/internal/example/linearcost"
	"localsearch/internal/neighborhood"
	"localsearch/internal/opt"
	"localsearch/internal/recorder"
	"localsearch/internal/termination"
)

func annealFactory(n int) func(seed int64) opt.Optimizer {
	return func(seed int64) opt.Optimizer {
		rng := rand.New(rand.NewSource(seed))
		neigh, _ := neighborhood.NewStochasticSwapNeighborhood(rng, 2)
		sched, _ := cooling.NewExponentialCooling(0.9)
		term := termination.Compose(termination.NewIterationCap(50))
		rec := recorder.NewBestEverRecorder(linearcost.New(n))
		cfg := anneal.Config{TStart: 5, TStop: 0.01, K: 1}
		solver, _ := anneal.New(linearcost.New(n), rec, neigh, term, sched, cfg, rng)
		return solver
	}
}

func TestRunner_RunCase_ProducesOneRecordPerAlgorithm(t *testing.T) {
	runner := bench.Runner{Runs: 3, BaseSeed: 1}
	c := bench.Case{ProblemName: "linearcost", Size: 8, InstanceSeed: 100, Problem: bench.LinearCostProblem(8)}
	algo := bench.Algorithm{Name: "anneal", Factory: annealFactory(8)}

	rec, err := runner.RunCase(context.Background(), c, algo)
	require.NoError(t, err)
	require.Equal(t, "anneal", rec.Algo)
	require.Equal(t, 3, rec.Runs)
	require.LessOrEqual(t, rec.CostBest, rec.CostMean)
}

func TestRunner_WriteCSV_RoundTripsRecords(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/out.csv"
	records := []bench.Record{{Algo: "anneal", ProblemName: "qap", Size: 10, Runs: 5, CostBest: 1.5}}
	require.NoError(t, bench.WriteCSV(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "anneal")
	require.Contains(t, string(data), "qap")
}

func TestRunner_WriteCSV_AcceptsABarePathWithNoDirectory(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	records := []bench.Record{{Algo: "tabu", ProblemName: "linearcost", Size: 5, Runs: 1}}
	require.NoError(t, bench.WriteCSV("out.csv", records))

	data, err := os.ReadFile("out.csv")
	require.NoError(t, err)
	require.Contains(t, string(data), "tabu")
}
