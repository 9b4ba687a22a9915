package main

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"localsearch/internal/bench"
	"localsearch/internal/opt"
)

func newBenchCmd() *cobra.Command {
	var (
		out      string
		sizesCSV string
		problem  string
		policy   string
		runs     int
		baseSeed int64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the CSV benchmark harness across several problem sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes, err := parseSizes(sizesCSV)
			if err != nil {
				return err
			}
			return runBench(cmd.Context(), benchParams{
				out:      out,
				sizes:    sizes,
				problem:  problem,
				policy:   policy,
				runs:     runs,
				baseSeed: baseSeed,
			})
		},
	}

	cmd.Flags().StringVar(&out, "out", "artifacts/results.csv", "path to the output CSV file")
	cmd.Flags().StringVar(&sizesCSV, "sizes", "10,20,50", "comma-separated problem sizes")
	cmd.Flags().StringVar(&problem, "problem", "qap", "problem to benchmark: qap | linearcost")
	cmd.Flags().StringVar(&policy, "policy", "anneal", "search policy: anneal | tabu")
	cmd.Flags().IntVar(&runs, "runs", 10, "number of runs per size, with different seeds")
	cmd.Flags().Int64Var(&baseSeed, "seed", 1000, "base seed for the runs")

	return cmd
}

type benchParams struct {
	out      string
	sizes    []int
	problem  string
	policy   string
	runs     int
	baseSeed int64
}

func runBench(ctx context.Context, p benchParams) error {
	runner := bench.Runner{Runs: p.runs, BaseSeed: p.baseSeed}

	var records []bench.Record
	for _, size := range p.sizes {
		var c bench.Case
		switch p.problem {
		case "qap":
			c = bench.Case{ProblemName: "qap", Size: size, InstanceSeed: p.baseSeed, Problem: bench.QAPProblem(size, 1, 99)}
		case "linearcost":
			c = bench.Case{ProblemName: "linearcost", Size: size, InstanceSeed: p.baseSeed, Problem: bench.LinearCostProblem(size)}
		default:
			return fmt.Errorf("unknown problem %q (want qap or linearcost)", p.problem)
		}

		algo := bench.Algorithm{
			Name: p.policy,
			Factory: func(seed int64) opt.Optimizer {
				rng := rand.New(rand.NewSource(seed))
				cfg := defaultRunConfig()
				cfg.Problem, cfg.Policy, cfg.Size = p.problem, p.policy, size
				template, err := buildProblem(cfg, 0)
				if err != nil {
					panic(err) // unreachable: p.problem was validated above
				}
				op, err := buildOptimizer(cfg, template, rng)
				if err != nil {
					panic(err)
				}
				return op
			},
		}

		fmt.Printf("running %s over %s size=%d (runs=%d)...\n", p.policy, p.problem, size, p.runs)
		rec, err := runner.RunCase(ctx, c, algo)
		if err != nil {
			return fmt.Errorf("size %d: %w", size, err)
		}
		records = append(records, rec)
		fmt.Printf("  cost: best=%.4f mean=%.4f std=%.4f | time: mean=%.2fms std=%.2fms\n",
			rec.CostBest, rec.CostMean, rec.CostStd, rec.TimeMeanMs, rec.TimeStdMs)
	}

	if err := bench.WriteCSV(p.out, records); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	fmt.Println("saved:", p.out)
	return nil
}

func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", p, err)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes given")
	}
	return sizes, nil
}
