package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var cfgFile string
	cfg := defaultRunConfig()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one search to completion and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile == "" {
				return runOnce(cmd.Context(), cfg)
			}
			loaded, err := loadRunConfig(cfgFile)
			if err != nil {
				return err
			}
			return runOnce(cmd.Context(), loaded)
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "path to a YAML config file (overrides flags below)")
	cmd.Flags().StringVar(&cfg.Problem, "problem", cfg.Problem, "problem to solve: qap | linearcost")
	cmd.Flags().IntVar(&cfg.Size, "size", cfg.Size, "problem size")
	cmd.Flags().StringVar(&cfg.Policy, "policy", cfg.Policy, "search policy: anneal | tabu")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	cmd.Flags().Float64Var(&cfg.TStart, "t-start", cfg.TStart, "starting temperature (anneal)")
	cmd.Flags().Float64Var(&cfg.TStop, "t-stop", cfg.TStop, "stopping temperature (anneal)")
	cmd.Flags().Float64Var(&cfg.Alpha, "alpha", cfg.Alpha, "exponential cooling factor (anneal)")
	cmd.Flags().IntVar(&cfg.Tenure, "tenure", cfg.Tenure, "tabu tenure (tabu)")
	cmd.Flags().IntVar(&cfg.MaxIters, "max-iters", cfg.MaxIters, "iteration cap")

	return cmd
}

func runOnce(ctx context.Context, cfg RunConfig) error {
	rng := rand.New(rand.NewSource(cfg.Seed))

	working, err := buildProblem(cfg, cfg.Seed)
	if err != nil {
		return err
	}
	startCost := working.Cost()

	op, err := buildOptimizer(cfg, working, rng)
	if err != nil {
		return err
	}

	res, err := op.Solve(ctx, working)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	fmt.Printf("problem=%s size=%d policy=%s\n", cfg.Problem, cfg.Size, cfg.Policy)
	fmt.Printf("start_cost=%.4f best_cost=%.4f iterations=%d duration=%s\n",
		startCost, res.BestCost, res.Iterations, res.Duration)
	return nil
}
