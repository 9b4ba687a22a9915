// Command localsearchdemo exercises the library end to end: it builds an
// example problem, drives it with either Simulated Annealing or Tabu
// Search, and reports the result — or runs the bench harness across
// several sizes and writes a CSV.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "localsearchdemo",
		Short: "Drive the local search library against example problems",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newBenchCmd())
	root.AddCommand(newConfigCmd())
	return root
}
