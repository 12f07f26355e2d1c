// Command mcpricing is a CLI front-end over the Monte Carlo pricing engine:
// one subcommand per pricer, plus version and serve.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mcpricing",
	Short: "Monte Carlo options pricing engine",
	Long: `mcpricing prices European, path-dependent, and early-exercise
options under several stochastic models via Monte Carlo simulation, with
variance reduction and a deterministic, reproducible parallel dispatch.`,
	Version: VersionString(),
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	rootCmd.AddCommand(europeanCmd)
	rootCmd.AddCommand(digitalCmd)
	rootCmd.AddCommand(asianCmd)
	rootCmd.AddCommand(lookbackCmd)
	rootCmd.AddCommand(barrierCmd)
	rootCmd.AddCommand(americanCmd)
	rootCmd.AddCommand(bermudanCmd)
	rootCmd.AddCommand(hestonCmd)
	rootCmd.AddCommand(sabrCmd)
	rootCmd.AddCommand(mertonCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
