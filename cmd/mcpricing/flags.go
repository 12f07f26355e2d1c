package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tembolo1284/mcpricing/engine"
	"github.com/tembolo1284/mcpricing/internal/obslog"
	"github.com/tembolo1284/mcpricing/internal/pricing"
)

// runFlags are the Monte Carlo controls every pricer subcommand shares:
// path/step counts, thread count, variance reduction, and the seed.
type runFlags struct {
	paths      int
	steps      int
	threads    int
	antithetic bool
	seed       uint64
	optionType string
}

func addRunFlags(cmd *cobra.Command, f *runFlags) {
	cmd.Flags().IntVar(&f.paths, "paths", 100000, "number of simulated paths")
	cmd.Flags().IntVar(&f.steps, "steps", 1, "number of simulation steps per path")
	cmd.Flags().IntVar(&f.threads, "threads", 1, "number of worker goroutines")
	cmd.Flags().BoolVar(&f.antithetic, "antithetic", false, "enable antithetic-pair variance reduction")
	cmd.Flags().Uint64Var(&f.seed, "seed", uint64(time.Now().UnixNano()), "master RNG seed")
	cmd.Flags().StringVar(&f.optionType, "type", "call", "option type: call or put")
}

func (f *runFlags) optionKind() (pricing.OptionType, error) {
	switch f.optionType {
	case "call":
		return pricing.Call, nil
	case "put":
		return pricing.Put, nil
	default:
		return 0, fmt.Errorf("unknown option type %q: must be call or put", f.optionType)
	}
}

func (f *runFlags) newContext() *engine.Context {
	if verbose {
		obslog.SetVerbose(true)
	}
	return engine.NewContext(f.seed).
		WithPaths(f.paths).
		WithSteps(f.steps).
		WithThreads(f.threads).
		WithAntithetic(f.antithetic)
}

func printPrice(price float64, c *engine.Context) error {
	if c.LastError() != engine.Success {
		return fmt.Errorf("pricing failed: %s", c.LastError())
	}
	fmt.Printf("%.6f\n", price)
	return nil
}
