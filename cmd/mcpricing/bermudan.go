package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tembolo1284/mcpricing/internal/pricing"
)

var bermudanFlags runFlags
var bermudanParams struct {
	s0, k, r, sigma, t float64
	schedule           string
}

var bermudanCmd = &cobra.Command{
	Use:   "bermudan",
	Short: "Price a Bermudan option under GBM via Longstaff-Schwartz",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ot, err := bermudanFlags.optionKind()
		if err != nil {
			return err
		}
		schedule, err := parseSchedule(bermudanParams.schedule)
		if err != nil {
			return err
		}
		c := bermudanFlags.newContext()
		p := bermudanParams
		price := c.PriceBermudanGBM(p.s0, p.k, p.r, p.sigma, p.t, ot, schedule)
		return printPrice(price, c)
	},
}

// parseSchedule parses a comma-separated list of exercise fractions of
// maturity, e.g. "0.25,0.5,0.75,1.0".
func parseSchedule(s string) (pricing.ExerciseSchedule, error) {
	parts := strings.Split(s, ",")
	schedule := make(pricing.ExerciseSchedule, 0, len(parts))
	for _, part := range parts {
		frac, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid exercise fraction %q: %w", part, err)
		}
		schedule = append(schedule, frac)
	}
	return schedule, nil
}

func init() {
	addRunFlags(bermudanCmd, &bermudanFlags)
	bermudanCmd.Flags().Float64Var(&bermudanParams.s0, "s0", 100, "spot")
	bermudanCmd.Flags().Float64Var(&bermudanParams.k, "k", 100, "strike")
	bermudanCmd.Flags().Float64Var(&bermudanParams.r, "r", 0.05, "risk-free rate")
	bermudanCmd.Flags().Float64Var(&bermudanParams.sigma, "sigma", 0.2, "volatility")
	bermudanCmd.Flags().Float64Var(&bermudanParams.t, "t", 1, "maturity in years")
	bermudanCmd.Flags().StringVar(&bermudanParams.schedule, "schedule", "0.25,0.5,0.75,1.0", "comma-separated exercise fractions of maturity, ending at 1.0")
}
