package main

import (
	"github.com/spf13/cobra"
)

var lookbackFlags runFlags
var lookbackParams struct {
	s0, k, r, sigma, t float64
	floating           bool
}

var lookbackCmd = &cobra.Command{
	Use:   "lookback",
	Short: "Price a floating- or fixed-strike lookback option under GBM",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ot, err := lookbackFlags.optionKind()
		if err != nil {
			return err
		}
		c := lookbackFlags.newContext()
		p := lookbackParams
		price := c.PriceLookbackGBM(p.s0, p.k, p.r, p.sigma, p.t, ot, p.floating)
		return printPrice(price, c)
	},
}

func init() {
	addRunFlags(lookbackCmd, &lookbackFlags)
	lookbackCmd.Flags().Float64Var(&lookbackParams.s0, "s0", 100, "spot")
	lookbackCmd.Flags().Float64Var(&lookbackParams.k, "k", 100, "strike (ignored for floating strike)")
	lookbackCmd.Flags().Float64Var(&lookbackParams.r, "r", 0.05, "risk-free rate")
	lookbackCmd.Flags().Float64Var(&lookbackParams.sigma, "sigma", 0.2, "volatility")
	lookbackCmd.Flags().Float64Var(&lookbackParams.t, "t", 1, "maturity in years")
	lookbackCmd.Flags().BoolVar(&lookbackParams.floating, "floating", true, "floating-strike payoff (terminal vs. path extremum) instead of fixed-strike")
}
