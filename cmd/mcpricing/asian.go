package main

import (
	"github.com/spf13/cobra"
)

var asianFlags runFlags
var asianParams struct {
	s0, k, r, sigma, t float64
	floating, geomean  bool
}

var asianCmd = &cobra.Command{
	Use:   "asian",
	Short: "Price an arithmetic- or geometric-average Asian option under GBM",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ot, err := asianFlags.optionKind()
		if err != nil {
			return err
		}
		c := asianFlags.newContext()
		p := asianParams
		price := c.PriceAsianGBM(p.s0, p.k, p.r, p.sigma, p.t, ot, p.floating, p.geomean)
		return printPrice(price, c)
	},
}

func init() {
	addRunFlags(asianCmd, &asianFlags)
	asianCmd.Flags().Float64Var(&asianParams.s0, "s0", 100, "spot")
	asianCmd.Flags().Float64Var(&asianParams.k, "k", 100, "strike (ignored for floating strike)")
	asianCmd.Flags().Float64Var(&asianParams.r, "r", 0.05, "risk-free rate")
	asianCmd.Flags().Float64Var(&asianParams.sigma, "sigma", 0.2, "volatility")
	asianCmd.Flags().Float64Var(&asianParams.t, "t", 1, "maturity in years")
	asianCmd.Flags().BoolVar(&asianParams.floating, "floating", false, "floating-strike payoff (average vs. terminal) instead of fixed-strike")
	asianCmd.Flags().BoolVar(&asianParams.geomean, "geometric", false, "average the path geometrically instead of arithmetically")
}
