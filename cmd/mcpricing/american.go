package main

import (
	"github.com/spf13/cobra"
)

var americanFlags runFlags
var americanParams struct {
	s0, k, r, sigma, t float64
}

var americanCmd = &cobra.Command{
	Use:   "american",
	Short: "Price an American option under GBM via Longstaff-Schwartz",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ot, err := americanFlags.optionKind()
		if err != nil {
			return err
		}
		c := americanFlags.newContext()
		p := americanParams
		price := c.PriceAmericanGBM(p.s0, p.k, p.r, p.sigma, p.t, ot)
		return printPrice(price, c)
	},
}

func init() {
	addRunFlags(americanCmd, &americanFlags)
	americanCmd.Flags().Float64Var(&americanParams.s0, "s0", 100, "spot")
	americanCmd.Flags().Float64Var(&americanParams.k, "k", 100, "strike")
	americanCmd.Flags().Float64Var(&americanParams.r, "r", 0.05, "risk-free rate")
	americanCmd.Flags().Float64Var(&americanParams.sigma, "sigma", 0.2, "volatility")
	americanCmd.Flags().Float64Var(&americanParams.t, "t", 1, "maturity in years")
}
