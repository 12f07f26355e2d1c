package main

import (
	"github.com/spf13/cobra"
)

var digitalFlags runFlags
var digitalParams struct {
	s0, k, r, sigma, t, q float64
	asset                 bool
}

var digitalCmd = &cobra.Command{
	Use:   "digital",
	Short: "Price a cash-or-nothing or asset-or-nothing digital option under GBM",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ot, err := digitalFlags.optionKind()
		if err != nil {
			return err
		}
		c := digitalFlags.newContext()
		p := digitalParams
		price := c.PriceDigitalGBM(p.s0, p.k, p.r, p.sigma, p.t, p.q, !p.asset, ot)
		return printPrice(price, c)
	},
}

func init() {
	addRunFlags(digitalCmd, &digitalFlags)
	digitalCmd.Flags().Float64Var(&digitalParams.s0, "s0", 100, "spot")
	digitalCmd.Flags().Float64Var(&digitalParams.k, "k", 100, "strike")
	digitalCmd.Flags().Float64Var(&digitalParams.r, "r", 0.05, "risk-free rate")
	digitalCmd.Flags().Float64Var(&digitalParams.sigma, "sigma", 0.2, "volatility")
	digitalCmd.Flags().Float64Var(&digitalParams.t, "t", 1, "maturity in years")
	digitalCmd.Flags().Float64Var(&digitalParams.q, "payout", 1, "cash payout on a hit (ignored for asset-or-nothing)")
	digitalCmd.Flags().BoolVar(&digitalParams.asset, "asset", false, "pay the asset instead of fixed cash on a hit")
}
