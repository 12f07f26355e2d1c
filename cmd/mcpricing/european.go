package main

import (
	"github.com/spf13/cobra"
)

var europeanFlags runFlags
var europeanParams struct {
	s0, k, r, sigma, t float64
	forward            bool
}

var europeanCmd = &cobra.Command{
	Use:   "european",
	Short: "Price a European option under GBM or Black-76",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ot, err := europeanFlags.optionKind()
		if err != nil {
			return err
		}
		c := europeanFlags.newContext()
		p := europeanParams
		var price float64
		if p.forward {
			price = c.PriceEuropeanBlack76(p.s0, p.k, p.r, p.sigma, p.t, ot)
		} else {
			price = c.PriceEuropeanGBM(p.s0, p.k, p.r, p.sigma, p.t, ot)
		}
		return printPrice(price, c)
	},
}

func init() {
	addRunFlags(europeanCmd, &europeanFlags)
	europeanCmd.Flags().Float64Var(&europeanParams.s0, "s0", 100, "spot (or forward, with --forward)")
	europeanCmd.Flags().Float64Var(&europeanParams.k, "k", 100, "strike")
	europeanCmd.Flags().Float64Var(&europeanParams.r, "r", 0.05, "risk-free rate")
	europeanCmd.Flags().Float64Var(&europeanParams.sigma, "sigma", 0.2, "volatility")
	europeanCmd.Flags().Float64Var(&europeanParams.t, "t", 1, "maturity in years")
	europeanCmd.Flags().BoolVar(&europeanParams.forward, "forward", false, "price under Black-76 on a forward instead of GBM on spot")
}
