package main

import (
	"github.com/spf13/cobra"
)

var hestonFlags runFlags
var hestonParams struct {
	s0, k, r, t               float64
	v0, kappa, theta, xi, rho float64
}

var hestonCmd = &cobra.Command{
	Use:   "heston",
	Short: "Price a European option under the Heston stochastic-volatility model",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ot, err := hestonFlags.optionKind()
		if err != nil {
			return err
		}
		c := hestonFlags.newContext()
		p := hestonParams
		price := c.PriceEuropeanHeston(p.s0, p.k, p.r, p.t, p.v0, p.kappa, p.theta, p.xi, p.rho, ot)
		return printPrice(price, c)
	},
}

func init() {
	addRunFlags(hestonCmd, &hestonFlags)
	hestonCmd.Flags().Float64Var(&hestonParams.s0, "s0", 100, "spot")
	hestonCmd.Flags().Float64Var(&hestonParams.k, "k", 100, "strike")
	hestonCmd.Flags().Float64Var(&hestonParams.r, "r", 0.05, "risk-free rate")
	hestonCmd.Flags().Float64Var(&hestonParams.t, "t", 1, "maturity in years")
	hestonCmd.Flags().Float64Var(&hestonParams.v0, "v0", 0.04, "initial variance")
	hestonCmd.Flags().Float64Var(&hestonParams.kappa, "kappa", 2.0, "mean-reversion speed")
	hestonCmd.Flags().Float64Var(&hestonParams.theta, "theta", 0.04, "long-run variance")
	hestonCmd.Flags().Float64Var(&hestonParams.xi, "xi", 0.3, "vol-of-vol")
	hestonCmd.Flags().Float64Var(&hestonParams.rho, "rho", -0.7, "spot/variance correlation")
}
