package main

import (
	"github.com/spf13/cobra"
)

var sabrFlags runFlags
var sabrParams struct {
	f0, k, r, t          float64
	alpha, beta, rho, nu float64
}

var sabrCmd = &cobra.Command{
	Use:   "sabr",
	Short: "Price a European option under the SABR stochastic-volatility model",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ot, err := sabrFlags.optionKind()
		if err != nil {
			return err
		}
		c := sabrFlags.newContext()
		p := sabrParams
		price := c.PriceEuropeanSABR(p.f0, p.k, p.alpha, p.beta, p.rho, p.nu, p.r, p.t, ot)
		return printPrice(price, c)
	},
}

func init() {
	addRunFlags(sabrCmd, &sabrFlags)
	sabrCmd.Flags().Float64Var(&sabrParams.f0, "f0", 100, "initial forward")
	sabrCmd.Flags().Float64Var(&sabrParams.k, "k", 100, "strike")
	sabrCmd.Flags().Float64Var(&sabrParams.r, "r", 0.05, "risk-free rate, for discounting only")
	sabrCmd.Flags().Float64Var(&sabrParams.t, "t", 1, "maturity in years")
	sabrCmd.Flags().Float64Var(&sabrParams.alpha, "alpha", 0.2, "initial volatility")
	sabrCmd.Flags().Float64Var(&sabrParams.beta, "beta", 0.5, "CEV exponent")
	sabrCmd.Flags().Float64Var(&sabrParams.rho, "rho", -0.3, "forward/vol correlation")
	sabrCmd.Flags().Float64Var(&sabrParams.nu, "nu", 0.4, "vol-of-vol")
}
