package main

import (
	"github.com/spf13/cobra"
)

var mertonFlags runFlags
var mertonParams struct {
	s0, k, r, sigma, t  float64
	lambda, muJ, sigmaJ float64
}

var mertonCmd = &cobra.Command{
	Use:   "merton",
	Short: "Price a European option under Merton jump-diffusion",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ot, err := mertonFlags.optionKind()
		if err != nil {
			return err
		}
		c := mertonFlags.newContext()
		p := mertonParams
		price := c.PriceEuropeanMerton(p.s0, p.k, p.r, p.sigma, p.t, p.lambda, p.muJ, p.sigmaJ, ot)
		return printPrice(price, c)
	},
}

func init() {
	addRunFlags(mertonCmd, &mertonFlags)
	mertonCmd.Flags().Float64Var(&mertonParams.s0, "s0", 100, "spot")
	mertonCmd.Flags().Float64Var(&mertonParams.k, "k", 100, "strike")
	mertonCmd.Flags().Float64Var(&mertonParams.r, "r", 0.05, "risk-free rate")
	mertonCmd.Flags().Float64Var(&mertonParams.sigma, "sigma", 0.2, "diffusion volatility")
	mertonCmd.Flags().Float64Var(&mertonParams.t, "t", 1, "maturity in years")
	mertonCmd.Flags().Float64Var(&mertonParams.lambda, "lambda", 0.5, "jump intensity (jumps per year)")
	mertonCmd.Flags().Float64Var(&mertonParams.muJ, "mu-j", -0.1, "mean log jump size")
	mertonCmd.Flags().Float64Var(&mertonParams.sigmaJ, "sigma-j", 0.2, "log jump size volatility")
}
