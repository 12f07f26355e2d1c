package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tembolo1284/mcpricing/internal/pricing"
)

var barrierFlags runFlags
var barrierParams struct {
	s0, k, h, rebate, r, sigma, t float64
	style                         string
}

var barrierCmd = &cobra.Command{
	Use:   "barrier",
	Short: "Price a discretely monitored barrier option under GBM",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ot, err := barrierFlags.optionKind()
		if err != nil {
			return err
		}
		bt, err := barrierKind(barrierParams.style)
		if err != nil {
			return err
		}
		c := barrierFlags.newContext()
		p := barrierParams
		price := c.PriceBarrierGBM(p.s0, p.k, p.h, p.rebate, p.r, p.sigma, p.t, ot, bt)
		return printPrice(price, c)
	},
}

func barrierKind(style string) (pricing.BarrierType, error) {
	switch style {
	case "down-in":
		return pricing.DownIn, nil
	case "down-out":
		return pricing.DownOut, nil
	case "up-in":
		return pricing.UpIn, nil
	case "up-out":
		return pricing.UpOut, nil
	default:
		return 0, fmt.Errorf("unknown barrier style %q: must be one of down-in, down-out, up-in, up-out", style)
	}
}

func init() {
	addRunFlags(barrierCmd, &barrierFlags)
	barrierCmd.Flags().Float64Var(&barrierParams.s0, "s0", 100, "spot")
	barrierCmd.Flags().Float64Var(&barrierParams.k, "k", 100, "strike")
	barrierCmd.Flags().Float64Var(&barrierParams.h, "barrier", 90, "barrier level")
	barrierCmd.Flags().Float64Var(&barrierParams.rebate, "rebate", 0, "rebate paid when knocked out (knock-in styles that never hit pay 0)")
	barrierCmd.Flags().Float64Var(&barrierParams.r, "r", 0.05, "risk-free rate")
	barrierCmd.Flags().Float64Var(&barrierParams.sigma, "sigma", 0.2, "volatility")
	barrierCmd.Flags().Float64Var(&barrierParams.t, "t", 1, "maturity in years")
	barrierCmd.Flags().StringVar(&barrierParams.style, "style", "down-out", "barrier style: down-in, down-out, up-in, up-out")
}
