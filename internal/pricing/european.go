package pricing

import "github.com/tembolo1284/mcpricing/internal/models"

// TerminalFunc draws whatever the underlying model needs from src and
// returns one terminal value S(T) (or F(T)). It is the model-agnostic seam
// between L1 kernels and L2's terminal-only pricers: European and Digital.
type TerminalFunc func(src models.Source) float64

// European returns the per-path European payoff max(±(S(T)-K), 0) for one
// terminal draw; the engine layer loops paths, averages, and discounts. The
// engine wires it to the terminal-only GBM and Black-76 kernels; the stepped
// Heston, SABR, and Merton pricers apply VanillaPayoff to their simulated
// terminal value directly.
func European(ot OptionType, k float64, terminal TerminalFunc) func(src models.Source) float64 {
	return func(src models.Source) float64 {
		s := terminal(src)
		return VanillaPayoff(ot, s, k)
	}
}

// Digital prices a cash-or-nothing / asset-or-nothing digital option.
func Digital(ot OptionType, k, q float64, cash bool, terminal TerminalFunc) func(src models.Source) float64 {
	return func(src models.Source) float64 {
		s := terminal(src)
		return DigitalPayoff(ot, s, k, q, cash)
	}
}
