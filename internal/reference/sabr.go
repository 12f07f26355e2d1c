package reference

import "math"

// HaganSABRImpliedVol returns Hagan et al.'s leading-order asymptotic
// implied Black volatility for the SABR model, suitable for pricing a
// European option via Black76Call/Put with this volatility plugged in.
// f is the forward, k the strike, t the maturity, alpha/beta/rho/nu the
// usual SABR parameters.
func HaganSABRImpliedVol(f, k, t, alpha, beta, rho, nu float64) float64 {
	if math.Abs(f-k) < 1e-12 {
		return haganATM(f, t, alpha, beta, rho, nu)
	}

	fk := f * k
	fkBeta := math.Pow(fk, (1-beta)/2)
	logFK := math.Log(f / k)

	z := (nu / alpha) * fkBeta * logFK
	x := math.Log((math.Sqrt(1-2*rho*z+z*z) + z - rho) / (1 - rho))

	a := alpha / (fkBeta * (1 + (1-beta)*(1-beta)/24*logFK*logFK + math.Pow(1-beta, 4)/1920*math.Pow(logFK, 4)))
	b := 1 + ((1-beta)*(1-beta)/24*alpha*alpha/math.Pow(fkBeta, 2)+
		0.25*rho*beta*nu*alpha/fkBeta+
		(2-3*rho*rho)/24*nu*nu)*t

	zx := 1.0
	if math.Abs(z) > 1e-12 {
		zx = z / x
	}
	return a * zx * b
}

func haganATM(f, t, alpha, beta, rho, nu float64) float64 {
	fBeta := math.Pow(f, 1-beta)
	term := 1 + ((1-beta)*(1-beta)/24*alpha*alpha/(fBeta*fBeta)+
		0.25*rho*beta*nu*alpha/fBeta+
		(2-3*rho*rho)/24*nu*nu)*t
	return (alpha / fBeta) * term
}
