package thermal

import (
	"math"

	"github.com/notargets/goquad/types"
)

// occupation returns e^{shift}/(exp(E)+eta) for the reduced energy E
// without forming exp(E) when E > 0.
func occupation(E, shift float64, eta Statistics) float64 {
	if E > 0 {
		q := math.Exp(-E)
		return math.Exp(shift-E) / (1 + float64(eta)*q)
	}
	return math.Exp(shift) / (math.Exp(E) + float64(eta))
}

// Integrand returns the momentum distribution
//
//	f(p) = D p^2 / (2 pi^2) / (exp(sqrt((M/T)^2 + p^2) - Mu/T) + Eta)
//
// of the dimensionless momentum p, whose integral over [0,inf) is n/T^3.
// Params are assumed valid.
func Integrand(params Params) types.Integrand {
	var (
		mT   = params.M / params.T
		muT  = params.Mu / params.T
		norm = params.D / (2 * math.Pi * math.Pi)
	)
	return func(p float64) float64 {
		E := math.Hypot(mT, p) - muT
		return norm * p * p * occupation(E, 0, params.Eta)
	}
}

// LaguerreIntegrand returns f(p) e^p, the function a Gauss-Laguerre rule
// integrates against its weight e^-p.
func LaguerreIntegrand(params Params) types.Integrand {
	var (
		mT   = params.M / params.T
		muT  = params.Mu / params.T
		norm = params.D / (2 * math.Pi * math.Pi)
	)
	return func(p float64) float64 {
		E := math.Hypot(mT, p) - muT
		return norm * p * p * occupation(E, p, params.Eta)
	}
}
