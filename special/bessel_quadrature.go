package special

import (
	"math"

	"github.com/notargets/goquad/adaptive"
)

const (
	quadratureTolerance     = 1.e-11
	quadratureMaxIterations = 24
)

// BesselKQuadrature evaluates K_n(x) from the integral representation
//
//	K_n(x) = int_0^inf exp(-x cosh t) cosh(n t) dt
//
// with the compactified adaptive midpoint rule. The integral is taken over
// exp(-x (cosh t - 1)) and rescaled by exp(-x) so the absolute tolerance stays
// meaningful for large x. It is much slower than BesselK and serves as an
// independent check of it. A missed tolerance is logged by the integrator and
// the best estimate returned.
func BesselKQuadrature(n int, x float64) float64 {
	if n < 0 || !(x > 0) || math.IsInf(x, 1) {
		return BesselK(n, x)
	}
	nn := float64(n)
	f := func(t float64) float64 {
		s := math.Sinh(0.5 * t)
		a := -2 * x * s * s
		if math.IsInf(a, -1) {
			return 0
		}
		return 0.5 * (math.Exp(nn*t+a) + math.Exp(-nn*t+a))
	}
	res, err := adaptive.IntegrateSemiInfinite(f, 0,
		adaptive.WithTolerance(quadratureTolerance),
		adaptive.WithMaxIterations(quadratureMaxIterations))
	if err != nil {
		return math.NaN()
	}
	return res.Value * math.Exp(-x)
}
