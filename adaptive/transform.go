package adaptive

import (
	"fmt"
	"math"

	"github.com/notargets/goquad/types"
)

// ToUnit maps p in [0,inf) onto t = p/(1+p) in [0,1).
func ToUnit(p float64) float64 { return p / (1 + p) }

// FromUnit is the inverse of ToUnit, t/(1-t).
func FromUnit(t float64) float64 { return t / (1 - t) }

// Compactify returns g(t) = f(c + t/(1-t))/(1-t)^2, whose integral over [0,1)
// equals the integral of f over [c,inf). f must decay faster than (1-t)^-2
// grows as t approaches 1; this is not checked.
func Compactify(f types.Integrand, c float64) types.Integrand {
	return func(t float64) float64 {
		s := 1 - t
		return f(c+t/s) / (s * s)
	}
}

// IntegrateSemiInfinite integrates f over [c,inf) by running Integrate on the
// compactified integrand over [0,1). Midpoints never reach t=1.
func IntegrateSemiInfinite(f types.Integrand, c float64, opts ...Option) (res Result, err error) {
	if math.IsNaN(c) || math.IsInf(c, 0) {
		err = fmt.Errorf("adaptive: lower bound %v must be finite: %w", c, types.ErrInvalidArgument)
		return
	}
	return Integrate(Compactify(f, c), 0, 1, opts...)
}
