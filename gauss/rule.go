package gauss

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/goquad/types"
	"github.com/notargets/goquad/utils"
)

// Rule is a set of quadrature nodes X and weights W, index aligned, such that
// sum_i W[i]*f(X[i]) approximates the integral of f(x)*K(x) over [A,B] for the
// weight function K of the family. Nodes are stored in ascending order.
type Rule struct {
	Family Family
	A, B   float64
	X, W   []float64
}

// NewRule generates the Gaussian quadrature rule of the given family and order.
// Legendre rules come from Newton iteration on an asymptotic seed, Hermite and
// Laguerre rules from extended precision root extraction. Hermite and Laguerre
// weights decay like exp(-x) at the outer nodes; orders whose smallest weight
// underflows float64 (Laguerre from about 200, Hermite from about 400) fail
// with types.ErrNumericalFailure.
func NewRule(family Family, order int) (r Rule, err error) {
	if order < 1 {
		err = fmt.Errorf("gauss: order %d < 1: %w", order, types.ErrInvalidArgument)
		return
	}
	switch family {
	case Legendre:
		return legendreRule(order)
	case Hermite:
		return hermiteRule(order)
	case Laguerre:
		return laguerreRule(order)
	}
	err = fmt.Errorf("gauss: %v: %w", family, types.ErrInvalidArgument)
	return
}

func (r Rule) Order() int { return len(r.X) }

// Copy returns a rule that shares no storage with r.
func (r Rule) Copy() (rc Rule) {
	rc = r
	rc.X = append([]float64(nil), r.X...)
	rc.W = append([]float64(nil), r.W...)
	return
}

// Evaluate computes sum_i w_i f(x_i) over the rule.
func Evaluate(f types.Integrand, r Rule) float64 {
	fx := make([]float64, len(r.X))
	for i, x := range r.X {
		fx[i] = f(x)
	}
	return floats.Dot(r.W, fx)
}

// RemapLegendre moves a Legendre rule from its interval onto [a,b]. For the
// canonical rule on [-1,1] this is x' = (b-a)/2 x + (b+a)/2, w' = (b-a)/2 w.
// Rules of the other families live on infinite supports and are never remapped.
func RemapLegendre(r Rule, a, b float64) (rm Rule, err error) {
	switch {
	case r.Family != Legendre:
		err = fmt.Errorf("gauss: cannot remap a %v rule: %w", r.Family, types.ErrInvalidArgument)
		return
	case !utils.IsFinite([]float64{a, b}):
		err = fmt.Errorf("gauss: remap bounds [%v,%v] must be finite: %w", a, b, types.ErrInvalidArgument)
		return
	case a >= b:
		err = fmt.Errorf("gauss: remap bounds need a < b, have [%v,%v]: %w", a, b, types.ErrInvalidArgument)
		return
	}
	var (
		scale = (b - a) / (r.B - r.A)
		n     = r.Order()
	)
	rm = Rule{
		Family: Legendre,
		A:      a,
		B:      b,
		X:      make([]float64, n),
		W:      make([]float64, n),
	}
	for i := 0; i < n; i++ {
		rm.X[i] = a + scale*(r.X[i]-r.A)
		rm.W[i] = scale * r.W[i]
	}
	return
}
