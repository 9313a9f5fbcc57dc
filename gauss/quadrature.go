package gauss

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

var _ quad.FixedLocationer = Quadrature{}

// Quadrature lets a family drive gonum's quad.Fixed, so that
//
//	quad.Fixed(f, 0, math.Inf(1), 32, gauss.Quadrature{Family: gauss.Laguerre}, 0)
//
// evaluates the 32 point Gauss-Laguerre sum of f, optionally with concurrent
// evaluations of f. The bounds must fit the family: finite for Legendre,
// [min,inf) for Laguerre (weight exp(-(x-min))) and (-inf,inf) for Hermite.
// Like gonum's own rules it panics on bounds it cannot serve.
type Quadrature struct {
	Family Family
	Cache  *Cache
}

func (q Quadrature) FixedLocations(x, weight []float64, min, max float64) {
	var (
		n     = len(x)
		cache = q.Cache
	)
	if len(weight) != n {
		panic("gauss: x and weight length mismatch")
	}
	if cache == nil {
		cache = DefaultCache
	}
	r, err := cache.Rule(q.Family, n)
	if err != nil {
		panic(err)
	}
	switch q.Family {
	case Legendre:
		if r, err = RemapLegendre(r, min, max); err != nil {
			panic(err)
		}
	case Laguerre:
		if math.IsInf(min, 0) || !math.IsInf(max, 1) {
			panic(fmt.Sprintf("gauss: Laguerre rule needs [min,+inf), have [%v,%v]", min, max))
		}
		for i := range r.X {
			r.X[i] += min
		}
	case Hermite:
		if !math.IsInf(min, -1) || !math.IsInf(max, 1) {
			panic(fmt.Sprintf("gauss: Hermite rule needs (-inf,+inf), have [%v,%v]", min, max))
		}
	}
	copy(x, r.X)
	copy(weight, r.W)
}
