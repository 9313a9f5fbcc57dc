package gauss

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/integrate/quad"
)

func TestQuadratureFixedLocationer(t *testing.T) {
	inf := math.Inf(1)
	{ // Legendre maps onto the given bounds
		got := quad.Fixed(math.Sin, 0, math.Pi, 16, Quadrature{Family: Legendre}, 0)
		assert.InDelta(t, 2., got, 1.e-13)
		got = quad.Fixed(math.Sin, 0, math.Pi, 16, Quadrature{Family: Legendre}, 4)
		assert.InDelta(t, 2., got, 1.e-13)
	}
	{ // Laguerre weight exp(-(x-min)) on [min,inf)
		f := func(x float64) float64 { return x }
		assert.InDelta(t, 1., quad.Fixed(f, 0, inf, 4, Quadrature{Family: Laguerre}, 0), 1.e-13)
		assert.InDelta(t, 2., quad.Fixed(f, 1, inf, 4, Quadrature{Family: Laguerre}, 0), 1.e-13)
	}
	{ // Hermite weight exp(-x^2) on the whole line
		f := func(x float64) float64 { return x * x }
		c := NewCache()
		got := quad.Fixed(f, -inf, inf, 6, Quadrature{Family: Hermite, Cache: c}, 2)
		assert.InDelta(t, math.SqrtPi/2, got, 1.e-13)
		assert.Equal(t, 1, c.Len())
	}
	{ // Bounds the family cannot serve
		x, w := make([]float64, 4), make([]float64, 4)
		assert.Panics(t, func() { Quadrature{Family: Laguerre}.FixedLocations(x, w, 0, 10) })
		assert.Panics(t, func() { Quadrature{Family: Hermite}.FixedLocations(x, w, 0, inf) })
		assert.Panics(t, func() { Quadrature{Family: Legendre}.FixedLocations(x, w, 0, inf) })
		assert.Panics(t, func() { Quadrature{Family: Legendre}.FixedLocations(x, w[:3], 0, 1) })
	}
}
