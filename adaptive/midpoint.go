package adaptive

import (
	"math"

	"github.com/notargets/goquad/types"
	"github.com/notargets/goquad/utils"
)

// Midpoint is the composite midpoint rule h*sum_k f(a + h/2 + k*h) with
// h = (b-a)/n. It returns NaN when n < 1.
func Midpoint(f types.Integrand, a, b float64, n int) float64 {
	if n < 1 {
		return math.NaN()
	}
	h := (b - a) / float64(n)
	return h * midpointSum(f, a, h, 0, n)
}

// MidpointParallel splits the midpoint sum into one contiguous block of
// subintervals per worker. The blocks are added in a fixed order, so repeated
// calls give identical results.
func MidpointParallel(f types.Integrand, a, b float64, n, workers int) float64 {
	if workers <= 1 || n < 2 {
		return Midpoint(f, a, b, n)
	}
	if workers > n {
		workers = n
	}
	var (
		h  = (b - a) / float64(n)
		pm = utils.NewPartitionMap(workers, n)
	)
	return h * pm.Reduce(func(kMin, kMax int) float64 {
		return midpointSum(f, a, h, kMin, kMax)
	})
}

func midpointSum(f types.Integrand, a, h float64, kMin, kMax int) (sum float64) {
	x0 := a + 0.5*h
	for k := kMin; k < kMax; k++ {
		sum += f(x0 + float64(k)*h)
	}
	return
}
