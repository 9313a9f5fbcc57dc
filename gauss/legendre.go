package gauss

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/goquad/types"
)

const (
	legendreTolerance   = 1.e-15
	maxNewtonIterations = 100
)

func legendreRule(N int) (r Rule, err error) {
	var x, dp []float64
	if x, dp, err = legendreRoots(N); err != nil {
		return
	}
	w := legendreWeights(x, dp)
	// Seeds walk down from +1, flip to ascending order
	floats.Reverse(x)
	floats.Reverse(w)
	r = Rule{Family: Legendre, A: -1, B: 1, X: x, W: w}
	return
}

// legendreRoots finds the zeros of P_N by Newton's method, starting from the
// approximation in Abramowitz and Stegun 22.16.6, all roots updated together
// until the largest update is below legendreTolerance. The derivative P'_N
// from the last sweep is returned alongside the roots.
func legendreRoots(N int) (x, dp []float64, err error) {
	var (
		fN = float64(N)
		dx = make([]float64, N)
	)
	x = make([]float64, N)
	dp = make([]float64, N)
	for k := 0; k < N; k++ {
		a := (4*float64(k) + 3) / (4*fN + 2)
		x[k] = math.Cos(math.Pi*a + 1/(8*fN*fN*math.Tan(a)))
	}
	for iter := 0; iter < maxNewtonIterations; iter++ {
		for k, xk := range x {
			pN, pNm1 := legendreP(N, xk)
			dp[k] = legendreDP(N, xk, pN, pNm1)
			dx[k] = pN / dp[k]
			x[k] = xk - dx[k]
		}
		if floats.Norm(dx, math.Inf(1)) < legendreTolerance {
			return
		}
	}
	err = fmt.Errorf("gauss: Legendre roots of order %d not converged after %d iterations: %w",
		N, maxNewtonIterations, types.ErrNumericalFailure)
	return
}

// legendreP evaluates P_N(x) and P_{N-1}(x) with the recurrence in
// Abramowitz and Stegun 22.7.10.
func legendreP(N int, x float64) (pN, pNm1 float64) {
	pNm1, pN = 1, x
	for k := 1; k < N; k++ {
		fk := float64(k)
		pNm1, pN = pN, ((2*fk+1)*x*pN-fk*pNm1)/(fk+1)
	}
	return
}

func legendreDP(N int, x, pN, pNm1 float64) float64 {
	return float64(N) * (pNm1 - x*pN) / (1 - x*x)
}

// legendreDerivative recomputes P'_N at converged roots
func legendreDerivative(N int, x []float64) (dp []float64) {
	dp = make([]float64, len(x))
	for k, xk := range x {
		pN, pNm1 := legendreP(N, xk)
		dp[k] = legendreDP(N, xk, pN, pNm1)
	}
	return
}

func legendreWeights(x, dp []float64) (w []float64) {
	w = make([]float64, len(x))
	for k, xk := range x {
		w[k] = 2 / ((1 - xk*xk) * dp[k] * dp[k])
	}
	return
}
