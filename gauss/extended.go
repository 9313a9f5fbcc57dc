package gauss

import (
	"fmt"
	"math/big"

	"github.com/notargets/goquad/types"
)

// Hermite and Laguerre roots are seeded from the Jacobi matrix eigenvalues and
// then polished by Newton iteration on the exact recurrence, carried out in
// extendedPrec bits. Weights are formed at the same precision and rounded to
// float64 only at the end.
const (
	extendedPrec        = 256
	maxPolishIterations = 64
	// pi to 80 decimals, more than extendedPrec bits hold
	piDigits = "3.14159265358979323846264338327950288419716939937510582097494459230781640628620899"
)

type bigEval func(x *big.Float) (p, dp *big.Float)

func newFloat() *big.Float { return new(big.Float).SetPrec(extendedPrec) }

func bigInt(i int) *big.Float { return newFloat().SetInt64(int64(i)) }

func hermiteRule(N int) (r Rule, err error) {
	var roots []*big.Float
	if roots, err = extendedRoots(Hermite, N, func(x *big.Float) (p, dp *big.Float) {
		// H'_N = 2N H_{N-1}
		var pNm1 *big.Float
		p, pNm1 = hermiteH(N, x)
		dp = newFloat().Mul(bigInt(2*N), pNm1)
		return
	}); err != nil {
		return
	}
	// w = 2^(N-1) N! sqrt(pi) / (N^2 H_{N-1}(x)^2)
	var (
		fact   = newFloat().SetInt(new(big.Int).MulRange(1, int64(N)))
		sqrtPi = newFloat()
		num    = newFloat()
	)
	pi, _ := newFloat().SetString(piDigits)
	sqrtPi.Sqrt(pi)
	num.SetMantExp(fact, N-1)
	num.Mul(num, sqrtPi)
	r = Rule{Family: Hermite, X: make([]float64, N), W: make([]float64, N)}
	r.A, r.B = Hermite.Domain()
	for i, x := range roots {
		_, hNm1 := hermiteH(N, x)
		den := newFloat().Mul(hNm1, hNm1)
		den.Mul(den, bigInt(N*N))
		r.X[i], _ = x.Float64()
		r.W[i], _ = newFloat().Quo(num, den).Float64()
	}
	err = checkWeights(r)
	return
}

func laguerreRule(N int) (r Rule, err error) {
	var roots []*big.Float
	if roots, err = extendedRoots(Laguerre, N, func(x *big.Float) (p, dp *big.Float) {
		// x L'_N = N (L_N - L_{N-1})
		var pNm1 *big.Float
		p, pNm1 = laguerreL(N, x)
		dp = newFloat().Sub(p, pNm1)
		dp.Mul(dp, bigInt(N))
		dp.Quo(dp, x)
		return
	}); err != nil {
		return
	}
	// w = x / ((N+1)^2 L_{N+1}(x)^2)
	r = Rule{Family: Laguerre, X: make([]float64, N), W: make([]float64, N)}
	r.A, r.B = Laguerre.Domain()
	for i, x := range roots {
		lNp1, _ := laguerreL(N+1, x)
		den := newFloat().Mul(lNp1, lNp1)
		den.Mul(den, bigInt((N+1)*(N+1)))
		r.X[i], _ = x.Float64()
		r.W[i], _ = newFloat().Quo(x, den).Float64()
	}
	err = checkWeights(r)
	return
}

// checkWeights rejects rules whose outermost weights underflow to zero in
// float64, which happens for Laguerre orders near 200 and Hermite orders near
// 400.
func checkWeights(r Rule) error {
	for i, w := range r.W {
		if !(w > 0) {
			return fmt.Errorf("gauss: %v weight %d of order %d underflows float64: %w",
				r.Family, i, r.Order(), types.ErrNumericalFailure)
		}
	}
	return nil
}

// hermiteH evaluates the physicists' Hermite polynomials H_N(x) and H_{N-1}(x)
// via H_{k+1} = 2x H_k - 2k H_{k-1}.
func hermiteH(N int, x *big.Float) (pN, pNm1 *big.Float) {
	var (
		twoX = newFloat().Mul(x, bigInt(2))
	)
	pNm1, pN = bigInt(1), newFloat().Set(twoX)
	for k := 1; k < N; k++ {
		next := newFloat().Mul(twoX, pN)
		next.Sub(next, newFloat().Mul(bigInt(2*k), pNm1))
		pNm1, pN = pN, next
	}
	return
}

// laguerreL evaluates L_N(x) and L_{N-1}(x) via
// (k+1) L_{k+1} = (2k+1-x) L_k - k L_{k-1}.
func laguerreL(N int, x *big.Float) (pN, pNm1 *big.Float) {
	pNm1, pN = bigInt(1), newFloat().Sub(bigInt(1), x)
	for k := 1; k < N; k++ {
		next := newFloat().Sub(bigInt(2*k+1), x)
		next.Mul(next, pN)
		next.Sub(next, newFloat().Mul(bigInt(k), pNm1))
		next.Quo(next, bigInt(k+1))
		pNm1, pN = pN, next
	}
	return
}

func extendedRoots(family Family, N int, eval bigEval) (roots []*big.Float, err error) {
	var seeds []float64
	if seeds, _, err = jacobiEigen(family, N, false); err != nil {
		return
	}
	roots = make([]*big.Float, N)
	for i, seed := range seeds {
		if roots[i], err = polish(seed, eval); err != nil {
			err = fmt.Errorf("gauss: %v root %d of order %d: %w", family, i, N, err)
			return
		}
	}
	for i := 1; i < N; i++ {
		if roots[i].Cmp(roots[i-1]) <= 0 {
			err = fmt.Errorf("gauss: %v roots %d and %d of order %d coincide after polishing: %w",
				family, i-1, i, N, types.ErrNumericalFailure)
			return
		}
	}
	return
}

// polish runs Newton's method from seed until the update is below
// 2^-(extendedPrec/2) relative to max(1,|x|).
func polish(seed float64, eval bigEval) (x *big.Float, err error) {
	var (
		one = bigInt(1)
		tol = newFloat().SetMantExp(one, -extendedPrec/2)
	)
	x = newFloat().SetFloat64(seed)
	for iter := 0; iter < maxPolishIterations; iter++ {
		p, dp := eval(x)
		if p.Sign() == 0 {
			return
		}
		if dp.Sign() == 0 {
			break
		}
		dx := newFloat().Quo(p, dp)
		x.Sub(x, dx)
		scale := newFloat().Abs(x)
		if scale.Cmp(one) < 0 {
			scale.Set(one)
		}
		if dx.Abs(dx).Cmp(scale.Mul(scale, tol)) <= 0 {
			return
		}
	}
	err = fmt.Errorf("Newton polishing from %v did not converge: %w", seed, types.ErrNumericalFailure)
	return
}
