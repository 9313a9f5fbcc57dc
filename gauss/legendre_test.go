package gauss

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/notargets/goquad/types"
)

func TestLegendreKnownRules(t *testing.T) {
	tests := []struct {
		name string
		N    int
		x, w []float64
	}{
		{"N=1", 1, []float64{0}, []float64{2}},
		{"N=2", 2, []float64{-1 / math.Sqrt(3), 1 / math.Sqrt(3)}, []float64{1, 1}},
		{"N=3", 3, []float64{-math.Sqrt(0.6), 0, math.Sqrt(0.6)}, []float64{5. / 9, 8. / 9, 5. / 9}},
		{"N=4", 4,
			[]float64{-0.8611363115940526, -0.3399810435848563, 0.3399810435848563, 0.8611363115940526},
			[]float64{0.3478548451374538, 0.6521451548625461, 0.6521451548625461, 0.3478548451374538}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := NewRule(Legendre, tc.N)
			require.NoError(t, err)
			require.Equal(t, tc.N, r.Order())
			assert.InDeltaSlicef(t, tc.x, r.X, 1.e-14, "nodes for N=%d", tc.N)
			assert.InDeltaSlicef(t, tc.w, r.W, 1.e-14, "weights for N=%d", tc.N)
		})
	}
}

func TestLegendrePolynomialExactness(t *testing.T) {
	for N := 1; N <= 40; N++ {
		r, err := NewRule(Legendre, N)
		require.NoError(t, err)
		require.Equal(t, N, len(r.X))
		require.Equal(t, N, len(r.W))
		assert.InDeltaf(t, 2., floats.Sum(r.W), 1.e-13, "weight sum, N=%d", N)
		for k := 0; k <= 2*N-1; k++ {
			var exact float64
			if k%2 == 0 {
				exact = 2 / float64(k+1)
			}
			kk := k
			got := Evaluate(func(x float64) float64 { return math.Pow(x, float64(kk)) }, r)
			assert.InDeltaf(t, exact, got, 1.e-12, "N=%d, x^%d", N, k)
		}
	}
}

func TestLegendreSymmetryAndOrdering(t *testing.T) {
	for _, N := range []int{1, 2, 5, 16, 32, 64, 129} {
		r, err := NewRule(Legendre, N)
		require.NoError(t, err)
		for i := 0; i < N; i++ {
			assert.InDeltaf(t, -r.X[N-1-i], r.X[i], 1.e-14, "node symmetry N=%d, i=%d", N, i)
			assert.InDeltaf(t, r.W[N-1-i], r.W[i], 1.e-13, "weight symmetry N=%d, i=%d", N, i)
			assert.Greater(t, r.W[i], 0.)
			if i > 0 {
				assert.Less(t, r.X[i-1], r.X[i])
			}
		}
	}
}

func TestLegendreAgainstGonum(t *testing.T) {
	for _, N := range []int{3, 10, 24, 50} {
		var (
			x = make([]float64, N)
			w = make([]float64, N)
		)
		quad.Legendre{}.FixedLocations(x, w, -1, 1)
		inds := make([]int, N)
		floats.Argsort(x, inds)
		ws := make([]float64, N)
		for i, j := range inds {
			ws[i] = w[j]
		}
		w = ws
		r, err := NewRule(Legendre, N)
		require.NoError(t, err)
		assert.InDeltaSlicef(t, x, r.X, 1.e-13, "gonum nodes N=%d", N)
		assert.InDeltaSlicef(t, w, r.W, 1.e-13, "gonum weights N=%d", N)
	}
}

func TestLegendreCachedDerivative(t *testing.T) {
	// Weights from the derivative of the last Newton sweep must match weights
	// from a derivative recomputed at the converged roots
	for _, N := range []int{1, 2, 7, 32, 100} {
		x, dpCached, err := legendreRoots(N)
		require.NoError(t, err)
		dpFresh := legendreDerivative(N, x)
		wCached := legendreWeights(x, dpCached)
		wFresh := legendreWeights(x, dpFresh)
		for i := range x {
			assert.InDeltaf(t, 0., (dpCached[i]-dpFresh[i])/dpFresh[i], 1.e-10,
				"derivative N=%d, i=%d", N, i)
			assert.InDeltaf(t, wFresh[i], wCached[i], 1.e-12, "weight N=%d, i=%d", N, i)
		}
	}
}

func TestLegendreGolubWelschSeeds(t *testing.T) {
	N := 12
	xGW, wGW, err := jacobiEigen(Legendre, N, true)
	require.NoError(t, err)
	r, err := NewRule(Legendre, N)
	require.NoError(t, err)
	assert.InDeltaSlicef(t, xGW, r.X, 1.e-13, "eigenvalue nodes")
	assert.InDeltaSlicef(t, wGW, r.W, 1.e-13, "eigenvector weights")
}

func TestNewRuleInvalidOrder(t *testing.T) {
	for _, fam := range []Family{Legendre, Hermite, Laguerre} {
		for _, N := range []int{0, -1, -100} {
			_, err := NewRule(fam, N)
			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrInvalidArgument), "family %v order %d", fam, N)
		}
	}
	_, err := NewRule(Family(42), 4)
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
}
