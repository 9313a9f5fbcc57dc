package gauss

import (
	"fmt"
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/goquad/types"
)

// jacobiMatrix assembles the symmetric tridiagonal matrix of the three term
// recurrence of the orthonormal polynomials of the family. Its eigenvalues are
// the roots of the degree N polynomial (Golub-Welsch).
func jacobiMatrix(family Family, N int) (JJ *mat.SymDense) {
	var (
		d0 = make([]float64, N)
		d1 = make([]float64, N-1)
	)
	switch family {
	case Hermite:
		for i := 0; i < N-1; i++ {
			d1[i] = math.Sqrt(float64(i+1) / 2)
		}
	case Laguerre:
		for i := 0; i < N; i++ {
			d0[i] = 2*float64(i) + 1
		}
		for i := 0; i < N-1; i++ {
			d1[i] = float64(i + 1)
		}
	case Legendre:
		for i := 0; i < N-1; i++ {
			ip1 := float64(i + 1)
			d1[i] = ip1 / math.Sqrt(4*ip1*ip1-1)
		}
	}
	dok := sparse.NewDOK(N, N)
	for i := 0; i < N; i++ {
		dok.Set(i, i, d0[i])
	}
	for i := 0; i < N-1; i++ {
		dok.Set(i, i+1, d1[i])
		dok.Set(i+1, i, d1[i])
	}
	JJ = mat.NewSymDense(N, dok.ToDense().RawMatrix().Data)
	return
}

// jacobiEigen returns the ascending eigenvalues of the Jacobi matrix and, when
// weights is set, the Golub-Welsch weights mu0 * v_0^2 from the first
// component of each eigenvector.
func jacobiEigen(family Family, N int, weights bool) (x, w []float64, err error) {
	var (
		eig mat.EigenSym
		JJ  = jacobiMatrix(family, N)
	)
	if ok := eig.Factorize(JJ, weights); !ok {
		err = fmt.Errorf("gauss: %v Jacobi matrix eigen decomposition failed for order %d: %w",
			family, N, types.ErrNumericalFailure)
		return
	}
	x = eig.Values(nil)
	if !weights {
		return
	}
	var (
		VVr = mat.NewDense(N, N, nil)
		mu0 = moment0(family)
	)
	eig.VectorsTo(VVr)
	w = make([]float64, N)
	for i, v := range VVr.RawRowView(0) {
		w[i] = mu0 * v * v
	}
	return
}

// moment0 is the integral of the weight function over the canonical domain
func moment0(family Family) float64 {
	switch family {
	case Hermite:
		return math.SqrtPi
	case Laguerre:
		return 1
	}
	return 2
}
