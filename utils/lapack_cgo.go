//go:build cgo && netlib
// +build cgo,netlib

package utils

/*
#cgo CFLAGS: -march=native -mavx -mavx2
#cgo LDFLAGS: -lopenblas -llapacke -lgfortran -lm -lpthread
#include <cblas.h>
#include <lapacke.h>
*/
import "C"

import (
	"log/slog"

	"gonum.org/v1/gonum/blas/blas64"
	netblas "gonum.org/v1/netlib/blas/netlib"
)

// Built with -tags netlib, the eigen solves behind the Hermite and Laguerre
// root seeds run on OpenBLAS
func init() {
	blas64.Use(netblas.Implementation{})
	slog.Debug("using netlib to accelerate BLAS")
}
