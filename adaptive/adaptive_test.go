package adaptive

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/goquad/types"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestMidpoint(t *testing.T) {
	// Exact for linear integrands
	assert.InDelta(t, 4., Midpoint(func(x float64) float64 { return 2 * x }, 0, 2, 1), 1.e-15)
	assert.InDelta(t, 0.25, Midpoint(func(x float64) float64 { return x * x }, 0, 1, 1), 1.e-15)
	// I(n) = 1/3 - 1/(12 n^2) for x^2 on [0,1]
	for _, n := range []int{2, 3, 10, 100} {
		want := 1./3 - 1/(12*float64(n*n))
		assert.InDeltaf(t, want, Midpoint(func(x float64) float64 { return x * x }, 0, 1, n), 1.e-14, "n=%d", n)
	}
	assert.True(t, math.IsNaN(Midpoint(math.Exp, 0, 1, 0)))
}

func TestMidpointParallel(t *testing.T) {
	for _, n := range []int{1, 2, 7, 1000, 4097} {
		serial := Midpoint(math.Exp, -1, 2, n)
		for _, workers := range []int{0, 1, 2, 3, 8, 64} {
			par := MidpointParallel(math.Exp, -1, 2, n, workers)
			assert.InDeltaf(t, 0., (par-serial)/serial, 1.e-13, "n=%d workers=%d", n, workers)
			// Fixed block order gives a reproducible sum
			assert.Equal(t, par, MidpointParallel(math.Exp, -1, 2, n, workers))
		}
	}
}

func TestIntegrateQuadratic(t *testing.T) {
	res, err := Integrate(func(x float64) float64 { return x * x }, 0, 1,
		WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.NoError(t, res.Err())
	assert.InDelta(t, 1./3, res.Value, 1.e-8)
	assert.Less(t, res.Iterations, 16)
	// Richardson estimate 1/(48 n^2) first drops below 1e-8 at n=2048
	assert.Equal(t, 13, res.Iterations)
	assert.Equal(t, 4096, res.Subintervals)
	assert.Less(t, math.Abs(res.ErrorEstimate), 1.e-8)
	require.Len(t, res.History, res.Iterations)
	assert.True(t, math.IsInf(res.History[0].ErrorEstimate, 1))
	for i, s := range res.History {
		assert.Equal(t, i+1, s.Iteration)
		assert.Equal(t, 1<<i, s.Subintervals)
	}
	last := res.History[len(res.History)-1]
	assert.Equal(t, res.Value, last.Estimate)
}

func TestIntegrateObservedOrder(t *testing.T) {
	// The midpoint error falls by four per doubling
	res, err := Integrate(math.Exp, 0, 1, WithTolerance(1.e-12), WithMaxIterations(8),
		WithLogger(quietLogger()))
	require.NoError(t, err)
	exact := math.E - 1
	for i := 3; i < len(res.History); i++ {
		e1 := math.Abs(res.History[i-1].Estimate - exact)
		e2 := math.Abs(res.History[i].Estimate - exact)
		assert.InDeltaf(t, 2., math.Log2(e1/e2), 0.05, "step %d", i)
	}
}

func TestIntegrateNotConverged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	for _, f := range []types.Integrand{
		func(x float64) float64 { return 1 / math.Sqrt(x) },
		func(x float64) float64 { return math.Sin(1000 * x) },
	} {
		buf.Reset()
		res, err := Integrate(f, 0, 1, WithMaxIterations(3), WithLogger(logger))
		require.NoError(t, err)
		assert.False(t, res.Converged)
		assert.Equal(t, 3, res.Iterations)
		assert.Equal(t, 4, res.Subintervals)
		assert.Equal(t, Midpoint(f, 0, 1, 4), res.Value)
		assert.ErrorIs(t, res.Err(), types.ErrToleranceNotAchieved)
		assert.True(t, strings.Contains(buf.String(), "tolerance not achieved"))
	}
}

func TestIntegrateWorkersAndInitial(t *testing.T) {
	serial, err := Integrate(math.Cos, 0, 3, WithInitialSubintervals(3), WithLogger(quietLogger()))
	require.NoError(t, err)
	par, err := Integrate(math.Cos, 0, 3, WithInitialSubintervals(3), WithWorkers(4),
		WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.Equal(t, serial.Iterations, par.Iterations)
	assert.Equal(t, 3, serial.History[0].Subintervals)
	assert.InDelta(t, math.Sin(3), serial.Value, 2.e-8)
	assert.InDelta(t, serial.Value, par.Value, 1.e-13)
}

func TestIntegrateDebugTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	res, err := Integrate(func(x float64) float64 { return x }, 0, 1, WithLogger(logger))
	require.NoError(t, err)
	// Linear integrands are exact, the first doubling already converges
	assert.True(t, res.Converged)
	assert.Equal(t, 2, res.Iterations)
	assert.Equal(t, 2, strings.Count(buf.String(), "msg=adaptive"))
}

func TestIntegrateInvalidArguments(t *testing.T) {
	var calls int
	f := func(x float64) float64 { calls++; return x }
	tests := []struct {
		name string
		a, b float64
		opts []Option
	}{
		{"a == b", 1, 1, nil},
		{"a > b", 2, 1, nil},
		{"NaN bound", math.NaN(), 1, nil},
		{"infinite bound", 0, math.Inf(1), nil},
		{"zero tolerance", 0, 1, []Option{WithTolerance(0)}},
		{"negative tolerance", 0, 1, []Option{WithTolerance(-1)}},
		{"NaN tolerance", 0, 1, []Option{WithTolerance(math.NaN())}},
		{"no subintervals", 0, 1, []Option{WithInitialSubintervals(0)}},
		{"single iteration", 0, 1, []Option{WithMaxIterations(1)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Integrate(f, tc.a, tc.b, tc.opts...)
			assert.ErrorIs(t, err, types.ErrInvalidArgument)
		})
	}
	assert.Equal(t, 0, calls)
}
