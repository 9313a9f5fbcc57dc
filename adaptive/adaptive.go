package adaptive

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/notargets/goquad/types"
	"github.com/notargets/goquad/utils"
)

// Step is one estimate of an adaptive integration. ErrorEstimate is +Inf for
// the first, coarse estimate.
type Step struct {
	Iteration     int
	Subintervals  int
	Estimate      float64
	ErrorEstimate float64
}

type Result struct {
	Value         float64
	Converged     bool
	Iterations    int
	Subintervals  int
	ErrorEstimate float64
	Tolerance     float64
	History       []Step
}

// Err returns nil for a converged result, otherwise an error wrapping
// types.ErrToleranceNotAchieved. Value still holds the last estimate.
func (r Result) Err() error {
	if r.Converged {
		return nil
	}
	return fmt.Errorf("adaptive: |error estimate| %.3g not below %.3g after %d iterations (%d subintervals): %w",
		math.Abs(r.ErrorEstimate), r.Tolerance, r.Iterations, r.Subintervals, types.ErrToleranceNotAchieved)
}

type config struct {
	initial       int
	tolerance     float64
	maxIterations int
	workers       int
	logger        *slog.Logger
}

type Option func(*config)

func WithInitialSubintervals(n int) Option { return func(c *config) { c.initial = n } }

func WithTolerance(tol float64) Option { return func(c *config) { c.tolerance = tol } }

// WithMaxIterations bounds the number of estimates, counting the first coarse
// estimate, so at most k-1 doublings are performed.
func WithMaxIterations(k int) Option { return func(c *config) { c.maxIterations = k } }

// WithWorkers evaluates each midpoint sum with MidpointParallel.
func WithWorkers(w int) Option { return func(c *config) { c.workers = w } }

// WithLogger sets the logger receiving the per-iteration debug trace and the
// warning on a missed tolerance.
func WithLogger(l *slog.Logger) Option { return func(c *config) { c.logger = l } }

func newConfig(opts []Option) (c config) {
	c = config{
		initial:       1,
		tolerance:     1.e-8,
		maxIterations: 16,
		workers:       1,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return
}

func (c config) validate(a, b float64) error {
	switch {
	case !utils.IsFinite([]float64{a, b}):
		return fmt.Errorf("adaptive: bounds [%v,%v] must be finite: %w", a, b, types.ErrInvalidArgument)
	case a >= b:
		return fmt.Errorf("adaptive: lower bound %v >= upper bound %v: %w", a, b, types.ErrInvalidArgument)
	case !(c.tolerance > 0):
		return fmt.Errorf("adaptive: tolerance %v <= 0: %w", c.tolerance, types.ErrInvalidArgument)
	case c.initial < 1:
		return fmt.Errorf("adaptive: %d initial subintervals: %w", c.initial, types.ErrInvalidArgument)
	case c.maxIterations < 2:
		return fmt.Errorf("adaptive: max iterations %d < 2: %w", c.maxIterations, types.ErrInvalidArgument)
	}
	return nil
}

// Integrate approximates the integral of f over [a,b] with the midpoint rule,
// doubling the number of subintervals until the Richardson estimate
// (I(2n)-I(n))/3 of the error in I(2n) falls below the tolerance. A missed
// tolerance is not an error: the last estimate is returned with
// Converged=false and Result.Err reports it.
func Integrate(f types.Integrand, a, b float64, opts ...Option) (res Result, err error) {
	c := newConfig(opts)
	if err = c.validate(a, b); err != nil {
		return
	}
	var (
		n    = c.initial
		iPrv = MidpointParallel(f, a, b, n, c.workers)
	)
	res = Result{
		Value:         iPrv,
		Iterations:    1,
		Subintervals:  n,
		ErrorEstimate: math.Inf(1),
		Tolerance:     c.tolerance,
		History:       make([]Step, 0, c.maxIterations),
	}
	res.History = append(res.History, Step{1, n, iPrv, res.ErrorEstimate})
	c.logger.Debug("adaptive", "iteration", 1, "n", n, "estimate", iPrv)
	for it := 2; it <= c.maxIterations; it++ {
		n *= 2
		iNew := MidpointParallel(f, a, b, n, c.workers)
		e := (iNew - iPrv) / 3
		res.Value, res.Iterations, res.Subintervals, res.ErrorEstimate = iNew, it, n, e
		res.History = append(res.History, Step{it, n, iNew, e})
		c.logger.Debug("adaptive", "iteration", it, "n", n, "estimate", iNew, "error", e)
		if math.Abs(e) < c.tolerance {
			res.Converged = true
			return
		}
		iPrv = iNew
	}
	c.logger.Warn("adaptive: tolerance not achieved",
		"iterations", res.Iterations, "n", res.Subintervals, "estimate", res.Value,
		"error", res.ErrorEstimate, "tolerance", c.tolerance)
	return
}
