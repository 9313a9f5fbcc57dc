package thermal

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/notargets/goquad/adaptive"
	"github.com/notargets/goquad/gauss"
	"github.com/notargets/goquad/special"
	"github.com/notargets/goquad/types"
	"github.com/notargets/goquad/utils"
)

// Model evaluates the number density of a relativistic ideal gas. It holds no
// physical state; parameters travel with every call, so one Model can serve
// concurrent evaluations at different parameter points.
type Model struct {
	cache         *gauss.Cache
	besselK       special.BesselKFunc
	logger        *slog.Logger
	maxIterations int
	workers       int
}

type Option func(*Model)

func WithRuleCache(c *gauss.Cache) Option { return func(m *Model) { m.cache = c } }

// WithBesselK replaces the K_n evaluator used by the analytic density. The
// default special.BesselK is good to about 2e-7 relative; pass
// special.BesselKQuadrature (about 1e-9, much slower) for a tighter reference.
func WithBesselK(k special.BesselKFunc) Option { return func(m *Model) { m.besselK = k } }

func WithLogger(l *slog.Logger) Option { return func(m *Model) { m.logger = l } }

// WithMaxIterations bounds the adaptive density, 20 by default.
func WithMaxIterations(k int) Option { return func(m *Model) { m.maxIterations = k } }

func WithWorkers(w int) Option { return func(m *Model) { m.workers = w } }

// NewModel uses gauss.DefaultCache, special.BesselK (relative accuracy about
// 2e-7, enough for a 1e-3 cross-check), slog.Default, 20 adaptive iterations
// and one worker unless overridden.
func NewModel(opts ...Option) (m *Model) {
	m = &Model{
		cache:         gauss.DefaultCache,
		besselK:       special.BesselK,
		logger:        slog.Default(),
		maxIterations: 20,
		workers:       1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return
}

// DensityFixedQuadrature integrates the distribution with the Gauss-Laguerre
// rule of the given order.
func (m *Model) DensityFixedQuadrature(params Params, order int) (n float64, err error) {
	if err = params.Validate(); err != nil {
		return
	}
	var r gauss.Rule
	if r, err = m.cache.Rule(gauss.Laguerre, order); err != nil {
		err = fmt.Errorf("thermal: Laguerre rule of order %d: %w", order, err)
		return
	}
	n = gauss.Evaluate(LaguerreIntegrand(params), r)
	return
}

// DensityAdaptive integrates the compactified distribution over [0,1) with
// the adaptive midpoint rule. A missed tolerance is not an error; it shows in
// res.Converged and is logged.
func (m *Model) DensityAdaptive(params Params, tol float64) (n float64, res adaptive.Result, err error) {
	if err = params.Validate(); err != nil {
		return
	}
	res, err = adaptive.IntegrateSemiInfinite(Integrand(params), 0,
		adaptive.WithTolerance(tol),
		adaptive.WithMaxIterations(m.maxIterations),
		adaptive.WithWorkers(m.workers),
		adaptive.WithLogger(m.logger.With("params", params.String())))
	if err != nil {
		err = fmt.Errorf("thermal: adaptive density: %w", err)
		return
	}
	n = res.Value
	return
}

// DensityMidpoint applies the compactified midpoint rule with a fixed number
// of subintervals and no error control.
func (m *Model) DensityMidpoint(params Params, nRect int) (n float64, err error) {
	if err = params.Validate(); err != nil {
		return
	}
	if nRect < 1 {
		err = fmt.Errorf("thermal: %d subintervals: %w", nRect, types.ErrInvalidArgument)
		return
	}
	n = adaptive.MidpointParallel(adaptive.Compactify(Integrand(params), 0), 0, 1, nRect, m.workers)
	return
}

// DensityAnalyticBoltzmann is the closed form of the Boltzmann limit,
//
//	n/T^3 = D M^2 / (2 pi^2 T^2) K_2(M/T) exp(Mu/T)
//
// for checking the numerical densities at Eta = 0.
func (m *Model) DensityAnalyticBoltzmann(T, Mu, M, D float64) (n float64, err error) {
	if err = (Params{T: T, Mu: Mu, M: M, D: D, Eta: Boltzmann}).Validate(); err != nil {
		return
	}
	mT := M / T
	n = D * mT * mT / (2 * math.Pi * math.Pi) * m.besselK(2, mT) * math.Exp(Mu/T)
	if utils.IsNan(n) {
		err = fmt.Errorf("thermal: K_2(%v) is not a number: %w", mT, types.ErrNumericalFailure)
	}
	return
}
