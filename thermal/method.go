package thermal

import (
	"fmt"

	"github.com/notargets/goquad/adaptive"
	"github.com/notargets/goquad/types"
)

// Method selects how Model.Density evaluates the integral.
type Method interface {
	fmt.Stringer
	density(m *Model, params Params) (float64, error)
}

// Fixed is a Gauss-Laguerre rule of the given order.
type Fixed int

// Adaptive is the compactified adaptive midpoint rule at the given tolerance.
type Adaptive float64

// Midpoint is the compactified midpoint rule with a fixed subinterval count.
type Midpoint int

func (f Fixed) String() string    { return fmt.Sprintf("Gauss-Laguerre(%d)", int(f)) }
func (a Adaptive) String() string { return fmt.Sprintf("Adaptive(%g)", float64(a)) }
func (r Midpoint) String() string { return fmt.Sprintf("Midpoint(%d)", int(r)) }

func (f Fixed) density(m *Model, params Params) (float64, error) {
	return m.DensityFixedQuadrature(params, int(f))
}

func (a Adaptive) density(m *Model, params Params) (n float64, err error) {
	var res adaptive.Result
	if n, res, err = m.DensityAdaptive(params, float64(a)); err != nil {
		return
	}
	if !res.Converged {
		m.logger.Warn("thermal: returning unconverged density", "method", a.String(),
			"params", params.String(), "density", n, "error", res.ErrorEstimate)
	}
	return
}

func (r Midpoint) density(m *Model, params Params) (float64, error) {
	return m.DensityMidpoint(params, int(r))
}

// Density evaluates n/T^3 with the chosen method. An unconverged adaptive
// evaluation returns its best estimate with a logged warning.
func (m *Model) Density(params Params, method Method) (float64, error) {
	if method == nil {
		return 0, fmt.Errorf("thermal: nil method: %w", types.ErrInvalidArgument)
	}
	return method.density(m, params)
}
