package types

import "errors"

// Error taxonomy shared by the quadrature packages. Packages wrap these with
// context, callers match with errors.Is.
var (
	// ErrInvalidArgument marks malformed input: order < 1, a >= b, a
	// non-positive temperature or mass. No work is done before it is returned.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNumericalFailure marks an iteration that did not converge within its
	// internal bound, e.g. Newton refinement of polynomial roots.
	ErrNumericalFailure = errors.New("numerical failure")

	// ErrToleranceNotAchieved is the soft failure of adaptive integration. It is
	// never returned as the error of an integration call; results carry it
	// through their Err method instead.
	ErrToleranceNotAchieved = errors.New("tolerance not achieved")
)

// Integrand is a pure function of one real variable.
type Integrand func(x float64) float64
