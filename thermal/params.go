package thermal

import (
	"fmt"
	"strings"

	"github.com/notargets/goquad/types"
	"github.com/notargets/goquad/utils"
)

// Statistics selects the occupation number 1/(exp(E-mu) + Eta).
type Statistics int8

const (
	Bose      Statistics = -1
	Boltzmann Statistics = 0
	Fermi     Statistics = 1
)

var StatisticsNameMap = map[string]Statistics{
	"bose":      Bose,
	"boltzmann": Boltzmann,
	"fermi":     Fermi,
}

// ParseStatistics accepts a name from StatisticsNameMap or the numeric eta.
func ParseStatistics(label string) (s Statistics, err error) {
	label = strings.ToLower(strings.TrimSpace(label))
	if s, ok := StatisticsNameMap[label]; ok {
		return s, nil
	}
	switch label {
	case "-1":
		return Bose, nil
	case "0":
		return Boltzmann, nil
	case "1", "+1":
		return Fermi, nil
	}
	err = fmt.Errorf("thermal: unknown statistics %q: %w", label, types.ErrInvalidArgument)
	return
}

func (s Statistics) String() string {
	switch s {
	case Bose:
		return "Bose"
	case Boltzmann:
		return "Boltzmann"
	case Fermi:
		return "Fermi"
	}
	return fmt.Sprintf("Statistics(%d)", int8(s))
}

// Params are the physical parameters of one density evaluation. T, Mu and M
// share one energy unit; densities come back in units of T^3.
type Params struct {
	T   float64 // Temperature
	Mu  float64 // Chemical potential
	M   float64 // Particle mass
	D   float64 // Degeneracy
	Eta Statistics
}

func (p Params) Validate() error {
	if !utils.IsFinite([]float64{p.T, p.Mu, p.M, p.D}) {
		return fmt.Errorf("thermal: %v: non-finite parameter: %w", p, types.ErrInvalidArgument)
	}
	switch {
	case p.T <= 0:
		return fmt.Errorf("thermal: temperature %v <= 0: %w", p.T, types.ErrInvalidArgument)
	case p.M <= 0:
		return fmt.Errorf("thermal: mass %v <= 0: %w", p.M, types.ErrInvalidArgument)
	case p.D <= 0:
		return fmt.Errorf("thermal: degeneracy %v <= 0: %w", p.D, types.ErrInvalidArgument)
	case p.Eta < Bose || p.Eta > Fermi:
		return fmt.Errorf("thermal: %v: %w", p.Eta, types.ErrInvalidArgument)
	case p.Eta == Bose && p.Mu >= p.M:
		// Bose condensation, the occupation diverges at p = 0
		return fmt.Errorf("thermal: Bose chemical potential %v >= mass %v: %w", p.Mu, p.M, types.ErrInvalidArgument)
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("{T=%g Mu=%g M=%g D=%g %v}", p.T, p.Mu, p.M, p.D, p.Eta)
}
