package gauss

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/goquad/types"
)

// Family selects the orthogonal polynomial whose roots are the quadrature
// nodes, and with it the canonical domain and weight function of the rule.
type Family uint8

const (
	Legendre Family = iota // [-1,1], K(x) = 1
	Hermite                // (-inf,inf), K(x) = exp(-x^2)
	Laguerre               // [0,inf), K(x) = exp(-x)
)

var FamilyNameMap = map[string]Family{
	"legendre": Legendre,
	"gauss":    Legendre,
	"hermite":  Hermite,
	"laguerre": Laguerre,
}

func (f Family) String() string {
	switch f {
	case Legendre:
		return "Legendre"
	case Hermite:
		return "Hermite"
	case Laguerre:
		return "Laguerre"
	}
	return fmt.Sprintf("Family(%d)", uint8(f))
}

// Domain returns the canonical integration interval of the family.
func (f Family) Domain() (min, max float64) {
	switch f {
	case Hermite:
		return math.Inf(-1), math.Inf(1)
	case Laguerre:
		return 0, math.Inf(1)
	}
	return -1, 1
}

func ParseFamily(name string) (f Family, err error) {
	var ok bool
	if f, ok = FamilyNameMap[strings.ToLower(strings.TrimSpace(name))]; !ok {
		err = fmt.Errorf("gauss: unknown polynomial family %q: %w", name, types.ErrInvalidArgument)
	}
	return
}
