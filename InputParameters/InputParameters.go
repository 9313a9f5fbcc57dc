package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/goquad/thermal"
)

// Parameters obtained from the YAML input file of a density run. ghodss/yaml
// converts to JSON before decoding, so the keys follow the json tags.
type DensityInput struct {
	Title         string    `json:"Title"`
	Temperatures  []float64 `json:"Temperatures"` // One density evaluation per temperature
	Mu            float64   `json:"Mu"`
	Mass          float64   `json:"Mass"`
	Degeneracy    float64   `json:"Degeneracy"`
	Statistics    string    `json:"Statistics"` // bose, boltzmann, fermi or -1, 0, 1
	Order         int       `json:"Order"`      // Gauss-Laguerre order
	Tolerance     float64   `json:"Tolerance"`
	MaxIterations int       `json:"MaxIterations"`
	Workers       int       `json:"Workers"`
	Rectangles    int       `json:"Rectangles"` // Fixed midpoint count, zero to skip
}

// NewDensityInput returns the pion gas defaults.
func NewDensityInput() *DensityInput {
	return &DensityInput{
		Title:         "Pion gas",
		Temperatures:  []float64{150},
		Mu:            0,
		Mass:          138,
		Degeneracy:    1,
		Statistics:    "boltzmann",
		Order:         32,
		Tolerance:     1.e-6,
		MaxIterations: 20,
		Workers:       1,
	}
}

// Parse overlays the YAML document on the receiver, keys absent from data
// keep their current values.
func (ip *DensityInput) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// Params expands the input into one validated parameter set per temperature.
func (ip *DensityInput) Params() (pp []thermal.Params, err error) {
	var eta thermal.Statistics
	if eta, err = thermal.ParseStatistics(ip.Statistics); err != nil {
		return
	}
	if len(ip.Temperatures) == 0 {
		err = fmt.Errorf("input %q: no temperatures", ip.Title)
		return
	}
	pp = make([]thermal.Params, len(ip.Temperatures))
	for i, T := range ip.Temperatures {
		pp[i] = thermal.Params{T: T, Mu: ip.Mu, M: ip.Mass, D: ip.Degeneracy, Eta: eta}
		if err = pp[i].Validate(); err != nil {
			pp = nil
			return
		}
	}
	return
}

func (ip *DensityInput) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%v\t\t= Temperatures\n", ip.Temperatures)
	fmt.Printf("%8.5f\t\t= Mu\n", ip.Mu)
	fmt.Printf("%8.5f\t\t= Mass\n", ip.Mass)
	fmt.Printf("%8.5f\t\t= Degeneracy\n", ip.Degeneracy)
	fmt.Printf("[%s]\t\t= Statistics\n", ip.Statistics)
	fmt.Printf("[%d]\t\t\t= Gauss-Laguerre Order\n", ip.Order)
	fmt.Printf("%8.2e\t\t= Tolerance\n", ip.Tolerance)
	fmt.Printf("[%d]\t\t\t= Max Iterations\n", ip.MaxIterations)
	if ip.Rectangles > 0 {
		fmt.Printf("[%d]\t\t\t= Rectangles\n", ip.Rectangles)
	}
}
