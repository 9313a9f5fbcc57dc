package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/goquad/thermal"
	"github.com/notargets/goquad/types"
)

func TestDensityInputParse(t *testing.T) {
	fileInput := []byte(`
Title: Nucleon gas
Temperatures: [100, 150.5]
Mu: 200
Mass: 938
Degeneracy: 4
Statistics: fermi # or bose, boltzmann
Order: 48
Tolerance: 1.e-9
`)
	input := NewDensityInput()
	require.NoError(t, input.Parse(fileInput))
	assert.Equal(t, "Nucleon gas", input.Title)
	assert.Equal(t, []float64{100, 150.5}, input.Temperatures)
	assert.Equal(t, 48, input.Order)
	assert.Equal(t, 1.e-9, input.Tolerance)
	// Absent keys keep their defaults
	assert.Equal(t, 20, input.MaxIterations)
	assert.Equal(t, 1, input.Workers)
	input.Print()

	pp, err := input.Params()
	require.NoError(t, err)
	require.Len(t, pp, 2)
	assert.Equal(t, thermal.Params{T: 150.5, Mu: 200, M: 938, D: 4, Eta: thermal.Fermi}, pp[1])
}

func TestDensityInputErrors(t *testing.T) {
	{
		input := NewDensityInput()
		require.NoError(t, input.Parse([]byte("Statistics: anyon\n")))
		_, err := input.Params()
		assert.ErrorIs(t, err, types.ErrInvalidArgument)
	}
	{
		input := NewDensityInput()
		require.NoError(t, input.Parse([]byte("Statistics: bose\nMu: 140\n")))
		_, err := input.Params()
		assert.ErrorIs(t, err, types.ErrInvalidArgument)
	}
	{
		input := NewDensityInput()
		require.NoError(t, input.Parse([]byte("Temperatures: []\n")))
		_, err := input.Params()
		assert.Error(t, err)
	}
	assert.Error(t, NewDensityInput().Parse([]byte("Order: [1, 2\n")))
}
