package main

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSVObservedOrder(t *testing.T) {
	// Richardson estimates of the midpoint rule for x^2 on [0,1] are 1/(48 n^2)
	var b strings.Builder
	b.WriteString("title,iteration,subintervals,estimate,error\n")
	b.WriteString("x2,1,1,0.25,+Inf\n")
	for it, n := 2, 2; it <= 6; it, n = it+1, n*2 {
		coarse := float64(n / 2)
		fmt.Fprintf(&b, "x2,%d,%d,%.17g,%.17g\n", it, n, 1./3-1/(12*float64(n*n)), 1/(48*coarse*coarse))
	}
	b.WriteString("other,1,4,1.5,+Inf\n")
	studies, err := readCSV(strings.NewReader(b.String()))
	require.NoError(t, err)
	require.Len(t, studies, 2)
	cs := studies["x2"]
	require.Len(t, cs.subintervals, 6)
	order := cs.ObservedOrder()
	assert.True(t, math.IsNaN(order[0]))
	assert.True(t, math.IsNaN(order[1]))
	for i := 2; i < len(order); i++ {
		assert.InDelta(t, 2., order[i], 1.e-12)
	}
	assert.Len(t, studies["other"].ObservedOrder(), 1)
}

func TestReadCSVErrors(t *testing.T) {
	_, err := readCSV(strings.NewReader("h\nx,1,2\n"))
	assert.Error(t, err)
	_, err = readCSV(strings.NewReader("h\nx,one,2,3,4\n"))
	assert.Error(t, err)
}
