package barcode_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/phom/barcode"
	"github.com/katalvlaran/phom/construct"
	"github.com/katalvlaran/phom/filtration"
	"github.com/katalvlaran/phom/reduction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBar covers the interval helpers.
func TestBar(t *testing.T) {
	assert.Equal(t, 2.0, barcode.Bar{Birth: 1, Death: 3}.Length())
	assert.Equal(t, 1.5, barcode.Bar{Birth: 2, Death: 0.5}.Length(), "superlevel bars run downward")
	assert.True(t, barcode.Bar{Birth: 0, Death: math.Inf(1)}.IsInfinite())
	assert.True(t, barcode.Bar{Birth: 0, Death: math.Inf(-1)}.IsInfinite())
	assert.True(t, barcode.Bar{Birth: 1, Death: 1}.IsZeroLength())
	assert.False(t, barcode.Bar{Birth: 1, Death: 2}.IsZeroLength())
}

// TestExtract_Star checks values, order by birth rank and the index.
func TestExtract_Star(t *testing.T) {
	c, err := construct.Build(nil, construct.Star(5))
	require.NoError(t, err)
	o, err := filtration.Build(c, []float64{1, 0, 0, 0, 0}, filtration.LowerStar, true)
	require.NoError(t, err)

	bc, idx := barcode.Extract(c, o, reduction.Reduce(c, o, 1))

	assert.True(t, bc.Sublevel)
	assert.Equal(t, []barcode.Bar{
		{Birth: 0, Death: math.Inf(1)},
		{Birth: 0, Death: 1},
		{Birth: 0, Death: 1},
		{Birth: 0, Death: 1},
		{Birth: 1, Death: 1},
	}, bc.Dim(0))
	assert.Empty(t, bc.Dim(1))
	assert.NotNil(t, bc.Dim(1))
	assert.Equal(t, 1, bc.MaxDim())
	assert.Equal(t, 5, bc.Len())
	assert.Equal(t, []int{5, 0}, bc.Shape())

	assert.Equal(t, barcode.Endpoint{BirthSimplex: 1, DeathSimplex: -1}, idx[0][0])
	assert.Equal(t, barcode.Endpoint{BirthSimplex: 0, DeathSimplex: 5}, idx[0][4])
	assert.Equal(t, bc.Shape(), idx.Shape())
}

// TestExtract_SuperlevelInfinity uses -Inf for essential classes.
func TestExtract_SuperlevelInfinity(t *testing.T) {
	c, err := construct.Build(nil, construct.Path(3))
	require.NoError(t, err)
	o, err := filtration.Build(c, []float64{3, 1, 2}, filtration.LowerStar, false)
	require.NoError(t, err)

	bc, _ := barcode.Extract(c, o, reduction.Reduce(c, o, 2))

	assert.False(t, bc.Sublevel)
	assert.Equal(t, []barcode.Bar{
		{Birth: 3, Death: math.Inf(-1)},
		{Birth: 2, Death: 1},
		{Birth: 1, Death: 1},
	}, bc.Dim(0))
	assert.Equal(t, []int{3, 0, 0}, bc.Shape(), "dimensions beyond the complex stay empty")
	assert.Empty(t, bc.Dim(7))
	assert.Empty(t, bc.Dim(-1))
}

// TestGradientShape zero-initializes and accumulates.
func TestGradientShape(t *testing.T) {
	bc := barcode.Barcode{Sublevel: true, Dims: [][]barcode.Bar{{{Birth: 0, Death: 1}, {Birth: 0, Death: 2}}, {}}}
	g := barcode.NewGradient(bc)
	assert.Equal(t, bc.Shape(), g.Shape())

	g[0][1].Death = 1
	h := barcode.NewGradient(bc)
	h[0][1].Death = 2
	h[0][0].Birth = -1
	g.Add(h)
	assert.Equal(t, barcode.EndpointGradient{Birth: -1}, g[0][0])
	assert.Equal(t, barcode.EndpointGradient{Death: 3}, g[0][1])
}
