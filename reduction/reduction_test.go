package reduction_test

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/phom/construct"
	"github.com/katalvlaran/phom/filtration"
	"github.com/katalvlaran/phom/reduction"
	"github.com/katalvlaran/phom/simplicial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, con construct.Constructor) *simplicial.Complex {
	t.Helper()
	c, err := construct.Build(nil, con)
	require.NoError(t, err)

	return c
}

func order(t *testing.T, c *simplicial.Complex, values []float64, sublevel bool) *filtration.Order {
	t.Helper()
	o, err := filtration.Build(c, values, filtration.LowerStar, sublevel)
	require.NoError(t, err)

	return o
}

// TestReduce_Star follows the elder rule on the star graph.
func TestReduce_Star(t *testing.T) {
	c := build(t, construct.Star(5))
	o := order(t, c, []float64{1, 0, 0, 0, 0}, true)
	p := reduction.Reduce(c, o, 1)

	// ranks: v1 v2 v3 v4 v0 e01 e02 e03 e04
	assert.Equal(t, []reduction.Pair{
		{Birth: 2, Death: 6},
		{Birth: 3, Death: 7},
		{Birth: 4, Death: 8},
		{Birth: 0, Death: 5},
	}, p.Pairs)
	assert.Equal(t, []int{1}, p.Infinite)

	d, ok := p.Death(0)
	assert.True(t, ok)
	assert.Equal(t, 5, d)
	_, ok = p.Death(1)
	assert.False(t, ok)
	assert.NoError(t, reduction.CheckAccounting(c, p))
}

// TestReduce_FilledTriangle pairs the last edge with the triangle.
func TestReduce_FilledTriangle(t *testing.T) {
	c := build(t, construct.Simplices([][]int{{0}, {1}, {2}, {0, 1}, {0, 2}, {1, 2}, {0, 1, 2}}))
	o := order(t, c, []float64{0, 1, 2}, true)
	p := reduction.Reduce(c, o, 1)

	// {1,2} enters last among the edges and closes the loop
	assert.Contains(t, p.Pairs, reduction.Pair{Birth: 5, Death: 6})
	a := p.Counts(c)
	assert.Equal(t, []int{3, 3}, a.Simplices)
	assert.Equal(t, []int{2, 1}, a.Pairs)
	assert.Equal(t, []int{1, 0}, a.Infinite)
	assert.Equal(t, 2, a.Killed(1))
	assert.NoError(t, reduction.CheckAccounting(c, p))
}

// TestReduce_CycleViolatesAcyclicity reports the essential loop.
func TestReduce_CycleViolatesAcyclicity(t *testing.T) {
	c := build(t, construct.Cycle(4))
	o := order(t, c, []float64{0, 1, 2, 3}, true)
	p := reduction.Reduce(c, o, 1)

	assert.Len(t, p.Infinite, 2, "one component and one loop")
	err := reduction.CheckAccounting(c, p)
	require.ErrorIs(t, err, reduction.ErrAcyclicity)

	var v *reduction.AcyclicityViolation
	require.True(t, errors.As(err, &v))
	assert.Equal(t, 1, v.Dim)
	assert.Equal(t, 1, v.Infinite)
	assert.Contains(t, v.Error(), "essential")
}

// TestReduce_MaxDimBounds checks that dimensions above maxDim+1 are ignored
// and dimensions beyond the complex stay empty, capped one above it.
func TestReduce_MaxDimBounds(t *testing.T) {
	c := build(t, construct.Freudenthal(3, 3))
	o := order(t, c, []float64{2, 1, 1, 1, 0.5, 1, 1, 1, 1}, false)

	p0 := reduction.Reduce(c, o, 0)
	for _, pr := range p0.Pairs {
		assert.Equal(t, 0, c.Dimension(pr.Birth))
	}
	assert.Len(t, p0.Infinite, 1)
	assert.NoError(t, reduction.CheckAccounting(c, p0))

	p3 := reduction.Reduce(c, o, 3)
	a := p3.Counts(c)
	assert.Equal(t, []int{9, 16, 8, 0}, a.Simplices)
	assert.Equal(t, []int{1, 0, 0, 0}, a.Infinite)
	assert.NoError(t, reduction.CheckAccounting(c, p3))

	huge := reduction.Reduce(c, o, math.MaxInt)
	assert.Equal(t, 3, huge.MaxDim)
	assert.Equal(t, p3.Pairs, huge.Pairs)
	assert.Equal(t, p3.Infinite, huge.Infinite)

	assert.Panics(t, func() { reduction.Reduce(c, o, -1) })
}

// TestReduce_UnionFindMatchesColumns compares both dimension-0 strategies
// on random fields over a triangulated grid.
func TestReduce_UnionFindMatchesColumns(t *testing.T) {
	c := build(t, construct.Freudenthal(6, 7))
	rng := rand.New(rand.NewPCG(7, 11))
	for trial := 0; trial < 20; trial++ {
		values := make([]float64, c.NumVertices())
		for i := range values {
			// coarse values force many ties
			values[i] = float64(rng.IntN(5))
		}
		sublevel := trial%2 == 0
		o := order(t, c, values, sublevel)

		fast := reduction.Reduce(c, o, 1)
		slow := reduction.Reduce(c, o, 1, reduction.WithColumnReductionOnly())

		assert.Equal(t, slow.Pairs, fast.Pairs, "trial %d", trial)
		assert.Equal(t, slow.Infinite, fast.Infinite, "trial %d", trial)
		assert.Equal(t, slow.Positive, fast.Positive, "trial %d", trial)
		assert.NoError(t, reduction.CheckAccounting(c, fast))
	}
}

// TestReduce_Deterministic repeats a reduction on identical input.
func TestReduce_Deterministic(t *testing.T) {
	c := build(t, construct.Freudenthal(5, 5))
	values := make([]float64, 25)
	for i := range values {
		values[i] = float64((i * 7) % 5)
	}
	o := order(t, c, values, true)

	first := reduction.Reduce(c, o, 2)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, reduction.Reduce(c, o, 2))
	}
}

// TestReduce_Tetrahedron pairs a triangle with the solid tetrahedron.
func TestReduce_Tetrahedron(t *testing.T) {
	dist := []float64{
		0, 1, 2, 3,
		1, 0, 4, 5,
		2, 4, 0, 6,
		3, 5, 6, 0,
	}
	c := build(t, construct.Flag(dist, 4, 3, 0))
	o, err := filtration.Build(c, dist, filtration.Rips, true)
	require.NoError(t, err)

	p := reduction.Reduce(c, o, 2)
	a := p.Counts(c)
	assert.Equal(t, []int{1, 0, 0}, a.Infinite)
	assert.Equal(t, 1, a.Pairs[2], "one 2-cycle born and killed by the tetrahedron")
	assert.NoError(t, reduction.CheckAccounting(c, p))
}
