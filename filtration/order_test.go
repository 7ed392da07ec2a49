package filtration_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/phom/filtration"
	"github.com/katalvlaran/phom/simplicial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// closedTriangle appends the 2-simplex {0,1,2} with all faces, edges first
// in lexicographic order: {0,1}=3 {0,2}=4 {1,2}=5 {0,1,2}=6.
func closedTriangle() *simplicial.Complex {
	c := simplicial.New()
	for v := 0; v < 3; v++ {
		c.Append(v)
	}
	c.Append(0, 1)
	c.Append(0, 2)
	c.Append(1, 2)
	c.Append(0, 1, 2)

	return c
}

// TestBuild_LowerStarSublevel checks max extension, argmax selectors and the order.
func TestBuild_LowerStarSublevel(t *testing.T) {
	c := closedTriangle()
	o, err := filtration.Build(c, []float64{2, 0, 1}, filtration.LowerStar, true)
	require.NoError(t, err)

	assert.Equal(t, []float64{2, 0, 1, 2, 2, 1, 2}, o.Values)
	assert.Equal(t, 0, o.Selection[3].Index, "edge {0,1} driven by vertex 0")
	assert.Equal(t, 2, o.Selection[5].Index, "edge {1,2} driven by vertex 2")
	assert.Equal(t, 1.0, o.Selection[5].Weight)
	// value 0: v1; value 1: v2, e12; value 2: v0, e01, e02, t012
	assert.Equal(t, []int{1, 2, 5, 0, 3, 4, 6}, o.Perm)
	for r, s := range o.Perm {
		assert.Equal(t, r, o.Rank[s])
	}
	assert.Equal(t, 3, o.InputLen)
	assert.NoError(t, filtration.CheckMonotone(c, o))
}

// TestBuild_LowerStarTieFirstWins verifies the first vertex wins value ties.
func TestBuild_LowerStarTieFirstWins(t *testing.T) {
	c := closedTriangle()
	o, err := filtration.Build(c, []float64{1, 1, 1}, filtration.LowerStar, true)
	require.NoError(t, err)

	assert.Equal(t, 0, o.Selection[6].Index)
	assert.Equal(t, 1, o.Selection[5].Index)
	// all values tie: order is (dimension, index)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, o.Perm)
}

// TestBuild_LowerStarSuperlevel checks min extension and descending order.
func TestBuild_LowerStarSuperlevel(t *testing.T) {
	c := closedTriangle()
	o, err := filtration.Build(c, []float64{2, 0, 1}, filtration.LowerStar, false)
	require.NoError(t, err)

	assert.Equal(t, []float64{2, 0, 1, 0, 1, 0, 0}, o.Values)
	assert.Equal(t, 1, o.Selection[6].Index, "argmin vertex")
	assert.Equal(t, 0, o.Perm[0], "largest value first")
	assert.NoError(t, filtration.CheckMonotone(c, o))
}

// TestBuild_NaNPropagates ensures NaN is selected and ordered without error.
func TestBuild_NaNPropagates(t *testing.T) {
	c := closedTriangle()
	o, err := filtration.Build(c, []float64{0, math.NaN(), 1}, filtration.LowerStar, true)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(o.Values[3]), "edge {0,1} inherits NaN")
	assert.True(t, math.IsNaN(o.Values[6]))
	assert.Equal(t, 1, o.Selection[6].Index)
	assert.Len(t, o.Perm, 7)
}

// TestBuild_Rips reads the upper triangle and inherits the longest edge.
func TestBuild_Rips(t *testing.T) {
	c := closedTriangle()
	dist := []float64{
		0, 3, 4,
		3, 0, 5,
		4, 5, 0,
	}
	o, err := filtration.Build(c, dist, filtration.Rips, true)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0, 0, 3, 4, 5, 5}, o.Values)
	assert.Equal(t, -1, o.Selection[0].Index, "vertices are constant")
	assert.Equal(t, 1*3+2, o.Selection[6].Index, "triangle driven by entry (1,2)")
	assert.Equal(t, 1.0, o.Selection[6].Weight)
}

// TestBuild_AlphaHalvesEdges verifies the circumradius weight.
func TestBuild_AlphaHalvesEdges(t *testing.T) {
	c := closedTriangle()
	dist := []float64{0, 2, 4, 2, 0, 6, 4, 6, 0}
	o, err := filtration.Build(c, dist, filtration.Alpha, true)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0, 0, 1, 2, 3, 3}, o.Values)
	assert.Equal(t, 0.5, o.Selection[6].Weight)
}

// TestBuild_Errors covers input-shape and variant validation.
func TestBuild_Errors(t *testing.T) {
	c := closedTriangle()
	cases := []struct {
		name     string
		input    []float64
		kind     filtration.Kind
		sublevel bool
		err      error
	}{
		{"ShortLowerStar", []float64{1, 2}, filtration.LowerStar, true, filtration.ErrInputShape},
		{"NotSquare", make([]float64, 8), filtration.Rips, true, filtration.ErrInputShape},
		{"TooSmallMatrix", make([]float64, 4), filtration.Rips, true, filtration.ErrInputShape},
		{"SuperRips", make([]float64, 9), filtration.Rips, false, filtration.ErrSuperlevelUnsupported},
		{"SuperAlpha", make([]float64, 9), filtration.Alpha, false, filtration.ErrSuperlevelUnsupported},
		{"UnknownKind", make([]float64, 9), filtration.Kind(42), true, filtration.ErrUnknownKind},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := filtration.Build(c, tc.input, tc.kind, tc.sublevel)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestParseKind round-trips canonical names.
func TestParseKind(t *testing.T) {
	for _, k := range []filtration.Kind{filtration.LowerStar, filtration.Rips, filtration.Alpha} {
		got, err := filtration.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := filtration.ParseKind("cech")
	assert.ErrorIs(t, err, filtration.ErrUnknownKind)
}

// TestCheckMonotone_Violation flags a face valued above its coface.
func TestCheckMonotone_Violation(t *testing.T) {
	c := closedTriangle()
	o, err := filtration.Build(c, []float64{0, 0, 0}, filtration.LowerStar, true)
	require.NoError(t, err)
	o.Values[0] = 10

	assert.ErrorIs(t, filtration.CheckMonotone(c, o), filtration.ErrNotMonotone)
}

// TestDistanceMatrix checks a 3-4-5 right triangle.
func TestDistanceMatrix(t *testing.T) {
	pts := mat.NewDense(3, 2, []float64{0, 0, 3, 0, 0, 4})
	d := filtration.DistanceMatrix(pts)

	assert.InDeltaSlice(t, []float64{0, 3, 4, 3, 0, 5, 4, 5, 0}, d, 1e-12)
}

// TestPointGradient compares the chain rule against finite differences.
func TestPointGradient(t *testing.T) {
	pts := mat.NewDense(3, 2, []float64{0, 0, 3, 0, 0.5, 4})
	distGrad := make([]float64, 9)
	distGrad[0*3+1] = 1.5  // upper triangle
	distGrad[2*3+1] = -0.7 // lower triangle is folded in too

	loss := func(p *mat.Dense) float64 {
		d := filtration.DistanceMatrix(p)
		return 1.5*d[1] - 0.7*d[2*3+1]
	}

	grad, err := filtration.PointGradient(pts, distGrad)
	require.NoError(t, err)

	const h = 1e-6
	for i := 0; i < 3; i++ {
		for k := 0; k < 2; k++ {
			plus := mat.DenseCopyOf(pts)
			plus.Set(i, k, pts.At(i, k)+h)
			minus := mat.DenseCopyOf(pts)
			minus.Set(i, k, pts.At(i, k)-h)
			fd := (loss(plus) - loss(minus)) / (2 * h)
			assert.InDelta(t, fd, grad.At(i, k), 1e-6, "point %d coord %d", i, k)
		}
	}

	_, err = filtration.PointGradient(pts, make([]float64, 4))
	assert.ErrorIs(t, err, filtration.ErrInputShape)
}
