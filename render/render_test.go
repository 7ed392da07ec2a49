package render_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/phom/barcode"
	"github.com/katalvlaran/phom/render"
)

func sample(sublevel bool) barcode.Barcode {
	inf := math.Inf(1)
	if !sublevel {
		inf = math.Inf(-1)
	}
	return barcode.Barcode{
		Sublevel: sublevel,
		Dims: [][]barcode.Bar{
			{{Birth: 0, Death: inf}, {Birth: 0.5, Death: 1}, {Birth: 1, Death: 1}},
			{{Birth: 1.5, Death: 2}},
		},
	}
}

func TestDiagram_SVG(t *testing.T) {
	var buf bytes.Buffer
	err := render.Diagram(&buf, sample(true), render.WithFormat("svg"), render.WithTitle("H*"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<svg")
}

func TestDiagram_PNG(t *testing.T) {
	var buf bytes.Buffer
	err := render.Diagram(&buf, sample(false), render.WithSize(3*vg.Inch, 2*vg.Inch))
	require.NoError(t, err)
	require.Greater(t, buf.Len(), 8)
	assert.Equal(t, []byte("\x89PNG"), buf.Bytes()[:4])
}

func TestDiagram_Empty(t *testing.T) {
	var buf bytes.Buffer
	bc := barcode.Barcode{Sublevel: true, Dims: [][]barcode.Bar{{}, {}}}
	require.NoError(t, render.Diagram(&buf, bc, render.WithFormat("svg")))
	assert.NotZero(t, buf.Len())
}

func TestBars(t *testing.T) {
	for _, dim := range []int{0, 1, 5} {
		var buf bytes.Buffer
		require.NoError(t, render.Bars(&buf, sample(true), dim, render.WithFormat("svg")), "dim %d", dim)
		assert.Contains(t, buf.String(), "<svg")
	}
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { render.WithFormat("gif") })
	assert.Panics(t, func() { render.WithSize(0, vg.Inch) })
}

func TestParseFormat(t *testing.T) {
	format, err := render.ParseFormat(" SVG ")
	require.NoError(t, err)
	assert.Equal(t, "svg", format)
	assert.NotPanics(t, func() { render.WithFormat(format) })

	for _, bad := range []string{"", "bmp", "gif"} {
		_, err := render.ParseFormat(bad)
		assert.ErrorIs(t, err, render.ErrUnsupportedFormat, "format %q", bad)
	}
}
