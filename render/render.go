// SPDX-License-Identifier: MIT

// Package render draws barcodes with gonum/plot.
//
// Diagram plots every finite bar as a (birth, death) point per homology
// dimension together with the diagonal; infinite bars sit on a cap line
// just beyond the finite range. Bars draws one horizontal segment per bar of
// a single dimension. Both write any format gonum/plot supports (png, svg,
// pdf, ...) to an io.Writer.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/phom/barcode"
)

// ErrUnsupportedFormat indicates an output encoding gonum/plot cannot write.
var ErrUnsupportedFormat = errors.New("render: unsupported format")

const (
	DefaultWidth  = 4 * vg.Inch
	DefaultHeight = 4 * vg.Inch
	DefaultFormat = "png"

	// capMargin places infinite deaths this fraction of the finite range
	// beyond the last finite value.
	capMargin = 0.1
)

var formats = map[string]bool{
	"eps": true, "jpg": true, "jpeg": true, "pdf": true,
	"png": true, "svg": true, "tif": true, "tiff": true,
}

// Option customizes a plot.
type Option func(*options)

type options struct {
	title         string
	width, height vg.Length
	format        string
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithSize sets the canvas size. Panics on non-positive lengths.
func WithSize(width, height vg.Length) Option {
	if width <= 0 || height <= 0 {
		panic("render: WithSize: width and height must be positive")
	}
	return func(o *options) { o.width, o.height = width, height }
}

// ParseFormat normalizes a user-supplied format name ("SVG", " png") and
// reports ErrUnsupportedFormat for anything gonum/plot cannot write.
func ParseFormat(s string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(s))
	if !formats[format] {
		return "", fmt.Errorf("ParseFormat(%q): %w", s, ErrUnsupportedFormat)
	}
	return format, nil
}

// WithFormat selects the output encoding. Panics on formats gonum/plot
// cannot write; run user input through ParseFormat first.
func WithFormat(format string) Option {
	if !formats[format] {
		panic(fmt.Sprintf("render: WithFormat: unsupported format %q", format))
	}
	return func(o *options) { o.format = format }
}

func gatherOptions(opts ...Option) options {
	o := options{width: DefaultWidth, height: DefaultHeight, format: DefaultFormat}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// Diagram writes the persistence diagram of bc.
func Diagram(w io.Writer, bc barcode.Barcode, opts ...Option) error {
	cfg := gatherOptions(opts...)
	lo, capValue := span(bc, -1)

	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = "birth"
	p.Y.Label.Text = "death"
	setRange(&p.X, lo, capValue)
	setRange(&p.Y, lo, capValue)

	diag := plotter.NewFunction(func(x float64) float64 { return x })
	diag.Color = color.Gray{Y: 128}
	diag.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	p.Add(diag)

	if hasInfinite(bc) {
		capLine := plotter.NewFunction(func(float64) float64 { return capValue })
		capLine.Color = color.Gray{Y: 192}
		p.Add(capLine)
	}

	for d, bars := range bc.Dims {
		if len(bars) == 0 {
			continue
		}
		pts := make(plotter.XYs, len(bars))
		for i, b := range bars {
			pts[i].X = b.Birth
			pts[i].Y = b.Death
			if b.IsInfinite() {
				pts[i].Y = capValue
			}
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("Diagram: dim %d: %w", d, err)
		}
		s.GlyphStyle.Color = plotutil.Color(d)
		s.GlyphStyle.Shape = plotutil.Shape(d)
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("H%d", d), s)
	}
	return write(w, p, cfg)
}

// Bars writes the barcode of dimension dim, one segment per bar in
// barcode order from bottom to top.
func Bars(w io.Writer, bc barcode.Barcode, dim int, opts ...Option) error {
	cfg := gatherOptions(opts...)
	bars := bc.Dim(dim)
	lo, capValue := span(bc, dim)

	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = "filtration value"
	p.Y.Label.Text = fmt.Sprintf("H%d bar", dim)
	setRange(&p.X, lo, capValue)
	p.Y.Min, p.Y.Max = -1, float64(max(len(bars), 1))

	for i, b := range bars {
		death := b.Death
		if b.IsInfinite() {
			death = capValue
		}
		seg, err := plotter.NewLine(plotter.XYs{{X: b.Birth, Y: float64(i)}, {X: death, Y: float64(i)}})
		if err != nil {
			return fmt.Errorf("Bars: bar %d: %w", i, err)
		}
		seg.Color = plotutil.Color(dim)
		seg.Width = vg.Points(2)
		if b.IsInfinite() {
			seg.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		}
		p.Add(seg)
	}

	return write(w, p, cfg)
}

func write(w io.Writer, p *plot.Plot, cfg options) error {
	wt, err := p.WriterTo(cfg.width, cfg.height, cfg.format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// span returns the far end of the finite value range of dim (all dims when
// dim < 0) and the value used for infinite deaths.
func span(bc barcode.Barcode, dim int) (edge, capValue float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	visit := func(v float64) {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return
		}
		lo, hi = min(lo, v), max(hi, v)
	}
	for d, bars := range bc.Dims {
		if dim >= 0 && d != dim {
			continue
		}
		for _, b := range bars {
			visit(b.Birth)
			visit(b.Death)
		}
	}
	if lo > hi {
		lo, hi = 0, 1
	}
	margin := capMargin * (hi - lo)
	if margin == 0 {
		margin = capMargin
	}
	if bc.Sublevel {
		return lo, hi + margin
	}
	return hi, lo - margin
}

func hasInfinite(bc barcode.Barcode) bool {
	for _, bars := range bc.Dims {
		for _, b := range bars {
			if b.IsInfinite() {
				return true
			}
		}
	}
	return false
}

func setRange(a *plot.Axis, x, y float64) {
	a.Min, a.Max = min(x, y), max(x, y)
}
