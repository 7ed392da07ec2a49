// SPDX-License-Identifier: MIT
// Package: phom/barcode
//
// barcode.go — Bar, Barcode, Index and Gradient.

package barcode

import "math"

// Bar is one persistence interval.
type Bar struct {
	Birth float64
	Death float64
}

// Length returns |Death − Birth|; +Inf for infinite bars.
func (b Bar) Length() float64 { return math.Abs(b.Death - b.Birth) }

// IsInfinite reports whether the class never dies.
func (b Bar) IsInfinite() bool { return math.IsInf(b.Death, 0) }

// IsZeroLength reports Birth == Death.
func (b Bar) IsZeroLength() bool { return b.Birth == b.Death }

// Barcode holds bars per homology dimension 0..MaxDim().
type Barcode struct {
	// Sublevel is false for superlevel filtrations, whose infinite bars die
	// at -Inf and whose births are ≥ deaths.
	Sublevel bool
	Dims     [][]Bar
}

// Dim returns the bars of dimension d; empty when d is out of range.
func (bc Barcode) Dim(d int) []Bar {
	if d < 0 || d >= len(bc.Dims) {
		return []Bar{}
	}
	return bc.Dims[d]
}

// MaxDim returns the highest dimension present, -1 for an empty barcode.
func (bc Barcode) MaxDim() int { return len(bc.Dims) - 1 }

// Len returns the total number of bars.
func (bc Barcode) Len() int {
	n := 0
	for _, bars := range bc.Dims {
		n += len(bars)
	}
	return n
}

// Shape returns the number of bars per dimension.
func (bc Barcode) Shape() []int {
	out := make([]int, len(bc.Dims))
	for d, bars := range bc.Dims {
		out[d] = len(bars)
	}
	return out
}

// Endpoint records the simplices behind one bar. DeathSimplex is -1 for
// infinite bars.
type Endpoint struct {
	BirthSimplex int
	DeathSimplex int
}

// Index is shaped like the Barcode it was extracted with.
type Index [][]Endpoint

// Shape returns the number of entries per dimension.
func (idx Index) Shape() []int {
	out := make([]int, len(idx))
	for d, e := range idx {
		out[d] = len(e)
	}
	return out
}

// EndpointGradient is ∂L/∂birth and ∂L/∂death for one bar.
type EndpointGradient struct {
	Birth float64
	Death float64
}

// Gradient is shaped like a Barcode: one EndpointGradient per bar.
type Gradient [][]EndpointGradient

// NewGradient returns a zero gradient shaped like bc.
func NewGradient(bc Barcode) Gradient {
	g := make(Gradient, len(bc.Dims))
	for d, bars := range bc.Dims {
		g[d] = make([]EndpointGradient, len(bars))
	}
	return g
}

// Shape returns the number of entries per dimension.
func (g Gradient) Shape() []int {
	out := make([]int, len(g))
	for d, e := range g {
		out[d] = len(e)
	}
	return out
}

// Add accumulates other into g. Shapes must match; extra entries in other
// are ignored.
func (g Gradient) Add(other Gradient) {
	for d := range g {
		if d >= len(other) {
			return
		}
		for i := range g[d] {
			if i >= len(other[d]) {
				break
			}
			g[d][i].Birth += other[d][i].Birth
			g[d][i].Death += other[d][i].Death
		}
	}
}
