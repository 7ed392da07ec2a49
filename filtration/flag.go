// SPDX-License-Identifier: MIT
// Package: phom/filtration
//
// flag.go — distance-driven variants (Rips and weak Alpha).
//
// Rule (both variants):
//   - vertices: value 0, constant selector;
//   - edge {i,j}, i<j: value weight·input[i*m+j], selector that entry;
//   - higher simplices: max over codimension-1 faces, selector inherited
//     from the first face attaining the max (bottom-up, so the selector is
//     always an edge entry).
//
// Rips uses weight 1 (edge length). Alpha uses weight 1/2: on a Delaunay
// complex the circumradius of an edge is half its length, and higher
// simplices take the largest edge radius (weak alpha). The triangulation
// is supplied by the caller; only distances and connectivity are read.

package filtration

import (
	"fmt"
	"math"

	"github.com/katalvlaran/phom/simplicial"
)

const (
	ripsWeight  = 1.0
	alphaWeight = 0.5
)

// flag fills values dimension by dimension so faces precede cofaces.
// Complexity: O(Σ k) after face resolution.
func flag(c *simplicial.Complex, input []float64, weight float64, o *Order) error {
	m, err := matrixOrder(len(input), c.NumVertices())
	if err != nil {
		return err
	}

	for _, i := range c.SimplicesOfDimension(0) {
		o.Values[i], o.Selection[i] = 0, constant
	}
	for _, i := range c.SimplicesOfDimension(1) {
		s := c.Simplex(i)
		at := s[0]*m + s[1]
		o.Values[i] = weight * input[at]
		o.Selection[i] = Selector{Index: at, Weight: weight}
	}
	for d := 2; d <= c.MaxDimension(); d++ {
		for _, i := range c.SimplicesOfDimension(d) {
			first := true
			for _, f := range c.FacesOf(i) {
				if f < 0 {
					continue
				}
				if first || better(o.Values[f], o.Values[i], true) {
					o.Values[i], o.Selection[i] = o.Values[f], o.Selection[f]
					first = false
				}
			}
			if first {
				o.Values[i], o.Selection[i] = 0, constant
			}
		}
	}

	return nil
}

// matrixOrder returns m for an m×m input with m ≥ need.
func matrixOrder(length, need int) (int, error) {
	m := int(math.Sqrt(float64(length)))
	for m*m > length {
		m--
	}
	for (m+1)*(m+1) <= length {
		m++
	}
	if m*m != length {
		return 0, fmt.Errorf("distance input of length %d is not square: %w", length, ErrInputShape)
	}
	if m < need {
		return 0, fmt.Errorf("distance matrix %d×%d for %d vertices: %w", m, m, need, ErrInputShape)
	}

	return m, nil
}
