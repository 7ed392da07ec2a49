// SPDX-License-Identifier: MIT

// Package features turns barcodes into fixed-size, differentiable vectors.
//
// Every featurization reads one homology dimension, skips infinite bars and
// has a ...Gradient companion that returns ∂feature/∂endpoints shaped like
// the barcode, ready for persistence.Gradient. Bar length is |death−birth|,
// so sublevel and superlevel barcodes featurize alike.
//
// Ties between equal lengths are broken by bar position, which keeps TopK
// and PartialSum deterministic.
package features

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/phom/barcode"
)

// ErrShape indicates an upstream gradient whose length differs from the
// feature it differentiates.
var ErrShape = errors.New("features: upstream gradient shape mismatch")

// SumLengths returns Σ length over the finite bars of dim.
func SumLengths(bc barcode.Barcode, dim int) float64 {
	s := 0.0
	for _, b := range bc.Dim(dim) {
		if !b.IsInfinite() {
			s += b.Length()
		}
	}
	return s
}

// SumLengthsGradient is the gradient of SumLengths.
func SumLengthsGradient(bc barcode.Barcode, dim int) barcode.Gradient {
	g := barcode.NewGradient(bc)
	for i, b := range bc.Dim(dim) {
		if !b.IsInfinite() {
			g[dim][i] = lengthGradient(bc.Sublevel, 1)
		}
	}
	return g
}

// PartialSumLengths returns the total finite length of dim without its skip
// longest bars. skip ≤ 0 is SumLengths.
func PartialSumLengths(bc barcode.Barcode, dim, skip int) float64 {
	s := 0.0
	for _, r := range ranked(bc, dim)[clampSkip(skip, bc, dim):] {
		s += r.length
	}
	return s
}

// PartialSumLengthsGradient is the gradient of PartialSumLengths.
func PartialSumLengthsGradient(bc barcode.Barcode, dim, skip int) barcode.Gradient {
	g := barcode.NewGradient(bc)
	for _, r := range ranked(bc, dim)[clampSkip(skip, bc, dim):] {
		g[dim][r.pos] = lengthGradient(bc.Sublevel, 1)
	}
	return g
}

// TopKLengths returns the k longest finite lengths of dim in descending
// order, zero-padded to k. k ≤ 0 yields an empty vector.
func TopKLengths(bc barcode.Barcode, dim, k int) []float64 {
	k = max(k, 0)
	out := make([]float64, k)
	for i, r := range ranked(bc, dim) {
		if i >= k {
			break
		}
		out[i] = r.length
	}
	return out
}

// TopKLengthsGradient maps an upstream gradient on the TopKLengths vector
// (len(upstream) == k) to bar endpoints. Padding slots contribute nothing.
func TopKLengthsGradient(bc barcode.Barcode, dim, k int, upstream []float64) (barcode.Gradient, error) {
	k = max(k, 0)
	if len(upstream) != k {
		return nil, fmt.Errorf("TopKLengthsGradient: %d upstream values for k=%d: %w", len(upstream), k, ErrShape)
	}
	g := barcode.NewGradient(bc)
	for i, r := range ranked(bc, dim) {
		if i >= k {
			break
		}
		g[dim][r.pos] = lengthGradient(bc.Sublevel, upstream[i])
	}
	return g, nil
}

// Polynomial returns Σ ℓ^p · μ^q over the finite bars of dim, where ℓ is the
// bar length and μ = (birth+death)/2 its midpoint.
func Polynomial(bc barcode.Barcode, dim int, p, q float64) float64 {
	s := 0.0
	for _, b := range bc.Dim(dim) {
		if b.IsInfinite() {
			continue
		}
		s += math.Pow(b.Length(), p) * math.Pow(mid(b), q)
	}
	return s
}

// PolynomialGradient is the gradient of Polynomial.
//
//	∂/∂death = σ·p·ℓ^(p−1)·μ^q + ℓ^p·q·μ^(q−1)/2
//	∂/∂birth = −σ·p·ℓ^(p−1)·μ^q + ℓ^p·q·μ^(q−1)/2
//
// with σ = +1 for sublevel and −1 for superlevel barcodes.
func PolynomialGradient(bc barcode.Barcode, dim int, p, q float64) barcode.Gradient {
	g := barcode.NewGradient(bc)
	sigma := 1.0
	if !bc.Sublevel {
		sigma = -1
	}
	for i, b := range bc.Dim(dim) {
		if b.IsInfinite() {
			continue
		}
		l, m := b.Length(), mid(b)
		dl := sigma * powPrime(l, p) * math.Pow(m, q)
		dm := math.Pow(l, p) * powPrime(m, q) / 2
		g[dim][i] = barcode.EndpointGradient{Birth: -dl + dm, Death: dl + dm}
	}
	return g
}

type rankedBar struct {
	pos    int
	length float64
}

// ranked returns the finite bars of dim by descending length, ties by position.
func ranked(bc barcode.Barcode, dim int) []rankedBar {
	var out []rankedBar
	for i, b := range bc.Dim(dim) {
		if !b.IsInfinite() {
			out = append(out, rankedBar{pos: i, length: b.Length()})
		}
	}
	slices.SortStableFunc(out, func(a, b rankedBar) int {
		return cmp.Compare(b.length, a.length)
	})
	return out
}

func clampSkip(skip int, bc barcode.Barcode, dim int) int {
	finite := 0
	for _, b := range bc.Dim(dim) {
		if !b.IsInfinite() {
			finite++
		}
	}
	return min(max(skip, 0), finite)
}

// lengthGradient returns scale·∂ℓ/∂(birth, death).
func lengthGradient(sublevel bool, scale float64) barcode.EndpointGradient {
	if sublevel {
		return barcode.EndpointGradient{Birth: -scale, Death: scale}
	}
	return barcode.EndpointGradient{Birth: scale, Death: -scale}
}

func mid(b barcode.Bar) float64 { return (b.Birth + b.Death) / 2 }

// powPrime is d/dx x^p, defined as 0 for p == 0.
func powPrime(x, p float64) float64 {
	if p == 0 {
		return 0
	}
	return p * math.Pow(x, p-1)
}
