// SPDX-License-Identifier: MIT
// Package: phom/filtration
//
// geometry.go — point-cloud helpers for the distance variants.
//
// Policy:
//   - Points are rows of a gonum *mat.Dense (n points × k coordinates).
//   - DistanceMatrix output is the row-major n×n layout Build expects.
//   - PointGradient is the chain rule from ∂L/∂dist to ∂L/∂points; it
//     accepts a gradient on either triangle of the matrix (both are summed).

package filtration

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DistanceMatrix returns pairwise Euclidean distances between the rows of
// points as a symmetric row-major n×n slice with a zero diagonal.
// Complexity: O(n²·k).
func DistanceMatrix(points *mat.Dense) []float64 {
	n, _ := points.Dims()
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		pi := points.RawRowView(i)
		for j := i + 1; j < n; j++ {
			d := floats.Distance(pi, points.RawRowView(j), 2)
			out[i*n+j] = d
			out[j*n+i] = d
		}
	}

	return out
}

// PointGradient maps a gradient over the distance matrix back onto point
// coordinates using ∂‖pᵢ−pⱼ‖/∂pᵢ = (pᵢ−pⱼ)/‖pᵢ−pⱼ‖. Coincident points
// receive the zero sub-gradient.
//
// Errors: ErrInputShape when len(distGrad) != n².
// Complexity: O(n²·k).
func PointGradient(points *mat.Dense, distGrad []float64) (*mat.Dense, error) {
	n, k := points.Dims()
	if len(distGrad) != n*n {
		return nil, fmt.Errorf("PointGradient: gradient length %d for %d points: %w", len(distGrad), n, ErrInputShape)
	}

	grad := mat.NewDense(n, k, nil)
	diff := make([]float64, k)
	for i := 0; i < n; i++ {
		pi := points.RawRowView(i)
		for j := i + 1; j < n; j++ {
			g := distGrad[i*n+j] + distGrad[j*n+i]
			if g == 0 {
				continue
			}
			pj := points.RawRowView(j)
			d := floats.Distance(pi, pj, 2)
			if d == 0 {
				continue
			}
			floats.SubTo(diff, pi, pj)
			floats.Scale(g/d, diff)
			floats.Add(grad.RawRowView(i), diff)
			floats.Sub(grad.RawRowView(j), diff)
		}
	}

	return grad, nil
}
