// SPDX-License-Identifier: MIT
// Package: phom/construct
//
// flag.go — Flag (clique / Vietoris–Rips) expansion and explicit lists.
//
// Flag contract:
//   - dist is a row-major n×n distance matrix; only the upper triangle is read.
//   - edge {i,j} exists when dist[i*n+j] ≤ threshold; threshold ≤ 0 or +Inf
//     keeps every edge (complete graph).
//   - every clique of the threshold graph with ≤ maxDim+1 vertices becomes a
//     simplex. Emission is by dimension, lexicographic within a dimension.

package construct

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/phom/simplicial"
)

const (
	methodFlag      = "Flag"
	methodSimplices = "Simplices"
)

// Flag returns a Constructor for the flag complex of the threshold graph.
// Complexity: O(n²) for edges plus O(Σ cliques · n) for the expansion.
func Flag(dist []float64, n, maxDim int, threshold float64) Constructor {
	return func(c *simplicial.Complex, cfg config) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodFlag, n, ErrTooFewVertices)
		}
		if len(dist) != n*n {
			return fmt.Errorf("%s: %d distances for n=%d: %w", methodFlag, len(dist), n, ErrInputShape)
		}
		if maxDim < 0 {
			return fmt.Errorf("%s: maxDim=%d: %w", methodFlag, maxDim, ErrBadDimension)
		}
		all := threshold <= 0 || math.IsInf(threshold, 1)

		adj := make([]bool, n*n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if all || dist[i*n+j] <= threshold {
					adj[i*n+j] = true
					adj[j*n+i] = true
				}
			}
		}

		level := make([][]int, 0, n)
		for i := 0; i < n; i++ {
			level = append(level, []int{i})
			cfg.emit(c, i)
		}
		for d := 1; d <= maxDim && len(level) > 0; d++ {
			var next [][]int
			for _, s := range level {
				for v := s[len(s)-1] + 1; v < n; v++ {
					if !adjacentToAll(adj, n, s, v) {
						continue
					}
					grown := append(slices.Clone(s), v)
					next = append(next, grown)
					cfg.emit(c, grown...)
				}
			}
			level = next
		}

		return nil
	}
}

func adjacentToAll(adj []bool, n int, s []int, v int) bool {
	for _, u := range s {
		if !adj[u*n+v] {
			return false
		}
	}

	return true
}

// Simplices appends an explicit simplex list in order. Vertex lists are
// copied and sorted. Combine with WithClosure for lists that omit faces.
func Simplices(list [][]int) Constructor {
	return func(c *simplicial.Complex, cfg config) error {
		for i, s := range list {
			if len(s) == 0 {
				return fmt.Errorf("%s: simplex %d is empty: %w", methodSimplices, i, ErrInputShape)
			}
			for _, v := range s {
				if v < 0 {
					return fmt.Errorf("%s: simplex %d has vertex %d: %w", methodSimplices, i, v, ErrInputShape)
				}
			}
		}
		for _, s := range list {
			sorted := slices.Clone(s)
			slices.Sort(sorted)
			cfg.emit(c, sorted...)
		}

		return nil
	}
}
