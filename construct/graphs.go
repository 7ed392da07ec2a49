// SPDX-License-Identifier: MIT
// Package: phom/construct
//
// graphs.go — 1-dimensional complexes: Star, Path, Cycle.
//
// All three append vertices 0..n-1 first, then edges in a stable order.

package construct

import (
	"fmt"

	"github.com/katalvlaran/phom/simplicial"
)

const (
	methodStar  = "Star"
	methodPath  = "Path"
	methodCycle = "Cycle"

	minStarNodes  = 2
	minPathNodes  = 2
	minCycleNodes = 3
)

// Star builds a star with center 0 and leaves 1..n-1; edge {0,i} for
// i = 1..n-1 in order.
func Star(n int) Constructor {
	return func(c *simplicial.Complex, cfg config) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		vertices(c, cfg, n)
		for i := 1; i < n; i++ {
			cfg.emit(c, 0, i)
		}

		return nil
	}
}

// Path builds the path 0–1–…–(n-1).
func Path(n int) Constructor {
	return func(c *simplicial.Complex, cfg config) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		vertices(c, cfg, n)
		for i := 0; i+1 < n; i++ {
			cfg.emit(c, i, i+1)
		}

		return nil
	}
}

// Cycle builds the path 0–…–(n-1) closed by the edge {0,n-1}. The result has
// one essential 1-cycle, so persistence on it fails the acyclicity check
// unless that check is disabled.
func Cycle(n int) Constructor {
	return func(c *simplicial.Complex, cfg config) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		vertices(c, cfg, n)
		for i := 0; i+1 < n; i++ {
			cfg.emit(c, i, i+1)
		}
		cfg.emit(c, 0, n-1)

		return nil
	}
}

func vertices(c *simplicial.Complex, cfg config, n int) {
	for i := 0; i < n; i++ {
		cfg.emit(c, i)
	}
}
