// SPDX-License-Identifier: MIT
// Package: phom/construct
//
// grid.go — Freudenthal triangulation of a rows×cols grid.
//
// Canonical model:
//   - vertex (r,c) has id r*cols+c (row-major), matching GridValues.
//   - every cell (r,c)-(r+1,c+1) is split along its main diagonal into
//     {(r,c),(r,c+1),(r+1,c+1)} and {(r,c),(r+1,c),(r+1,c+1)}.
//   - emission order: all vertices, then edges per vertex in offset order
//     (right, down, diagonal), then two triangles per cell.

package construct

import (
	"fmt"

	"github.com/katalvlaran/phom/simplicial"
)

const (
	methodFreudenthal = "Freudenthal"
	minGridDim        = 1
)

// edgeOffsets are the (dr, dc) neighbors each vertex connects forward to.
var edgeOffsets = [][2]int{{0, 1}, {1, 0}, {1, 1}}

// Freudenthal returns a Constructor for the triangulated rows×cols grid.
// Complexity: O(rows·cols).
func Freudenthal(rows, cols int) Constructor {
	return func(c *simplicial.Complex, cfg config) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodFreudenthal, rows, cols, minGridDim, ErrTooFewVertices)
		}

		id := func(r, col int) int { return GridIndex(r, col, cols) }

		vertices(c, cfg, rows*cols)
		for r := 0; r < rows; r++ {
			for col := 0; col < cols; col++ {
				for _, off := range edgeOffsets {
					nr, nc := r+off[0], col+off[1]
					if nr < rows && nc < cols {
						cfg.emit(c, id(r, col), id(nr, nc))
					}
				}
			}
		}
		for r := 0; r+1 < rows; r++ {
			for col := 0; col+1 < cols; col++ {
				cfg.emit(c, id(r, col), id(r, col+1), id(r+1, col+1))
				cfg.emit(c, id(r, col), id(r+1, col), id(r+1, col+1))
			}
		}

		return nil
	}
}

// GridIndex returns the vertex id of (r, c) in a grid with cols columns.
func GridIndex(r, c, cols int) int { return r*cols + c }

// GridValues flattens a rectangular value grid row-major, the vertex layout
// Freudenthal uses. The input is copied.
func GridValues(values [][]float64) (flat []float64, rows, cols int, err error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, 0, 0, ErrEmptyGrid
	}
	rows, cols = len(values), len(values[0])
	flat = make([]float64, 0, rows*cols)
	for _, row := range values {
		if len(row) != cols {
			return nil, 0, 0, ErrNonRectangular
		}
		flat = append(flat, row...)
	}

	return flat, rows, cols, nil
}
