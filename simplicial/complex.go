// SPDX-License-Identifier: MIT
// Package: phom/simplicial
//
// complex.go — the arena: construction and read-only queries.
//
// Storage model:
//   - verts holds every simplex's vertex ids back to back; offsets[i] and
//     offsets[i+1] delimit simplex i. This replaces any per-dimension object
//     hierarchy and keeps indices stable forever.
//   - byDim[d] lists simplex indices of dimension d in append order.
//
// Concurrency:
//   - Append is single-writer (construction phase only).
//   - Once faces are resolved (see faces.go) the arena is frozen and all
//     queries are safe for unsynchronized concurrent use.

package simplicial

import (
	"slices"
	"sync"
	"sync/atomic"
)

// Complex is an append-only arena of simplices.
// The zero value is an empty, usable complex.
type Complex struct {
	verts     []int   // flat vertex storage
	offsets   []int   // len = Len()+1 once non-empty
	byDim     [][]int // dimension → simplex indices (append order)
	maxVertex int     // largest vertex id seen, -1 when empty

	once    sync.Once
	frozen  atomic.Bool
	faces   []int          // flat codimension-1 face indices, -1 = absent
	faceOff []int          // faces[faceOff[i]:faceOff[i+1]] belong to simplex i
	lookup  map[string]int // canonical key → first index with that key
}

// New returns an empty complex.
func New() *Complex {
	return &Complex{maxVertex: -1}
}

// NewWithCapacity returns an empty complex with room for n simplices of
// average size k vertices.
// Complexity: O(n·k) memory.
func NewWithCapacity(n, k int) *Complex {
	if n < 0 {
		n = 0
	}
	if k < 1 {
		k = 1
	}
	c := &Complex{maxVertex: -1}
	c.verts = make([]int, 0, n*k)
	c.offsets = make([]int, 1, n+1)

	return c
}

// Append stores a simplex and returns its stable index.
//
// The vertex list is copied and sorted ascending; no other normalization
// happens. Duplicate simplices and missing faces are NOT detected here
// (run Validate for that). Appending after faces were resolved panics: the
// complex is shared read-only from that point on.
//
// Complexity: O(k log k) for k vertices, amortized O(1) allocation.
func (c *Complex) Append(vertices ...int) int {
	if c.frozen.Load() {
		panic(panicFrozen)
	}
	if len(c.offsets) == 0 {
		// first simplex; also covers the zero-value Complex
		c.offsets = append(c.offsets, 0)
		c.maxVertex = -1
	}

	start := len(c.verts)
	c.verts = append(c.verts, vertices...)
	own := c.verts[start:]
	slices.Sort(own)
	for _, v := range own {
		if v > c.maxVertex {
			c.maxVertex = v
		}
	}
	c.offsets = append(c.offsets, len(c.verts))

	idx := len(c.offsets) - 2
	dim := len(own) - 1
	if dim >= 0 {
		for len(c.byDim) <= dim {
			c.byDim = append(c.byDim, nil)
		}
		c.byDim[dim] = append(c.byDim[dim], idx)
	}

	return idx
}

// Len returns the number of simplices in the arena.
func (c *Complex) Len() int {
	if len(c.offsets) == 0 {
		return 0
	}
	return len(c.offsets) - 1
}

// Simplex returns the sorted vertex list of simplex i.
// The slice aliases internal storage and MUST NOT be modified.
func (c *Complex) Simplex(i int) []int {
	return c.verts[c.offsets[i]:c.offsets[i+1]:c.offsets[i+1]]
}

// Dimension returns len(Simplex(i))-1.
func (c *Complex) Dimension(i int) int {
	return c.offsets[i+1] - c.offsets[i] - 1
}

// MaxDimension returns the largest simplex dimension, or -1 for an empty complex.
func (c *Complex) MaxDimension() int {
	return len(c.byDim) - 1
}

// SimplicesOfDimension returns the indices of all d-simplices in append order.
// Out-of-range d yields an empty slice. The result MUST NOT be modified.
func (c *Complex) SimplicesOfDimension(d int) []int {
	if d < 0 || d >= len(c.byDim) {
		return []int{}
	}
	return c.byDim[d]
}

// CountByDimension returns the number of simplices per dimension,
// indexed 0..MaxDimension().
func (c *Complex) CountByDimension() []int {
	out := make([]int, len(c.byDim))
	for d, ids := range c.byDim {
		out[d] = len(ids)
	}
	return out
}

// NumVertices returns the largest vertex id plus one. Inputs indexed by
// vertex (lower-star values, distance matrices) must have at least this many
// entries per axis.
func (c *Complex) NumVertices() int {
	if c.Len() == 0 {
		return 0
	}
	return c.maxVertex + 1
}
