// SPDX-License-Identifier: MIT
// Package: phom/simplicial
//
// faces.go — lazy, once-only resolution of codimension-1 faces.
//
// Policy:
//   - Resolution happens on the first FacesOf/Lookup call and freezes the
//     complex (later Append panics).
//   - Face i of a simplex is the simplex with its i-th vertex removed.
//   - An absent face is stored as -1; downstream results are then undefined,
//     which Validate reports up front.
//   - Duplicate simplices resolve to their first occurrence.

package simplicial

import (
	"encoding/binary"
	"slices"
)

// FacesOf returns the codimension-1 face indices of simplex i, ordered by
// the position of the omitted vertex. Vertices have no faces.
// The slice MUST NOT be modified.
// Complexity: O(1) after the first call; the first call is O(Σ k²).
func (c *Complex) FacesOf(i int) []int {
	c.resolve()
	return c.faces[c.faceOff[i]:c.faceOff[i+1]:c.faceOff[i+1]]
}

// Lookup returns the index of the simplex with exactly these vertices
// (in any order). Duplicates resolve to their first occurrence.
func (c *Complex) Lookup(vertices ...int) (int, bool) {
	c.resolve()
	buf := make([]int, len(vertices))
	copy(buf, vertices)
	slices.Sort(buf)
	idx, ok := c.lookup[key(buf, -1)]

	return idx, ok
}

// Freeze resolves faces eagerly. Calling it before sharing the complex
// across goroutines moves the one-time cost out of the first forward call.
func (c *Complex) Freeze() { c.resolve() }

// resolve builds lookup and faces exactly once.
func (c *Complex) resolve() {
	c.once.Do(func() {
		c.frozen.Store(true)
		n := c.Len()

		// Stage 1: canonical key → first index.
		c.lookup = make(map[string]int, n)
		for i := 0; i < n; i++ {
			k := key(c.Simplex(i), -1)
			if _, seen := c.lookup[k]; seen {
				continue
			}
			c.lookup[k] = i
		}

		// Stage 2: faces, omitting one position at a time.
		c.faceOff = make([]int, n+1)
		total := 0
		for i := 0; i < n; i++ {
			c.faceOff[i] = total
			if d := c.Dimension(i); d > 0 {
				total += d + 1
			}
		}
		c.faceOff[n] = total
		c.faces = make([]int, total)
		for i := 0; i < n; i++ {
			s := c.Simplex(i)
			if len(s) < 2 {
				continue
			}
			at := c.faceOff[i]
			for omit := range s {
				f, ok := c.lookup[key(s, omit)]
				if !ok {
					f = -1
				}
				c.faces[at+omit] = f
			}
		}
	})
}

// key encodes vertices (skipping position omit, or none when omit<0) as a
// compact varint string usable as a map key.
func key(vertices []int, omit int) string {
	buf := make([]byte, 0, len(vertices)*2)
	for i, v := range vertices {
		if i == omit {
			continue
		}
		buf = binary.AppendVarint(buf, int64(v))
	}

	return string(buf)
}
