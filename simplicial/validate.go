// SPDX-License-Identifier: MIT
// Package: phom/simplicial
//
// validate.go — optional diagnostic pass.
//
// Validate is NOT run by construction. It checks, in this priority order
// per simplex (ascending index):
//  1. non-empty vertex list;
//  2. vertex ids non-negative and strictly increasing (no repeats);
//  3. no earlier simplex with the same vertex set;
//  4. every codimension-1 face present.
//
// Complexity: O(Σ k²) time, O(N) memory; resolves faces if not yet done.

package simplicial

// Validate reports the first structural violation as *InvalidComplexError,
// or nil when the complex is closed under faces and duplicate-free.
func Validate(c *Complex) error {
	if c == nil {
		return nil
	}
	c.resolve()

	for i := 0; i < c.Len(); i++ {
		s := c.Simplex(i)
		if len(s) == 0 {
			return &InvalidComplexError{Index: i, Vertices: s, Reason: ReasonEmptySimplex, Other: -1}
		}
		for j, v := range s {
			if v < 0 || (j > 0 && s[j-1] >= v) {
				return &InvalidComplexError{Index: i, Vertices: s, Reason: ReasonBadVertex, Other: -1}
			}
		}
		if first := c.lookup[key(s, -1)]; first != i {
			return &InvalidComplexError{Index: i, Vertices: s, Reason: ReasonDuplicate, Other: first}
		}
		for omit, f := range c.FacesOf(i) {
			if f < 0 {
				face := make([]int, 0, len(s)-1)
				face = append(face, s[:omit]...)
				face = append(face, s[omit+1:]...)
				return &InvalidComplexError{Index: i, Vertices: s, Reason: ReasonMissingFace, Other: -1, Face: face}
			}
		}
	}

	return nil
}
