// SPDX-License-Identifier: MIT
// Package: phom/filtration
//
// order.go — Order construction and the (key, dimension, index) sort.
//
// Contract:
//   - Build never mutates the complex; it only reads faces and vertices.
//   - The returned Order is owned by the caller and is transient: one per
//     forward call, retained only until the matching backward call.
//   - Monotonicity of caller values is a precondition (see CheckMonotone).

package filtration

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/phom/simplicial"
)

// Selector names the input element that determined a simplex's value.
// Index is a position in the input slice, or -1 when the value is a
// constant (e.g. Rips vertices). Weight is ∂value/∂input[Index].
type Selector struct {
	Index  int
	Weight float64
}

// constant marks values that do not depend on any input element.
var constant = Selector{Index: -1}

// Order is the per-call filtration: values, rank permutation and the
// selection record.
type Order struct {
	Kind     Kind
	Sublevel bool

	// Values holds one filtration value per simplex index.
	Values []float64
	// Perm maps rank → simplex index.
	Perm []int
	// Rank maps simplex index → rank; Rank[Perm[r]] == r.
	Rank []int
	// Selection records, per simplex index, the input element behind its value.
	Selection []Selector
	// InputLen is len(input) at Build time; gradients are shaped like it.
	InputLen int
}

// Len returns the number of ordered simplices.
func (o *Order) Len() int { return len(o.Perm) }

// Build derives per-simplex values and selectors for kind and sorts the
// simplices into filtration order.
//
// Implementation:
//   - Stage 1: validate kind and sublevel compatibility.
//   - Stage 2: derive Values and Selection with the variant's rule.
//   - Stage 3: sort by (key, dimension, append index) and invert.
//
// Errors:
//   - ErrUnknownKind, ErrSuperlevelUnsupported, ErrInputShape (wrapped).
//
// Complexity: O(N·k + N log N) time, O(N) space.
func Build(c *simplicial.Complex, input []float64, kind Kind, sublevel bool) (*Order, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("Build(%s): %w", kind, ErrUnknownKind)
	}
	if !sublevel && kind != LowerStar {
		return nil, fmt.Errorf("Build(%s): %w", kind, ErrSuperlevelUnsupported)
	}

	n := c.Len()
	o := &Order{
		Kind:      kind,
		Sublevel:  sublevel,
		Values:    make([]float64, n),
		Selection: make([]Selector, n),
		InputLen:  len(input),
	}

	var err error
	switch kind {
	case LowerStar:
		err = lowerStar(c, input, sublevel, o)
	case Rips:
		err = flag(c, input, ripsWeight, o)
	case Alpha:
		err = flag(c, input, alphaWeight, o)
	}
	if err != nil {
		return nil, fmt.Errorf("Build(%s): %w", kind, err)
	}

	o.sort(c)

	return o, nil
}

// sort fills Perm and Rank.
func (o *Order) sort(c *simplicial.Complex) {
	n := len(o.Values)
	keys := make([]float64, n)
	dims := make([]int, n)
	for i := 0; i < n; i++ {
		keys[i] = o.Values[i]
		if !o.Sublevel {
			keys[i] = -keys[i]
		}
		dims[i] = c.Dimension(i)
	}

	o.Perm = make([]int, n)
	for i := range o.Perm {
		o.Perm[i] = i
	}
	// Append index is the last key, so the order is total and SortFunc is
	// deterministic without needing stability.
	slices.SortFunc(o.Perm, func(a, b int) int {
		if r := cmp.Compare(keys[a], keys[b]); r != 0 {
			return r
		}
		if r := cmp.Compare(dims[a], dims[b]); r != 0 {
			return r
		}
		return cmp.Compare(a, b)
	})

	o.Rank = make([]int, n)
	for r, s := range o.Perm {
		o.Rank[s] = r
	}
}

// better reports whether candidate v replaces the current best under the
// sublevel (max) or superlevel (min) rule. Ties keep the incumbent, and a
// NaN incumbent is never replaced so NaN propagates.
func better(v, best float64, sublevel bool) bool {
	if math.IsNaN(best) {
		return false
	}
	if math.IsNaN(v) {
		return true
	}
	if sublevel {
		return v > best
	}
	return v < best
}
