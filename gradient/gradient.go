// SPDX-License-Identifier: MIT

// Package gradient is the backward pass: endpoint gradients → input gradients.
//
// Every finite bar endpoint equals Weight·input[Index] for the selector
// recorded on its simplex, so its sub-gradient touches exactly one input
// element. Backward scatters each endpoint gradient onto that element and
// sums collisions. The pairing is treated as fixed; nothing is
// differentiated through the reduction.
//
// Zero contributions:
//   - the death side of infinite bars (no death simplex exists);
//   - constant selectors (Index −1, e.g. Rips vertices at value 0).
package gradient

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/phom/barcode"
	"github.com/katalvlaran/phom/filtration"
)

// ErrShape indicates a gradient not shaped like the forward output, or a
// selection record that does not cover the indexed simplices.
var ErrShape = errors.New("gradient: shape mismatch")

// Backward returns ∂L/∂input for a gradient g on the bars described by idx.
//
// Errors:
//   - ErrShape (wrapped) when g and idx differ in shape or a selector points
//     outside [0, inputLen).
//
// Complexity: O(inputLen + bars).
func Backward(idx barcode.Index, sel []filtration.Selector, inputLen int, g barcode.Gradient) ([]float64, error) {
	if want, got := idx.Shape(), g.Shape(); !slices.Equal(want, got) {
		return nil, fmt.Errorf("Backward: gradient shape %v, bars %v: %w", got, want, ErrShape)
	}

	out := make([]float64, inputLen)
	scatter := func(simplex int, v float64) error {
		if v == 0 {
			return nil
		}
		if simplex < 0 || simplex >= len(sel) {
			return fmt.Errorf("Backward: simplex %d outside selection of %d: %w", simplex, len(sel), ErrShape)
		}
		s := sel[simplex]
		if s.Index < 0 {
			return nil
		}
		if s.Index >= inputLen {
			return fmt.Errorf("Backward: selector %d outside input of %d: %w", s.Index, inputLen, ErrShape)
		}
		out[s.Index] += s.Weight * v
		return nil
	}

	for d, bars := range idx {
		for i, e := range bars {
			if err := scatter(e.BirthSimplex, g[d][i].Birth); err != nil {
				return nil, err
			}
			if e.DeathSimplex < 0 {
				continue
			}
			if err := scatter(e.DeathSimplex, g[d][i].Death); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
