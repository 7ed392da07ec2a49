// SPDX-License-Identifier: MIT
// Package: phom/persistence
//
// persistence.go — Compute and Gradient.

package persistence

import (
	"fmt"

	"github.com/katalvlaran/phom/barcode"
	"github.com/katalvlaran/phom/filtration"
	"github.com/katalvlaran/phom/gradient"
	"github.com/katalvlaran/phom/reduction"
	"github.com/katalvlaran/phom/simplicial"
)

// Compute runs the forward pass over c with per-call input values.
//
// values is per-vertex for lower-star and a row-major n×n distance matrix for
// Rips and Alpha. c is only read; it may be shared by concurrent calls.
//
// Implementation:
//   - Stage 1: optional simplicial.Validate (WithValidation).
//   - Stage 2: filtration.Build for the configured kind and direction.
//   - Stage 3: reduction.Reduce up to maxDim (+1 for the killing columns).
//   - Stage 4: optional reduction.CheckAccounting (on by default).
//   - Stage 5: barcode.Extract and handle creation.
//
// Errors: see package doc. On error the barcode is zero and the handle nil.
//
// Complexity: O(N log N) plus reduction cost.
func Compute(c *simplicial.Complex, values []float64, opts ...Option) (barcode.Barcode, *Handle, error) {
	cfg := gatherOptions(opts...)

	return compute(c, values, cfg)
}

func compute(c *simplicial.Complex, values []float64, cfg options) (barcode.Barcode, *Handle, error) {
	if c == nil {
		return barcode.Barcode{}, nil, fmt.Errorf("Compute: nil complex: %w", ErrInvalidComplex)
	}
	if cfg.validate {
		if err := simplicial.Validate(c); err != nil {
			return barcode.Barcode{}, nil, fmt.Errorf("Compute: %w", err)
		}
	}

	o, err := filtration.Build(c, values, cfg.kind, cfg.sublevel)
	if err != nil {
		return barcode.Barcode{}, nil, fmt.Errorf("Compute: %w", err)
	}

	var ropts []reduction.Option
	if cfg.columnOnly {
		ropts = append(ropts, reduction.WithColumnReductionOnly())
	}
	p := reduction.Reduce(c, o, cfg.maxDim, ropts...)

	if cfg.acyclicity {
		if err := reduction.CheckAccounting(c, p); err != nil {
			return barcode.Barcode{}, nil, fmt.Errorf("Compute: %w", err)
		}
	}

	bc, idx := barcode.Extract(c, o, p)

	return bc, newHandle(&forward{order: o, pairing: p, index: idx}), nil
}

// Gradient runs the backward pass for the forward call behind h.
// g must be shaped like the barcode that call returned (see
// barcode.NewGradient). The result is shaped like the forward input values.
//
// Errors:
//   - ErrInvalidPairingHandle for nil, zero or released handles.
//   - ErrGradientShape (wrapped) for mismatched gradients.
//
// Complexity: O(len(values) + bars).
func Gradient(h *Handle, g barcode.Gradient) ([]float64, error) {
	f := h.live()
	if f == nil {
		return nil, ErrInvalidPairingHandle
	}

	out, err := gradient.Backward(f.index, f.order.Selection, f.order.InputLen, g)
	if err != nil {
		return nil, fmt.Errorf("Gradient: %w", err)
	}

	return out, nil
}
