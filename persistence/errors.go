// SPDX-License-Identifier: MIT
// Package: phom/persistence
//
// errors.go — facade sentinels; lower-level sentinels are re-exported so
// callers need a single import for errors.Is.

package persistence

import (
	"errors"

	"github.com/katalvlaran/phom/filtration"
	"github.com/katalvlaran/phom/gradient"
	"github.com/katalvlaran/phom/reduction"
	"github.com/katalvlaran/phom/simplicial"
)

var (
	// ErrInvalidPairingHandle indicates a backward call without a live
	// handle from a matching forward call.
	ErrInvalidPairingHandle = errors.New("persistence: invalid pairing handle")

	// ErrGradientShape indicates a barcode gradient shaped unlike the
	// forward output.
	ErrGradientShape = gradient.ErrShape

	// ErrInvalidComplex is simplicial.ErrInvalidComplex.
	ErrInvalidComplex = simplicial.ErrInvalidComplex

	// ErrAcyclicity is reduction.ErrAcyclicity.
	ErrAcyclicity = reduction.ErrAcyclicity

	// ErrInputShape is filtration.ErrInputShape.
	ErrInputShape = filtration.ErrInputShape
)
