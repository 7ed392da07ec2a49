// SPDX-License-Identifier: MIT
// Package: phom/construct
//
// errors.go — sentinel errors. Constructors wrap them with the method name:
// fmt.Errorf("%s: ...: %w", methodX, ErrX).

package construct

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter (n, rows, cols) below the
	// constructor's minimum.
	ErrTooFewVertices = errors.New("construct: parameter too small")

	// ErrBadDimension indicates a negative maximum dimension.
	ErrBadDimension = errors.New("construct: invalid dimension")

	// ErrInputShape indicates malformed input data: a distance slice that is
	// not n×n, an empty simplex or a negative vertex id.
	ErrInputShape = errors.New("construct: input shape mismatch")

	// ErrConstructFailed indicates a nil constructor passed to Build.
	ErrConstructFailed = errors.New("construct: construction failed")

	// ErrEmptyGrid indicates a value grid with no rows or no columns.
	ErrEmptyGrid = errors.New("construct: grid must have at least one row and one column")

	// ErrNonRectangular indicates grid rows of differing lengths.
	ErrNonRectangular = errors.New("construct: all grid rows must have the same length")
)
