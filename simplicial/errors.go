// SPDX-License-Identifier: MIT
// Package: phom/simplicial
//
// errors.go — sentinel errors and the structured validation error.

package simplicial

import (
	"errors"
	"fmt"
)

// ErrInvalidComplex is the sentinel matched by every validation failure.
// Usage: if errors.Is(err, ErrInvalidComplex) { /* fix the complex */ }.
var ErrInvalidComplex = errors.New("simplicial: invalid complex")

// panicFrozen is raised when Append is called after faces were resolved.
const panicFrozen = "simplicial: Append on a frozen complex"

// Reason classifies a validation failure.
type Reason int

const (
	// ReasonEmptySimplex marks a simplex with no vertices.
	ReasonEmptySimplex Reason = iota
	// ReasonBadVertex marks a negative or repeated vertex id.
	ReasonBadVertex
	// ReasonDuplicate marks a simplex appended more than once.
	ReasonDuplicate
	// ReasonMissingFace marks a simplex with a codimension-1 face absent from the arena.
	ReasonMissingFace
)

// String returns a short human-readable label for r.
func (r Reason) String() string {
	switch r {
	case ReasonEmptySimplex:
		return "empty simplex"
	case ReasonBadVertex:
		return "vertex ids must be non-negative and strictly increasing"
	case ReasonDuplicate:
		return "duplicate simplex"
	case ReasonMissingFace:
		return "missing face"
	default:
		return "unknown"
	}
}

// InvalidComplexError reports the first violation found by Validate.
type InvalidComplexError struct {
	Index    int    // offending simplex index
	Vertices []int  // its vertex list
	Reason   Reason // violation class
	Other    int    // first occurrence for ReasonDuplicate, -1 otherwise
	Face     []int  // the absent face for ReasonMissingFace
}

// Error implements error.
func (e *InvalidComplexError) Error() string {
	switch e.Reason {
	case ReasonDuplicate:
		return fmt.Sprintf("simplicial: simplex %d %v: %s of %d", e.Index, e.Vertices, e.Reason, e.Other)
	case ReasonMissingFace:
		return fmt.Sprintf("simplicial: simplex %d %v: %s %v", e.Index, e.Vertices, e.Reason, e.Face)
	default:
		return fmt.Sprintf("simplicial: simplex %d %v: %s", e.Index, e.Vertices, e.Reason)
	}
}

// Unwrap lets errors.Is(err, ErrInvalidComplex) succeed.
func (e *InvalidComplexError) Unwrap() error { return ErrInvalidComplex }
