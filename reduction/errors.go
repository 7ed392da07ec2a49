// SPDX-License-Identifier: MIT
// Package: phom/reduction
//
// errors.go — the acyclicity sentinel and its structured report.

package reduction

import (
	"errors"
	"fmt"
)

// ErrAcyclicity is the sentinel behind every *AcyclicityViolation.
var ErrAcyclicity = errors.New("reduction: complex is not acyclic at the top filtration level")

// AcyclicityViolation reports the first dimension whose pair/infinite-bar
// counts break the accounting identity or leave an essential class above
// dimension 0.
type AcyclicityViolation struct {
	Dim       int // offending homology dimension
	Simplices int // simplices of dimension Dim
	Pairs     int // finite pairs born in Dim
	Killed    int // finite pairs killed by Dim simplices (born in Dim-1)
	Infinite  int // essential classes born in Dim
}

// Error implements error.
func (e *AcyclicityViolation) Error() string {
	if e.Pairs+e.Infinite+e.Killed != e.Simplices {
		return fmt.Sprintf("%v: dim %d: %d pairs + %d infinite + %d killed != %d simplices",
			ErrAcyclicity, e.Dim, e.Pairs, e.Infinite, e.Killed, e.Simplices)
	}
	return fmt.Sprintf("%v: dim %d: %d essential classes", ErrAcyclicity, e.Dim, e.Infinite)
}

// Unwrap returns ErrAcyclicity.
func (e *AcyclicityViolation) Unwrap() error { return ErrAcyclicity }
