// SPDX-License-Identifier: MIT
// Package: phom/filtration
//
// errors.go — sentinel errors. Wrap with context via fmt.Errorf("...: %w").

package filtration

import "errors"

var (
	// ErrInputShape indicates the input slice is too short for the complex
	// or, for Rips/Alpha, is not a square matrix.
	ErrInputShape = errors.New("filtration: input shape does not fit the complex")

	// ErrUnknownKind indicates a Kind outside the closed variant set.
	ErrUnknownKind = errors.New("filtration: unknown filtration kind")

	// ErrSuperlevelUnsupported indicates a superlevel request for a
	// distance-based kind (Rips, Alpha), which are sublevel by construction.
	ErrSuperlevelUnsupported = errors.New("filtration: superlevel not supported for distance filtrations")

	// ErrNotMonotone is reported by CheckMonotone when a face is ordered
	// after one of its cofaces.
	ErrNotMonotone = errors.New("filtration: values are not monotone along faces")
)
