// SPDX-License-Identifier: MIT

// Package persistence is the host-facing facade of phom.
//
// Compute runs one forward pass (filtration → reduction → barcode) and
// returns the barcode plus a Handle; Gradient runs the matching backward
// pass. A Handle carries the transient order, pairing and selection record
// of its forward call and nothing else, so one complex can serve any number
// of concurrent forward/backward round-trips:
//
//	c, _ := construct.Build(nil, construct.Freudenthal(64, 64))
//	bc, h, err := persistence.Compute(c, field, persistence.WithMaxDim(1))
//	...
//	g := features.SumLengthsGradient(bc, 1)
//	grad, err := persistence.Gradient(h, g)
//	h.Release()
//
// Defaults: lower-star, sublevel, homology up to dimension 1, no complex
// validation, acyclicity check on. See options.go.
//
// Errors (use errors.Is):
//   - ErrInvalidComplex: validation failed (WithValidation) or nil complex.
//   - ErrAcyclicity: pair/infinite counts contradict an acyclic complex.
//   - ErrInvalidPairingHandle: nil, zero or released handle.
//   - ErrGradientShape: gradient not shaped like the forward barcode.
//   - filtration errors (ErrInputShape, ErrSuperlevelUnsupported, ...)
//     pass through wrapped.
package persistence
