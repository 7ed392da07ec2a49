// SPDX-License-Identifier: MIT

// Package barcode maps a reduced pairing to filtration values.
//
// A Barcode groups bars by homology dimension (the dimension of the birth
// simplex). Within a dimension bars follow the filtration rank of their
// birth simplex. Zero-length bars are kept; infinite bars die at +Inf for
// sublevel filtrations and at -Inf for superlevel ones, so consumers must
// read Barcode.Sublevel before interpreting infinities.
//
// Extract also returns an Index, the per-bar simplex record the backward
// pass needs, and Gradient is the matching shape for endpoint gradients.
package barcode
