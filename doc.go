// Package phom computes persistent homology of filtered simplicial complexes
// and differentiates the resulting barcodes back to the input values.
//
// 🚀 What is phom?
//
//	A forward/backward engine for topological losses:
//		• Complexes: an append-only arena of simplices with lazy face lookup
//		• Filtrations: lower-star (sublevel or superlevel), Rips and weak Alpha
//		• Reduction: union-find for H0, mod-2 column reduction with clearing above
//		• Barcodes: per-dimension (birth, death) bars plus the simplex that set each endpoint
//		• Gradients: barcode gradients scattered back onto vertex values or distances
//
// ✨ Why phom?
//
//   - Deterministic – ties are broken by dimension, then insertion order
//   - Sparse – every bar endpoint traces to exactly one input value
//   - Concurrent – a frozen complex is shared by any number of Compute calls
//
// Packages:
//
//	simplicial/  — the complex arena, face resolution, validation
//	filtration/  — filtration order and the selection record
//	reduction/   — boundary-matrix reduction and pairing accounting
//	barcode/     — bars, endpoint index, endpoint gradients
//	gradient/    — backward scatter onto inputs
//	persistence/ — Compute, Gradient, ComputeBatch and handles
//	construct/   — star, path, cycle, Freudenthal grid, flag complexes
//	features/    — differentiable barcode featurizations
//	archive/     — barcode records in memory, BadgerDB or SQLite
//	render/      — persistence diagrams and barcode plots
//	cmd/phom     — YAML-driven command line front end
//
// Quick ASCII example (a star whose center enters last):
//
//	    1   2
//	     \ /
//	      0
//	     / \
//	    3   4
//
//	c, _ := construct.Build(nil, construct.Star(5))
//	bc, h, _ := persistence.Compute(c, []float64{1, 0, 0, 0, 0})
//	defer h.Release()
//	// bc.Dim(0): [0,+Inf) [0,1) [0,1) [0,1) [1,1)
//
// See persistence/example_test.go for the backward pass.
package phom
