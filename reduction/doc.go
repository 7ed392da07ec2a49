// SPDX-License-Identifier: MIT

// Package reduction turns a filtration order into birth–death pairs.
//
// Reduce processes simplices in filtration order and reduces their boundary
// columns over ℤ/2. Every simplex is either positive (its reduced column is
// empty, it creates a class) or negative (its column has a unique low entry,
// and it kills the class born at that low). Positive simplices never claimed
// as a low are the infinite (essential) classes.
//
// Strategy:
//   - Dimension 0: union-find with the elder rule. Each component remembers
//     its oldest vertex; an edge joining two components kills the younger
//     one. This produces exactly the pairs of the column algorithm for the
//     same total order at near-linear cost.
//   - Dimensions ≥ 1: sparse column reduction with a low → column table.
//     Columns are processed top dimension first so that columns already
//     claimed as a low ("cleared") are skipped without reduction.
//   - Simplices above MaxDim+1 never influence bars up to MaxDim and are
//     ignored entirely.
//
// The result is deterministic: the same complex and order always give the
// same Pairing. Accounting and acyclicity can be checked post hoc with
// CheckAccounting.
package reduction
