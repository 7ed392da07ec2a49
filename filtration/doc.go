// Package filtration turns per-vertex (or per-pair) input values into a
// total order over the simplices of a simplicial.Complex.
//
// What:
//
//   - Kind selects one of a closed set of variants: LowerStar, Rips, Alpha.
//     The variants differ only in how a simplex derives its value and which
//     input element it records as the selector.
//   - Order carries the per-simplex values, the rank permutation and its
//     inverse, and the Selection record consumed by the backward pass.
//
// Ordering:
//
//	Simplices are sorted ascending by (key, dimension, append index) with
//	key = value for sublevel and -value for superlevel filtrations. When the
//	values are monotone along faces this places every face before its
//	cofaces. NaN is ordered before every number (cmp.Compare) so the order
//	stays total; NaN values propagate into bars and are never rejected.
//
// Inputs:
//
//   - LowerStar: one value per vertex id, len ≥ Complex.NumVertices().
//   - Rips/Alpha: a row-major m×m distance matrix with m ≥ NumVertices();
//     only entries (i,j) with i<j are read. DistanceMatrix builds one from a
//     point cloud and PointGradient pulls a matrix gradient back onto points.
//
// Complexity: O(N·k + N log N) for N simplices of at most k vertices.
package filtration
