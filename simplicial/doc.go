// Package simplicial stores an abstract simplicial complex as a flat,
// append-only arena of simplices addressed by stable integer indices.
//
// What:
//
//   - A Simplex is a strictly increasing sequence of vertex ids; its
//     dimension is len(vertices)-1.
//   - Complex keeps every simplex in one homogeneous arena together with
//     per-dimension index lists and (lazily built) codimension-1 face lists.
//   - Validate is an optional diagnostic that reports missing faces,
//     duplicate simplices and malformed vertex lists.
//
// Contract:
//
//   - Append trusts the caller: no duplicate detection, no face closure.
//     Malformed complexes yield undefined downstream results, not errors.
//   - Faces are resolved once, on the first face query. After that the
//     complex is frozen: Append panics and every read is safe for concurrent
//     use without further locking.
//
// Complexity:
//
//   - Append:          O(k log k) for a k-vertex simplex.
//   - Face resolution: O(Σ k²) over all simplices, once.
//   - Validate:        O(Σ k²) time, O(N) memory.
package simplicial
