// SPDX-License-Identifier: MIT

// Package construct builds simplicial complexes for common inputs.
//
// The entry point is Build, which creates an empty complex, resolves the
// options once and applies Constructor closures in order:
//
//	c, err := construct.Build(nil, construct.Freudenthal(3, 3))
//
// Available constructors:
//   - Star, Path, Cycle: 1-dimensional graphs on vertices 0..n-1.
//   - Freudenthal: a rows×cols grid triangulated with the (r,c)–(r+1,c+1)
//     diagonal; vertex id r*cols+c.
//   - Flag: Rips (clique) expansion of a distance threshold graph.
//   - Simplices: an explicit simplex list.
//
// Every constructor emits faces before cofaces, so the result is ready for
// filtration without further sorting. WithClosure adds missing faces and
// drops duplicates for hand-written inputs.
package construct
