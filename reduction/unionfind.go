// SPDX-License-Identifier: MIT
// Package: phom/reduction
//
// unionfind.go — disjoint sets over vertex simplices with the elder rule.
//
// Union by rank and path halving, as in a Kruskal spanning forest; every
// root additionally remembers the oldest vertex (lowest filtration rank)
// of its component.

package reduction

import "github.com/katalvlaran/phom/filtration"

type unionFind struct {
	parent []int
	height []int
	elder  []int // root → oldest vertex simplex of the component
	rank   []int // filtration rank per simplex (borrowed from the Order)
}

func newUnionFind(o *filtration.Order) *unionFind {
	n := o.Len()
	u := &unionFind{
		parent: make([]int, n),
		height: make([]int, n),
		elder:  make([]int, n),
		rank:   o.Rank,
	}
	for i := range u.parent {
		u.parent[i] = i
		u.elder[i] = i
	}

	return u
}

// find walks to the root, halving the path on the way.
func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}

	return x
}

// union merges the components of a and b. It returns the vertex whose class
// dies (the younger elder) and false when a and b were already joined.
func (u *unionFind) union(a, b int) (younger int, merged bool) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return -1, false
	}

	ea, eb := u.elder[ra], u.elder[rb]
	older := ea
	younger = eb
	if u.rank[eb] < u.rank[ea] {
		older, younger = eb, ea
	}

	if u.height[ra] < u.height[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.height[ra] == u.height[rb] {
		u.height[ra]++
	}
	u.elder[ra] = older

	return younger, true
}
