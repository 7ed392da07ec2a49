// SPDX-License-Identifier: MIT
// Package: phom/reduction
//
// reduce.go — Reduce and the sparse column reduction.
//
// Column model:
//   - a column is a slice of filtration ranks, ascending; its low is the
//     last element.
//   - pivot[row] is the rank of the reduced column whose low is row, or -1.
//   - cols[rank] keeps the reduced column of every negative simplex so later
//     columns can add it.
//   - adding two columns is a merge that drops common rows (ℤ/2).

package reduction

import (
	"slices"

	"github.com/katalvlaran/phom/filtration"
	"github.com/katalvlaran/phom/simplicial"
)

type reducer struct {
	c *simplicial.Complex
	o *filtration.Order

	pivot    []int   // row rank → column rank, -1
	cols     [][]int // column rank → reduced column (negative columns only)
	positive []bool  // per simplex
	death    []int   // per simplex, -1

	work, spare []int
}

// Reduce computes the persistence pairing of c under o for homology
// dimensions 0..maxDim. Columns of dimension maxDim+1 are reduced to pair
// maxDim classes; anything higher is ignored. maxDim is capped at
// c.MaxDimension()+1: homology above that is empty for every filtration, and
// the cap keeps Pairing.MaxDim a usable slice length.
//
// Preconditions (not checked): o was built from c; faces precede cofaces in
// o; c is closed under faces. Missing faces are treated as absent rows.
//
// Panics when maxDim < 0.
//
// Complexity: O(N log N) to bucket columns plus the reduction itself, which
// is near-linear on typical low-dimensional complexes and O(N³) worst case.
func Reduce(c *simplicial.Complex, o *filtration.Order, maxDim int, opts ...Option) *Pairing {
	if maxDim < 0 {
		panic("reduction: Reduce: maxDim must be non-negative")
	}
	cfg := gatherOptions(opts...)
	maxDim = min(maxDim, c.MaxDimension()+1)

	n := c.Len()
	r := &reducer{
		c:        c,
		o:        o,
		pivot:    make([]int, n),
		cols:     make([][]int, n),
		positive: make([]bool, n),
		death:    make([]int, n),
	}
	for i := 0; i < n; i++ {
		r.pivot[i] = -1
		r.death[i] = -1
	}

	top := min(maxDim+1, c.MaxDimension())
	byDim := r.bucket(top)

	lowest := 2
	if cfg.columnOnly {
		lowest = 1
	}
	for d := top; d >= lowest; d-- {
		r.reduceDimension(byDim[d])
	}
	if top >= 1 && !cfg.columnOnly {
		r.unionEdges(byDim[1])
	}
	if top >= 0 {
		for _, v := range byDim[0] {
			r.positive[v] = true
		}
	}

	return r.pairing(maxDim)
}

// bucket lists simplices of dimension 0..top in filtration order.
func (r *reducer) bucket(top int) [][]int {
	if top < 0 {
		return nil
	}
	byDim := make([][]int, top+1)
	for d := 0; d <= top; d++ {
		byDim[d] = make([]int, 0, len(r.c.SimplicesOfDimension(d)))
	}
	for _, s := range r.o.Perm {
		if d := r.c.Dimension(s); d >= 0 && d <= top {
			byDim[d] = append(byDim[d], s)
		}
	}

	return byDim
}

// reduceDimension reduces the columns of one dimension in filtration order.
func (r *reducer) reduceDimension(simplices []int) {
	for _, s := range simplices {
		rank := r.o.Rank[s]
		if r.pivot[rank] >= 0 {
			// claimed as a low one dimension up: positive, column reduces to zero
			r.positive[s] = true
			continue
		}

		low := r.reduceColumn(s)
		if low < 0 {
			r.positive[s] = true
			continue
		}
		r.pivot[low] = rank
		r.cols[rank] = slices.Clone(r.work)
		r.death[r.o.Perm[low]] = s
	}
}

// reduceColumn loads the boundary of s into r.work and cancels lows until
// the column is empty (-1) or its low is unclaimed.
func (r *reducer) reduceColumn(s int) int {
	r.work = r.work[:0]
	for _, f := range r.c.FacesOf(s) {
		if f >= 0 {
			r.work = append(r.work, r.o.Rank[f])
		}
	}
	slices.Sort(r.work)

	for len(r.work) > 0 {
		low := r.work[len(r.work)-1]
		j := r.pivot[low]
		if j < 0 {
			return low
		}
		r.spare = addColumns(r.spare[:0], r.work, r.cols[j])
		r.work, r.spare = r.spare, r.work
	}

	return -1
}

// addColumns writes a+b over ℤ/2 into dst. Both inputs are ascending.
func addColumns(dst, a, b []int) []int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			dst = append(dst, a[i])
			i++
		case a[i] > b[j]:
			dst = append(dst, b[j])
			j++
		default:
			i++
			j++
		}
	}
	dst = append(dst, a[i:]...)
	dst = append(dst, b[j:]...)

	return dst
}

// unionEdges pairs vertices with edges by the elder rule. Edges joining an
// already connected component are positive.
func (r *reducer) unionEdges(edges []int) {
	uf := newUnionFind(r.o)
	for _, e := range edges {
		faces := r.c.FacesOf(e)
		if len(faces) != 2 || faces[0] < 0 || faces[1] < 0 {
			r.positive[e] = true
			continue
		}
		younger, merged := uf.union(faces[0], faces[1])
		if !merged {
			r.positive[e] = true
			continue
		}
		r.death[younger] = e
	}
}

// pairing collects pairs and infinite classes in birth rank order.
func (r *reducer) pairing(maxDim int) *Pairing {
	p := &Pairing{
		MaxDim:   maxDim,
		Positive: r.positive,
		death:    r.death,
	}
	for _, s := range r.o.Perm {
		if d := r.c.Dimension(s); d < 0 || d > maxDim || !r.positive[s] {
			continue
		}
		if death := r.death[s]; death >= 0 {
			p.Pairs = append(p.Pairs, Pair{Birth: s, Death: death})
		} else {
			p.Infinite = append(p.Infinite, s)
		}
	}

	return p
}
