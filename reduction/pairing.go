// SPDX-License-Identifier: MIT
// Package: phom/reduction
//
// pairing.go — the immutable result of one reduction.

package reduction

// Pair is a finite persistence pair of simplex indices.
type Pair struct {
	Birth int // positive simplex creating the class
	Death int // negative simplex killing it
}

// Pairing is the reduced pairing for one (complex, order) input.
// All fields are read-only after Reduce returns.
type Pairing struct {
	// Pairs holds finite pairs with birth dimension ≤ MaxDim, sorted by the
	// filtration rank of Birth.
	Pairs []Pair
	// Infinite holds unclaimed positive simplices of dimension ≤ MaxDim,
	// sorted by filtration rank.
	Infinite []int
	// MaxDim is the highest homology dimension reduced.
	MaxDim int
	// Positive marks, per simplex index, simplices whose reduced column is
	// empty. Meaningful for dimensions ≤ MaxDim+1; false above.
	Positive []bool

	death []int // birth simplex → death simplex, -1 when none
}

// Death returns the simplex that kills the class born at birth.
// ok is false for infinite classes, negative simplices and simplices above
// MaxDim.
func (p *Pairing) Death(birth int) (death int, ok bool) {
	if birth < 0 || birth >= len(p.death) || p.death[birth] < 0 {
		return -1, false
	}
	return p.death[birth], true
}

// Accounting is the per-dimension tally of a pairing, indexed 0..MaxDim.
type Accounting struct {
	Simplices []int // simplices of dimension d
	Pairs     []int // finite pairs born in dimension d
	Infinite  []int // infinite classes born in dimension d
}

// Killed returns the number of finite pairs whose death has dimension d,
// which equals Pairs[d-1].
func (a Accounting) Killed(d int) int {
	if d <= 0 || d-1 >= len(a.Pairs) {
		return 0
	}
	return a.Pairs[d-1]
}
