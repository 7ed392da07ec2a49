// SPDX-License-Identifier: MIT
// Package: phom/reduction
//
// accounting.go — post hoc sanity checks on a pairing.
//
// Every d-simplex is either positive (a finite birth or an infinite class in
// dimension d) or negative (the death of a class born in d-1), so
//
//	Pairs[d] + Infinite[d] + Pairs[d-1] == Simplices[d]
//
// for every reduced dimension. At d = 0 this is the familiar
// pairs + infinite == vertices. On a complex that is acyclic at the top
// filtration level, every class above dimension 0 dies, so Infinite[d] == 0
// for 1 ≤ d ≤ min(MaxDim, complex dimension).

package reduction

import "github.com/katalvlaran/phom/simplicial"

// Counts tallies p against c for dimensions 0..MaxDim.
// Complexity: O(N).
func (p *Pairing) Counts(c *simplicial.Complex) Accounting {
	k := p.MaxDim + 1
	a := Accounting{
		Simplices: make([]int, k),
		Pairs:     make([]int, k),
		Infinite:  make([]int, k),
	}
	for d := 0; d < k; d++ {
		a.Simplices[d] = len(c.SimplicesOfDimension(d))
	}
	for _, pr := range p.Pairs {
		if d := c.Dimension(pr.Birth); d >= 0 && d < k {
			a.Pairs[d]++
		}
	}
	for _, s := range p.Infinite {
		if d := c.Dimension(s); d >= 0 && d < k {
			a.Infinite[d]++
		}
	}

	return a
}

// CheckAccounting verifies the accounting identity and acyclicity of p.
// Returns nil or an *AcyclicityViolation for the lowest failing dimension.
// Complexity: O(N).
func CheckAccounting(c *simplicial.Complex, p *Pairing) error {
	a := p.Counts(c)
	top := min(p.MaxDim, c.MaxDimension())
	for d := range a.Simplices {
		v := &AcyclicityViolation{
			Dim:       d,
			Simplices: a.Simplices[d],
			Pairs:     a.Pairs[d],
			Killed:    a.Killed(d),
			Infinite:  a.Infinite[d],
		}
		if v.Pairs+v.Infinite+v.Killed != v.Simplices {
			return v
		}
		if d >= 1 && d <= top && v.Infinite != 0 {
			return v
		}
	}

	return nil
}
