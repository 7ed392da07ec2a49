// SPDX-License-Identifier: MIT
// Package: phom/barcode
//
// extract.go — pairing → bars.

package barcode

import (
	"math"

	"github.com/katalvlaran/phom/filtration"
	"github.com/katalvlaran/phom/reduction"
	"github.com/katalvlaran/phom/simplicial"
)

// Extract converts p into bars using the values of o.
//
// Dimensions 0..p.MaxDim are always present; dimensions the complex does not
// reach are empty. Pairs and infinite classes are merged by the filtration
// rank of their birth simplex.
//
// Complexity: O(P) for P pairs and infinite classes.
func Extract(c *simplicial.Complex, o *filtration.Order, p *reduction.Pairing) (Barcode, Index) {
	k := p.MaxDim + 1
	bc := Barcode{Sublevel: o.Sublevel, Dims: make([][]Bar, k)}
	idx := make(Index, k)
	for d := 0; d < k; d++ {
		bc.Dims[d] = []Bar{}
		idx[d] = []Endpoint{}
	}

	inf := math.Inf(1)
	if !o.Sublevel {
		inf = math.Inf(-1)
	}

	add := func(birth, death int) {
		d := c.Dimension(birth)
		if d < 0 || d >= k {
			return
		}
		bar := Bar{Birth: o.Values[birth], Death: inf}
		if death >= 0 {
			bar.Death = o.Values[death]
		}
		bc.Dims[d] = append(bc.Dims[d], bar)
		idx[d] = append(idx[d], Endpoint{BirthSimplex: birth, DeathSimplex: death})
	}

	i, j := 0, 0
	for i < len(p.Pairs) || j < len(p.Infinite) {
		if j >= len(p.Infinite) || (i < len(p.Pairs) && o.Rank[p.Pairs[i].Birth] < o.Rank[p.Infinite[j]]) {
			add(p.Pairs[i].Birth, p.Pairs[i].Death)
			i++
			continue
		}
		add(p.Infinite[j], -1)
		j++
	}

	return bc, idx
}
