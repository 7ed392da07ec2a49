package filtration

import (
	"fmt"

	"github.com/katalvlaran/phom/simplicial"
)

// lowerStar assigns each simplex the max (sublevel) or min (superlevel) of
// its vertex values; the first vertex attaining it is the selector.
// Complexity: O(Σ k).
func lowerStar(c *simplicial.Complex, input []float64, sublevel bool, o *Order) error {
	if len(input) < c.NumVertices() {
		return fmt.Errorf("lower-star: %d values for %d vertices: %w", len(input), c.NumVertices(), ErrInputShape)
	}

	for i := 0; i < c.Len(); i++ {
		s := c.Simplex(i)
		if len(s) == 0 {
			o.Values[i], o.Selection[i] = 0, constant
			continue
		}
		arg := s[0]
		best := input[arg]
		for _, v := range s[1:] {
			if better(input[v], best, sublevel) {
				arg, best = v, input[v]
			}
		}
		o.Values[i] = best
		o.Selection[i] = Selector{Index: arg, Weight: 1}
	}

	return nil
}
