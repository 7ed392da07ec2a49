package filtration

import (
	"fmt"
	"math"

	"github.com/katalvlaran/phom/simplicial"
)

// CheckMonotone reports the first face whose value is ordered after its
// coface (greater for sublevel, smaller for superlevel). NaN values are
// skipped. Diagnostic only; Build does not call it.
// Complexity: O(Σ k).
func CheckMonotone(c *simplicial.Complex, o *Order) error {
	for i := 0; i < c.Len(); i++ {
		vi := o.Values[i]
		if math.IsNaN(vi) {
			continue
		}
		for _, f := range c.FacesOf(i) {
			if f < 0 || math.IsNaN(o.Values[f]) {
				continue
			}
			if (o.Sublevel && o.Values[f] > vi) || (!o.Sublevel && o.Values[f] < vi) {
				return fmt.Errorf("CheckMonotone: face %d (%g) of simplex %d (%g): %w",
					f, o.Values[f], i, vi, ErrNotMonotone)
			}
		}
	}

	return nil
}
