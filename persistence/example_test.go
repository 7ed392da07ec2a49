package persistence_test

import (
	"fmt"

	"github.com/katalvlaran/phom/barcode"
	"github.com/katalvlaran/phom/construct"
	"github.com/katalvlaran/phom/persistence"
)

// ExampleCompute_star computes the dimension-0 barcode of a star graph whose
// center appears last. Each leaf is born at 0; three of them merge with the
// oldest leaf through the center at 1, and the center itself is a
// zero-length bar.
func ExampleCompute_star() {
	c, err := construct.Build(nil, construct.Star(5))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	bc, h, err := persistence.Compute(c, []float64{1, 0, 0, 0, 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer h.Release()

	for _, b := range bc.Dim(0) {
		fmt.Printf("[%g, %g)\n", b.Birth, b.Death)
	}
	// Output:
	// [0, +Inf)
	// [0, 1)
	// [0, 1)
	// [0, 1)
	// [1, 1)
}

// ExampleGradient_totalPersistence pushes the gradient of the total finite
// bar length back onto the vertex values.
func ExampleGradient_totalPersistence() {
	c, _ := construct.Build(nil, construct.Star(5))
	bc, h, err := persistence.Compute(c, []float64{1, 0, 0, 0, 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer h.Release()

	g := barcode.NewGradient(bc)
	for i, b := range bc.Dim(0) {
		if !b.IsInfinite() {
			g[0][i] = barcode.EndpointGradient{Birth: -1, Death: 1}
		}
	}

	grad, err := persistence.Gradient(h, g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(grad)
	// Output: [3 0 -1 -1 -1]
}
