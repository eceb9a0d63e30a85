package options_test

import (
	"fmt"

	"github.com/mikenye/voronoi2d/options"
	"github.com/mikenye/voronoi2d/point"
)

func ExampleWithEpsilon() {
	p1 := point.New(1.0, 1.0)
	p2 := point.New(1.0000001, 1.0000001)
	epsilon := 1e-6

	fmt.Printf(
		"Is point p1 %s equal to point p2 %s without epsilon: %t\n",
		p1, p2, p1.Eq(p2),
	)

	fmt.Printf(
		"Is point p1 %s equal to point p2 %s with an epsilon of %.0e: %t\n",
		p1, p2, epsilon, p1.Eq(p2, options.WithEpsilon(epsilon)),
	)

	// Output:
	// Is point p1 (1,1) equal to point p2 (1.0000001,1.0000001) without epsilon: false
	// Is point p1 (1,1) equal to point p2 (1.0000001,1.0000001) with an epsilon of 1e-06: true
}
