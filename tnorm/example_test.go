package tnorm_test

import (
	"fmt"

	"github.com/katalvlaran/fuzzycalc/tnorm"
)

// ExampleByName resolves families the way configuration files name them.
func ExampleByName() {
	for _, name := range []string{"minmax", "sumprod", "margin"} {
		n, _ := tnorm.ByName(name, 0)
		fmt.Printf("%s: %.2f %.2f\n", name, n.Norm(0.6, 0.5), n.Conorm(0.6, 0.5))
	}
	// Output:
	// minmax: 0.50 0.60
	// sumprod: 0.30 0.80
	// margin: 0.10 1.00
}
