package classifier_test

import (
	"fmt"

	"github.com/katalvlaran/fuzzycalc/classifier"
)

// ExampleStandard classifies crisp values on a five-term scale.
func ExampleStandard() {
	c, _ := classifier.Standard(5, 0, 1)
	for _, x := range []float64{0, 0.2, 0.8} {
		name, _ := c.Classify(x)
		fmt.Print(name, " ")
	}
	fmt.Println()
	// Output:
	// I II IV
}

// ExampleNewPartition shows the partition-of-unity property.
func ExampleNewPartition() {
	c, _ := classifier.NewPartition(0, 1, []float64{0, 0.3, 1}, 1)
	for _, m := range c.Memberships(0.12) {
		fmt.Printf("%s=%.1f ", m.Term, m.Degree)
	}
	fmt.Println()
	// Output:
	// 0=0.6 1=0.4 2=0.0
}
