package domain_test

import (
	"fmt"

	"github.com/katalvlaran/fuzzycalc/domain"
)

// ExampleNew walks a small real-valued grid.
func ExampleNew() {
	d, err := domain.New(0, 3, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for x := range d.Points() {
		fmt.Println(x)
	}
	// Output:
	// 0
	// 1
	// 2
	// 3
}

// ExampleNewInteger shows the string form of an integer range.
func ExampleNewInteger() {
	d, _ := domain.NewInteger(1, 5)
	fmt.Println(d, d.Len())
	// Output: [1..5] 5
}
