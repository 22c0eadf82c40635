package infer_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/fuzzycalc/classifier"
	"github.com/katalvlaran/fuzzycalc/infer"
)

// ExampleNode averages two factor estimates with the default strategy.
func ExampleNode() {
	root, _ := infer.NewNode("Rule system")
	f1, _ := infer.NewNode("Factor 1", infer.WithEstimate(6.5))
	f2, _ := infer.NewNode("Factor 2", infer.WithEstimate(12.6))
	_ = root.Add(f1)
	_ = root.Add(f2)

	v, ok := root.Estim()
	fmt.Printf("%.2f %v\n", v, ok)
	// Output:
	// 9.55 true
}

// ExampleMamdani runs a one-rule Mamdani controller.
func ExampleMamdani() {
	in, _ := classifier.Standard(2, 0, 1)
	out, _ := classifier.Standard(3, 0, 1)

	root, _ := infer.NewNode("quality", infer.WithClassifier(out), infer.WithAggregator(infer.NewMamdani()))
	speed, _ := infer.NewNode("speed", infer.WithClassifier(in), infer.WithEstimate(1))
	_ = root.Add(speed)
	rule, _ := root.AddRule(map[string]string{"speed": "II"}, "II", "fast is fine")

	v, _ := root.Estim()
	fmt.Printf("%.3f\n", v)
	fmt.Println(rule)
	// Output:
	// 0.500
	// fast is fine: speed=II -> II(1)
}

// ExampleNode_Explain dumps a small hierarchy.
func ExampleNode_Explain() {
	root, _ := infer.NewNode("total")
	a, _ := infer.NewNode("price", infer.WithEstimate(2))
	b, _ := infer.NewNode("comfort", infer.WithEstimate(4), infer.WithWeight(3))
	_ = root.Add(a)
	_ = root.Add(b)

	_ = root.Explain(os.Stdout)
	// Output:
	// price - 2 (1)
	// comfort - 4 (3)
	// total - 3.5 (1)
}
