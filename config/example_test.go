package config_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fuzzycalc/config"
)

// ExampleBuild wires a one-rule controller from YAML.
func ExampleBuild() {
	doc := `
method: accurate
inputs:
  - {name: speed, kind: standard, begin: 0, end: 1, count: 2}
outputs:
  - {name: quality, kind: standard, begin: 0, end: 1, count: 3}
rules:
  - {name: fast is fine, if: {speed: II}, then: {quality: II}}
`
	cfg, err := config.Parse(strings.NewReader(doc))
	if err != nil {
		fmt.Println(err)
		return
	}
	ctl, err := config.Build(cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = ctl.Set(map[string]float64{"speed": 1})
	fmt.Printf("%.2f\n", ctl.Get()["quality"])
	// Output:
	// 0.50
}
