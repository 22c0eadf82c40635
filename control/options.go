// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: aggregation methods and controller options.

package control

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fuzzycalc/infer"
	"github.com/katalvlaran/fuzzycalc/tnorm"
)

// Method selects the aggregation strategy of every output.
type Method string

const (
	// MethodSimple averages the inputs (weighted mean).
	MethodSimple Method = "simple"
	// MethodMamdani clips, combines and defuzzifies rule conclusions.
	MethodMamdani Method = "mamdani"
	// MethodRulesAccurate averages defuzzified conclusions by firing strength.
	MethodRulesAccurate Method = "rules_accurate"
)

// DefaultMethod is used when no method is configured.
const DefaultMethod = MethodSimple

// Methods lists the supported method names.
func Methods() []Method {
	return []Method{MethodSimple, MethodMamdani, MethodRulesAccurate}
}

// ParseMethod resolves a method name (case-insensitive; "accurate" is an
// alias of rules_accurate).
//
// Errors: ErrUnknownMethod.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "simple":
		return MethodSimple, nil
	case "mamdani":
		return MethodMamdani, nil
	case "rules_accurate", "accurate":
		return MethodRulesAccurate, nil
	default:
		return "", fmt.Errorf("ParseMethod(%q): %w", name, ErrUnknownMethod)
	}
}

// RuleBased reports whether outputs of this method accept rules.
func (m Method) RuleBased() bool {
	return m == MethodMamdani || m == MethodRulesAccurate
}

// aggregator builds a fresh strategy instance; every output owns its own.
func (m Method) aggregator() infer.Aggregator {
	switch m {
	case MethodMamdani:
		return infer.NewMamdani()
	case MethodRulesAccurate:
		return infer.NewRulesAccurate()
	default:
		return infer.Simple{}
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithMethod sets the aggregation method of all outputs.
// Panics on an unknown method (use ParseMethod for untrusted input).
func WithMethod(m Method) Option {
	if _, err := ParseMethod(string(m)); err != nil {
		panic(err.Error())
	}

	return func(c *Controller) { c.method = m }
}

// WithNorm sets the t-norm pair of all outputs. Panics if n is nil.
func WithNorm(n tnorm.Norm) Option {
	if n == nil {
		panic("control: WithNorm: norm must be non-nil")
	}

	return func(c *Controller) { c.norm = n }
}
