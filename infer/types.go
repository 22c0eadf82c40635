// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: node state, strategy contracts and construction options.

package infer

import (
	"math"

	"github.com/katalvlaran/fuzzycalc/classifier"
	"github.com/katalvlaran/fuzzycalc/tnorm"
)

// DefaultWeight is the weight of a node that was not given one.
const DefaultWeight = 1.0

// State is the resolution state of a node estimate.
type State int

const (
	// Unresolved: no estimate set and none computed yet.
	Unresolved State = iota
	// Set: the estimate was supplied with SetEstim or WithEstimate.
	Set
	// Memoized: the estimate was computed by the aggregator and cached.
	Memoized
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Set:
		return "set"
	case Memoized:
		return "memoized"
	default:
		return "unresolved"
	}
}

// Aggregator derives a node's estimate from its children.
// ok=false means indeterminate.
type Aggregator interface {
	Calculate(n *Node) (float64, bool)
}

// RuleSet is an Aggregator driven by fuzzy rules.
type RuleSet interface {
	Aggregator
	// Add appends a validated rule.
	Add(r *Rule)
	// Rules returns the registered rules in registration order.
	Rules() []*Rule
}

// Option configures a Node.
type Option func(*Node)

// WithClassifier attaches the node's linguistic scale.
func WithClassifier(c *classifier.FuzzySet) Option {
	return func(n *Node) { n.classifier = c }
}

// WithAggregator sets the strategy. Each node should own its aggregator:
// a rule-based aggregator shared between nodes shares its rules.
// Panics if a is nil.
func WithAggregator(a Aggregator) Option {
	if a == nil {
		panic("infer: WithAggregator: aggregator must be non-nil")
	}

	return func(n *Node) { n.agg = a }
}

// WithNorm sets the t-norm pair used to fire rules and combine conclusions.
// Panics if t is nil.
func WithNorm(t tnorm.Norm) Option {
	if t == nil {
		panic("infer: WithNorm: norm must be non-nil")
	}

	return func(n *Node) { n.norm = t }
}

// WithEstimate presets an explicit estimate.
func WithEstimate(v float64) Option {
	return func(n *Node) { n.estim, n.state = v, Set }
}

// WithWeight sets the node weight used by Simple.
// Panics if w is negative or non-finite.
func WithWeight(w float64) Option {
	if !validWeight(w) {
		panic("infer: WithWeight: weight must be finite and non-negative")
	}

	return func(n *Node) { n.weight = w }
}

func validWeight(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0) && w >= 0
}
