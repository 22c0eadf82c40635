// SPDX-License-Identifier: MIT
//
// File: aggregate.go
// Role: aggregation strategies (Simple, Mamdani, RulesAccurate).

package infer

import (
	"github.com/katalvlaran/fuzzycalc/subset"
)

// Simple is the weighted mean of the children estimates. With equal weights
// it is the arithmetic mean.
type Simple struct{}

// Calculate implements Aggregator. It is indeterminate when n has no
// children, a child is indeterminate or the weights sum to 0.
func (Simple) Calculate(n *Node) (float64, bool) {
	var sum, wsum float64
	for _, c := range n.Children() {
		v, ok := c.Estim()
		if !ok {
			return 0, false
		}
		sum += v * c.weight
		wsum += c.weight
	}
	if wsum == 0 {
		return 0, false
	}

	return sum / wsum, true
}

// rules is the rule storage shared by the rule-based strategies.
type rules struct {
	list []*Rule
}

// Add appends r.
func (rs *rules) Add(r *Rule) { rs.list = append(rs.list, r) }

// Rules returns the registered rules.
func (rs *rules) Rules() []*Rule {
	out := make([]*Rule, len(rs.list))
	copy(out, rs.list)

	return out
}

// Mamdani clips each rule's conclusion term at its firing strength, combines
// the clipped terms with the node's t-conorm and defuzzifies the result by
// centroid.
type Mamdani struct {
	rules
}

// NewMamdani returns an empty Mamdani rule base.
func NewMamdani() *Mamdani { return &Mamdani{} }

// Result returns the combined fuzzy conclusion over the node's classifier
// domain. ok is false when a factor is indeterminate.
func (m *Mamdani) Result(n *Node) (*subset.Subset, bool) {
	if n.classifier == nil {
		return nil, false
	}
	d := n.classifier.Domain()
	acc, err := subset.New(d.Begin(), d.End(), subset.WithDomain(d), subset.WithNorm(n.norm))
	if err != nil {
		return nil, false
	}
	for _, r := range m.list {
		alpha, ok := n.fire(r)
		if !ok {
			return nil, false
		}
		term, _ := n.classifier.Term(r.conclusion)
		clipped, err := subset.Clip(term, alpha)
		if err != nil {
			return nil, false
		}
		if acc, err = subset.TConorm(acc, clipped); err != nil {
			return nil, false
		}
	}

	return acc, true
}

// Calculate implements Aggregator: the centroid of Result. It is
// indeterminate when no rule fires (zero mass).
func (m *Mamdani) Calculate(n *Node) (float64, bool) {
	res, ok := m.Result(n)
	if !ok {
		return 0, false
	}

	return res.Centr()
}

// RulesAccurate defuzzifies each conclusion term first and returns the
// firing-strength weighted mean of the centroids.
type RulesAccurate struct {
	rules
}

// NewRulesAccurate returns an empty weighted-centroid rule base.
func NewRulesAccurate() *RulesAccurate { return &RulesAccurate{} }

// Calculate implements Aggregator. When no rule fires the result is 0
// (determinate); a factor without an estimate makes it indeterminate.
func (ra *RulesAccurate) Calculate(n *Node) (float64, bool) {
	if n.classifier == nil {
		return 0, false
	}
	var sum, asum float64
	for _, r := range ra.list {
		alpha, ok := n.fire(r)
		if !ok {
			return 0, false
		}
		term, _ := n.classifier.Term(r.conclusion)
		c, ok := term.Centr()
		if !ok {
			continue
		}
		sum += c * alpha
		asum += alpha
	}
	if asum == 0 {
		return 0, true
	}

	return sum / asum, true
}
