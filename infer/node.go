// SPDX-License-Identifier: MIT
//
// File: node.go
// Role: the factor tree: construction, traversal and lazy estimation.
// Policy:
//   - Children keep insertion order; names are unique per parent.
//   - Add refuses edges that would close a cycle (visited-set search).
//   - Only determinate aggregator results are memoized.

package infer

import (
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/katalvlaran/fuzzycalc/classifier"
	"github.com/katalvlaran/fuzzycalc/tnorm"
)

// Node is one factor of the inference hierarchy.
type Node struct {
	name       string
	estim      float64
	state      State
	weight     float64
	classifier *classifier.FuzzySet
	agg        Aggregator
	norm       tnorm.Norm

	order    []string
	children map[string]*Node
}

// NewNode returns a node with the Simple aggregator, the min/max norm pair
// and DefaultWeight unless overridden.
//
// Errors: ErrBadNode if name is empty.
func NewNode(name string, opts ...Option) (*Node, error) {
	if name == "" {
		return nil, fmt.Errorf("NewNode: empty name: %w", ErrBadNode)
	}
	n := &Node{
		name:     name,
		weight:   DefaultWeight,
		agg:      Simple{},
		norm:     tnorm.Default(),
		children: make(map[string]*Node),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(n)
		}
	}

	return n, nil
}

// Name returns the node name.
func (n *Node) Name() string { return n.name }

// Weight returns the node weight.
func (n *Node) Weight() float64 { return n.weight }

// Classifier returns the node's scale, or nil.
func (n *Node) Classifier() *classifier.FuzzySet { return n.classifier }

// Aggregator returns the node's strategy.
func (n *Node) Aggregator() Aggregator { return n.agg }

// Norm returns the node's t-norm pair.
func (n *Node) Norm() tnorm.Norm { return n.norm }

// State returns the resolution state of the estimate.
func (n *Node) State() State { return n.state }

// SetWeight changes the node weight.
//
// Errors: ErrBadWeight if w is negative or non-finite.
func (n *Node) SetWeight(w float64) error {
	if !validWeight(w) {
		return nodeErrorf(n.name, "SetWeight", ErrBadWeight, "%g", w)
	}
	n.weight = w

	return nil
}

// Add attaches child under its name and drops n's memoized estimate.
//
// Errors:
//   - ErrBadNode if child is nil.
//   - ErrDuplicateChild if the name is already used under n.
//   - ErrCycle if n is child itself or one of child's descendants.
func (n *Node) Add(child *Node) error {
	// 1) Reject nil and duplicate names
	if child == nil {
		return nodeErrorf(n.name, "Add", ErrBadNode, "nil child")
	}
	if _, dup := n.children[child.name]; dup {
		return nodeErrorf(n.name, "Add", ErrDuplicateChild, "%q", child.name)
	}

	// 2) Reject the edge if n is reachable from child
	if child.reaches(n) {
		return nodeErrorf(n.name, "Add", ErrCycle, "%q", child.name)
	}

	// 3) Link and drop a memo computed without the child
	n.order = append(n.order, child.name)
	n.children[child.name] = child
	n.forget()

	return nil
}

// reaches reports whether target is n or one of its descendants.
func (n *Node) reaches(target *Node) bool {
	visited := make(map[*Node]struct{})
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == target {
			return true
		}
		if _, seen := visited[cur]; seen {
			continue
		}
		visited[cur] = struct{}{}
		for _, name := range cur.order {
			stack = append(stack, cur.children[name])
		}
	}

	return false
}

// Child returns the direct child called name.
func (n *Node) Child(name string) (*Node, bool) {
	c, ok := n.children[name]
	return c, ok
}

// Children returns the direct children in insertion order.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.order))
	for _, name := range n.order {
		out = append(out, n.children[name])
	}

	return out
}

// Walk yields the subtree in post-order: children (in insertion order)
// before their parent. A node shared by several parents is yielded once.
func (n *Node) Walk() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		visited := make(map[*Node]struct{})
		n.walk(visited, yield)
	}
}

func (n *Node) walk(visited map[*Node]struct{}, yield func(*Node) bool) bool {
	if _, seen := visited[n]; seen {
		return true
	}
	visited[n] = struct{}{}
	for _, name := range n.order {
		if !n.children[name].walk(visited, yield) {
			return false
		}
	}

	return yield(n)
}

// SetEstim sets an explicit estimate (0 is a valid estimate). Ancestors
// that already memoized an estimate keep it: call Reset on the root after
// changing leaves.
func (n *Node) SetEstim(v float64) {
	n.estim, n.state = v, Set
}

// Clear drops an explicit or memoized estimate of n only.
func (n *Node) Clear() {
	n.estim, n.state = 0, Unresolved
}

// forget drops a memoized estimate of n; explicit estimates stay.
func (n *Node) forget() {
	if n.state == Memoized {
		n.Clear()
	}
}

// Reset drops memoized estimates in the whole subtree; explicit estimates
// are kept. Call it after changing inputs to force re-evaluation.
func (n *Node) Reset() {
	for m := range n.Walk() {
		m.forget()
	}
}

// Estim returns the node estimate: the explicit one if set, the memoized one
// if computed, otherwise the aggregator's result. ok is false when the
// estimate is indeterminate (leaf without estimate, indeterminate child, no
// rule mass).
func (n *Node) Estim() (float64, bool) {
	if n.state != Unresolved {
		return n.estim, true
	}
	if len(n.order) == 0 || n.agg == nil {
		return 0, false
	}
	v, ok := n.agg.Calculate(n)
	if !ok {
		return 0, false
	}
	n.estim, n.state = v, Memoized

	return v, true
}

// String renders "name - estimate (weight)"; an indeterminate estimate is
// shown as "unknown".
func (n *Node) String() string {
	est := "unknown"
	if v, ok := n.Estim(); ok {
		est = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return fmt.Sprintf("%s - %s (%s)", n.name, est, strconv.FormatFloat(n.weight, 'g', -1, 64))
}

// Explain writes a post-order dump of the subtree (one node per line)
// followed by the rules of every rule-based node with their last firing
// strengths. Evaluation happens as a side effect.
func (n *Node) Explain(w io.Writer) error {
	for m := range n.Walk() {
		if _, err := fmt.Fprintln(w, m); err != nil {
			return err
		}
	}
	for m := range n.Walk() {
		rs, ok := m.agg.(RuleSet)
		if !ok || len(rs.Rules()) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "rules of %s:\n", m.name); err != nil {
			return err
		}
		for _, r := range rs.Rules() {
			if _, err := fmt.Fprintf(w, "  %s\n", r); err != nil {
				return err
			}
		}
	}

	return nil
}
