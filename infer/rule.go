// SPDX-License-Identifier: MIT
//
// File: rule.go
// Role: fuzzy rules, registration-time validation and firing.

package infer

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Clause is one conjunct of a rule antecedent: factor IS term.
type Clause struct {
	Factor string
	Term   string
}

// Rule is "IF f₁ IS t₁ AND … THEN conclusion". Its firing strength is
// recomputed on every evaluation of the owning node.
type Rule struct {
	name       string
	clauses    []Clause
	conclusion string

	alpha float64
	fired bool
}

// NewRule builds a rule from an antecedent mapping (factor → term). Clauses
// are ordered by factor name so evaluation is deterministic.
func NewRule(name string, antecedent map[string]string, conclusion string) *Rule {
	clauses := make([]Clause, 0, len(antecedent))
	for f, t := range antecedent {
		clauses = append(clauses, Clause{Factor: f, Term: t})
	}
	sort.Slice(clauses, func(i, j int) bool { return clauses[i].Factor < clauses[j].Factor })

	return &Rule{name: name, clauses: clauses, conclusion: conclusion}
}

// Name returns the rule name.
func (r *Rule) Name() string { return r.name }

// Clauses returns a copy of the antecedent clauses.
func (r *Rule) Clauses() []Clause {
	out := make([]Clause, len(r.clauses))
	copy(out, r.clauses)

	return out
}

// Conclusion returns the conclusion term label.
func (r *Rule) Conclusion() string { return r.conclusion }

// Alpha returns the firing strength of the last evaluation; ok is false
// before the first evaluation or after an indeterminate one.
func (r *Rule) Alpha() (float64, bool) { return r.alpha, r.fired }

// String renders "name: f=t f=t -> conclusion(alpha)".
func (r *Rule) String() string {
	var b strings.Builder
	b.WriteString(r.name)
	b.WriteString(":")
	for _, c := range r.clauses {
		fmt.Fprintf(&b, " %s=%s", c.Factor, c.Term)
	}
	alpha := "?"
	if r.fired {
		alpha = strconv.FormatFloat(r.alpha, 'g', 4, 64)
	}
	fmt.Fprintf(&b, " -> %s(%s)", r.conclusion, alpha)

	return b.String()
}

// AddRule validates a rule against n's children and classifiers and hands it
// to n's rule-based aggregator.
//
// Errors:
//   - ErrNotRuleBased if n's aggregator is not a RuleSet.
//   - ErrNoClassifier if n or an antecedent factor has no classifier.
//   - ErrUnknownFactor if an antecedent names a non-child.
//   - ErrUnknownTerm if a term or the conclusion is not defined.
func (n *Node) AddRule(antecedent map[string]string, conclusion, name string) (*Rule, error) {
	r := NewRule(name, antecedent, conclusion)
	if err := n.AppendRule(r); err != nil {
		return nil, err
	}

	return r, nil
}

// AppendRule validates and registers a prebuilt rule, dropping n's memoized
// estimate.
func (n *Node) AppendRule(r *Rule) error {
	rs, ok := n.agg.(RuleSet)
	if !ok {
		return nodeErrorf(n.name, "AddRule", ErrNotRuleBased, "%T", n.agg)
	}
	if n.classifier == nil {
		return nodeErrorf(n.name, "AddRule", ErrNoClassifier, "rule %q", r.name)
	}
	if _, ok = n.classifier.Term(r.conclusion); !ok {
		return nodeErrorf(n.name, "AddRule", ErrUnknownTerm, "rule %q: conclusion %q", r.name, r.conclusion)
	}
	for _, c := range r.clauses {
		child, ok := n.children[c.Factor]
		if !ok {
			return nodeErrorf(n.name, "AddRule", ErrUnknownFactor, "rule %q: %q", r.name, c.Factor)
		}
		if child.classifier == nil {
			return nodeErrorf(n.name, "AddRule", ErrNoClassifier, "rule %q: factor %q", r.name, c.Factor)
		}
		if _, ok = child.classifier.Term(c.Term); !ok {
			return nodeErrorf(n.name, "AddRule", ErrUnknownTerm, "rule %q: %s=%s", r.name, c.Factor, c.Term)
		}
	}
	rs.Add(r)
	n.forget()

	return nil
}

// Rules returns the rules of a rule-based node, or nil.
func (n *Node) Rules() []*Rule {
	if rs, ok := n.agg.(RuleSet); ok {
		return rs.Rules()
	}

	return nil
}

// fire computes and records the firing strength of r on n: the t-norm fold
// (starting at 1) of each factor's membership in its clause term. It is
// indeterminate when a factor has no estimate.
func (n *Node) fire(r *Rule) (float64, bool) {
	r.fired = false
	alpha := 1.0
	for _, c := range r.clauses {
		child := n.children[c.Factor]
		x, ok := child.Estim()
		if !ok {
			return 0, false
		}
		mu, err := child.classifier.Find(x, c.Term)
		if err != nil {
			return 0, false
		}
		alpha = n.norm.Norm(alpha, mu)
	}
	r.alpha, r.fired = alpha, true

	return alpha, true
}
