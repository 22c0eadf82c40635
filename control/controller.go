// SPDX-License-Identifier: MIT
//
// File: controller.go
// Role: named inputs and outputs over inference nodes.
// Policy:
//   - Variable names are unique across inputs and outputs.
//   - Every output has all inputs as children, including inputs added later.
//   - Set drops memoized output estimates; Get omits indeterminate outputs.
//   - Map arguments are processed in sorted key order.

package control

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/katalvlaran/fuzzycalc/classifier"
	"github.com/katalvlaran/fuzzycalc/infer"
	"github.com/katalvlaran/fuzzycalc/subset"
	"github.com/katalvlaran/fuzzycalc/tnorm"
)

// RuleSpec is one row of a rule table: an antecedent over inputs and a
// conclusion term per output.
type RuleSpec struct {
	Name string
	If   map[string]string
	Then map[string]string
}

// Controller maps crisp inputs to crisp outputs.
type Controller struct {
	method Method
	norm   tnorm.Norm

	inputs  []*infer.Node
	outputs []*infer.Node
	byName  map[string]*infer.Node
	isInput map[string]bool

	ruleSeq int
}

// New returns an empty controller using DefaultMethod and the min/max norm
// pair unless overridden.
func New(opts ...Option) *Controller {
	c := &Controller{
		method:  DefaultMethod,
		norm:    tnorm.Default(),
		byName:  make(map[string]*infer.Node),
		isInput: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Method returns the aggregation method of the outputs.
func (c *Controller) Method() Method { return c.method }

// Norm returns the t-norm pair of the outputs.
func (c *Controller) Norm() tnorm.Norm { return c.norm }

// DefineInput replaces all inputs. It must precede DefineOutput.
//
// Errors: ErrOutputsDefined, ErrBadVariable, ErrDuplicateVariable.
func (c *Controller) DefineInput(vars map[string]*classifier.FuzzySet) error {
	if len(c.outputs) > 0 {
		return fmt.Errorf("DefineInput: %w", ErrOutputsDefined)
	}
	for _, n := range c.inputs {
		c.forget(n.Name())
	}
	c.inputs = nil
	for _, name := range slices.Sorted(maps.Keys(vars)) {
		if err := c.AddInput(name, vars[name]); err != nil {
			return err
		}
	}

	return nil
}

// AddInput registers one input and links it to every existing output.
//
// Errors: ErrBadVariable, ErrDuplicateVariable.
func (c *Controller) AddInput(name string, fs *classifier.FuzzySet) error {
	n, err := c.newVariable("AddInput", name, fs, infer.WithClassifier(fs))
	if err != nil {
		return err
	}
	for _, out := range c.outputs {
		if err = out.Add(n); err != nil {
			return fmt.Errorf("AddInput(%q): %w", name, err)
		}
	}
	c.inputs = append(c.inputs, n)
	c.byName[name], c.isInput[name] = n, true

	return nil
}

// DefineOutput replaces all outputs (and their rules).
//
// Errors: ErrBadVariable, ErrDuplicateVariable.
func (c *Controller) DefineOutput(vars map[string]*classifier.FuzzySet) error {
	for _, n := range c.outputs {
		c.forget(n.Name())
	}
	c.outputs = nil
	for _, name := range slices.Sorted(maps.Keys(vars)) {
		if err := c.AddOutput(name, vars[name]); err != nil {
			return err
		}
	}

	return nil
}

// AddOutput registers one output with a fresh aggregator of the controller's
// method and all current inputs as children.
//
// Errors: ErrBadVariable, ErrDuplicateVariable.
func (c *Controller) AddOutput(name string, fs *classifier.FuzzySet) error {
	n, err := c.newVariable("AddOutput", name, fs,
		infer.WithClassifier(fs),
		infer.WithAggregator(c.method.aggregator()),
		infer.WithNorm(c.norm),
	)
	if err != nil {
		return err
	}
	for _, in := range c.inputs {
		if err = n.Add(in); err != nil {
			return fmt.Errorf("AddOutput(%q): %w", name, err)
		}
	}
	c.outputs = append(c.outputs, n)
	c.byName[name] = n

	return nil
}

func (c *Controller) newVariable(method, name string, fs *classifier.FuzzySet, opts ...infer.Option) (*infer.Node, error) {
	if name == "" || fs == nil {
		return nil, fmt.Errorf("%s(%q): %w", method, name, ErrBadVariable)
	}
	if _, dup := c.byName[name]; dup {
		return nil, fmt.Errorf("%s(%q): %w", method, name, ErrDuplicateVariable)
	}

	return infer.NewNode(name, opts...)
}

func (c *Controller) forget(name string) {
	delete(c.byName, name)
	delete(c.isInput, name)
}

// AddRule registers the antecedent on every output named in conclusions,
// concluding that output's term. An empty name becomes "rule N" with a
// controller-wide counter. Each output is validated before any is changed.
//
// Errors: ErrBadVariable (no conclusions), ErrUnknownVariable, or the infer
// rule errors (ErrNotRuleBased, ErrUnknownFactor, ErrUnknownTerm).
func (c *Controller) AddRule(antecedent, conclusions map[string]string, name string) error {
	if name == "" {
		name = fmt.Sprintf("rule %d", c.ruleSeq)
	}
	c.ruleSeq++
	if len(conclusions) == 0 {
		return fmt.Errorf("AddRule(%q): no conclusions: %w", name, ErrBadVariable)
	}

	outs := slices.Sorted(maps.Keys(conclusions))
	rules := make([]*infer.Rule, len(outs))
	nodes := make([]*infer.Node, len(outs))
	for i, out := range outs {
		n, ok := c.output(out)
		if !ok {
			return fmt.Errorf("AddRule(%q): output %q: %w", name, out, ErrUnknownVariable)
		}
		nodes[i], rules[i] = n, infer.NewRule(name, antecedent, conclusions[out])
	}
	// 1) Validate all conclusions first so a bad one leaves no partial rule.
	for i, n := range nodes {
		if err := validateRule(n, rules[i]); err != nil {
			return err
		}
	}
	// 2) Register.
	for i, n := range nodes {
		if err := n.AppendRule(rules[i]); err != nil {
			return err
		}
	}

	return nil
}

// AddOutputRule is AddRule for a single output.
func (c *Controller) AddOutputRule(output string, antecedent map[string]string, term, name string) error {
	return c.AddRule(antecedent, map[string]string{output: term}, name)
}

// DefineRules registers a rule table in order.
func (c *Controller) DefineRules(specs []RuleSpec) error {
	for _, s := range specs {
		if err := c.AddRule(s.If, s.Then, s.Name); err != nil {
			return err
		}
	}

	return nil
}

// validateRule dry-runs AppendRule against a throwaway node carrying the
// same classifier, method and children.
func validateRule(n *infer.Node, r *infer.Rule) error {
	var agg infer.Aggregator = infer.Simple{}
	if _, ok := n.Aggregator().(infer.RuleSet); ok {
		agg = infer.NewMamdani()
	}
	probe, err := infer.NewNode(n.Name(), infer.WithClassifier(n.Classifier()), infer.WithAggregator(agg))
	if err != nil {
		return err
	}
	for _, ch := range n.Children() {
		shadow, err := infer.NewNode(ch.Name(), infer.WithClassifier(ch.Classifier()))
		if err != nil {
			return err
		}
		if err = probe.Add(shadow); err != nil {
			return err
		}
	}

	return probe.AppendRule(r)
}

// Set assigns crisp input values and invalidates memoized outputs.
//
// Errors: ErrUnknownVariable; no value is assigned in that case.
func (c *Controller) Set(values map[string]float64) error {
	for name := range values {
		if !c.isInput[name] {
			return fmt.Errorf("Set(%q): %w", name, ErrUnknownVariable)
		}
	}
	for name, v := range values {
		c.byName[name].SetEstim(v)
	}
	for _, out := range c.outputs {
		out.Reset()
	}

	return nil
}

// Get evaluates every output. Indeterminate outputs (an unset input, no
// firing rule) are omitted.
func (c *Controller) Get() map[string]float64 {
	res := make(map[string]float64, len(c.outputs))
	for _, out := range c.outputs {
		if v, ok := out.Estim(); ok {
			res[out.Name()] = v
		}
	}

	return res
}

// Estim evaluates one output.
//
// Errors: ErrUnknownVariable.
func (c *Controller) Estim(output string) (float64, bool, error) {
	n, ok := c.output(output)
	if !ok {
		return 0, false, fmt.Errorf("Estim(%q): %w", output, ErrUnknownVariable)
	}
	v, ok := n.Estim()

	return v, ok, nil
}

// Label classifies an output estimate with the output's own classifier.
// ok is false when the estimate is indeterminate or no term claims it.
//
// Errors: ErrUnknownVariable.
func (c *Controller) Label(output string) (string, bool, error) {
	v, ok, err := c.Estim(output)
	if err != nil || !ok {
		return "", false, err
	}
	n := c.byName[output]
	term, ok := n.Classifier().Classify(v)

	return term, ok, nil
}

// Result returns the combined fuzzy conclusion of a Mamdani output. ok is
// false for other methods or when a factor is indeterminate.
func (c *Controller) Result(output string) (*subset.Subset, bool) {
	n, found := c.output(output)
	if !found {
		return nil, false
	}
	m, isMamdani := n.Aggregator().(*infer.Mamdani)
	if !isMamdani {
		return nil, false
	}

	return m.Result(n)
}

// Inputs returns the input names in definition order.
func (c *Controller) Inputs() []string { return names(c.inputs) }

// Outputs returns the output names in definition order.
func (c *Controller) Outputs() []string { return names(c.outputs) }

// Input returns the node of an input.
func (c *Controller) Input(name string) (*infer.Node, bool) {
	if !c.isInput[name] {
		return nil, false
	}

	return c.byName[name], true
}

// Output returns the node of an output.
func (c *Controller) Output(name string) (*infer.Node, bool) { return c.output(name) }

func (c *Controller) output(name string) (*infer.Node, bool) {
	n, ok := c.byName[name]
	if !ok || c.isInput[name] {
		return nil, false
	}

	return n, true
}

func names(ns []*infer.Node) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.Name()
	}

	return out
}

// Explain writes every output tree (post-order, one node per line) followed
// by all rules with their last firing strengths, framed by
// "<fuzzy controller>" markers. Evaluation happens as a side effect.
func (c *Controller) Explain(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "<fuzzy controller>"); err != nil {
		return err
	}
	for _, out := range c.outputs {
		for n := range out.Walk() {
			if _, err := fmt.Fprintf(w, "  %s\n", n); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintln(w, "rules:"); err != nil {
		return err
	}
	for _, out := range c.outputs {
		for _, r := range out.Rules() {
			if _, err := fmt.Fprintf(w, "  %s: %s\n", out.Name(), r); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, "</fuzzy controller>")

	return err
}
