// SPDX-License-Identifier: MIT
//
// File: classifier.go
// Role: FuzzySet, term registry and classification.
// Policy:
//   - Terms keep insertion order; classification ties go to the first term.
//   - Terms must overlap the classifier's domain.

package classifier

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/fuzzycalc/domain"
	"github.com/katalvlaran/fuzzycalc/subset"
)

// FuzzySet is a classifier: ordered, labelled fuzzy terms over one domain.
//
// A FuzzySet is immutable after construction except through AddTerm; it is
// safe for concurrent reads.
type FuzzySet struct {
	name  string
	dom   domain.Domain
	names []string
	terms map[string]subset.Set
}

// Membership is the degree of one term at a point.
type Membership struct {
	Term   string
	Degree float64
}

// New returns an empty classifier over d.
func New(name string, d domain.Domain) *FuzzySet {
	return &FuzzySet{name: name, dom: d, terms: make(map[string]subset.Set)}
}

// Name returns the classifier label.
func (f *FuzzySet) Name() string { return f.name }

// Domain returns the shared domain.
func (f *FuzzySet) Domain() domain.Domain { return f.dom }

// Len returns the number of terms.
func (f *FuzzySet) Len() int { return len(f.names) }

// AddTerm registers s under label name.
//
// Errors:
//   - ErrBadTerm if name is empty or s is nil.
//   - ErrDuplicateTerm if name is taken.
//   - ErrDomainMismatch if s's domain does not overlap the classifier's.
func (f *FuzzySet) AddTerm(name string, s subset.Set) error {
	if name == "" || s == nil {
		return classifierErrorf("AddTerm", ErrBadTerm, "name=%q", name)
	}
	if _, dup := f.terms[name]; dup {
		return classifierErrorf("AddTerm", ErrDuplicateTerm, "name=%q", name)
	}
	if !s.Domain().Overlaps(f.dom) {
		return classifierErrorf("AddTerm", ErrDomainMismatch, "term %s vs %s", s.Domain(), f.dom)
	}
	f.names = append(f.names, name)
	f.terms[name] = s

	return nil
}

// Term returns the term labelled name.
func (f *FuzzySet) Term(name string) (subset.Set, bool) {
	s, ok := f.terms[name]
	return s, ok
}

// Names returns the term labels in insertion order.
func (f *FuzzySet) Names() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)

	return out
}

// Terms iterates over (label, term) in insertion order.
func (f *FuzzySet) Terms() iter.Seq2[string, subset.Set] {
	return func(yield func(string, subset.Set) bool) {
		for _, n := range f.names {
			if !yield(n, f.terms[n]) {
				return
			}
		}
	}
}

// Find returns the membership of x in term.
//
// Errors: ErrUnknownTerm.
func (f *FuzzySet) Find(x float64, term string) (float64, error) {
	s, ok := f.terms[term]
	if !ok {
		return 0, classifierErrorf("Find", ErrUnknownTerm, "term=%q", term)
	}

	return s.Value(x), nil
}

// Memberships returns the degree of every term at x, in insertion order.
func (f *FuzzySet) Memberships(x float64) []Membership {
	out := make([]Membership, 0, len(f.names))
	for n, s := range f.Terms() {
		out = append(out, Membership{Term: n, Degree: s.Value(x)})
	}

	return out
}

// Classify returns the label of the term with the highest membership at x.
// ok is false when every membership is 0.
func (f *FuzzySet) Classify(x float64) (string, bool) {
	return argmax(f.Terms(), func(s subset.Set) float64 { return s.Value(x) })
}

// ClassifySet returns the label of the term whose intersection with s has
// the largest cardinality. A zero-width s (a crisp point) is classified by
// its mode.
//
// Errors: ErrDomainMismatch if s's domain does not overlap the classifier's.
func (f *FuzzySet) ClassifySet(s subset.Set) (string, bool, error) {
	if s == nil {
		return "", false, classifierErrorf("ClassifySet", ErrBadTerm, "nil input")
	}
	if !s.Domain().Overlaps(f.dom) {
		return "", false, classifierErrorf("ClassifySet", ErrDomainMismatch, "input %s vs %s", s.Domain(), f.dom)
	}
	if s.Domain().Degenerate() {
		name, ok := f.Classify(s.Mode())
		return name, ok, nil
	}

	var firstErr error
	name, ok := argmax(f.Terms(), func(t subset.Set) float64 {
		meet, err := subset.And(s, t)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return 0
		}
		return meet.Card()
	})
	if firstErr != nil {
		return "", false, firstErr
	}

	return name, ok, nil
}

// Plot renders every term through p, labelled with the term name.
func (f *FuzzySet) Plot(p subset.Plotter) error {
	for n, s := range f.Terms() {
		if err := subset.Plot(p, s, subset.PlotOptions{Label: n}); err != nil {
			return fmt.Errorf("classifier %q term %q: %w", f.name, n, err)
		}
	}

	return nil
}

// String renders "name{I, II, III}".
func (f *FuzzySet) String() string {
	return fmt.Sprintf("%s{%s}", f.name, strings.Join(f.names, ", "))
}

// argmax returns the first label with the strictly highest positive score.
func argmax(terms iter.Seq2[string, subset.Set], score func(subset.Set) float64) (string, bool) {
	best, name := 0.0, ""
	for n, s := range terms {
		if v := score(s); v > best {
			best, name = v, n
		}
	}

	return name, name != ""
}
