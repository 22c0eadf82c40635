// SPDX-License-Identifier: MIT
// Package: fuzzycalc/infer
//
// errors.go — sentinel errors for tree construction and rule registration.
//
// All sentinels wrap fuzzycalc.ErrConfiguration: they are raised while the
// hierarchy is built, never during evaluation.

package infer

import (
	"fmt"

	"github.com/katalvlaran/fuzzycalc"
)

var (
	// ErrBadNode indicates a nil node or an empty node name.
	ErrBadNode = fmt.Errorf("infer: invalid node: %w", fuzzycalc.ErrConfiguration)

	// ErrBadWeight indicates a negative or non-finite weight.
	ErrBadWeight = fmt.Errorf("infer: invalid weight: %w", fuzzycalc.ErrConfiguration)

	// ErrCycle indicates that adding a child would make a node its own descendant.
	ErrCycle = fmt.Errorf("infer: cycle detected: %w", fuzzycalc.ErrConfiguration)

	// ErrDuplicateChild indicates a child name already used under the same parent.
	ErrDuplicateChild = fmt.Errorf("infer: duplicate child: %w", fuzzycalc.ErrConfiguration)

	// ErrUnknownFactor indicates a rule antecedent naming a non-child.
	ErrUnknownFactor = fmt.Errorf("infer: unknown factor: %w", fuzzycalc.ErrConfiguration)

	// ErrUnknownTerm indicates a rule term missing from the relevant classifier.
	ErrUnknownTerm = fmt.Errorf("infer: unknown term: %w", fuzzycalc.ErrConfiguration)

	// ErrNoClassifier indicates a rule over a node (or factor) without a classifier.
	ErrNoClassifier = fmt.Errorf("infer: node has no classifier: %w", fuzzycalc.ErrConfiguration)

	// ErrNotRuleBased indicates AddRule on a node whose aggregator keeps no rules.
	ErrNotRuleBased = fmt.Errorf("infer: aggregator is not rule-based: %w", fuzzycalc.ErrConfiguration)
)

// nodeErrorf attaches the node and operation to a sentinel.
func nodeErrorf(node, method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("node %q: %s(%s): %w", node, method, fmt.Sprintf(format, args...), err)
}
