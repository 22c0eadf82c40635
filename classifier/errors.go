// SPDX-License-Identifier: MIT
// Package: fuzzycalc/classifier
//
// errors.go — sentinel errors for classifier construction and lookup.

package classifier

import (
	"fmt"

	"github.com/katalvlaran/fuzzycalc"
)

var (
	// ErrBadTerm indicates an empty term name or a nil term subset.
	ErrBadTerm = fmt.Errorf("classifier: invalid term: %w", fuzzycalc.ErrConfiguration)

	// ErrDuplicateTerm indicates a term label that is already registered.
	ErrDuplicateTerm = fmt.Errorf("classifier: duplicate term: %w", fuzzycalc.ErrConfiguration)

	// ErrUnknownTerm indicates a lookup of an unregistered term label.
	ErrUnknownTerm = fmt.Errorf("classifier: unknown term: %w", fuzzycalc.ErrConfiguration)

	// ErrBadPartition indicates invalid layout parameters (too few names,
	// non-positive cross, overlap outside [0,1], peaks outside the domain).
	ErrBadPartition = fmt.Errorf("classifier: invalid partition: %w", fuzzycalc.ErrConfiguration)

	// ErrDomainMismatch indicates a term or a fuzzy input that does not
	// share the classifier's domain.
	ErrDomainMismatch = fmt.Errorf("classifier: %w", fuzzycalc.ErrDomainMismatch)
)

// classifierErrorf attaches context to a sentinel.
func classifierErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s(%s): %w", method, fmt.Sprintf(format, args...), err)
}
