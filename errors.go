// SPDX-License-Identifier: MIT
//
// errors.go — error kinds shared by every fuzzycalc package.
//
// Error policy:
//   • Subpackages declare their own sentinels and wrap one of these kinds
//     with %w, so errors.Is(err, fuzzycalc.ErrConfiguration) classifies any
//     construction failure regardless of the package that produced it.
//   • Numerically indeterminate results (zero membership mass, missing
//     estimates) are NOT errors; they are reported through comma-ok returns.

package fuzzycalc

import "errors"

// ErrConfiguration indicates invalid construction parameters: non-monotonic
// shape points, non-positive accuracy, a degenerate range where a proper one
// is required, unknown rule references and similar programmer errors.
var ErrConfiguration = errors.New("fuzzycalc: configuration error")

// ErrDomainMismatch indicates an operation over structurally incompatible
// domains or classifiers (e.g., classifying against a disjoint term set).
var ErrDomainMismatch = errors.New("fuzzycalc: domain mismatch")

// ErrUnsupportedOperation indicates an operator invoked on operand kinds it
// cannot handle (e.g., sampled algebra over a zero-width Point).
var ErrUnsupportedOperation = errors.New("fuzzycalc: unsupported operation")
