// SPDX-License-Identifier: MIT
// Package: fuzzycalc/subset
//
// errors.go — sentinel errors for the subset package.
//
// Error policy:
//   • Construction errors wrap fuzzycalc.ErrConfiguration.
//   • Operator/operand incompatibilities wrap fuzzycalc.ErrUnsupportedOperation.
//   • Indeterminate numeric results are comma-ok returns, never errors.

package subset

import (
	"fmt"

	"github.com/katalvlaran/fuzzycalc"
)

var (
	// ErrBadShape indicates non-monotonic or non-finite shape parameters
	// (e.g., a trapezoid with begin_tol < begin).
	ErrBadShape = fmt.Errorf("subset: invalid shape parameters: %w", fuzzycalc.ErrConfiguration)

	// ErrBadParameter indicates an invalid scalar argument (negative scale,
	// non-positive exponent, membership outside [0,1]).
	ErrBadParameter = fmt.Errorf("subset: invalid parameter: %w", fuzzycalc.ErrConfiguration)

	// ErrOutOfDomain indicates an anchor outside the subset's domain.
	ErrOutOfDomain = fmt.Errorf("subset: point outside domain: %w", fuzzycalc.ErrConfiguration)

	// ErrUnsupportedOperation indicates sampled algebra over an operand with
	// a zero-width domain (Point or any degenerate subset).
	ErrUnsupportedOperation = fmt.Errorf("subset: operand has zero-width support: %w", fuzzycalc.ErrUnsupportedOperation)
)

// subsetErrorf attaches operation context to a sentinel.
func subsetErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s(%s): %w", method, fmt.Sprintf(format, args...), err)
}
