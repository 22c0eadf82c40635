// SPDX-License-Identifier: MIT
// Package: fuzzycalc/domain
//
// errors.go — sentinel errors for the domain package.
//
// All sentinels wrap fuzzycalc.ErrConfiguration: a Domain can only fail at
// construction time. Callers SHOULD branch with errors.Is.

package domain

import (
	"fmt"

	"github.com/katalvlaran/fuzzycalc"
)

var (
	// ErrBadAccuracy indicates a zero or negative sample count.
	ErrBadAccuracy = fmt.Errorf("domain: accuracy must be positive: %w", fuzzycalc.ErrConfiguration)

	// ErrBadBounds indicates NaN/Inf bounds or begin > end.
	ErrBadBounds = fmt.Errorf("domain: bounds must be finite and ordered: %w", fuzzycalc.ErrConfiguration)

	// ErrDegenerate indicates begin == end where a proper range is required
	// (integer ranges).
	ErrDegenerate = fmt.Errorf("domain: degenerate range: %w", fuzzycalc.ErrConfiguration)
)

// domainErrorf attaches constructor context to a sentinel.
func domainErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s(%s): %w", method, fmt.Sprintf(format, args...), err)
}
