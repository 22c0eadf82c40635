// SPDX-License-Identifier: MIT
// Package: fuzzycalc/number
//
// errors.go — sentinel errors for fuzzy-number construction and arithmetic.

package number

import (
	"fmt"

	"github.com/katalvlaran/fuzzycalc"
)

var (
	// ErrBadShape indicates non-finite or unordered corners, or a nil flank.
	ErrBadShape = fmt.Errorf("number: invalid corners or flank: %w", fuzzycalc.ErrConfiguration)

	// ErrDivisionByZero indicates a divisor whose support contains 0.
	ErrDivisionByZero = fmt.Errorf("number: divisor support contains zero: %w", fuzzycalc.ErrUnsupportedOperation)
)

// numberErrorf attaches operation context to a sentinel.
func numberErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s(%s): %w", method, fmt.Sprintf(format, args...), err)
}
