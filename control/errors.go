// SPDX-License-Identifier: MIT
// Package: fuzzycalc/control
//
// errors.go — sentinel errors for controller wiring.

package control

import (
	"fmt"

	"github.com/katalvlaran/fuzzycalc"
)

var (
	// ErrBadVariable indicates an empty variable name or a nil classifier.
	ErrBadVariable = fmt.Errorf("control: invalid variable: %w", fuzzycalc.ErrConfiguration)

	// ErrDuplicateVariable indicates a name already used by an input or output.
	ErrDuplicateVariable = fmt.Errorf("control: duplicate variable: %w", fuzzycalc.ErrConfiguration)

	// ErrUnknownVariable indicates a reference to an undefined input or output.
	ErrUnknownVariable = fmt.Errorf("control: unknown variable: %w", fuzzycalc.ErrConfiguration)

	// ErrOutputsDefined indicates DefineInput after outputs were wired.
	ErrOutputsDefined = fmt.Errorf("control: outputs already defined: %w", fuzzycalc.ErrConfiguration)

	// ErrUnknownMethod indicates an unrecognized aggregation method name.
	ErrUnknownMethod = fmt.Errorf("control: unknown method: %w", fuzzycalc.ErrConfiguration)
)
