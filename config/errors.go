// SPDX-License-Identifier: MIT
// Package: fuzzycalc/config
//
// errors.go — sentinel errors for loading controller definitions.

package config

import (
	"fmt"

	"github.com/katalvlaran/fuzzycalc"
)

var (
	// ErrParse indicates malformed YAML or unknown keys.
	ErrParse = fmt.Errorf("config: parse: %w", fuzzycalc.ErrConfiguration)

	// ErrInvalid indicates a definition that fails validation. The
	// underlying validator.ValidationErrors stays reachable via errors.As.
	ErrInvalid = fmt.Errorf("config: invalid: %w", fuzzycalc.ErrConfiguration)
)
