// SPDX-License-Identifier: MIT
//
// File: tnorm.go
// Role: Norm contract, simple pairs and name-based lookup.

package tnorm

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/fuzzycalc"
)

// ErrBadParameter indicates a parametric family received a parameter
// outside its admissible range.
var ErrBadParameter = fmt.Errorf("tnorm: parameter out of range: %w", fuzzycalc.ErrConfiguration)

// ErrUnknownFamily indicates ByName received an unregistered family name.
var ErrUnknownFamily = fmt.Errorf("tnorm: unknown family: %w", fuzzycalc.ErrConfiguration)

// Norm is a t-norm / t-conorm pair.
type Norm interface {
	// Norm is the fuzzy AND of two membership degrees.
	Norm(a, b float64) float64
	// Conorm is the fuzzy OR of two membership degrees.
	Conorm(a, b float64) float64
}

// Default returns the pair used when none is configured (MinMax).
func Default() Norm { return MinMax{} }

// MinMax is the Zadeh pair: min / max.
type MinMax struct{}

// Norm returns min(a, b).
func (MinMax) Norm(a, b float64) float64 { return math.Min(a, b) }

// Conorm returns max(a, b).
func (MinMax) Conorm(a, b float64) float64 { return math.Max(a, b) }

// SumProd is the algebraic product with the probabilistic sum.
type SumProd struct{}

// Norm returns a·b.
func (SumProd) Norm(a, b float64) float64 { return a * b }

// Conorm returns a + b - a·b.
func (SumProd) Conorm(a, b float64) float64 { return clamp(a + b - a*b) }

// Margin is the Łukasiewicz pair: bounded difference / bounded sum.
type Margin struct{}

// Norm returns max(a+b-1, 0).
func (Margin) Norm(a, b float64) float64 { return math.Max(a+b-1, 0) }

// Conorm returns min(a+b, 1).
func (Margin) Conorm(a, b float64) float64 { return math.Min(a+b, 1) }

// Drastic is the drastic product / drastic sum pair.
type Drastic struct{}

// Norm returns b if a == 1, a if b == 1, else 0.
func (Drastic) Norm(a, b float64) float64 {
	switch {
	case a == 1:
		return b
	case b == 1:
		return a
	default:
		return 0
	}
}

// Conorm returns b if a == 0, a if b == 0, else 1.
func (Drastic) Conorm(a, b float64) float64 {
	switch {
	case a == 0:
		return b
	case b == 0:
		return a
	default:
		return 1
	}
}

// Fold applies the t-norm left to right starting from the neutral element 1.
// Fold of no values is 1.
func Fold(n Norm, values ...float64) float64 {
	acc := 1.0
	for _, v := range values {
		acc = n.Norm(acc, v)
	}

	return acc
}

// FoldConorm applies the t-conorm left to right starting from 0.
func FoldConorm(n Norm, values ...float64) float64 {
	acc := 0.0
	for _, v := range values {
		acc = n.Conorm(acc, v)
	}

	return acc
}

// Names lists the family names understood by ByName.
func Names() []string {
	return []string{
		"minmax", "sumprod", "margin", "drastic",
		"hamacher", "duboisprade", "dombi", "schweizersklar", "yager", "frank", "weber",
	}
}

// ByName resolves a family by its case-insensitive name. The parameter is
// ignored by the simple pairs.
//
// Errors:
//   - ErrUnknownFamily for unregistered names.
//   - ErrBadParameter from the parametric constructors.
func ByName(name string, p float64) (Norm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "minmax", "min_max", "zadeh":
		return MinMax{}, nil
	case "sumprod", "sum_prod", "product":
		return SumProd{}, nil
	case "margin", "lukasiewicz":
		return Margin{}, nil
	case "drastic":
		return Drastic{}, nil
	case "hamacher":
		return NewHamacher(p)
	case "duboisprade", "dubois_prade":
		return NewDuboisPrade(p)
	case "dombi":
		return NewDombi(p)
	case "schweizersklar", "schweizer_sklar":
		return NewSchweizerSklar(p)
	case "yager":
		return NewYager(p)
	case "frank":
		return NewFrank(p)
	case "weber", "sugeno_weber":
		return NewWeber(p)
	}

	return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownFamily)
}

// clamp bounds v to [0,1] and maps NaN to 0.
func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
