// SPDX-License-Identifier: MIT
//
// File: algebra.go
// Role: pointwise algebra over fuzzy subsets.
// Policy:
//   - Every operator allocates a fresh *Subset sampled over the union domain
//     (binary) or the operand's domain (unary); operands are never mutated.
//   - The result inherits the left operand's norm pair and precision.
//   - Operands with a zero-width domain are rejected: ErrUnsupportedOperation.

package subset

import (
	"math"
)

// Add returns min(a(x)+b(x), 1).
func Add(a, b Set) (*Subset, error) {
	return combine("Add", a, b, func(u, v float64) float64 { return math.Min(u+v, 1) })
}

// Sub returns max(a(x)-b(x), 0).
func Sub(a, b Set) (*Subset, error) {
	return combine("Sub", a, b, func(u, v float64) float64 { return math.Max(u-v, 0) })
}

// Mul returns a(x)·b(x).
func Mul(a, b Set) (*Subset, error) {
	return combine("Mul", a, b, func(u, v float64) float64 { return u * v })
}

// And returns min(a(x), b(x)).
func And(a, b Set) (*Subset, error) {
	return combine("And", a, b, math.Min)
}

// Or returns max(a(x), b(x)).
func Or(a, b Set) (*Subset, error) {
	return combine("Or", a, b, math.Max)
}

// TNorm combines a and b with a's configured t-norm.
func TNorm(a, b Set) (*Subset, error) {
	return combine("TNorm", a, b, a.Norm().Norm)
}

// TConorm combines a and b with a's configured t-conorm.
func TConorm(a, b Set) (*Subset, error) {
	return combine("TConorm", a, b, a.Norm().Conorm)
}

// Scale returns min(k·a(x), 1).
//
// Errors: ErrBadParameter if k is negative or NaN.
func Scale(a Set, k float64) (*Subset, error) {
	if math.IsNaN(k) || k < 0 {
		return nil, subsetErrorf("Scale", ErrBadParameter, "k=%g", k)
	}

	return unary("Scale", a, func(v float64) float64 { return math.Min(v*k, 1) })
}

// Pow returns a(x)^p: p > 1 concentrates, p < 1 dilates.
//
// Errors: ErrBadParameter if p is not a positive finite number.
func Pow(a Set, p float64) (*Subset, error) {
	if !finite(p) || p <= 0 {
		return nil, subsetErrorf("Pow", ErrBadParameter, "p=%g", p)
	}

	return unary("Pow", a, func(v float64) float64 { return math.Pow(v, p) })
}

// Complement returns 1 - a(x) over a's domain.
func Complement(a Set) (*Subset, error) {
	return unary("Complement", a, func(v float64) float64 { return 1 - v })
}

// Clip returns min(a(x), alpha); alpha is clamped to [0,1].
func Clip(a Set, alpha float64) (*Subset, error) {
	alpha = math.Max(0, math.Min(alpha, 1))

	return unary("Clip", a, func(v float64) float64 { return math.Min(v, alpha) })
}

// Normalize rescales a so that its height is 1. A subset of height 0 is
// returned as a sampled copy.
func Normalize(a Set) (*Subset, error) {
	h := Sup(a)
	if h <= 0 {
		return unary("Normalize", a, func(v float64) float64 { return v })
	}

	return unary("Normalize", a, func(v float64) float64 { return math.Min(v/h, 1) })
}

// combine samples op(a(x), b(x)) over the union of both domains.
func combine(method string, a, b Set, op func(u, v float64) float64) (*Subset, error) {
	if err := sampleable(method, a); err != nil {
		return nil, err
	}
	if err := sampleable(method, b); err != nil {
		return nil, err
	}
	bs := base{dom: a.Domain().Union(b.Domain()), norm: a.Norm(), eps: a.Precision()}

	return sampled(bs, func(x float64) float64 {
		return clamp01(op(a.Value(x), b.Value(x)))
	}), nil
}

// unary samples op(a(x)) over a's domain.
func unary(method string, a Set, op func(v float64) float64) (*Subset, error) {
	if err := sampleable(method, a); err != nil {
		return nil, err
	}
	bs := base{dom: a.Domain(), norm: a.Norm(), eps: a.Precision()}

	return sampled(bs, func(x float64) float64 { return clamp01(op(a.Value(x))) }), nil
}

// sampleable rejects operands whose domain has zero width.
func sampleable(method string, s Set) error {
	if d := s.Domain(); d.Degenerate() {
		return subsetErrorf(method, ErrUnsupportedOperation, "domain=%s", d)
	}

	return nil
}

// clamp01 bounds v to [0,1]; NaN maps to 0.
func clamp01(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v > 0:
		return v
	default:
		return 0
	}
}
