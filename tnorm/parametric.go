// SPDX-License-Identifier: MIT
//
// File: parametric.go
// Role: the seven parametric t-norm families.
// Policy:
//   - Constructors validate the parameter and return ErrBadParameter.
//   - Zero values of the family types are NOT validated; always construct.

package tnorm

import (
	"fmt"
	"math"
)

// dual returns the De Morgan conorm of t at (a, b).
func dual(t func(a, b float64) float64, a, b float64) float64 {
	return clamp(1 - t(1-a, 1-b))
}

// paramErrorf wraps ErrBadParameter with the family name and value.
func paramErrorf(family string, p float64, rule string) error {
	return fmt.Errorf("%s(p=%g): %s: %w", family, p, rule, ErrBadParameter)
}

// Hamacher is the Hamacher family. P = 0 gives the Hamacher product,
// P = 1 the algebraic product.
type Hamacher struct{ P float64 }

// NewHamacher validates p >= 0.
func NewHamacher(p float64) (Hamacher, error) {
	if !(p >= 0) || math.IsInf(p, 0) {
		return Hamacher{}, paramErrorf("Hamacher", p, "want p >= 0")
	}

	return Hamacher{P: p}, nil
}

// Norm returns ab / (p + (1-p)(a+b-ab)).
func (h Hamacher) Norm(a, b float64) float64 {
	den := h.P + (1-h.P)*(a+b-a*b)
	if den == 0 {
		return 0
	}

	return clamp(a * b / den)
}

// Conorm returns (a+b-(2-p)ab) / (1-(1-p)ab).
func (h Hamacher) Conorm(a, b float64) float64 {
	den := 1 - (1-h.P)*a*b
	if den == 0 {
		return 1
	}

	return clamp((a + b - (2-h.P)*a*b) / den)
}

// DuboisPrade is the Dubois–Prade family, 0 <= P <= 1.
type DuboisPrade struct{ P float64 }

// NewDuboisPrade validates 0 <= p <= 1.
func NewDuboisPrade(p float64) (DuboisPrade, error) {
	if !(p >= 0 && p <= 1) {
		return DuboisPrade{}, paramErrorf("DuboisPrade", p, "want 0 <= p <= 1")
	}

	return DuboisPrade{P: p}, nil
}

// Norm returns ab / max(a, b, p).
func (d DuboisPrade) Norm(a, b float64) float64 {
	den := math.Max(math.Max(a, b), d.P)
	if den == 0 {
		return 0
	}

	return clamp(a * b / den)
}

// Conorm returns (a+b-ab-min(a, b, 1-p)) / max(1-a, 1-b, p).
func (d DuboisPrade) Conorm(a, b float64) float64 {
	den := math.Max(math.Max(1-a, 1-b), d.P)
	if den == 0 {
		return 1
	}

	return clamp((a + b - a*b - math.Min(math.Min(a, b), 1-d.P)) / den)
}

// Dombi is the Dombi family, P > 0.
type Dombi struct{ P float64 }

// NewDombi validates p > 0.
func NewDombi(p float64) (Dombi, error) {
	if !(p > 0) || math.IsInf(p, 0) {
		return Dombi{}, paramErrorf("Dombi", p, "want p > 0")
	}

	return Dombi{P: p}, nil
}

// Norm returns 1 / (1 + ((1/a-1)^p + (1/b-1)^p)^(1/p)).
func (d Dombi) Norm(a, b float64) float64 {
	if a <= 0 || b <= 0 {
		return 0
	}
	s := math.Pow(1/a-1, d.P) + math.Pow(1/b-1, d.P)

	return clamp(1 / (1 + math.Pow(s, 1/d.P)))
}

// Conorm is the De Morgan dual of Norm.
func (d Dombi) Conorm(a, b float64) float64 { return dual(d.Norm, a, b) }

// SchweizerSklar is the Schweizer–Sklar family in its
// 1 - ((1-a)^p + (1-b)^p - (1-a)^p(1-b)^p)^(1/p) form, P > 0.
type SchweizerSklar struct{ P float64 }

// NewSchweizerSklar validates p > 0.
func NewSchweizerSklar(p float64) (SchweizerSklar, error) {
	if !(p > 0) || math.IsInf(p, 0) {
		return SchweizerSklar{}, paramErrorf("SchweizerSklar", p, "want p > 0")
	}

	return SchweizerSklar{P: p}, nil
}

// Norm returns 1 - ((1-a)^p + (1-b)^p - (1-a)^p(1-b)^p)^(1/p).
func (s SchweizerSklar) Norm(a, b float64) float64 {
	x, y := math.Pow(1-a, s.P), math.Pow(1-b, s.P)

	return clamp(1 - math.Pow(x+y-x*y, 1/s.P))
}

// Conorm returns (a^p + b^p - a^p·b^p)^(1/p).
func (s SchweizerSklar) Conorm(a, b float64) float64 {
	x, y := math.Pow(a, s.P), math.Pow(b, s.P)

	return clamp(math.Pow(x+y-x*y, 1/s.P))
}

// Yager is the Yager family, P > 0.
type Yager struct{ P float64 }

// NewYager validates p > 0.
func NewYager(p float64) (Yager, error) {
	if !(p > 0) || math.IsInf(p, 0) {
		return Yager{}, paramErrorf("Yager", p, "want p > 0")
	}

	return Yager{P: p}, nil
}

// Norm returns max(0, 1 - ((1-a)^p + (1-b)^p)^(1/p)).
func (y Yager) Norm(a, b float64) float64 {
	return clamp(1 - math.Pow(math.Pow(1-a, y.P)+math.Pow(1-b, y.P), 1/y.P))
}

// Conorm returns min(1, (a^p + b^p)^(1/p)).
func (y Yager) Conorm(a, b float64) float64 {
	return clamp(math.Pow(math.Pow(a, y.P)+math.Pow(b, y.P), 1/y.P))
}

// Frank is the Frank family, P > 0 and P != 1.
type Frank struct{ P float64 }

// NewFrank validates p > 0, p != 1.
func NewFrank(p float64) (Frank, error) {
	if !(p > 0) || p == 1 || math.IsInf(p, 0) {
		return Frank{}, paramErrorf("Frank", p, "want p > 0 and p != 1")
	}

	return Frank{P: p}, nil
}

// Norm returns log_p(1 + (p^a-1)(p^b-1)/(p-1)).
func (f Frank) Norm(a, b float64) float64 {
	v := 1 + (math.Pow(f.P, a)-1)*(math.Pow(f.P, b)-1)/(f.P-1)
	if v <= 0 {
		return 0
	}

	return clamp(math.Log(v) / math.Log(f.P))
}

// Conorm is the De Morgan dual of Norm.
func (f Frank) Conorm(a, b float64) float64 { return dual(f.Norm, a, b) }

// Weber is the Sugeno–Weber family, P > -1.
type Weber struct{ P float64 }

// NewWeber validates p > -1.
func NewWeber(p float64) (Weber, error) {
	if !(p > -1) || math.IsInf(p, 0) {
		return Weber{}, paramErrorf("Weber", p, "want p > -1")
	}

	return Weber{P: p}, nil
}

// Norm returns max(0, (a+b-1+p·ab)/(1+p)).
func (w Weber) Norm(a, b float64) float64 {
	return clamp((a + b - 1 + w.P*a*b) / (1 + w.P))
}

// Conorm is the De Morgan dual of Norm.
func (w Weber) Conorm(a, b float64) float64 { return dual(w.Norm, a, b) }
