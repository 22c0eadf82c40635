// SPDX-License-Identifier: MIT
//
// File: shapes.go
// Role: closed-form subsets (Trapezoidal, Triangle, Interval, Point, Gaussian).
// Policy:
//   - Shapes are immutable values; Value ignores the domain and evaluates
//     the analytic curve.
//   - Card, Mode and Centr use exact formulas instead of sampling.

package subset

import (
	"math"
)

// Trapezoidal is the shape 0 → 1 → 1 → 0 with corners a ≤ b ≤ c ≤ d.
// Its default domain is [a, d].
type Trapezoidal struct {
	base
	a, b, c, d float64
}

// NewTrapezoidal validates the corners and builds the shape.
//
// Errors: ErrBadShape if a corner is NaN/Inf or the corners are not
// non-decreasing.
func NewTrapezoidal(a, b, c, d float64, opts ...Option) (Trapezoidal, error) {
	if !finite(a, b, c, d) || a > b || b > c || c > d {
		return Trapezoidal{}, subsetErrorf("NewTrapezoidal", ErrBadShape, "%g, %g, %g, %g", a, b, c, d)
	}
	bs, err := newBase(a, d, opts)
	if err != nil {
		return Trapezoidal{}, err
	}

	return Trapezoidal{base: bs, a: a, b: b, c: c, d: d}, nil
}

// Value evaluates the piecewise-linear curve. Zero-width slopes are steps.
func (t Trapezoidal) Value(x float64) float64 {
	switch {
	case x >= t.b && x <= t.c:
		return 1
	case x <= t.a || x >= t.d:
		return 0
	case x < t.b:
		return (x - t.a) / (t.b - t.a)
	default:
		return (t.d - x) / (t.d - t.c)
	}
}

// Card returns the exact area (b-a)/2 + (c-b) + (d-c)/2.
func (t Trapezoidal) Card() float64 {
	return (t.b-t.a)/2 + (t.c - t.b) + (t.d-t.c)/2
}

// Mode returns b, the first point of the plateau.
func (t Trapezoidal) Mode() float64 { return t.b }

// Centr returns the exact centroid of the trapezoid. A zero-area shape
// (all corners equal) has its centroid at that point.
func (t Trapezoidal) Centr() (float64, bool) {
	den := 3 * ((t.c + t.d) - (t.a + t.b))
	if den == 0 {
		return t.b, true
	}
	num := (t.c*t.c + t.d*t.d + t.c*t.d) - (t.a*t.a + t.b*t.b + t.a*t.b)

	return num / den, true
}

// MeanOfMaximum returns the midpoint of the plateau.
func (t Trapezoidal) MeanOfMaximum() float64 { return (t.b + t.c) / 2 }

// Median returns the mean of the four corners.
func (t Trapezoidal) Median() float64 { return (t.a + t.b + t.c + t.d) / 4 }

// Corners returns (a, b, c, d).
func (t Trapezoidal) Corners() (a, b, c, d float64) { return t.a, t.b, t.c, t.d }

// Marks returns the four corners with their memberships.
func (t Trapezoidal) Marks() []Pair {
	return []Pair{{t.a, t.Value(t.a)}, {t.b, 1}, {t.c, 1}, {t.d, t.Value(t.d)}}
}

// Triangle is a Trapezoidal whose plateau collapses to the peak b.
type Triangle struct {
	Trapezoidal
}

// NewTriangle builds the triangle a ≤ b ≤ c.
//
// Errors: ErrBadShape as NewTrapezoidal.
func NewTriangle(a, b, c float64, opts ...Option) (Triangle, error) {
	t, err := NewTrapezoidal(a, b, b, c, opts...)
	if err != nil {
		return Triangle{}, err
	}

	return Triangle{Trapezoidal: t}, nil
}

// Centr returns (a+b+c)/3.
func (t Triangle) Centr() (float64, bool) { return (t.a + t.b + t.d) / 3, true }

// Marks returns the three vertices.
func (t Triangle) Marks() []Pair {
	return []Pair{{t.a, t.Value(t.a)}, {t.b, 1}, {t.d, t.Value(t.d)}}
}

// Interval is the crisp set [a, b] (membership 1 inside, 0 outside).
// Its default domain extends twice the width on both sides.
type Interval struct {
	base
	a, b float64
}

// NewInterval builds the crisp interval [a, b].
//
// Errors: ErrBadShape if a bound is NaN/Inf or a > b.
func NewInterval(a, b float64, opts ...Option) (Interval, error) {
	if !finite(a, b) || a > b {
		return Interval{}, subsetErrorf("NewInterval", ErrBadShape, "%g, %g", a, b)
	}
	w := b - a
	bs, err := newBase(a-2*w, b+2*w, opts)
	if err != nil {
		return Interval{}, err
	}

	return Interval{base: bs, a: a, b: b}, nil
}

// Value is 1 on [a, b] and 0 elsewhere.
func (i Interval) Value(x float64) float64 {
	if x >= i.a && x <= i.b {
		return 1
	}

	return 0
}

// Card returns b - a.
func (i Interval) Card() float64 { return i.b - i.a }

// Mode returns a.
func (i Interval) Mode() float64 { return i.a }

// Centr returns (a+b)/2.
func (i Interval) Centr() (float64, bool) { return (i.a + i.b) / 2, true }

// Bounds returns (a, b).
func (i Interval) Bounds() (a, b float64) { return i.a, i.b }

// Marks returns both bounds.
func (i Interval) Marks() []Pair { return []Pair{{i.a, 1}, {i.b, 1}} }

// Point is the crisp singleton {a} over a degenerate domain.
type Point struct {
	base
	a float64
}

// NewPoint builds the singleton {a}.
//
// Errors: ErrBadShape if a is NaN/Inf.
func NewPoint(a float64, opts ...Option) (Point, error) {
	if !finite(a) {
		return Point{}, subsetErrorf("NewPoint", ErrBadShape, "%g", a)
	}
	bs, err := newBase(a, a, opts)
	if err != nil {
		return Point{}, err
	}

	return Point{base: bs, a: a}, nil
}

// Value is 1 at a and 0 elsewhere.
func (p Point) Value(x float64) float64 {
	if x == p.a {
		return 1
	}

	return 0
}

// Card is 0.
func (p Point) Card() float64 { return 0 }

// Mode returns a.
func (p Point) Mode() float64 { return p.a }

// Centr returns a.
func (p Point) Centr() (float64, bool) { return p.a, true }

// At returns the crisp value.
func (p Point) At() float64 { return p.a }

// Marks returns the singleton.
func (p Point) Marks() []Pair { return []Pair{{p.a, 1}} }

// Gaussian is exp(-(x-μ)²/(2ω²)) over the default domain μ ± 5ω.
type Gaussian struct {
	base
	mu, omega float64
}

// NewGaussian builds the bell curve centred at mu with width omega.
//
// Errors: ErrBadShape if mu is NaN/Inf or omega is not a positive finite
// number.
func NewGaussian(mu, omega float64, opts ...Option) (Gaussian, error) {
	if !finite(mu, omega) || omega <= 0 {
		return Gaussian{}, subsetErrorf("NewGaussian", ErrBadShape, "mu=%g, omega=%g", mu, omega)
	}
	bs, err := newBase(mu-5*omega, mu+5*omega, opts)
	if err != nil {
		return Gaussian{}, err
	}

	return Gaussian{base: bs, mu: mu, omega: omega}, nil
}

// Value evaluates the bell curve.
func (g Gaussian) Value(x float64) float64 {
	z := (x - g.mu) / g.omega

	return math.Exp(-z * z / 2)
}

// Card returns √(2π)·ω.
func (g Gaussian) Card() float64 { return math.Sqrt(2*math.Pi) * g.omega }

// Mode returns μ.
func (g Gaussian) Mode() float64 { return g.mu }

// Centr returns μ.
func (g Gaussian) Centr() (float64, bool) { return g.mu, true }

// Params returns (μ, ω).
func (g Gaussian) Params() (mu, omega float64) { return g.mu, g.omega }

// Marks returns the peak and the two inflection points.
func (g Gaussian) Marks() []Pair {
	return []Pair{
		{g.mu - g.omega, g.Value(g.mu - g.omega)},
		{g.mu, 1},
		{g.mu + g.omega, g.Value(g.mu + g.omega)},
	}
}

// finite reports whether every value is neither NaN nor ±Inf.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
