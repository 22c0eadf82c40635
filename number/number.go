// SPDX-License-Identifier: MIT
//
// File: number.go
// Role: the Number value type (generalized trapezoid) and its subset.Set view.

package number

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fuzzycalc/domain"
	"github.com/katalvlaran/fuzzycalc/subset"
	"github.com/katalvlaran/fuzzycalc/tnorm"
)

// Option configures a Number at construction time.
type Option func(*Number)

// WithAccuracy sets the sample count of the domain [begin, end].
// Panics if n <= 0.
func WithAccuracy(n int) Option {
	if n <= 0 {
		panic("number: WithAccuracy: accuracy must be positive")
	}

	return func(nb *Number) { nb.accuracy = n }
}

// WithNorm sets the t-norm used to join composed flanks and by the subset
// algebra. Panics if n is nil.
func WithNorm(n tnorm.Norm) Option {
	if n == nil {
		panic("number: WithNorm: norm must be non-nil")
	}

	return func(nb *Number) { nb.norm = n }
}

// WithPrecision sets the tolerance reported through subset.Set.
func WithPrecision(eps float64) Option {
	if math.IsNaN(eps) || eps < 0 {
		panic("number: WithPrecision: eps must be non-negative")
	}

	return func(nb *Number) { nb.eps = eps }
}

// Number is a generalized trapezoidal fuzzy number. It is immutable.
type Number struct {
	begin, beginTol, endTol, end float64

	left, right    Shape
	lslope, rslope Slope

	accuracy int
	dom      domain.Domain
	norm     tnorm.Norm
	eps      float64
}

// New builds the number with corners begin ≤ beginTol ≤ endTol ≤ end and the
// given flank shapes. A zero-width flank is a step.
//
// Errors:
//   - ErrBadShape if a corner is NaN/Inf, the corners are unordered or a
//     shape is nil.
func New(begin, beginTol, endTol, end float64, left, right Shape, opts ...Option) (Number, error) {
	vals := [...]float64{begin, beginTol, endTol, end}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Number{}, numberErrorf("New", ErrBadShape, "non-finite corner %g", v)
		}
	}
	if begin > beginTol || beginTol > endTol || endTol > end {
		return Number{}, numberErrorf("New", ErrBadShape, "%g, %g, %g, %g", begin, beginTol, endTol, end)
	}
	if left == nil || right == nil {
		return Number{}, numberErrorf("New", ErrBadShape, "nil flank")
	}

	n := Number{
		begin: begin, beginTol: beginTol, endTol: endTol, end: end,
		left: left, right: right,
		accuracy: domain.DefaultAccuracy,
		norm:     tnorm.Default(),
		eps:      subset.DefaultPrecision,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&n)
		}
	}
	if begin == beginTol {
		n.left = flat
	}
	if endTol == end {
		n.right = flat
	}
	n.lslope = n.left(beginTol, begin)
	n.rslope = n.right(endTol, end)

	d, err := domain.New(begin, end, n.accuracy)
	if err != nil {
		return Number{}, err
	}
	n.dom = d

	return n, nil
}

// Trapezoid builds the classical trapezoidal fuzzy number (linear flanks).
func Trapezoid(a, b, c, d float64, opts ...Option) (Number, error) {
	return New(a, b, c, d, Line(1), Line(1), opts...)
}

// Crisp builds the degenerate number {v}.
func Crisp(v float64, opts ...Option) (Number, error) {
	return New(v, v, v, v, Line(1), Line(1), opts...)
}

// Value returns the membership of x: 1 on [beginTol, endTol], 0 outside
// (begin, end), the flank value in between (clamped to [0,1]).
func (n Number) Value(x float64) float64 {
	switch {
	case x >= n.beginTol && x <= n.endTol:
		return 1
	case x <= n.begin || x >= n.end:
		return 0
	case x < n.beginTol:
		return clamp01(n.lslope(x))
	default:
		return clamp01(n.rslope(x))
	}
}

// Domain returns [begin, end].
func (n Number) Domain() domain.Domain { return n.dom }

// Norm returns the t-norm used for flank composition.
func (n Number) Norm() tnorm.Norm { return n.norm }

// Precision returns the configured tolerance.
func (n Number) Precision() float64 { return n.eps }

// Card returns the sampled area under the curve.
func (n Number) Card() float64 { return subset.SampledCard(n) }

// Mode returns beginTol.
func (n Number) Mode() float64 { return n.beginTol }

// Centr returns the sampled centroid.
func (n Number) Centr() (float64, bool) { return subset.SampledCentr(n) }

// Corners returns (begin, beginTol, endTol, end).
func (n Number) Corners() (begin, beginTol, endTol, end float64) {
	return n.begin, n.beginTol, n.endTol, n.end
}

// IsCrisp reports whether all four corners coincide.
func (n Number) IsCrisp() bool { return n.begin == n.end }

// Marks returns the four corners.
func (n Number) Marks() []subset.Pair {
	return []subset.Pair{{X: n.begin}, {X: n.beginTol, Y: 1}, {X: n.endTol, Y: 1}, {X: n.end}}
}

// String renders the corners.
func (n Number) String() string {
	return fmt.Sprintf("<%g, %g, %g, %g>", n.begin, n.beginTol, n.endTol, n.end)
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
