// SPDX-License-Identifier: MIT
//
// File: domain.go
// Role: Domain value type, constructors and lazy point iteration.
// Policy:
//   - Points are generated by index (begin + k·step), the final point is end.
//   - No hidden state: a Domain is a plain comparable value.

package domain

import (
	"fmt"
	"iter"
	"math"
)

// DefaultAccuracy is the sample count used when a caller does not pick one.
// It trades precision of numeric functionals (cardinality, centroid) for
// speed; closed-form shapes do not depend on it.
const DefaultAccuracy = 1500

// Domain is an evenly sampled range [begin, end].
//
// The zero value is an empty domain (no points); use New, Default or
// NewInteger to obtain a usable one.
type Domain struct {
	begin    float64
	end      float64
	accuracy int
	integer  bool
}

// New builds a real-valued domain over [begin, end] sampled with accuracy
// steps (accuracy+1 points).
//
// Errors:
//   - ErrBadAccuracy if accuracy <= 0.
//   - ErrBadBounds if a bound is NaN/Inf or begin > end.
//
// Complexity: O(1).
func New(begin, end float64, accuracy int) (Domain, error) {
	if accuracy <= 0 {
		return Domain{}, domainErrorf("New", ErrBadAccuracy, "accuracy=%d", accuracy)
	}
	if !finite(begin) || !finite(end) || begin > end {
		return Domain{}, domainErrorf("New", ErrBadBounds, "begin=%g, end=%g", begin, end)
	}

	return Domain{begin: begin, end: end, accuracy: accuracy}, nil
}

// Default builds a domain over [begin, end] with DefaultAccuracy.
func Default(begin, end float64) (Domain, error) {
	return New(begin, end, DefaultAccuracy)
}

// NewInteger builds an integer range: points begin, begin+1, …, end.
// The accuracy equals end-begin, so end must be strictly greater than begin.
//
// Errors:
//   - ErrDegenerate if end <= begin.
func NewInteger(begin, end int) (Domain, error) {
	if end <= begin {
		return Domain{}, domainErrorf("NewInteger", ErrDegenerate, "begin=%d, end=%d", begin, end)
	}

	return Domain{begin: float64(begin), end: float64(end), accuracy: end - begin, integer: true}, nil
}

// MustNew is like New but panics on error. Intended for tests and
// package-level fixtures with literal arguments.
func MustNew(begin, end float64, accuracy int) Domain {
	d, err := New(begin, end, accuracy)
	if err != nil {
		panic(err)
	}

	return d
}

// Begin returns the lower bound.
func (d Domain) Begin() float64 { return d.begin }

// End returns the upper bound.
func (d Domain) End() float64 { return d.end }

// Accuracy returns the number of sampling steps.
func (d Domain) Accuracy() int { return d.accuracy }

// Integer reports whether d was built by NewInteger.
func (d Domain) Integer() bool { return d.integer }

// Degenerate reports whether the range collapses to a single value.
func (d Domain) Degenerate() bool { return d.begin == d.end }

// Span returns end - begin.
func (d Domain) Span() float64 { return d.end - d.begin }

// Step returns the distance between adjacent points, (end-begin)/accuracy.
// It is 0 for a degenerate or empty domain.
func (d Domain) Step() float64 {
	if d.accuracy <= 0 {
		return 0
	}

	return (d.end - d.begin) / float64(d.accuracy)
}

// Len returns the number of points produced by a full iteration:
// accuracy+1 for a proper range, accuracy for a degenerate one.
func (d Domain) Len() int {
	if d.accuracy <= 0 {
		return 0
	}
	if d.Degenerate() {
		return d.accuracy
	}

	return d.accuracy + 1
}

// At returns the k-th point. Indices outside [0, Len()) are clamped to the
// nearest bound, so At never panics.
func (d Domain) At(k int) float64 {
	if d.Degenerate() || k <= 0 {
		return d.begin
	}
	if k >= d.accuracy {
		return d.end
	}

	return d.begin + float64(k)*d.Step()
}

// Contains reports whether begin <= x <= end.
func (d Domain) Contains(x float64) bool {
	return x >= d.begin && x <= d.end
}

// Points returns a lazy, restartable sequence of the sample points.
func (d Domain) Points() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		n := d.Len()
		for k := 0; k < n; k++ {
			if !yield(d.At(k)) {
				return
			}
		}
	}
}

// All returns a lazy sequence of (index, point) pairs.
func (d Domain) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		n := d.Len()
		for k := 0; k < n; k++ {
			if !yield(k, d.At(k)) {
				return
			}
		}
	}
}

// Slice materializes all points. Prefer Points for large domains.
func (d Domain) Slice() []float64 {
	out := make([]float64, 0, d.Len())
	for x := range d.Points() {
		out = append(out, x)
	}

	return out
}

// Union returns the smallest domain covering both d and o, sampled with
// the larger of the two accuracies. The union of two integer ranges is an
// integer range.
func (d Domain) Union(o Domain) Domain {
	begin := math.Min(d.begin, o.begin)
	end := math.Max(d.end, o.end)
	if d.integer && o.integer && end > begin {
		return Domain{begin: begin, end: end, accuracy: int(end - begin), integer: true}
	}
	acc := d.accuracy
	if o.accuracy > acc {
		acc = o.accuracy
	}

	return Domain{begin: begin, end: end, accuracy: acc}
}

// Overlaps reports whether the closed ranges of d and o intersect.
func (d Domain) Overlaps(o Domain) bool {
	return d.begin <= o.end && o.begin <= d.end
}

// WithAccuracy returns a copy of d resampled with accuracy steps.
func (d Domain) WithAccuracy(accuracy int) (Domain, error) {
	if d.integer {
		return d, nil
	}

	return New(d.begin, d.end, accuracy)
}

// String renders the domain as "[begin, end]/accuracy".
func (d Domain) String() string {
	if d.integer {
		return fmt.Sprintf("[%d..%d]", int(d.begin), int(d.end))
	}

	return fmt.Sprintf("[%g, %g]/%d", d.begin, d.end, d.accuracy)
}

// finite reports whether x is neither NaN nor ±Inf.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
