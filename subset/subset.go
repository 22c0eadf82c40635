// SPDX-License-Identifier: MIT
//
// File: subset.go
// Role: *Subset, a membership function defined by sorted anchor points.
// Policy:
//   - Anchors live in two parallel slices kept sorted by x.
//   - Value is exact at anchors, linear between bracketing anchors, 0 outside
//     the domain.
//   - Construction places 0-membership anchors at begin and end.

package subset

import (
	"math"
	"slices"
	"sort"
)

// Subset is a general fuzzy subset given by anchor points.
//
// A Subset is not safe for concurrent mutation; concurrent reads without a
// Set in flight are safe.
type Subset struct {
	base
	xs []float64
	ys []float64
}

// New creates a subset over [begin, end] with zero membership anchors at
// both bounds.
//
// Errors: domain construction errors (ErrBadBounds, ErrBadAccuracy).
//
// Complexity: O(1).
func New(begin, end float64, opts ...Option) (*Subset, error) {
	b, err := newBase(begin, end, opts)
	if err != nil {
		return nil, err
	}

	return newAnchored(b), nil
}

// FromPoints creates a subset over [begin, end] and sets every (x, μ) pair
// of points in ascending order of x.
//
// Errors: as New and Set.
func FromPoints(begin, end float64, points []Pair, opts ...Option) (*Subset, error) {
	s, err := New(begin, end, opts...)
	if err != nil {
		return nil, err
	}
	for _, p := range points {
		if err = s.Set(p.X, p.Y); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// newAnchored seeds the bound anchors of b's domain.
func newAnchored(b base) *Subset {
	s := &Subset{base: b}
	d := b.dom
	s.xs = append(s.xs, d.Begin())
	s.ys = append(s.ys, 0)
	if !d.Degenerate() {
		s.xs = append(s.xs, d.End())
		s.ys = append(s.ys, 0)
	}

	return s
}

// sampled builds a subset whose anchors are f evaluated at every point of b's
// domain. It is the constructor behind all algebra results.
func sampled(b base, f func(x float64) float64) *Subset {
	n := b.dom.Len()
	s := &Subset{
		base: b,
		xs:   make([]float64, 0, n),
		ys:   make([]float64, 0, n),
	}
	for x := range b.dom.Points() {
		if k := len(s.xs); k > 0 && s.xs[k-1] >= x {
			// repeated begin of a degenerate domain
			s.ys[k-1] = f(x)
			continue
		}
		s.xs = append(s.xs, x)
		s.ys = append(s.ys, f(x))
	}

	return s
}

// Set defines membership mu at x, replacing an anchor at exactly x.
//
// Errors:
//   - ErrOutOfDomain if x is outside [begin, end].
//   - ErrBadParameter if mu is NaN or outside [0,1].
//
// Complexity: O(A) (slice insertion).
func (s *Subset) Set(x, mu float64) error {
	if !s.dom.Contains(x) {
		return subsetErrorf("Set", ErrOutOfDomain, "x=%g, domain=%s", x, s.dom)
	}
	if math.IsNaN(mu) || mu < 0 || mu > 1 {
		return subsetErrorf("Set", ErrBadParameter, "mu=%g", mu)
	}
	i := sort.SearchFloat64s(s.xs, x)
	if i < len(s.xs) && s.xs[i] == x {
		s.ys[i] = mu
		return nil
	}
	s.xs = slices.Insert(s.xs, i, x)
	s.ys = slices.Insert(s.ys, i, mu)

	return nil
}

// Value returns the membership of x.
//
// Complexity: O(log A).
func (s *Subset) Value(x float64) float64 {
	if !s.dom.Contains(x) {
		return 0
	}
	i := sort.SearchFloat64s(s.xs, x)
	if i < len(s.xs) && s.xs[i] == x {
		return s.ys[i]
	}
	if i == 0 || i == len(s.xs) {
		return 0
	}
	x0, x1 := s.xs[i-1], s.xs[i]
	y0, y1 := s.ys[i-1], s.ys[i]

	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}

// Card returns the sampled cardinality.
func (s *Subset) Card() float64 { return SampledCard(s) }

// Mode returns the first point of maximal membership.
func (s *Subset) Mode() float64 { return SampledMode(s) }

// Centr returns the sampled centroid.
func (s *Subset) Centr() (float64, bool) { return SampledCentr(s) }

// Anchors returns a copy of the anchor points in ascending x order.
func (s *Subset) Anchors() []Pair {
	out := make([]Pair, len(s.xs))
	for i := range s.xs {
		out[i] = Pair{X: s.xs[i], Y: s.ys[i]}
	}

	return out
}

// Marks returns the anchors.
func (s *Subset) Marks() []Pair { return s.Anchors() }

// Clone returns a deep copy of s.
func (s *Subset) Clone() *Subset {
	return &Subset{
		base: s.base,
		xs:   slices.Clone(s.xs),
		ys:   slices.Clone(s.ys),
	}
}
