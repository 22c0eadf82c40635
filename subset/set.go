// SPDX-License-Identifier: MIT
//
// File: set.go
// Role: the Set contract and the sampled numeric functionals every Set
//       without a closed form falls back to.

package subset

import (
	"github.com/katalvlaran/fuzzycalc/domain"
	"github.com/katalvlaran/fuzzycalc/tnorm"
)

// Set is a fuzzy subset of a sampled domain.
//
// Implementations MUST return memberships in [0,1] and 0 for points outside
// the domain (closed-form shapes may keep their natural tails instead).
// Centr reports ok=false when the membership mass is zero.
type Set interface {
	// Domain returns the universe of discourse.
	Domain() domain.Domain
	// Value returns the membership degree of x.
	Value(x float64) float64
	// Card returns the cardinality (area under the membership curve).
	Card() float64
	// Mode returns the first point of maximal membership.
	Mode() float64
	// Centr returns the centroid, ok=false when undefined.
	Centr() (float64, bool)
	// Norm returns the t-norm pair used by TNorm/TConorm.
	Norm() tnorm.Norm
	// Precision returns the trimming/equality tolerance.
	Precision() float64
}

// Marker is implemented by subsets that expose characteristic points
// (anchors, shape corners) for display.
type Marker interface {
	Marks() []Pair
}

// Pair is a (point, membership) sample.
type Pair struct {
	X float64
	Y float64
}

// SampledCard is the Riemann sum Σ Value(xₖ)·(end-begin)/accuracy over the
// domain of s. It is 0 for a degenerate domain.
//
// Complexity: O(N) evaluations of Value.
func SampledCard(s Set) float64 {
	d := s.Domain()
	if d.Degenerate() || d.Accuracy() <= 0 {
		return 0
	}
	var sum float64
	for x := range d.Points() {
		sum += s.Value(x)
	}

	return sum * d.Span() / float64(d.Accuracy())
}

// SampledCentr is Σ Value(xₖ)·xₖ / Σ Value(xₖ) over the domain of s.
// ok is false when the membership mass is zero.
func SampledCentr(s Set) (float64, bool) {
	var num, den float64
	for x := range s.Domain().Points() {
		v := s.Value(x)
		num += v * x
		den += v
	}
	if den <= 0 {
		return 0, false
	}

	return num / den, true
}

// SampledMode returns the first domain point with the highest membership.
// Ties keep the earliest point; an all-zero subset yields the domain begin.
func SampledMode(s Set) float64 {
	d := s.Domain()
	res, best := d.Begin(), 0.0
	for x := range d.Points() {
		if v := s.Value(x); v > best {
			res, best = x, v
		}
	}

	return res
}
