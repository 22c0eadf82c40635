// SPDX-License-Identifier: MIT
//
// File: functional.go
// Role: scalar functionals and comparisons over sampled subsets.

package subset

import (
	"math"
)

// Sup returns the height max Value(xₖ) over the domain of s.
func Sup(s Set) float64 {
	var h float64
	for x := range s.Domain().Points() {
		if v := s.Value(x); v > h {
			h = v
		}
	}

	return h
}

// Level returns the α-cut of s: the crisp interval between the first and the
// last domain point with membership ≥ alpha (within precision).
// ok is false when no point reaches alpha.
func Level(s Set, alpha float64) (Interval, bool) {
	return cut(s, func(v float64) bool { return v >= alpha-s.Precision() })
}

// Support returns the crisp interval between the first and the last domain
// point with membership above precision. ok is false for an empty subset.
func Support(s Set) (Interval, bool) {
	return cut(s, func(v float64) bool { return v > s.Precision() })
}

func cut(s Set, keep func(v float64) bool) (Interval, bool) {
	first, last, found := 0.0, 0.0, false
	for x := range s.Domain().Points() {
		if !keep(s.Value(x)) {
			continue
		}
		if !found {
			first, found = x, true
		}
		last = x
	}
	if !found {
		return Interval{}, false
	}
	iv, err := NewInterval(first, last, WithDomain(s.Domain()), WithNorm(s.Norm()), WithPrecision(s.Precision()))
	if err != nil {
		return Interval{}, false
	}

	return iv, true
}

// Risk returns the Nedosekin possibility that a realization of a falls below
// a realization of b:
//
//	Σ_{xᵢ<yⱼ} a(xᵢ)·b(yⱼ) / Σ a(xᵢ)·b(yⱼ)
//
// The cardinality normalisation of both operands cancels in the ratio and is
// therefore omitted. ok is false when either subset has zero mass.
//
// Complexity: O(Na·Nb).
func Risk(a, b Set) (float64, bool) {
	xs, va := samples(a)
	ys, vb := samples(b)
	var total, below float64
	for i, x := range xs {
		if va[i] == 0 {
			continue
		}
		for j, y := range ys {
			w := va[i] * vb[j]
			total += w
			if x < y {
				below += w
			}
		}
	}
	if total <= 0 {
		return 0, false
	}

	return below / total, true
}

// Greater returns max(1 - 2·Risk(a, b), 0): the degree to which a exceeds b.
func Greater(a, b Set) (float64, bool) {
	r, ok := Risk(a, b)
	if !ok {
		return 0, false
	}

	return math.Max(1-2*r, 0), true
}

// Equal reports whether a and b agree within a's precision at every point
// of the union domain.
func Equal(a, b Set) bool {
	eps := a.Precision()
	for x := range a.Domain().Union(b.Domain()).Points() {
		if math.Abs(a.Value(x)-b.Value(x)) > eps {
			return false
		}
	}

	return true
}

// EuclidDistance returns the root mean square membership difference over the
// union domain.
func EuclidDistance(a, b Set) float64 {
	var sum float64
	var n int
	for x := range a.Domain().Union(b.Domain()).Points() {
		d := a.Value(x) - b.Value(x)
		sum += d * d
		n++
	}
	if n == 0 {
		return 0
	}

	return math.Sqrt(sum / float64(n))
}

// HammingDistance returns the mean absolute membership difference over the
// union domain.
func HammingDistance(a, b Set) float64 {
	var sum float64
	var n int
	for x := range a.Domain().Union(b.Domain()).Points() {
		sum += math.Abs(a.Value(x) - b.Value(x))
		n++
	}
	if n == 0 {
		return 0
	}

	return sum / float64(n)
}

// Sample evaluates s at every domain point.
func Sample(s Set) []Pair {
	out := make([]Pair, 0, s.Domain().Len())
	for x := range s.Domain().Points() {
		out = append(out, Pair{X: x, Y: s.Value(x)})
	}

	return out
}

// samples materializes points and memberships of s.
func samples(s Set) (xs, vs []float64) {
	n := s.Domain().Len()
	xs = make([]float64, 0, n)
	vs = make([]float64, 0, n)
	for x := range s.Domain().Points() {
		xs = append(xs, x)
		vs = append(vs, s.Value(x))
	}

	return xs, vs
}
