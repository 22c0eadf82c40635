// SPDX-License-Identifier: MIT
//
// File: layouts.go
// Role: standard classifier layouts (uniform triangles/Gaussians, partitions,
//       roman-labelled standard scales).

package classifier

import (
	"math"
	"slices"
	"strconv"

	"github.com/katalvlaran/fuzzycalc/domain"
	"github.com/katalvlaran/fuzzycalc/subset"
)

// Standard scale bounds.
const (
	MinStandardTerms = 2
	MaxStandardTerms = 20
)

// uniform computes the half-width, first mode and step of a uniform layout.
//
// Without edge the outer modes sit on the bounds:
//
//	wide = (end-begin)·cross/(n-1)/2, step = (end-begin)/(n-1), mode₀ = begin
//
// With edge they are inset:
//
//	wide = (end-begin)/(n+1-cross)/2, step = 2·wide/cross, mode₀ = begin+wide
func uniform(begin, end float64, n int, o options) (wide, mode, step float64, err error) {
	span := end - begin
	if !o.edge {
		if n < 2 {
			return 0, 0, 0, classifierErrorf("uniform", ErrBadPartition, "need at least 2 terms without edge, got %d", n)
		}
		return span * o.cross / float64(n-1) / 2, begin, span / float64(n-1), nil
	}
	if n < 1 || float64(n)+1-o.cross <= 0 {
		return 0, 0, 0, classifierErrorf("uniform", ErrBadPartition, "n=%d, cross=%g", n, o.cross)
	}
	wide = span / (float64(n) + 1 - o.cross) / 2

	return wide, begin + wide, 2 * wide / o.cross, nil
}

// layout validates the inputs shared by the uniform constructors.
func layout(method string, begin, end float64, names []string, opts []Option) (options, domain.Domain, error) {
	o := gatherOptions(opts)
	d, err := domain.New(begin, end, o.accuracy)
	if err != nil {
		return o, d, err
	}
	if d.Degenerate() {
		return o, d, classifierErrorf(method, ErrBadPartition, "degenerate domain %s", d)
	}
	if len(names) == 0 {
		return o, d, classifierErrorf(method, ErrBadPartition, "no term names")
	}

	return o, d, nil
}

// NewTriangle builds a classifier of uniformly spaced triangular terms,
// one per name, in order.
//
// Errors: ErrBadPartition, domain errors, ErrDuplicateTerm.
func NewTriangle(begin, end float64, names []string, opts ...Option) (*FuzzySet, error) {
	o, d, err := layout("NewTriangle", begin, end, names, opts)
	if err != nil {
		return nil, err
	}
	wide, mode, step, err := uniform(begin, end, len(names), o)
	if err != nil {
		return nil, err
	}
	f := New(o.name, d)
	for _, n := range names {
		t, err := subset.NewTriangle(mode-wide, mode, mode+wide, o.termOptions(d)...)
		if err != nil {
			return nil, err
		}
		if err = f.AddTerm(n, t); err != nil {
			return nil, err
		}
		mode += step
	}

	return f, nil
}

// NewGaussian builds a classifier of uniformly spaced Gaussian terms with
// σ = wide/3.
//
// Errors: as NewTriangle.
func NewGaussian(begin, end float64, names []string, opts ...Option) (*FuzzySet, error) {
	o, d, err := layout("NewGaussian", begin, end, names, opts)
	if err != nil {
		return nil, err
	}
	wide, mode, step, err := uniform(begin, end, len(names), o)
	if err != nil {
		return nil, err
	}
	f := New(o.name, d)
	for _, n := range names {
		g, err := subset.NewGaussian(mode, wide/3, o.termOptions(d)...)
		if err != nil {
			return nil, err
		}
		if err = f.AddTerm(n, g); err != nil {
			return nil, err
		}
		mode += step
	}

	return f, nil
}

// NewPartition builds trapezoidal terms centred on peaks (labelled "0",
// "1", … in ascending peak order) such that memberships sum to 1 at every
// point of [begin, end].
//
// overlap ∈ [0,1] shapes the flanks: 0 gives crisp boundaries, 1 gives
// triangles, values in between are tan-scaled (o' = tan(overlap·π/2)).
// Between neighbours with gap g the core half-width is g/(o'+2) and the
// flank reaches g·(1+o')/(o'+2). The first and last terms extend as
// shoulders to the domain bounds.
//
// With overlap = 0 a boundary point belongs to the right-hand neighbour.
//
// Errors:
//   - ErrBadPartition if peaks is empty or repeats a value, a peak lies
//     outside the domain or overlap is outside [0,1].
func NewPartition(begin, end float64, peaks []float64, overlap float64, opts ...Option) (*FuzzySet, error) {
	o := gatherOptions(opts)
	d, err := domain.New(begin, end, o.accuracy)
	if err != nil {
		return nil, err
	}
	if len(peaks) == 0 || math.IsNaN(overlap) || overlap < 0 || overlap > 1 {
		return nil, classifierErrorf("NewPartition", ErrBadPartition, "peaks=%v, overlap=%g", peaks, overlap)
	}
	ps := slices.Clone(peaks)
	slices.Sort(ps)
	if !d.Contains(ps[0]) || !d.Contains(ps[len(ps)-1]) {
		return nil, classifierErrorf("NewPartition", ErrBadPartition, "peaks %v outside %s", ps, d)
	}
	for i := 1; i < len(ps); i++ {
		if ps[i] == ps[i-1] {
			return nil, classifierErrorf("NewPartition", ErrBadPartition, "duplicate peak %g", ps[i])
		}
	}

	// core and reach as fractions of the gap
	core, reach := 0.0, 1.0
	if overlap < 1 {
		op := math.Tan(overlap * math.Pi / 2)
		core, reach = 1/(op+2), (1+op)/(op+2)
	}

	f := New(o.name, d)
	for i, p := range ps {
		a, b, c, e := begin, begin, end, end
		if i > 0 {
			g := p - ps[i-1]
			a, b = p-g*reach, p-g*core
		}
		if i < len(ps)-1 {
			g := ps[i+1] - p
			c, e = p+g*core, p+g*reach
			if core == reach {
				// crisp boundary: it belongs to the right neighbour only
				e = ps[i+1] - g*reach
				c = math.Nextafter(e, math.Inf(-1))
			}
		}
		t, err := subset.NewTrapezoidal(a, b, c, e, o.termOptions(d)...)
		if err != nil {
			return nil, err
		}
		if err = f.AddTerm(strconv.Itoa(i), t); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// Standard builds an n-term scale labelled with roman numerals (I, II, …)
// with cross = 2, outer modes on the bounds. WithGaussian switches to
// Gaussian terms.
//
// Errors: ErrBadPartition if n is outside [MinStandardTerms, MaxStandardTerms].
func Standard(n int, begin, end float64, opts ...Option) (*FuzzySet, error) {
	if n < MinStandardTerms || n > MaxStandardTerms {
		return nil, classifierErrorf("Standard", ErrBadPartition, "n=%d", n)
	}
	names := make([]string, n)
	for i := range names {
		names[i] = Roman(i + 1)
	}
	opts = append(slices.Clone(opts), WithCross(DefaultCross), WithEdge(false))
	if gatherOptions(opts).gaussian {
		return NewGaussian(begin, end, names, opts...)
	}

	return NewTriangle(begin, end, names, opts...)
}

// Roman renders 1 ≤ n < 40 as a roman numeral; other values fall back to
// decimal.
func Roman(n int) string {
	if n <= 0 || n >= 40 {
		return strconv.Itoa(n)
	}
	var out []byte
	for _, r := range [...]struct {
		v int
		s string
	}{{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"}} {
		for n >= r.v {
			out = append(out, r.s...)
			n -= r.v
		}
	}

	return string(out)
}
