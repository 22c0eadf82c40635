// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional construction options and documented defaults.
// Policy:
//   - Option constructors panic on nonsensical values (programmer error).
//   - No package-level mutable state: defaults are constants.

package subset

import (
	"math"

	"github.com/katalvlaran/fuzzycalc/domain"
	"github.com/katalvlaran/fuzzycalc/tnorm"
)

// DefaultPrecision is the tolerance used for support trimming, α-cuts and
// sampled equality.
const DefaultPrecision = 1e-8

const (
	panicAccuracyInvalid  = "subset: WithAccuracy: accuracy must be positive"
	panicNormNil          = "subset: WithNorm: norm must be non-nil"
	panicPrecisionInvalid = "subset: WithPrecision: eps must be finite, non-negative"
)

// Option configures a subset at construction time.
type Option func(*options)

// options is the resolved configuration.
type options struct {
	dom       domain.Domain
	hasDomain bool
	accuracy  int
	norm      tnorm.Norm
	eps       float64
}

// WithDomain pins the domain explicitly instead of deriving it from the
// shape parameters. The accuracy option is ignored when a domain is given.
func WithDomain(d domain.Domain) Option {
	return func(o *options) {
		o.dom = d
		o.hasDomain = true
	}
}

// WithAccuracy sets the sample count of a derived domain.
// Panics if n <= 0.
func WithAccuracy(n int) Option {
	if n <= 0 {
		panic(panicAccuracyInvalid)
	}

	return func(o *options) { o.accuracy = n }
}

// WithNorm sets the t-norm pair used by TNorm/TConorm.
// Panics if n is nil.
func WithNorm(n tnorm.Norm) Option {
	if n == nil {
		panic(panicNormNil)
	}

	return func(o *options) { o.norm = n }
}

// WithPrecision sets the trimming/equality tolerance.
// Panics if eps is negative or non-finite.
func WithPrecision(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) options {
	o := options{
		accuracy: domain.DefaultAccuracy,
		norm:     tnorm.Default(),
		eps:      DefaultPrecision,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// resolve returns the explicit domain or builds one over [begin, end].
func (o options) resolve(begin, end float64) (domain.Domain, error) {
	if o.hasDomain {
		return o.dom, nil
	}

	return domain.New(begin, end, o.accuracy)
}

// base carries the state shared by every concrete subset.
type base struct {
	dom  domain.Domain
	norm tnorm.Norm
	eps  float64
}

// newBase resolves the domain and packs the common fields.
func newBase(begin, end float64, opts []Option) (base, error) {
	o := gatherOptions(opts)
	d, err := o.resolve(begin, end)
	if err != nil {
		return base{}, err
	}

	return base{dom: d, norm: o.norm, eps: o.eps}, nil
}

// Domain returns the universe of discourse.
func (b base) Domain() domain.Domain { return b.dom }

// Norm returns the configured t-norm pair.
func (b base) Norm() tnorm.Norm {
	if b.norm == nil {
		return tnorm.Default()
	}

	return b.norm
}

// Precision returns the configured tolerance.
func (b base) Precision() float64 { return b.eps }
