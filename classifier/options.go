// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options for the standard classifier layouts.

package classifier

import (
	"math"

	"github.com/katalvlaran/fuzzycalc/domain"
	"github.com/katalvlaran/fuzzycalc/subset"
	"github.com/katalvlaran/fuzzycalc/tnorm"
)

// DefaultCross makes every term reach the modes of its neighbours, so each
// inner point belongs to exactly two terms.
const DefaultCross = 2.0

// Option configures a standard layout.
type Option func(*options)

type options struct {
	name     string
	edge     bool
	cross    float64
	gaussian bool
	accuracy int
	norm     tnorm.Norm
}

// WithName sets the classifier label.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithEdge insets the first and last term modes from the domain bounds.
func WithEdge(edge bool) Option {
	return func(o *options) { o.edge = edge }
}

// WithCross sets the overlap width of uniform layouts: 1 makes adjacent
// terms touch at their zero crossing, 2 makes each term reach its
// neighbours' modes. Panics if c is not a positive finite number.
func WithCross(c float64) Option {
	if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
		panic("classifier: WithCross: cross must be positive and finite")
	}

	return func(o *options) { o.cross = c }
}

// WithGaussian makes Standard build Gaussian terms instead of triangles.
func WithGaussian() Option {
	return func(o *options) { o.gaussian = true }
}

// WithAccuracy sets the domain sample count. Panics if n <= 0.
func WithAccuracy(n int) Option {
	if n <= 0 {
		panic("classifier: WithAccuracy: accuracy must be positive")
	}

	return func(o *options) { o.accuracy = n }
}

// WithNorm sets the t-norm pair carried by every generated term.
// Panics if n is nil.
func WithNorm(n tnorm.Norm) Option {
	if n == nil {
		panic("classifier: WithNorm: norm must be non-nil")
	}

	return func(o *options) { o.norm = n }
}

func gatherOptions(opts []Option) options {
	o := options{cross: DefaultCross, accuracy: domain.DefaultAccuracy, norm: tnorm.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// termOptions pins generated terms to the classifier's domain.
func (o options) termOptions(d domain.Domain) []subset.Option {
	return []subset.Option{subset.WithDomain(d), subset.WithNorm(o.norm)}
}
