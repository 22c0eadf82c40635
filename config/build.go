// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: turn a validated definition into a wired controller.

package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fuzzycalc/classifier"
	"github.com/katalvlaran/fuzzycalc/control"
	"github.com/katalvlaran/fuzzycalc/domain"
	"github.com/katalvlaran/fuzzycalc/number"
	"github.com/katalvlaran/fuzzycalc/subset"
	"github.com/katalvlaran/fuzzycalc/tnorm"
)

var slopeFamilies = map[string]func(float64) number.Shape{
	"":         number.Line,
	"line":     number.Line,
	"quad":     number.Quad,
	"laplace":  number.Laplace,
	"tanh":     number.Tanh,
	"gauss":    number.Gauss,
	"cauchy":   number.Cauchy,
	"logistic": number.Logistic,
	"sech":     number.Sech,
}

// Build validates c and wires a controller: inputs and outputs in file
// order, then the rule table.
//
// Errors: ErrInvalid, and any classifier, control or infer error naming
// the offending variable or rule.
func Build(c *Config) (*control.Controller, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	norm, err := tnorm.ByName(c.Norm.Family, c.Norm.Param)
	if err != nil {
		return nil, fmt.Errorf("config: norm: %w", err)
	}
	method, err := control.ParseMethod(c.Method)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	ctl := control.New(control.WithMethod(method), control.WithNorm(norm))
	for _, v := range c.Inputs {
		fs, err := Classifier(v, c.Accuracy, norm)
		if err != nil {
			return nil, fmt.Errorf("config: input %q: %w", v.Name, err)
		}
		if err = ctl.AddInput(v.Name, fs); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	for _, v := range c.Outputs {
		fs, err := Classifier(v, c.Accuracy, norm)
		if err != nil {
			return nil, fmt.Errorf("config: output %q: %w", v.Name, err)
		}
		if err = ctl.AddOutput(v.Name, fs); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	specs := make([]control.RuleSpec, len(c.Rules))
	for i, r := range c.Rules {
		specs[i] = control.RuleSpec{Name: r.Name, If: r.If, Then: r.Then}
	}
	if err = ctl.DefineRules(specs); err != nil {
		return nil, fmt.Errorf("config: rules: %w", err)
	}

	return ctl, nil
}

// Classifier builds the scale of one variable. accuracy <= 0 selects
// domain.DefaultAccuracy.
func Classifier(v Variable, accuracy int, norm tnorm.Norm) (*classifier.FuzzySet, error) {
	if accuracy <= 0 {
		accuracy = domain.DefaultAccuracy
	}
	opts := []classifier.Option{
		classifier.WithName(v.Name),
		classifier.WithAccuracy(accuracy),
		classifier.WithNorm(norm),
		classifier.WithEdge(v.Edge),
	}
	if v.Cross > 0 {
		opts = append(opts, classifier.WithCross(v.Cross))
	}

	switch v.Kind {
	case KindTriangle:
		return classifier.NewTriangle(v.Begin, v.End, v.Terms, opts...)
	case KindGaussian:
		return classifier.NewGaussian(v.Begin, v.End, v.Terms, opts...)
	case KindStandard:
		if v.Gaussian {
			opts = append(opts, classifier.WithGaussian())
		}
		return classifier.Standard(v.Count, v.Begin, v.End, opts...)
	case KindPartition:
		return classifier.NewPartition(v.Begin, v.End, v.Peaks, v.Overlap, opts...)
	case KindTerms:
		d, err := domain.New(v.Begin, v.End, accuracy)
		if err != nil {
			return nil, err
		}
		fs := classifier.New(v.Name, d)
		for _, s := range v.Shapes {
			set, err := buildShape(s, d, norm)
			if err != nil {
				return nil, fmt.Errorf("term %q: %w", s.Term, err)
			}
			if err = fs.AddTerm(s.Term, set); err != nil {
				return nil, err
			}
		}
		return fs, nil
	}

	return nil, fmt.Errorf("%w: kind %q", ErrInvalid, v.Kind)
}

func buildShape(s Shape, d domain.Domain, norm tnorm.Norm) (subset.Set, error) {
	p := s.Params
	if want := shapeParams[s.Type]; len(p) != want {
		return nil, fmt.Errorf("%w: %s takes %d params, got %d", ErrInvalid, s.Type, want, len(p))
	}
	opts := []subset.Option{subset.WithDomain(d), subset.WithNorm(norm)}

	switch s.Type {
	case "triangle":
		return subset.NewTriangle(p[0], p[1], p[2], opts...)
	case "trapezoid":
		return subset.NewTrapezoidal(p[0], p[1], p[2], p[3], opts...)
	case "interval":
		return subset.NewInterval(p[0], p[1], opts...)
	case "point":
		return subset.NewPoint(p[0], opts...)
	case "gaussian":
		return subset.NewGaussian(p[0], p[1], opts...)
	case "trapext":
		left, err := slope(s.Left)
		if err != nil {
			return nil, err
		}
		right, err := slope(s.Right)
		if err != nil {
			return nil, err
		}
		return number.New(p[0], p[1], p[2], p[3], left, right,
			number.WithAccuracy(d.Accuracy()), number.WithNorm(norm))
	}

	return nil, fmt.Errorf("%w: shape type %q", ErrInvalid, s.Type)
}

func slope(s Slope) (number.Shape, error) {
	f, ok := slopeFamilies[strings.ToLower(s.Family)]
	if !ok {
		return nil, fmt.Errorf("%w: slope family %q", ErrInvalid, s.Family)
	}
	steep := s.Steep
	if steep <= 0 {
		steep = 1
	}

	return f(steep), nil
}
