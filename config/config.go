// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: YAML schema, parsing and validation of controller definitions.
// Policy:
//   - Unknown keys are errors.
//   - Tag validation runs first, then kind-specific struct checks.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/fuzzycalc/tnorm"
	"gopkg.in/yaml.v3"
)

// Variable kinds.
const (
	KindTriangle  = "triangle"
	KindGaussian  = "gaussian"
	KindStandard  = "standard"
	KindPartition = "partition"
	KindTerms     = "terms"
)

// Config is a complete controller definition.
type Config struct {
	Method   string     `yaml:"method,omitempty" validate:"omitempty,oneof=simple mamdani rules_accurate accurate"`
	Norm     Norm       `yaml:"norm,omitempty"`
	Accuracy int        `yaml:"accuracy,omitempty" validate:"omitempty,gt=0"`
	Inputs   []Variable `yaml:"inputs" validate:"required,min=1,unique=Name,dive"`
	Outputs  []Variable `yaml:"outputs" validate:"required,min=1,unique=Name,dive"`
	Rules    []Rule     `yaml:"rules,omitempty" validate:"omitempty,dive"`
}

// Norm selects a t-norm family by any name tnorm.ByName accepts; Param
// feeds the parametric ones.
type Norm struct {
	Family string  `yaml:"family,omitempty" validate:"omitempty,normfamily"`
	Param  float64 `yaml:"param,omitempty"`
}

// Variable is one input or output scale.
type Variable struct {
	Name     string    `yaml:"name" validate:"required"`
	Kind     string    `yaml:"kind" validate:"required,oneof=triangle gaussian standard partition terms"`
	Begin    float64   `yaml:"begin"`
	End      float64   `yaml:"end" validate:"gtfield=Begin"`
	Terms    []string  `yaml:"terms,omitempty" validate:"omitempty,unique,dive,required"`
	Count    int       `yaml:"count,omitempty" validate:"omitempty,min=2,max=20"`
	Edge     bool      `yaml:"edge,omitempty"`
	Cross    float64   `yaml:"cross,omitempty" validate:"omitempty,gt=0"`
	Gaussian bool      `yaml:"gaussian,omitempty"`
	Peaks    []float64 `yaml:"peaks,omitempty" validate:"omitempty,unique"`
	Overlap  float64   `yaml:"overlap,omitempty" validate:"gte=0,lte=1"`
	Shapes   []Shape   `yaml:"shapes,omitempty" validate:"omitempty,unique=Term,dive"`
}

// Shape is one explicit term of a "terms" variable.
//
// Params per type: triangle a b c; trapezoid a b c d; interval a b;
// point a; gaussian mu omega; trapext begin beginTol endTol end.
type Shape struct {
	Term   string    `yaml:"term" validate:"required"`
	Type   string    `yaml:"type" validate:"required,oneof=triangle trapezoid interval point gaussian trapext"`
	Params []float64 `yaml:"params" validate:"required,min=1,max=4"`
	Left   Slope     `yaml:"left,omitempty"`
	Right  Slope     `yaml:"right,omitempty"`
}

// Slope picks a flank family of a trapext shape; the zero value is a line.
type Slope struct {
	Family string  `yaml:"family,omitempty" validate:"omitempty,slopefamily"`
	Steep  float64 `yaml:"steep,omitempty" validate:"omitempty,gt=0"`
}

// Rule maps input terms to output terms.
type Rule struct {
	Name string            `yaml:"name,omitempty"`
	If   map[string]string `yaml:"if" validate:"required,min=1,dive,keys,required,endkeys,required"`
	Then map[string]string `yaml:"then" validate:"required,min=1,dive,keys,required,endkeys,required"`
}

var shapeParams = map[string]int{
	"triangle":  3,
	"trapezoid": 4,
	"interval":  2,
	"point":     1,
	"gaussian":  2,
	"trapext":   4,
}

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterStructValidation(variableLevel, Variable{})
	validate.RegisterStructValidation(shapeLevel, Shape{})
	_ = validate.RegisterValidation("normfamily", normFamily)
	_ = validate.RegisterValidation("slopefamily", slopeFamily)
}

// normFamily accepts every family name and alias tnorm.ByName resolves.
// Parameter range errors are left to Build.
func normFamily(fl validator.FieldLevel) bool {
	_, err := tnorm.ByName(fl.Field().String(), 1)

	return !errors.Is(err, tnorm.ErrUnknownFamily)
}

// slopeFamily accepts the flank families of trapext shapes.
func slopeFamily(fl validator.FieldLevel) bool {
	_, ok := slopeFamilies[strings.ToLower(fl.Field().String())]

	return ok
}

// variableLevel enforces the fields each kind needs.
func variableLevel(sl validator.StructLevel) {
	v := sl.Current().Interface().(Variable)
	switch v.Kind {
	case KindTriangle, KindGaussian:
		if len(v.Terms) == 0 {
			sl.ReportError(v.Terms, "Terms", "Terms", "required_for_kind", v.Kind)
		}
	case KindStandard:
		if v.Count == 0 {
			sl.ReportError(v.Count, "Count", "Count", "required_for_kind", v.Kind)
		}
	case KindPartition:
		if len(v.Peaks) == 0 {
			sl.ReportError(v.Peaks, "Peaks", "Peaks", "required_for_kind", v.Kind)
		}
	case KindTerms:
		if len(v.Shapes) == 0 {
			sl.ReportError(v.Shapes, "Shapes", "Shapes", "required_for_kind", v.Kind)
		}
	}
}

// shapeLevel checks the parameter count of each shape type.
func shapeLevel(sl validator.StructLevel) {
	s := sl.Current().Interface().(Shape)
	if want, ok := shapeParams[s.Type]; ok && len(s.Params) != want {
		sl.ReportError(s.Params, "Params", "Params", "len", fmt.Sprint(want))
	}
}

// Parse decodes a single YAML document. Unknown keys are rejected.
//
// Errors: ErrParse.
func Parse(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrParse)
		}

		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return &cfg, nil
}

// Validate checks tags and kind-specific requirements.
//
// Errors: ErrInvalid wrapping validator.ValidationErrors.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Load reads, parses and validates a definition file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Marshal renders c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
