package config_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/fuzzycalc"
	"github.com/katalvlaran/fuzzycalc/config"
	"github.com/katalvlaran/fuzzycalc/control"
	"github.com/katalvlaran/fuzzycalc/infer"
	"github.com/katalvlaran/fuzzycalc/tnorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, doc string) *config.Config {
	t.Helper()
	cfg, err := config.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	return cfg
}

func TestLoad_Fan(t *testing.T) {
	cfg, err := config.Load("testdata/fan.yaml")
	require.NoError(t, err)
	assert.Equal(t, "rules_accurate", cfg.Method)
	assert.Equal(t, 600, cfg.Accuracy)
	require.Len(t, cfg.Inputs, 2)
	require.Len(t, cfg.Rules, 3)
	assert.Equal(t, map[string]string{"temp": "hot", "load": "II"}, cfg.Rules[1].If)

	ctl, err := config.Build(cfg)
	require.NoError(t, err)
	assert.Equal(t, control.MethodRulesAccurate, ctl.Method())
	assert.Equal(t, []string{"temp", "load"}, ctl.Inputs(), "file order")
	assert.Equal(t, []string{"fan"}, ctl.Outputs())

	fan, _ := ctl.Output("fan")
	rules := fan.Rules()
	require.Len(t, rules, 3)
	assert.Equal(t, "chill", rules[0].Name())
	assert.Equal(t, "rule 2", rules[2].Name(), "unnamed rules are numbered")

	require.NoError(t, ctl.Set(map[string]float64{"temp": 40, "load": 1}))
	v, ok, err := ctl.Estim("fan")
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 1.0, v, 1e-9, "only heat fires; fast peaks at 1")

	in, _ := ctl.Input("temp")
	assert.Equal(t, 600, in.Classifier().Domain().Accuracy())
}

func TestLoad_Shapes(t *testing.T) {
	cfg, err := config.Load("testdata/shapes.yaml")
	require.NoError(t, err)
	ctl, err := config.Build(cfg)
	require.NoError(t, err)

	h, err := tnorm.NewHamacher(0.5)
	require.NoError(t, err)
	assert.Equal(t, h, ctl.Norm())

	x, _ := ctl.Input("x")
	assert.Equal(t, []string{"low", "mid", "high"}, x.Classifier().Names())
	mu, err := x.Classifier().Find(10, "high")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, mu, 1e-12)
	mu, err = x.Classifier().Find(1, "low")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, mu, 1e-12)

	p, _ := ctl.Input("p")
	assert.Equal(t, []string{"0", "1", "2"}, p.Classifier().Names())

	require.NoError(t, ctl.Set(map[string]float64{"x": 1, "p": 0}))
	_, ok := ctl.Result("y")
	assert.True(t, ok)
	v, ok, err := ctl.Estim("y")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Less(t, v, 0.5, "only the small rule fires")
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load("testdata/nope.yaml")
	assert.Error(t, err)
}

func TestParse_Errors(t *testing.T) {
	_, err := config.Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, config.ErrParse)

	_, err = config.Parse(strings.NewReader("method: [oops"))
	assert.ErrorIs(t, err, config.ErrParse)

	_, err = config.Parse(strings.NewReader("methdo: simple\n"))
	assert.ErrorIs(t, err, config.ErrParse, "unknown keys are rejected")
	assert.ErrorIs(t, err, fuzzycalc.ErrConfiguration)
}

const minimal = `
inputs:
  - {name: a, kind: standard, begin: 0, end: 1, count: 2}
outputs:
  - {name: out, kind: standard, begin: 0, end: 1, count: 3}
`

func TestValidate(t *testing.T) {
	require.NoError(t, parse(t, minimal).Validate())

	cases := map[string]struct {
		mutate func(*config.Config)
		field  string
	}{
		"bad method":      {func(c *config.Config) { c.Method = "sugeno" }, "Method"},
		"bad norm":        {func(c *config.Config) { c.Norm.Family = "nope" }, "Family"},
		"no inputs":       {func(c *config.Config) { c.Inputs = nil }, "Inputs"},
		"dup input":       {func(c *config.Config) { c.Inputs = append(c.Inputs, c.Inputs[0]) }, "Inputs"},
		"inverted bounds": {func(c *config.Config) { c.Inputs[0].End = -1 }, "End"},
		"bad kind":        {func(c *config.Config) { c.Inputs[0].Kind = "blob" }, "Kind"},
		"count too big":   {func(c *config.Config) { c.Outputs[0].Count = 21 }, "Count"},
		"missing count":   {func(c *config.Config) { c.Outputs[0].Count = 0 }, "Count"},
		"missing terms":   {func(c *config.Config) { c.Inputs[0].Kind = config.KindTriangle }, "Terms"},
		"missing peaks":   {func(c *config.Config) { c.Inputs[0].Kind = config.KindPartition }, "Peaks"},
		"missing shapes":  {func(c *config.Config) { c.Inputs[0].Kind = config.KindTerms }, "Shapes"},
		"overlap":         {func(c *config.Config) { c.Inputs[0].Overlap = 2 }, "Overlap"},
		"empty rule": {func(c *config.Config) {
			c.Rules = []config.Rule{{Then: map[string]string{"out": "I"}}}
		}, "If"},
		"shape params": {func(c *config.Config) {
			c.Inputs[0].Kind = config.KindTerms
			c.Inputs[0].Shapes = []config.Shape{{Term: "t", Type: "triangle", Params: []float64{0, 1}}}
		}, "Params"},
		"slope family": {func(c *config.Config) {
			c.Inputs[0].Kind = config.KindTerms
			c.Inputs[0].Shapes = []config.Shape{{
				Term: "t", Type: "trapext", Params: []float64{0, 0, 1, 1},
				Left: config.Slope{Family: "zigzag"},
			}}
		}, "Family"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := parse(t, minimal)
			tc.mutate(cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, config.ErrInvalid)

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			fields := make([]string, len(verrs))
			for i, fe := range verrs {
				fields[i] = fe.Field()
			}
			assert.Contains(t, fields, tc.field)
		})
	}
}

// TestValidate_NormAliases accepts every spelling the t-norm registry knows.
func TestValidate_NormAliases(t *testing.T) {
	for _, family := range []string{"min_max", "Zadeh", "product", "lukasiewicz", "dubois_prade", "schweizer_sklar", "sugeno_weber", "HAMACHER"} {
		t.Run(family, func(t *testing.T) {
			cfg := parse(t, minimal)
			cfg.Norm = config.Norm{Family: family, Param: 0.5}
			require.NoError(t, cfg.Validate())
			ctl, err := config.Build(cfg)
			require.NoError(t, err)
			want, err := tnorm.ByName(family, 0.5)
			require.NoError(t, err)
			assert.Equal(t, want, ctl.Norm())
		})
	}

	cfg := parse(t, minimal)
	cfg.Inputs[0].Kind = config.KindTerms
	cfg.Inputs[0].Shapes = []config.Shape{{
		Term: "t", Type: "trapext", Params: []float64{0, 0.2, 0.5, 1},
		Left: config.Slope{Family: "Gauss"}, Right: config.Slope{Family: "SECH", Steep: 2},
	}}
	require.NoError(t, cfg.Validate())
	_, err := config.Build(cfg)
	require.NoError(t, err)
}

func TestBuild_Errors(t *testing.T) {
	cfg := parse(t, minimal)
	cfg.Rules = []config.Rule{{If: map[string]string{"a": "I"}, Then: map[string]string{"out": "I"}}}
	_, err := config.Build(cfg)
	assert.ErrorIs(t, err, infer.ErrNotRuleBased, "simple outputs take no rules")

	cfg.Method = "mamdani"
	cfg.Rules[0].If = map[string]string{"a": "IX"}
	_, err = config.Build(cfg)
	assert.ErrorIs(t, err, infer.ErrUnknownTerm)

	cfg = parse(t, minimal)
	cfg.Norm = config.Norm{Family: "hamacher", Param: -1}
	_, err = config.Build(cfg)
	assert.ErrorIs(t, err, tnorm.ErrBadParameter)

	cfg = parse(t, minimal)
	cfg.Outputs[0].Name = "a"
	_, err = config.Build(cfg)
	assert.ErrorIs(t, err, control.ErrDuplicateVariable)

	cfg = parse(t, minimal)
	cfg.Inputs[0].Kind = config.KindPartition
	cfg.Inputs[0].Peaks = []float64{0, 5}
	_, err = config.Build(cfg)
	assert.Error(t, err, "peak outside the domain")
}

func TestMarshal_RoundTrip(t *testing.T) {
	cfg, err := config.Load("testdata/fan.yaml")
	require.NoError(t, err)
	data, err := cfg.Marshal()
	require.NoError(t, err)

	again, err := config.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}
