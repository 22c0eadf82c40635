package infer_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/fuzzycalc/classifier"
	"github.com/katalvlaran/fuzzycalc/infer"
	"github.com/katalvlaran/fuzzycalc/tnorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scale returns a roman-labelled triangular scale on [0,1].
func scale(t *testing.T, n int) *classifier.FuzzySet {
	t.Helper()
	c, err := classifier.Standard(n, 0, 1)
	require.NoError(t, err)

	return c
}

// ruleTree builds two 2-term inputs, a 3-term output and the four rules
// covering every antecedent combination.
func ruleTree(t *testing.T, agg infer.Aggregator) (out, a, b *infer.Node) {
	t.Helper()
	out = node(t, "out", infer.WithClassifier(scale(t, 3)), infer.WithAggregator(agg))
	a = node(t, "a", infer.WithClassifier(scale(t, 2)))
	b = node(t, "b", infer.WithClassifier(scale(t, 2)))
	require.NoError(t, out.Add(a))
	require.NoError(t, out.Add(b))

	table := []struct {
		ta, tb, concl string
	}{
		{"I", "I", "I"},
		{"I", "II", "II"},
		{"II", "I", "II"},
		{"II", "II", "III"},
	}
	for i, r := range table {
		_, err := out.AddRule(map[string]string{"a": r.ta, "b": r.tb}, r.concl, "r"+string(rune('1'+i)))
		require.NoError(t, err)
	}

	return out, a, b
}

// TestMamdani_SingleRule fires exactly one rule at full strength: the
// output is the centroid of that rule's conclusion term.
func TestMamdani_SingleRule(t *testing.T) {
	out, a, b := ruleTree(t, infer.NewMamdani())
	a.SetEstim(0) // mode of a.I
	b.SetEstim(1) // mode of b.II

	v, ok := out.Estim()
	require.True(t, ok)
	term, _ := out.Classifier().Term("II")
	want, _ := term.Centr()
	assert.InDelta(t, want, v, 1e-6)
	assert.InDelta(t, 0.5, v, 1e-6)

	rules := out.Rules()
	require.Len(t, rules, 4)
	alpha, fired := rules[1].Alpha()
	assert.True(t, fired)
	assert.Equal(t, 1.0, alpha)
	alpha, _ = rules[0].Alpha()
	assert.Equal(t, 0.0, alpha)
}

// TestMamdani_Result exposes the combined subset.
func TestMamdani_Result(t *testing.T) {
	m := infer.NewMamdani()
	out, a, b := ruleTree(t, m)
	a.SetEstim(0.5)
	b.SetEstim(0.5)

	res, ok := m.Result(out)
	require.True(t, ok)
	// every rule fires at 0.5: the union of all clipped terms has height 0.5
	for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
		assert.InDelta(t, 0.5, res.Value(x), 1e-9, "x=%g", x)
	}
	v, ok := out.Estim()
	require.True(t, ok)
	assert.InDelta(t, 0.5, v, 1e-6, "symmetric firing → centre")
}

// TestMamdani_NoFiringIsIndeterminate covers zero mass.
func TestMamdani_NoFiringIsIndeterminate(t *testing.T) {
	out, a, b := ruleTree(t, infer.NewMamdani())
	a.SetEstim(5) // outside every term
	b.SetEstim(5)

	_, ok := out.Estim()
	assert.False(t, ok)
}

// TestRulesAccurate covers the weighted centroid and its zero fallback.
func TestRulesAccurate(t *testing.T) {
	out, a, b := ruleTree(t, infer.NewRulesAccurate())
	a.SetEstim(0)
	b.SetEstim(1)
	v, ok := out.Estim()
	require.True(t, ok)
	assert.InDelta(t, 0.5, v, 1e-9)

	// a.I = a.II = 0.5, b.II = 1: r2 and r4 fire at 0.5 each
	a.SetEstim(0.5)
	out.Reset()
	v, ok = out.Estim()
	require.True(t, ok)
	assert.InDelta(t, 0.75, v, 1e-9, "mean of the II and III centroids")

	a.SetEstim(5)
	b.SetEstim(5)
	out.Reset()
	v, ok = out.Estim()
	require.True(t, ok)
	assert.Equal(t, 0.0, v, "no rule fires → 0")
}

// TestRules_IndeterminateFactor verifies a missing factor estimate poisons
// rule-based nodes.
func TestRules_IndeterminateFactor(t *testing.T) {
	for name, agg := range map[string]infer.Aggregator{
		"mamdani":  infer.NewMamdani(),
		"accurate": infer.NewRulesAccurate(),
	} {
		t.Run(name, func(t *testing.T) {
			out, a, _ := ruleTree(t, agg)
			a.SetEstim(0)
			_, ok := out.Estim()
			assert.False(t, ok)
		})
	}
}

// TestRules_Norm checks that the node's t-norm folds the antecedent.
func TestRules_Norm(t *testing.T) {
	out := node(t, "out", infer.WithClassifier(scale(t, 3)),
		infer.WithAggregator(infer.NewRulesAccurate()), infer.WithNorm(tnorm.SumProd{}))
	a := node(t, "a", infer.WithClassifier(scale(t, 2)), infer.WithEstimate(0.5))
	b := node(t, "b", infer.WithClassifier(scale(t, 2)), infer.WithEstimate(0.5))
	require.NoError(t, out.Add(a))
	require.NoError(t, out.Add(b))
	r, err := out.AddRule(map[string]string{"a": "I", "b": "II"}, "II", "mixed")
	require.NoError(t, err)

	_, ok := out.Estim()
	require.True(t, ok)
	alpha, _ := r.Alpha()
	assert.InDelta(t, 0.25, alpha, 1e-12)
	assert.Equal(t, "mixed: a=I b=II -> II(0.25)", r.String())
}

// TestAddRule_Validation covers fail-fast registration.
func TestAddRule_Validation(t *testing.T) {
	out, _, _ := ruleTree(t, infer.NewMamdani())

	_, err := out.AddRule(map[string]string{"ghost": "I"}, "I", "bad factor")
	assert.ErrorIs(t, err, infer.ErrUnknownFactor)
	_, err = out.AddRule(map[string]string{"a": "VII"}, "I", "bad term")
	assert.ErrorIs(t, err, infer.ErrUnknownTerm)
	_, err = out.AddRule(map[string]string{"a": "I"}, "IX", "bad conclusion")
	assert.ErrorIs(t, err, infer.ErrUnknownTerm)
	assert.Len(t, out.Rules(), 4, "rejected rules are not registered")

	plain := node(t, "plain", infer.WithClassifier(scale(t, 2)))
	_, err = plain.AddRule(nil, "I", "r")
	assert.ErrorIs(t, err, infer.ErrNotRuleBased)

	bare := node(t, "bare", infer.WithAggregator(infer.NewMamdani()))
	_, err = bare.AddRule(nil, "I", "r")
	assert.ErrorIs(t, err, infer.ErrNoClassifier)

	noScale := node(t, "noscale", infer.WithClassifier(scale(t, 2)), infer.WithAggregator(infer.NewMamdani()))
	require.NoError(t, noScale.Add(node(t, "f")))
	_, err = noScale.AddRule(map[string]string{"f": "I"}, "I", "r")
	assert.ErrorIs(t, err, infer.ErrNoClassifier)
}

// TestExplain_Rules checks the rule section of the dump.
func TestExplain_Rules(t *testing.T) {
	out, a, b := ruleTree(t, infer.NewRulesAccurate())
	a.SetEstim(0)
	b.SetEstim(1)

	var sb strings.Builder
	require.NoError(t, out.Explain(&sb))
	dump := sb.String()
	assert.Contains(t, dump, "out - 0.5 (1)\n")
	assert.Contains(t, dump, "rules of out:\n")
	assert.Contains(t, dump, "  r2: a=I b=II -> II(1)\n")
	assert.Contains(t, dump, "  r1: a=I b=I -> I(0)\n")
}

// TestAddRule_DropsMemo re-evaluates a rule base after a rule is added.
func TestAddRule_DropsMemo(t *testing.T) {
	out := node(t, "out", infer.WithClassifier(scale(t, 3)), infer.WithAggregator(infer.NewRulesAccurate()))
	a := node(t, "a", infer.WithClassifier(scale(t, 2)), infer.WithEstimate(0))
	require.NoError(t, out.Add(a))
	_, err := out.AddRule(map[string]string{"a": "I"}, "I", "low")
	require.NoError(t, err)

	v, ok := out.Estim()
	require.True(t, ok)
	assert.InDelta(t, 0.0, v, 1e-9)

	_, err = out.AddRule(map[string]string{"a": "I"}, "III", "high")
	require.NoError(t, err)
	v, ok = out.Estim()
	require.True(t, ok)
	assert.InDelta(t, 0.5, v, 1e-9, "mean of the I and III centroids")
}
