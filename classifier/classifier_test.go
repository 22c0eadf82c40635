package classifier_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/fuzzycalc"
	"github.com/katalvlaran/fuzzycalc/classifier"
	"github.com/katalvlaran/fuzzycalc/domain"
	"github.com/katalvlaran/fuzzycalc/subset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func std5(t *testing.T) *classifier.FuzzySet {
	t.Helper()
	c, err := classifier.Standard(5, 0, 1, classifier.WithName("scale"))
	require.NoError(t, err)

	return c
}

func corners(t *testing.T, s subset.Set) []float64 {
	t.Helper()
	tri, ok := s.(subset.Triangle)
	require.True(t, ok, "expected a triangle, got %T", s)
	a, b, _, d := tri.Corners()

	return []float64{a, b, d}
}

// TestTriangle_Cross checks the uniform layout for both overlap widths.
func TestTriangle_Cross(t *testing.T) {
	names := []string{"1", "2", "3"}

	touch, err := classifier.NewTriangle(0, 1, names, classifier.WithCross(1))
	require.NoError(t, err)
	t1, _ := touch.Term("1")
	t2, _ := touch.Term("2")
	assert.InDeltaSlice(t, []float64{-0.25, 0, 0.25}, corners(t, t1), eps)
	assert.InDeltaSlice(t, []float64{0.25, 0.5, 0.75}, corners(t, t2), eps)

	half, err := classifier.NewTriangle(0, 1, names)
	require.NoError(t, err)
	t1, _ = half.Term("1")
	t3, _ := half.Term("3")
	assert.InDeltaSlice(t, []float64{-0.5, 0, 0.5}, corners(t, t1), eps)
	assert.InDeltaSlice(t, []float64{0.5, 1, 1.5}, corners(t, t3), eps)
}

// TestTriangle_Edge verifies inset modes.
func TestTriangle_Edge(t *testing.T) {
	c, err := classifier.NewTriangle(0, 100, []string{"low", "middle", "high"},
		classifier.WithEdge(true), classifier.WithCross(2))
	require.NoError(t, err)

	want := map[string]float64{"low": 25, "middle": 50, "high": 75}
	for name, s := range c.Terms() {
		assert.InDelta(t, want[name], s.Mode(), eps, name)
	}
	assert.Equal(t, []string{"low", "middle", "high"}, c.Names(), "insertion order")
}

// TestGaussian_Layout checks modes and that terms share the domain.
func TestGaussian_Layout(t *testing.T) {
	c, err := classifier.NewGaussian(0, 1, []string{"low", "middle", "high"})
	require.NoError(t, err)

	modes := []float64{}
	for _, s := range c.Terms() {
		modes = append(modes, s.Mode())
		assert.Equal(t, c.Domain(), s.Domain())
	}
	assert.InDeltaSlice(t, []float64{0, 0.5, 1}, modes, eps)

	g, _ := c.Term("middle")
	_, omega := g.(subset.Gaussian).Params()
	assert.InDelta(t, 1.0/6.0, omega, eps)
}

// TestLayout_Validation covers bad names and bounds.
func TestLayout_Validation(t *testing.T) {
	_, err := classifier.NewTriangle(0, 1, nil)
	assert.ErrorIs(t, err, classifier.ErrBadPartition)
	_, err = classifier.NewTriangle(0, 1, []string{"only"})
	assert.ErrorIs(t, err, classifier.ErrBadPartition)
	_, err = classifier.NewTriangle(1, 1, []string{"a", "b"})
	assert.ErrorIs(t, err, fuzzycalc.ErrConfiguration)
	_, err = classifier.NewTriangle(0, 1, []string{"a", "a"})
	assert.ErrorIs(t, err, classifier.ErrDuplicateTerm)
	_, err = classifier.Standard(1, 0, 1)
	assert.ErrorIs(t, err, classifier.ErrBadPartition)
	assert.Panics(t, func() { classifier.WithCross(0) })
}

// TestClassify_Crisp checks the standard five-term scale.
func TestClassify_Crisp(t *testing.T) {
	c := std5(t)
	cases := map[float64]string{0.2: "II", 0.8: "IV", 1.0: "V", 0.0: "I", 0.5: "III"}
	for x, want := range cases {
		got, ok := c.Classify(x)
		require.True(t, ok, "x=%g", x)
		assert.Equal(t, want, got, "x=%g", x)
	}

	got, ok := c.Classify(0.125)
	require.True(t, ok)
	assert.Equal(t, "I", got, "ties resolve to the first term")

	_, ok = c.Classify(7)
	assert.False(t, ok, "no term covers the point")
}

// TestClassifySet covers fuzzy inputs, the point fallback and mismatch.
func TestClassifySet(t *testing.T) {
	c := std5(t)

	in, err := subset.NewTriangle(0.4, 0.5, 0.6)
	require.NoError(t, err)
	got, ok, err := c.ClassifySet(in)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "III", got)

	in, err = subset.NewTriangle(-1.4, 0.0, 0.6)
	require.NoError(t, err)
	got, _, err = c.ClassifySet(in)
	require.NoError(t, err)
	assert.Equal(t, "I", got)

	p, err := subset.NewPoint(0.2)
	require.NoError(t, err)
	got, ok, err = c.ClassifySet(p)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "II", got)

	far, err := subset.NewTriangle(5, 6, 7)
	require.NoError(t, err)
	_, _, err = c.ClassifySet(far)
	assert.ErrorIs(t, err, classifier.ErrDomainMismatch)
	assert.True(t, errors.Is(err, fuzzycalc.ErrDomainMismatch))
}

// TestPartition_Unity verifies memberships sum to 1 across the domain.
func TestPartition_Unity(t *testing.T) {
	cases := []struct {
		name       string
		begin, end float64
		peaks      []float64
		overlap    float64
	}{
		{"reference", 10, 20, []float64{10, 13, 15, 20}, 0.2},
		{"triangular", 0, 1, []float64{0, 0.3, 1}, 1},
		{"inner peaks", 0, 30, []float64{18, 12, 15}, 0.5},
		{"single peak", 0, 1, []float64{0.4}, 0.7},
		{"crisp", 0, 10, []float64{0, 10}, 0},
		{"crisp uneven", 0, 9, []float64{1, 3, 8}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := classifier.NewPartition(tc.begin, tc.end, tc.peaks, tc.overlap, classifier.WithAccuracy(500))
			require.NoError(t, err)
			require.Equal(t, len(tc.peaks), c.Len())
			for x := range c.Domain().Points() {
				var sum float64
				for _, m := range c.Memberships(x) {
					sum += m.Degree
				}
				require.InDelta(t, 1.0, sum, 1e-9, "x=%g", x)
			}
		})
	}
}

// TestPartition_CrispBoundary checks that a crisp boundary is owned by the
// right-hand term only.
func TestPartition_CrispBoundary(t *testing.T) {
	c, err := classifier.NewPartition(0, 10, []float64{0, 10}, 0, classifier.WithAccuracy(1500))
	require.NoError(t, err)

	left, err := c.Find(5, "0")
	require.NoError(t, err)
	right, err := c.Find(5, "1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, left)
	assert.Equal(t, 1.0, right)

	left, err = c.Find(4.99, "0")
	require.NoError(t, err)
	assert.Equal(t, 1.0, left)

	term, ok := c.Classify(5)
	require.True(t, ok)
	assert.Equal(t, "1", term)
}

// TestPartition_Corners reproduces the reference layout.
func TestPartition_Corners(t *testing.T) {
	c, err := classifier.NewPartition(10, 20, []float64{10, 13, 15, 20}, 0.2)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3"}, c.Names())

	t0, _ := c.Term("0")
	a, b, _, d := t0.(subset.Trapezoidal).Corners()
	assert.Equal(t, 10.0, a)
	assert.Equal(t, 10.0, b)
	assert.InDelta(t, 11.709632851, d, 1e-8)

	t1, _ := c.Term("1")
	a, b, _, _ = t1.(subset.Trapezoidal).Corners()
	assert.InDelta(t, 11.290367149, a, 1e-8)
	assert.InDelta(t, 11.709632851, b, 1e-8)
}

// TestPartition_Validation covers invalid peaks and overlap.
func TestPartition_Validation(t *testing.T) {
	_, err := classifier.NewPartition(0, 1, nil, 0.5)
	assert.ErrorIs(t, err, classifier.ErrBadPartition)
	_, err = classifier.NewPartition(0, 1, []float64{0.5}, 1.5)
	assert.ErrorIs(t, err, classifier.ErrBadPartition)
	_, err = classifier.NewPartition(0, 1, []float64{0.5, 2}, 0.5)
	assert.ErrorIs(t, err, classifier.ErrBadPartition)
	_, err = classifier.NewPartition(0, 1, []float64{0.5, 0.5}, 0.5)
	assert.ErrorIs(t, err, classifier.ErrBadPartition)
}

// TestFind checks per-term lookup.
func TestFind(t *testing.T) {
	c, err := classifier.NewPartition(0, 1, []float64{0, 0.3, 1}, 1)
	require.NoError(t, err)

	v, err := c.Find(0.12, "0")
	require.NoError(t, err)
	assert.InDelta(t, 0.6, v, eps)
	v, err = c.Find(0.12, "1")
	require.NoError(t, err)
	assert.InDelta(t, 0.4, v, eps)
	v, err = c.Find(0.65, "2")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, v, eps)

	_, err = c.Find(0.1, "9")
	assert.ErrorIs(t, err, classifier.ErrUnknownTerm)
}

// TestAddTerm_Errors covers the registry invariants.
func TestAddTerm_Errors(t *testing.T) {
	c := classifier.New("manual", domain.MustNew(0, 10, 100))
	tri, err := subset.NewTriangle(1, 2, 3)
	require.NoError(t, err)

	require.NoError(t, c.AddTerm("low", tri))
	assert.ErrorIs(t, c.AddTerm("low", tri), classifier.ErrDuplicateTerm)
	assert.ErrorIs(t, c.AddTerm("", tri), classifier.ErrBadTerm)
	assert.ErrorIs(t, c.AddTerm("none", nil), classifier.ErrBadTerm)

	far, err := subset.NewTriangle(20, 21, 22)
	require.NoError(t, err)
	assert.ErrorIs(t, c.AddTerm("far", far), classifier.ErrDomainMismatch)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, "manual{low}", c.String())
}

// TestStandard checks roman labels and the Gaussian switch.
func TestStandard(t *testing.T) {
	c, err := classifier.Standard(7, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"I", "II", "III", "IV", "V", "VI", "VII"}, c.Names())

	g, err := classifier.Standard(3, 0, 1, classifier.WithGaussian())
	require.NoError(t, err)
	s, _ := g.Term("II")
	_, ok := s.(subset.Gaussian)
	assert.True(t, ok)

	assert.Equal(t, "IX", classifier.Roman(9))
	assert.Equal(t, "XIV", classifier.Roman(14))
	assert.Equal(t, "0", classifier.Roman(0))
}

type counter struct{ labels []string }

func (c *counter) Plot(_ []subset.Pair, opts subset.PlotOptions) error {
	c.labels = append(c.labels, opts.Label)
	return nil
}

// TestPlot verifies every term is handed to the plotter.
func TestPlot(t *testing.T) {
	c := std5(t)
	p := &counter{}
	require.NoError(t, c.Plot(p))
	assert.Equal(t, c.Names(), p.labels)
}
