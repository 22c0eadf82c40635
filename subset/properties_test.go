package subset_test

import (
	"testing"

	"github.com/katalvlaran/fuzzycalc/subset"
	"github.com/katalvlaran/fuzzycalc/tnorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProperty_GreaterOnPoints orders crisp values.
func TestProperty_GreaterOnPoints(t *testing.T) {
	five, err := subset.NewPoint(5)
	require.NoError(t, err)
	three, err := subset.NewPoint(3)
	require.NoError(t, err)

	g, ok := subset.Greater(five, three)
	require.True(t, ok)
	assert.Equal(t, 1.0, g)
	g, ok = subset.Greater(three, five)
	require.True(t, ok)
	assert.Equal(t, 0.0, g)
}

// TestProperty_GreaterSelf compares a symmetric set with itself: ties count
// as "not below", so Risk stays under one half and Greater is small.
func TestProperty_GreaterSelf(t *testing.T) {
	tri, err := subset.NewTriangle(0, 1, 2, subset.WithAccuracy(200))
	require.NoError(t, err)
	r, ok := subset.Risk(tri, tri)
	require.True(t, ok)
	assert.InDelta(t, 0.5, r, 0.02)
}

// TestProperty_GaussianSymmetry checks symmetry about the mean and the
// centroid.
func TestProperty_GaussianSymmetry(t *testing.T) {
	g, err := subset.NewGaussian(2, 0.5)
	require.NoError(t, err)
	for _, d := range []float64{0.1, 0.5, 1, 2} {
		assert.InDelta(t, g.Value(2-d), g.Value(2+d), 1e-12, "d=%g", d)
	}
	c, ok := g.Centr()
	require.True(t, ok)
	assert.InDelta(t, 2.0, c, 1e-9)
	assert.Equal(t, 1.0, g.Value(2))
}

// TestProperty_Idempotence verifies A&A = A|A = A under min/max.
func TestProperty_Idempotence(t *testing.T) {
	a, err := subset.NewTrapezoidal(0, 1, 2, 4, subset.WithAccuracy(400))
	require.NoError(t, err)

	and, err := subset.And(a, a)
	require.NoError(t, err)
	or, err := subset.Or(a, a)
	require.NoError(t, err)
	assert.True(t, subset.Equal(and, a))
	assert.True(t, subset.Equal(or, a))
	assert.InDelta(t, 0.0, subset.HammingDistance(and, a), 1e-9)
}

// TestProperty_DeMorgan checks ¬(A∧B) = ¬A∨¬B for the min/max pair.
func TestProperty_DeMorgan(t *testing.T) {
	opts := []subset.Option{subset.WithAccuracy(300), subset.WithNorm(tnorm.MinMax{})}
	a, err := subset.NewTriangle(0, 2, 4, opts...)
	require.NoError(t, err)
	b, err := subset.NewTriangle(1, 3, 5, opts...)
	require.NoError(t, err)

	ab, err := subset.And(a, b)
	require.NoError(t, err)
	lhs, err := subset.Complement(ab)
	require.NoError(t, err)

	na, err := subset.Complement(a)
	require.NoError(t, err)
	nb, err := subset.Complement(b)
	require.NoError(t, err)
	rhs, err := subset.Or(na, nb)
	require.NoError(t, err)

	for _, x := range []float64{0.5, 1.5, 2.5, 3.5} {
		assert.InDelta(t, lhs.Value(x), rhs.Value(x), 1e-6, "x=%g", x)
	}
}

// TestProperty_Clamping keeps sums and differences inside [0,1].
func TestProperty_Clamping(t *testing.T) {
	a, err := subset.NewInterval(0, 2)
	require.NoError(t, err)
	b, err := subset.NewInterval(1, 3)
	require.NoError(t, err)

	sum, err := subset.Add(a, b)
	require.NoError(t, err)
	diff, err := subset.Sub(b, a)
	require.NoError(t, err)
	for _, p := range subset.Sample(sum) {
		assert.True(t, p.Y >= 0 && p.Y <= 1, "sum at %g = %g", p.X, p.Y)
	}
	for _, p := range subset.Sample(diff) {
		assert.True(t, p.Y >= 0 && p.Y <= 1, "diff at %g = %g", p.X, p.Y)
	}
	assert.Equal(t, 1.0, sum.Value(1.5))
	assert.Equal(t, 0.0, diff.Value(1.5), "1 - 1")
	assert.Equal(t, 1.0, diff.Value(2.5))
}

// TestProperty_LevelNesting verifies higher α-cuts are nested in lower ones.
func TestProperty_LevelNesting(t *testing.T) {
	tri, err := subset.NewTriangle(0, 5, 10, subset.WithAccuracy(1000))
	require.NoError(t, err)
	lo, ok := subset.Level(tri, 0.2)
	require.True(t, ok)
	hi, ok := subset.Level(tri, 0.8)
	require.True(t, ok)

	loA, loB := lo.Bounds()
	hiA, hiB := hi.Bounds()
	assert.LessOrEqual(t, loA, hiA)
	assert.GreaterOrEqual(t, loB, hiB)
}
