package subset_test

import (
	"testing"

	"github.com/katalvlaran/fuzzycalc/subset"
)

func BenchmarkSubsetValue(b *testing.B) {
	s, _ := subset.New(0, 100)
	for x := 1.0; x < 100; x += 3 {
		_ = s.Set(x, 0.5)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Value(float64(i%100) + 0.5)
	}
}

func BenchmarkOr(b *testing.B) {
	x, _ := subset.NewTriangle(0, 2, 4)
	y, _ := subset.NewTriangle(2, 4, 6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = subset.Or(x, y)
	}
}

func BenchmarkRisk(b *testing.B) {
	x, _ := subset.NewTriangle(0, 2, 4, subset.WithAccuracy(200))
	y, _ := subset.NewTriangle(2, 4, 6, subset.WithAccuracy(200))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = subset.Risk(x, y)
	}
}
