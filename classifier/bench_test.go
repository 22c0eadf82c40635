package classifier_test

import (
	"testing"

	"github.com/katalvlaran/fuzzycalc/classifier"
	"github.com/katalvlaran/fuzzycalc/subset"
)

func BenchmarkClassify(b *testing.B) {
	f, err := classifier.Standard(7, 0, 100)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Classify(float64(i % 100))
	}
}

func BenchmarkClassifySet(b *testing.B) {
	f, err := classifier.Standard(5, 0, 10, classifier.WithAccuracy(300))
	if err != nil {
		b.Fatal(err)
	}
	in, err := subset.NewTriangle(3, 4, 6, subset.WithAccuracy(300))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = f.ClassifySet(in)
	}
}
