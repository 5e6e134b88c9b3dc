package metrics_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/commeval/metrics"
)

func randomLabels(rng *rand.Rand, n, k int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(k)
	}
	return out
}

// BenchmarkJaccardIndex_100k runs the contingency-based pair count on 100k entities.
func BenchmarkJaccardIndex_100k(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	tl, pl := randomLabels(rng, 100_000, 50), randomLabels(rng, 100_000, 80)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := metrics.JaccardIndex(tl, pl); err != nil {
			b.Fatalf("JaccardIndex failed: %v", err)
		}
	}
}

// BenchmarkNormalizedVariationOfInformation_100k measures the entropy path.
func BenchmarkNormalizedVariationOfInformation_100k(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	tl, pl := randomLabels(rng, 100_000, 50), randomLabels(rng, 100_000, 80)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := metrics.NormalizedVariationOfInformation(tl, pl); err != nil {
			b.Fatalf("NVI failed: %v", err)
		}
	}
}
