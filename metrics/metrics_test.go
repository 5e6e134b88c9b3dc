package metrics_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/commeval/metrics"
)

const tol = 1e-12

// scenario labels: golden [{0,1,2},{3,4}] vs algorithm [{0,1},{2,3,4}].
var (
	scenarioTrue = []int{0, 0, 0, 1, 1}
	scenarioPred = []int{0, 0, 1, 1, 1}
)

// TestEntropy checks the closed forms for one community and all singletons.
func TestEntropy(t *testing.T) {
	h, err := metrics.Entropy([]int{3, 3, 3, 3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, h)

	for _, n := range []int{1, 2, 5, 64} {
		labels := make([]int, n)
		for i := range labels {
			labels[i] = i
		}
		h, err := metrics.Entropy(labels)
		require.NoError(t, err)
		assert.InDelta(t, math.Log(float64(n)), h, tol, "n=%d", n)
	}

	h, err = metrics.Entropy([]string{"x", "y", "x", "y"})
	require.NoError(t, err)
	assert.InDelta(t, math.Ln2, h, tol)

	_, err = metrics.Entropy([]int{})
	assert.ErrorIs(t, err, metrics.ErrEmptyLabels)
}

// TestMutualInformation_Self equals the entropy of the sequence.
func TestMutualInformation_Self(t *testing.T) {
	for _, x := range [][]int{{0}, {0, 0, 1}, {4, 1, 4, 2, 2, 9}, scenarioTrue} {
		h, err := metrics.Entropy(x)
		require.NoError(t, err)
		mi, err := metrics.MutualInformation(x, x)
		require.NoError(t, err)
		assert.True(t, scalar.EqualWithinAbsOrRel(h, mi, tol, tol), "x=%v: H=%v I=%v", x, h, mi)
	}
}

// TestMutualInformation_Independent is zero for independent labelings.
func TestMutualInformation_Independent(t *testing.T) {
	mi, err := metrics.MutualInformation([]int{0, 0, 1, 1}, []int{0, 1, 0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0, mi, tol)
}

// TestMutualInformation_Errors rejects mismatched and empty input.
func TestMutualInformation_Errors(t *testing.T) {
	_, err := metrics.MutualInformation([]int{1, 2}, []int{1})
	assert.ErrorIs(t, err, metrics.ErrLengthMismatch)

	_, err = metrics.MutualInformation([]int{}, []int{})
	assert.ErrorIs(t, err, metrics.ErrEmptyLabels)
}

// TestVariationOfInformation checks identity and a hand-computed value.
func TestVariationOfInformation(t *testing.T) {
	vi, err := metrics.NormalizedVariationOfInformation(scenarioTrue, scenarioTrue)
	require.NoError(t, err)
	assert.InDelta(t, 0, vi, tol)

	// t = [0,0,1,1], p = [0,1,0,1]: independent, VI = 2 ln 2, normalized by ln 4.
	raw, err := metrics.VariationOfInformation([]int{0, 0, 1, 1}, []int{0, 1, 0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Ln2, raw, tol)

	nvi, err := metrics.NormalizedVariationOfInformation([]int{0, 0, 1, 1}, []int{0, 1, 0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, nvi, tol)
}

// TestNormalizedVariationOfInformation_SingleEntity returns the raw VI instead of dividing by ln 1.
func TestNormalizedVariationOfInformation_SingleEntity(t *testing.T) {
	nvi, err := metrics.NormalizedVariationOfInformation([]int{7}, []int{3})
	require.NoError(t, err)
	assert.False(t, math.IsNaN(nvi))
	assert.Equal(t, 0.0, nvi)
}

// TestJaccardIndex covers the identity, all-singleton and worked scenario cases.
func TestJaccardIndex(t *testing.T) {
	j, err := metrics.JaccardIndex(scenarioTrue, scenarioTrue)
	require.NoError(t, err)
	assert.Equal(t, 1.0, j)

	singletons := []int{0, 1, 2, 3}
	j, err = metrics.JaccardIndex(singletons, []int{9, 8, 7, 6})
	require.NoError(t, err)
	assert.Equal(t, 0.0, j)

	// Pairs together in golden: (0,1) (0,2) (1,2) (3,4); in algorithm: (0,1) (2,3) (2,4) (3,4).
	// Agree = 2, union = 6.
	j, err = metrics.JaccardIndex(scenarioTrue, scenarioPred)
	require.NoError(t, err)
	assert.Equal(t, 2.0/6.0, j)

	pc, err := metrics.CountPairs(scenarioTrue, scenarioPred)
	require.NoError(t, err)
	assert.Equal(t, metrics.PairCounts{Agree: 2, SameTrue: 4, SamePred: 4, Total: 10}, pc)
	assert.Equal(t, int64(6), pc.Union())
}

// jaccardPairwise is the O(n²) reference definition.
func jaccardPairwise(t, p []int) float64 {
	agree, union := 0, 0
	for i := range t {
		for j := i + 1; j < len(t); j++ {
			sameT, sameP := t[i] == t[j], p[i] == p[j]
			if sameT || sameP {
				union++
			}
			if sameT && sameP {
				agree++
			}
		}
	}
	if union == 0 {
		return 0
	}
	return float64(agree) / float64(union)
}

// TestJaccardIndex_MatchesPairwise compares against the pairwise definition bit for bit.
func TestJaccardIndex_MatchesPairwise(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(40)
		k1, k2 := 1+rng.Intn(n), 1+rng.Intn(n)
		tl, pl := make([]int, n), make([]int, n)
		for i := 0; i < n; i++ {
			tl[i], pl[i] = rng.Intn(k1), rng.Intn(k2)
		}

		got, err := metrics.JaccardIndex(tl, pl)
		require.NoError(t, err)
		assert.Equal(t, jaccardPairwise(tl, pl), got, "trial %d", trial)
	}
}

// TestNormalizedMutualInformation checks the averages and the special cases.
func TestNormalizedMutualInformation(t *testing.T) {
	tl, pl := []int{0, 0, 1, 1}, []int{0, 0, 1, 2}

	tests := []struct {
		avg  metrics.AverageMethod
		want float64
	}{
		{metrics.Arithmetic, 0.8},
		{metrics.Geometric, 1 / math.Sqrt(1.5)},
		{metrics.Min, 1},
		{metrics.Max, 1 / 1.5},
	}
	for _, tc := range tests {
		t.Run(tc.avg.String(), func(t *testing.T) {
			got, err := metrics.NormalizedMutualInformation(tl, pl, tc.avg)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}

	nmi, err := metrics.NormalizedMutualInformation([]int{1, 1, 1}, []int{2, 2, 2}, metrics.Arithmetic)
	require.NoError(t, err)
	assert.Equal(t, 1.0, nmi, "single-class on both sides is a perfect match")

	nmi, err = metrics.NormalizedMutualInformation([]int{0, 0, 0}, []int{0, 1, 2}, metrics.Arithmetic)
	require.NoError(t, err)
	assert.Equal(t, 0.0, nmi)

	nmi, err = metrics.NormalizedMutualInformation(scenarioTrue, scenarioTrue, metrics.Arithmetic)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, nmi, tol)

	_, err = metrics.NormalizedMutualInformation(tl, pl, metrics.AverageMethod(42))
	assert.ErrorIs(t, err, metrics.ErrUnknownAverage)
}

// TestAdjustedRandIndex checks agreement, a known value and dissimilar partitions.
func TestAdjustedRandIndex(t *testing.T) {
	ari, err := metrics.AdjustedRandIndex([]int{0, 0, 1, 1, 2, 2}, []int{5, 5, 3, 3, 4, 4})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, ari, tol)

	ari, err = metrics.AdjustedRandIndex([]int{0, 0, 1, 1}, []int{0, 0, 1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 4.0/7.0, ari, 1e-9)

	ari, err = metrics.AdjustedRandIndex([]int{0, 0, 0, 1, 1, 1}, []int{0, 1, 0, 1, 0, 1})
	require.NoError(t, err)
	assert.Less(t, ari, 0.5)

	ari, err = metrics.AdjustedRandIndex([]int{1}, []int{2})
	require.NoError(t, err)
	assert.Equal(t, 1.0, ari)
}
