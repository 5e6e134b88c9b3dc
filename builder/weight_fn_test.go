package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/commeval/builder"
)

// TestWeightFnConstructors verifies that constructors panic on invalid parameters.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_zero", func() builder.WeightFn { return builder.ConstantWeightFn(0) }},
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"UniformWeightFn_minZero", func() builder.WeightFn { return builder.UniformWeightFn(0, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"ExponentialWeightFn_zeroRate", func() builder.WeightFn { return builder.ExponentialWeightFn(0) }},
		{"ExponentialWeightFn_negativeRate", func() builder.WeightFn { return builder.ExponentialWeightFn(-1) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() })
		})
	}
}

// TestWeightFnBehavior checks ranges and the nil-RNG fallback.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	assert.Equal(t, 2.5, builder.ConstantWeightFn(2.5)(rng))

	uniform := builder.UniformWeightFn(2, 4)
	assert.Equal(t, builder.DefaultEdgeWeight, uniform(nil))
	assert.Equal(t, 3.0, builder.UniformWeightFn(3, 3)(rng))

	exp := builder.ExponentialWeightFn(2)
	assert.Equal(t, builder.DefaultEdgeWeight, exp(nil))

	for i := 0; i < 100; i++ {
		w := uniform(rng)
		assert.GreaterOrEqual(t, w, 2.0)
		assert.Less(t, w, 4.0)
		assert.GreaterOrEqual(t, exp(rng), 1.0)
	}
}
