// SPDX-License-Identifier: MIT
// Package: commeval/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - rng      = nil              (sampling constructors then require p ∈ {0,1})
//   - weightFn = DefaultWeightFn  (every edge weighs DefaultEdgeWeight)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for Bernoulli edge trials and weight draws; nil means no randomness.
	rng *rand.Rand
	// Weight generator, called once per sampled edge.
	weightFn WeightFn
}

// newBuilderConfig applies opts in order over the defaults; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// trial reports whether an edge with probability p is drawn. With p at 0 or 1
// the outcome is fixed and no random number is consumed.
func (c builderConfig) trial(p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	default:
		return c.rng.Float64() < p
	}
}
