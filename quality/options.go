// SPDX-License-Identifier: MIT

package quality

import (
	"fmt"
	"math"
)

// DefaultResolution is the classic Newman-Girvan modularity.
const DefaultResolution = 1.0

// Option configures Modularity.
type Option func(*options)

type options struct {
	resolution float64
}

func newOptions(opts ...Option) options {
	o := options{resolution: DefaultResolution}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithResolution sets γ. Values below 1 favor larger communities, above 1
// smaller ones. Panics if r is negative, NaN or infinite.
func WithResolution(r float64) Option {
	if r < 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		panic(fmt.Sprintf("quality: WithResolution(%v): resolution must be finite and non-negative", r))
	}

	return func(o *options) { o.resolution = r }
}
