// SPDX-License-Identifier: MIT
// Package: commeval/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Constructors attach context with %w: "<Method>: <detail>: <sentinel>".
//   - Validation order: sizes, block shape, probabilities, RNG presence.

package builder

import "errors"

// ErrTooFewVertices indicates a block size or group count below its minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed or WithRand.
// Probabilities that are all exactly 0 or 1 need no RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidBlocks indicates a probability matrix that is not square, does not
// match the number of blocks, or is not symmetric.
var ErrInvalidBlocks = errors.New("builder: invalid block probability matrix")

// ErrConstructFailed indicates a nil constructor or a failure to mutate the fixture.
var ErrConstructFailed = errors.New("builder: construction failed")
