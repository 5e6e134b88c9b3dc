// SPDX-License-Identifier: MIT
// Package: commeval/builder
//
// sbm.go - stochastic block model constructors.
//
// Canonical model:
//   - Vertices are split into consecutive blocks; each block is one golden community.
//   - Every unordered pair {i,j}, i<j, is an edge independently with
//     probability probs[block(i)][block(j)].
//   - Trial order is i asc, j asc, so a fixed seed fixes the sample.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials for n vertices in one call.
//   - Space: O(n) for the block index.

package builder

import (
	"fmt"

	"github.com/katalvlaran/commeval/partition"
)

const (
	methodStochasticBlockModel = "StochasticBlockModel"
	methodPlantedPartition     = "PlantedPartition"
	methodRandomSparse         = "RandomSparse"

	minBlockSize = 1
	minGroups    = 1
	probMin      = 0.0
	probMax      = 1.0
)

// StochasticBlockModel returns a Constructor sampling len(sizes) blocks.
// probs must be a symmetric len(sizes)×len(sizes) matrix of probabilities.
func StochasticBlockModel(sizes []int, probs [][]float64) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		return sampleBlocks(methodStochasticBlockModel, f, cfg, sizes, probs)
	}
}

// PlantedPartition returns a Constructor for groups blocks of size vertices
// each, with edge probability pIn inside a block and pOut across blocks.
func PlantedPartition(groups, size int, pIn, pOut float64) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if groups < minGroups {
			return fmt.Errorf("%s: groups=%d < min=%d: %w", methodPlantedPartition, groups, minGroups, ErrTooFewVertices)
		}
		sizes := make([]int, groups)
		probs := make([][]float64, groups)
		for a := range probs {
			sizes[a] = size
			probs[a] = make([]float64, groups)
			for b := range probs[a] {
				probs[a][b] = pOut
			}
			probs[a][a] = pIn
		}

		return sampleBlocks(methodPlantedPartition, f, cfg, sizes, probs)
	}
}

// RandomSparse returns a Constructor for an Erdős–Rényi graph on n vertices
// with edge probability p. Its golden partition is the single block, which
// makes it a null model: no partition should score well against it.
func RandomSparse(n int, p float64) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		return sampleBlocks(methodRandomSparse, f, cfg, []int{n}, [][]float64{{p}})
	}
}

func sampleBlocks(method string, f *Fixture, cfg builderConfig, sizes []int, probs [][]float64) error {
	if err := validateBlocks(method, sizes, probs); err != nil {
		return err
	}
	if cfg.rng == nil && needsRand(probs) {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	total := 0
	for _, s := range sizes {
		total += s
	}
	offset := f.addVertices(total)

	block := make([]int, 0, total)
	for b, s := range sizes {
		c := make(partition.Community, s)
		for k := range c {
			c[k] = offset + len(block)
			block = append(block, b)
		}
		f.Golden = append(f.Golden, c)
	}

	for i := 0; i < total; i++ {
		for j := i + 1; j < total; j++ {
			if !cfg.trial(probs[block[i]][block[j]]) {
				continue
			}
			f.addEdge(offset+i, offset+j, cfg.weightFn(cfg.rng))
		}
	}

	return nil
}

func validateBlocks(method string, sizes []int, probs [][]float64) error {
	if len(sizes) == 0 {
		return fmt.Errorf("%s: no blocks: %w", method, ErrTooFewVertices)
	}
	for b, s := range sizes {
		if s < minBlockSize {
			return fmt.Errorf("%s: block %d size=%d < min=%d: %w", method, b, s, minBlockSize, ErrTooFewVertices)
		}
	}
	if len(probs) != len(sizes) {
		return fmt.Errorf("%s: %d probability rows for %d blocks: %w", method, len(probs), len(sizes), ErrInvalidBlocks)
	}
	for a, row := range probs {
		if len(row) != len(sizes) {
			return fmt.Errorf("%s: row %d has %d columns, want %d: %w", method, a, len(row), len(sizes), ErrInvalidBlocks)
		}
	}
	for a, row := range probs {
		for b, p := range row {
			// NaN fails both comparisons, so test the accepted range.
			if !(p >= probMin && p <= probMax) {
				return fmt.Errorf("%s: p[%d][%d]=%g not in [%.1f,%.1f]: %w", method, a, b, p, probMin, probMax, ErrInvalidProbability)
			}
			if p != probs[b][a] {
				return fmt.Errorf("%s: p[%d][%d]=%g != p[%d][%d]=%g: %w", method, a, b, p, b, a, probs[b][a], ErrInvalidBlocks)
			}
		}
	}

	return nil
}

// needsRand reports whether any probability is strictly between 0 and 1.
func needsRand(probs [][]float64) bool {
	for _, row := range probs {
		for _, p := range row {
			if p > probMin && p < probMax {
				return true
			}
		}
	}

	return false
}
