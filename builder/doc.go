// SPDX-License-Identifier: MIT

// Package builder generates benchmark fixtures for community evaluation: a
// weighted undirected gonum graph together with the golden partition that
// was planted when the graph was sampled.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     BuildGraph(bopts, cons...) resolves options once and runs each
//     Constructor in order against one Fixture.
//   - Constructors (each appends a new block of vertices):
//     StochasticBlockModel(sizes, probs) samples edges between blocks with
//     the given block-pair probabilities; PlantedPartition(groups, size,
//     pIn, pOut) is the symmetric special case; RandomSparse(n, p) is a
//     single-block Erdős–Rényi null model.
//   - Configuration primitives:
//     BuilderOption mutates builderConfig (RNG, weight function).
//   - Edge-weight distributions (WeightFn):
//     DefaultWeightFn, ConstantWeightFn, UniformWeightFn, ExponentialWeightFn.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order give identical
//     graphs and partitions.
//   - Vertex ids are dense, 0..n-1 in creation order, matching the ids the
//     pajek codecs read and write.
//   - Composition: constructors never touch vertices added before them, so
//     several constructors yield the disjoint union of their blocks.
//   - Option constructors panic on meaningless values; constructors return
//     sentinel errors wrapped with the constructor name and never panic.
package builder
