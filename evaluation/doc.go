// SPDX-License-Identifier: MIT

// Package evaluation assembles one Report comparing a detected partition with
// a golden partition of the same graph.
//
// The two partitions are turned into aligned label sequences with
// partition.Align: the entities are the vertices of the golden partition in
// ascending order, and vertices only the detected partition knows about are
// ignored. NVI and the pairwise Jaccard index come from the metrics package.
// Modularity and NMI are delegated to collaborators that can be swapped with
// WithModularity and WithNMI; by default they are quality.Modularity and
// metrics.NormalizedMutualInformation with arithmetic normalization.
//
// Sweep evaluates a series of runs, typically one per value of an
// experiment parameter, and stops at the first failure.
package evaluation
