// SPDX-License-Identifier: MIT

// Package quality scores a partition against the structure of the graph it
// partitions.
//
// Modularity is Newman's Q generalized with a resolution parameter γ:
//
//	Q = 1/2m · Σ_ij [A_ij - γ k_i k_j / 2m] δ(c_i, c_j)
//
// The arithmetic is delegated to gonum's graph/community package. This
// package adds the checks gonum leaves to its callers: every partition member
// must be a node of the graph, every node must be covered exactly once, the
// graph must carry positive total weight, and no edge may be negative.
package quality
