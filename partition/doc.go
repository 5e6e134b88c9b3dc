// SPDX-License-Identifier: MIT

// Package partition defines the community partition of a graph's vertex set
// and the helpers every other commeval package builds on.
//
// A Partition is an ordered sequence of communities; each Community lists the
// dense vertex ids in [0, n) it contains. Order carries no meaning about
// community identity; it only matters where a position is needed:
//
//   - Labels derives a vertex -> label assignment where the label is the
//     community's position in the sequence.
//   - Align turns a golden and an algorithm partition into two positionally
//     aligned label sequences, ready for the metrics package.
//   - Groups is the inverse direction: an insertion-ordered label -> vertices
//     map used when a partition is rebuilt from arbitrary labels.
//
// Validation:
//
//	Validate reports the first violated invariant as *InvalidPartitionError:
//	a vertex listed in two communities (Overlap), a negative id (Negative),
//	or a vertex set that is not the contiguous range [0, n) (Gap).
//	Use errors.Is(err, ErrInvalidPartition) to branch on any of them.
//
// Complexity:
//
//	Validate, Labels and Align are O(n) time and space in the number of
//	memberships; nothing here is concurrent and all functions are pure.
package partition
