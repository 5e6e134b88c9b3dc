// SPDX-License-Identifier: MIT

package partition

import (
	"maps"
	"slices"
)

// Align derives the two positionally aligned label sequences compared by the
// metrics package.
//
// The evaluated entities are exactly the vertices spanned by golden, taken in
// ascending vertex order. trueLabels[i] is the golden community position of
// the i-th such vertex and predLabels[i] its community position in algorithm.
// Vertices only present in algorithm are ignored.
//
// Both partitions are validated first. A golden vertex with no community in
// algorithm is reported as an *InvalidPartitionError of kind Uncovered.
//
// Complexity: O(n_golden + n_algorithm) time and space.
func Align(golden, algorithm Partition) (trueLabels, predLabels []int, err error) {
	goldenIndex, err := golden.Index()
	if err != nil {
		return nil, nil, err
	}
	algoIndex, err := algorithm.Index()
	if err != nil {
		return nil, nil, err
	}

	return alignIndexes(goldenIndex, func(v int) (int, bool) {
		if v >= len(algoIndex) {
			return 0, false
		}

		return algoIndex[v], true
	})
}

// AlignUnchecked is Align without validation. Labels follow Partition.Labels,
// so a vertex listed twice keeps its last community (last write wins). The
// entity order is ascending vertex id. A golden vertex missing from algorithm
// is still reported as Uncovered since no label exists to pair it with.
func AlignUnchecked(golden, algorithm Partition) (trueLabels, predLabels []int, err error) {
	goldenLabels := golden.Labels()
	algoLabels := algorithm.Labels()

	vertices := slices.Sorted(maps.Keys(goldenLabels))
	trueLabels = make([]int, len(vertices))
	predLabels = make([]int, len(vertices))
	for i, v := range vertices {
		pl, ok := algoLabels[v]
		if !ok {
			return nil, nil, &InvalidPartitionError{Kind: Uncovered, Vertex: v, Community: goldenLabels[v]}
		}
		trueLabels[i] = goldenLabels[v]
		predLabels[i] = pl
	}

	return trueLabels, predLabels, nil
}

func alignIndexes(golden []int, lookup func(int) (int, bool)) ([]int, []int, error) {
	trueLabels := make([]int, len(golden))
	predLabels := make([]int, len(golden))
	for v, t := range golden {
		pl, ok := lookup(v)
		if !ok {
			return nil, nil, &InvalidPartitionError{Kind: Uncovered, Vertex: v, Community: t, Order: len(golden)}
		}
		trueLabels[v] = t
		predLabels[v] = pl
	}

	return trueLabels, predLabels, nil
}
