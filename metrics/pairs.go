// SPDX-License-Identifier: MIT

package metrics

import "math"

// PairCounts classifies the Total = C(n,2) unordered entity pairs.
//
//	Agree    - pairs sharing a label in both sequences
//	SameTrue - pairs sharing a true label
//	SamePred - pairs sharing a predicted label
type PairCounts struct {
	Agree    int64
	SameTrue int64
	SamePred int64
	Total    int64
}

// Union returns the pairs sharing a label in at least one sequence.
func (pc PairCounts) Union() int64 {
	return pc.SameTrue + pc.SamePred - pc.Agree
}

// CountPairs returns the exact pair counts of two aligned sequences.
// Complexity: O(n) time via the contingency table.
func CountPairs[L comparable](trueLabels, predLabels []L) (PairCounts, error) {
	ct, err := newContingency(trueLabels, predLabels)
	if err != nil {
		return PairCounts{}, err
	}

	return ct.pairs(), nil
}

// JaccardIndex returns Agree / Union over all unordered pairs of distinct
// entities, or 0 when no pair shares a label in either sequence (every
// entity is a singleton on both sides).
//
// The result equals the O(n²) pairwise definition bit for bit: both counts
// are exact integers and the final division is the same.
func JaccardIndex[L comparable](trueLabels, predLabels []L) (float64, error) {
	pc, err := CountPairs(trueLabels, predLabels)
	if err != nil {
		return 0, err
	}
	union := pc.Union()
	if union == 0 {
		return 0, nil
	}

	return float64(pc.Agree) / float64(union), nil
}

// AdjustedRandIndex returns the Rand index corrected for chance:
//
//	ARI = (Agree - E) / (M - E),  E = SameTrue·SamePred / Total,  M = (SameTrue + SamePred) / 2
//
// 1 means identical partitions, 0 the agreement expected at random, negative
// values worse than random. Degenerate cases where M == E (for example a
// single entity, or both sides all-singletons) count as perfect agreement.
func AdjustedRandIndex[L comparable](trueLabels, predLabels []L) (float64, error) {
	pc, err := CountPairs(trueLabels, predLabels)
	if err != nil {
		return 0, err
	}
	if pc.Total == 0 {
		return 1, nil
	}

	sumTrue, sumPred := float64(pc.SameTrue), float64(pc.SamePred)
	expected := sumTrue * sumPred / float64(pc.Total)
	maxIndex := 0.5 * (sumTrue + sumPred)

	denominator := maxIndex - expected
	if math.Abs(denominator) < 1e-12 {
		return 1, nil
	}

	return (float64(pc.Agree) - expected) / denominator, nil
}
