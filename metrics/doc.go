// SPDX-License-Identifier: MIT

// Package metrics compares two partitions given as positionally aligned label
// sequences: labels[i] in both sequences refers to the same entity.
//
// Information-theoretic scores (natural logarithm throughout):
//
//	Entropy(x)                            H(x) = -Σ p_k ln p_k
//	MutualInformation(t, p)               I(t,p) = Σ p(t,p) ln(p(t,p) / (p(t) p(p)))
//	VariationOfInformation(t, p)          VI = H(t) + H(p) - 2 I(t,p)
//	NormalizedVariationOfInformation(t,p) VI / ln(n), or VI itself when n == 1
//	NormalizedMutualInformation(t,p,avg)  I / mean(H(t), H(p)) for the chosen mean
//
// Pair-counting scores, over all unordered pairs of distinct entities:
//
//	JaccardIndex(t, p)       pairs together in both / pairs together in either (0 if none)
//	AdjustedRandIndex(t, p)  chance-corrected pair agreement
//
// Every score is computed from one contingency table built in a single pass,
// so pair counts cost O(n + cells) instead of O(n²) while staying exact: the
// integer counts are identical to the pairwise definition.
//
// Labels may be any comparable type. Empty input yields ErrEmptyLabels and
// sequences of different lengths yield ErrLengthMismatch.
package metrics
