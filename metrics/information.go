// SPDX-License-Identifier: MIT

package metrics

import (
	"fmt"
	"math"
)

// AverageMethod selects the mean of H(t) and H(p) used to normalize mutual
// information. The zero value is Arithmetic.
type AverageMethod int

const (
	// Arithmetic normalizes by (H(t) + H(p)) / 2.
	Arithmetic AverageMethod = iota
	// Geometric normalizes by sqrt(H(t) * H(p)).
	Geometric
	// Min normalizes by min(H(t), H(p)).
	Min
	// Max normalizes by max(H(t), H(p)).
	Max
)

// String implements fmt.Stringer.
func (m AverageMethod) String() string {
	switch m {
	case Arithmetic:
		return "arithmetic"
	case Geometric:
		return "geometric"
	case Min:
		return "min"
	case Max:
		return "max"
	default:
		return fmt.Sprintf("AverageMethod(%d)", int(m))
	}
}

func (m AverageMethod) mean(a, b float64) (float64, error) {
	switch m {
	case Arithmetic:
		return (a + b) / 2, nil
	case Geometric:
		return math.Sqrt(a * b), nil
	case Min:
		return math.Min(a, b), nil
	case Max:
		return math.Max(a, b), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownAverage, m)
	}
}

// epsilon keeps NMI finite when one side has zero entropy.
var epsilon = math.Nextafter(1, 2) - 1

// Entropy returns the natural-log Shannon entropy of the empirical label
// distribution. A single distinct label gives 0; n distinct labels give ln(n).
// Complexity: O(n).
func Entropy[L comparable](labels []L) (float64, error) {
	if len(labels) == 0 {
		return 0, ErrEmptyLabels
	}

	return entropyOf(labelCounts(labels), len(labels)), nil
}

// MutualInformation returns I(t, p) in nats, summed over the label pairs that
// actually occur. MutualInformation(x, x) equals Entropy(x).
// Complexity: O(n).
func MutualInformation[L comparable](trueLabels, predLabels []L) (float64, error) {
	ct, err := newContingency(trueLabels, predLabels)
	if err != nil {
		return 0, err
	}

	return ct.mutualInformation(), nil
}

// VariationOfInformation returns H(t) + H(p) - 2·I(t, p) in nats.
func VariationOfInformation[L comparable](trueLabels, predLabels []L) (float64, error) {
	ct, err := newContingency(trueLabels, predLabels)
	if err != nil {
		return 0, err
	}

	return ct.variationOfInformation(), nil
}

// NormalizedVariationOfInformation returns VI / ln(n), n = len(trueLabels),
// which lies in [0, 1]. For n == 1 ln(n) is 0 and the unnormalized VI is
// returned instead.
func NormalizedVariationOfInformation[L comparable](trueLabels, predLabels []L) (float64, error) {
	ct, err := newContingency(trueLabels, predLabels)
	if err != nil {
		return 0, err
	}

	vi := ct.variationOfInformation()
	norm := math.Log(float64(ct.n))
	if norm == 0 {
		return vi, nil
	}

	return vi / norm, nil
}

// NormalizedMutualInformation returns I(t, p) divided by the avg-mean of the
// two entropies, following the scikit-learn convention:
//   - both sequences hold a single label: 1 (identical trivial partitions);
//   - I(t, p) == 0: 0;
//   - otherwise I / max(mean, machine epsilon), clipping I at 0 first.
//
// Errors: ErrEmptyLabels, ErrLengthMismatch, ErrUnknownAverage.
func NormalizedMutualInformation[L comparable](trueLabels, predLabels []L, avg AverageMethod) (float64, error) {
	ct, err := newContingency(trueLabels, predLabels)
	if err != nil {
		return 0, err
	}
	if avg < Arithmetic || avg > Max {
		return 0, fmt.Errorf("%w: %s", ErrUnknownAverage, avg)
	}
	if len(ct.rows) == 1 && len(ct.cols) == 1 {
		return 1, nil
	}

	mi := math.Max(ct.mutualInformation(), 0)
	if mi == 0 {
		return 0, nil
	}
	norm, err := avg.mean(ct.trueEntropy(), ct.predEntropy())
	if err != nil {
		return 0, err
	}

	return mi / math.Max(norm, epsilon), nil
}

// variationOfInformation clips rounding noise so identical labelings give exactly 0.
func (ct *contingency) variationOfInformation() float64 {
	return math.Max(ct.trueEntropy()+ct.predEntropy()-2*ct.mutualInformation(), 0)
}
