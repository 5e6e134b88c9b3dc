// SPDX-License-Identifier: MIT

package metrics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// cell is one non-zero entry of a contingency table.
type cell struct {
	row, col int
	count    int
}

// contingency holds the joint label counts of two aligned sequences.
// Rows, columns and cells are kept in first-seen order so that floating
// point sums are accumulated in a stable, input-defined order.
type contingency struct {
	n     int
	rows  []int // marginal counts of the true labels
	cols  []int // marginal counts of the predicted labels
	cells []cell
}

func newContingency[L comparable](trueLabels, predLabels []L) (*contingency, error) {
	if len(trueLabels) != len(predLabels) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(trueLabels), len(predLabels))
	}
	if len(trueLabels) == 0 {
		return nil, ErrEmptyLabels
	}

	ct := &contingency{n: len(trueLabels)}
	rowOf := make(map[L]int)
	colOf := make(map[L]int)
	cellOf := make(map[[2]int]int)

	for i := range trueLabels {
		r, ok := rowOf[trueLabels[i]]
		if !ok {
			r = len(ct.rows)
			rowOf[trueLabels[i]] = r
			ct.rows = append(ct.rows, 0)
		}
		c, ok := colOf[predLabels[i]]
		if !ok {
			c = len(ct.cols)
			colOf[predLabels[i]] = c
			ct.cols = append(ct.cols, 0)
		}
		ct.rows[r]++
		ct.cols[c]++

		key := [2]int{r, c}
		k, ok := cellOf[key]
		if !ok {
			k = len(ct.cells)
			cellOf[key] = k
			ct.cells = append(ct.cells, cell{row: r, col: c})
		}
		ct.cells[k].count++
	}

	return ct, nil
}

// labelCounts returns the count of each distinct label in first-seen order.
func labelCounts[L comparable](labels []L) []int {
	idx := make(map[L]int)
	var counts []int
	for _, l := range labels {
		i, ok := idx[l]
		if !ok {
			i = len(counts)
			idx[l] = i
			counts = append(counts, 0)
		}
		counts[i]++
	}

	return counts
}

// entropyOf returns -Σ p ln p for the distribution counts/n.
func entropyOf(counts []int, n int) float64 {
	p := make([]float64, len(counts))
	for i, c := range counts {
		p[i] = float64(c) / float64(n)
	}

	return stat.Entropy(p)
}

func (ct *contingency) trueEntropy() float64 { return entropyOf(ct.rows, ct.n) }

func (ct *contingency) predEntropy() float64 { return entropyOf(ct.cols, ct.n) }

// mutualInformation sums only observed joint pairs, so no zero-probability guard is needed.
func (ct *contingency) mutualInformation() float64 {
	n := float64(ct.n)
	mi := 0.0
	for _, c := range ct.cells {
		pxy := float64(c.count) / n
		px := float64(ct.rows[c.row]) / n
		py := float64(ct.cols[c.col]) / n
		mi += pxy * math.Log(pxy/(px*py))
	}

	return mi
}

// pairs returns the exact pair counts behind the pair-counting scores.
func (ct *contingency) pairs() PairCounts {
	var pc PairCounts
	for _, c := range ct.cells {
		pc.Agree += comb2(c.count)
	}
	for _, r := range ct.rows {
		pc.SameTrue += comb2(r)
	}
	for _, c := range ct.cols {
		pc.SamePred += comb2(c)
	}
	pc.Total = comb2(ct.n)

	return pc
}

// comb2 computes C(n, 2) = n*(n-1)/2.
func comb2(n int) int64 {
	if n < 2 {
		return 0
	}

	return int64(n) * int64(n-1) / 2
}
