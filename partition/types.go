// SPDX-License-Identifier: MIT

package partition

import "slices"

// Community is a set of vertex ids. The slice order is not significant.
type Community []int

// Partition is an ordered sequence of communities.
type Partition []Community

// Len returns the number of communities.
func (p Partition) Len() int { return len(p) }

// Order returns the total number of memberships across all communities,
// which equals the vertex count n for a valid partition.
func (p Partition) Order() int {
	n := 0
	for _, c := range p {
		n += len(c)
	}

	return n
}

// Clone returns a deep copy; mutating the copy never affects p.
func (p Partition) Clone() Partition {
	if p == nil {
		return nil
	}
	out := make(Partition, len(p))
	for i, c := range p {
		out[i] = slices.Clone(c)
	}

	return out
}

// Sorted returns a deep copy in which each community is sorted ascending and
// communities are ordered by ascending minimum member. Empty communities sort
// last. This is the canonical order produced by a .clu round trip.
func (p Partition) Sorted() Partition {
	out := p.Clone()
	for _, c := range out {
		slices.Sort(c)
	}
	slices.SortStableFunc(out, func(a, b Community) int {
		switch {
		case len(a) == 0 && len(b) == 0:
			return 0
		case len(a) == 0:
			return 1
		case len(b) == 0:
			return -1
		}

		return a[0] - b[0]
	})

	return out
}

// Labels maps every vertex to the position of its community in p.
// A vertex listed in more than one community keeps the label of the last one
// (last write wins); call Validate first to rule that out.
func (p Partition) Labels() map[int]int {
	labels := make(map[int]int, p.Order())
	for label, c := range p {
		for _, v := range c {
			labels[v] = label
		}
	}

	return labels
}
