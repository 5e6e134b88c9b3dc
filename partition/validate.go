// SPDX-License-Identifier: MIT

package partition

// Validate checks that the communities are pairwise disjoint and that their
// union is exactly [0, n), n = p.Order(). It returns nil or an
// *InvalidPartitionError describing the first violation.
// Empty communities are allowed.
// Complexity: O(n) time and space.
func (p Partition) Validate() error {
	_, err := p.Index()

	return err
}

// Index validates p and returns, for every vertex v in [0, n), the position
// of the community containing it. The slice is freshly allocated.
func (p Partition) Index() ([]int, error) {
	n := p.Order()
	owner := make([]int, n) // community position + 1; 0 means unseen
	var stray map[int]int   // ids >= n, tracked only to detect overlaps among them

	for pos, c := range p {
		for _, v := range c {
			switch {
			case v < 0:
				return nil, &InvalidPartitionError{Kind: Negative, Vertex: v, Community: pos, Order: n}
			case v >= n:
				if stray == nil {
					stray = make(map[int]int)
				}
				if first, seen := stray[v]; seen {
					return nil, &InvalidPartitionError{Kind: Overlap, Vertex: v, Community: pos, First: first, Order: n}
				}
				stray[v] = pos
			case owner[v] != 0:
				return nil, &InvalidPartitionError{Kind: Overlap, Vertex: v, Community: pos, First: owner[v] - 1, Order: n}
			default:
				owner[v] = pos + 1
			}
		}
	}

	if len(stray) > 0 {
		// n memberships, no overlaps and some ids outside [0, n): at least one id inside is missing.
		for v, o := range owner {
			if o == 0 {
				return nil, &InvalidPartitionError{Kind: Gap, Vertex: v, Community: -1, Order: n}
			}
		}
	}

	for v := range owner {
		owner[v]--
	}

	return owner, nil
}
