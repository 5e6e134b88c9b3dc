// SPDX-License-Identifier: MIT

package quality

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/community"

	"github.com/katalvlaran/commeval/partition"
)

// Modularity returns the modularity of p over g. The graph must be
// undirected; when it implements graph.Weighted edge weights are used,
// otherwise every edge counts 1. Inputs are not mutated.
//
// Errors: ErrNilGraph, ErrUnknownVertex, ErrNotAPartition, ErrNegativeWeight, ErrNoEdges.
// Complexity: O(V + E).
func Modularity(g graph.Undirected, p partition.Partition, opts ...Option) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	o := newOptions(opts...)

	communities, err := communitiesOf(g, p)
	if err != nil {
		return 0, err
	}
	total, err := totalWeight(g)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, ErrNoEdges
	}

	return community.Q(g, communities, o.resolution), nil
}

// communitiesOf resolves vertex ids to graph nodes and checks exact coverage.
func communitiesOf(g graph.Undirected, p partition.Partition) ([][]graph.Node, error) {
	owner := make(map[int64]int)
	out := make([][]graph.Node, 0, len(p))
	for ci, c := range p {
		nodes := make([]graph.Node, 0, len(c))
		for _, v := range c {
			id := int64(v)
			n := g.Node(id)
			if n == nil {
				return nil, fmt.Errorf("%w: vertex %d in community %d", ErrUnknownVertex, v, ci)
			}
			if prev, dup := owner[id]; dup {
				return nil, fmt.Errorf("%w: vertex %d in communities %d and %d", ErrNotAPartition, v, prev, ci)
			}
			owner[id] = ci
			nodes = append(nodes, n)
		}
		out = append(out, nodes)
	}

	all := graph.NodesOf(g.Nodes())
	if len(owner) != len(all) {
		var missing []int64
		for _, n := range all {
			if _, ok := owner[n.ID()]; !ok {
				missing = append(missing, n.ID())
			}
		}

		return nil, fmt.Errorf("%w: vertex %d is in no community", ErrNotAPartition, slices.Min(missing))
	}

	return out, nil
}

// totalWeight sums each undirected edge once and rejects negative weights.
func totalWeight(g graph.Undirected) (float64, error) {
	weighted, isWeighted := g.(graph.Weighted)
	total := 0.0
	nodes := g.Nodes()
	for nodes.Next() {
		u := nodes.Node().ID()
		to := g.From(u)
		for to.Next() {
			v := to.Node().ID()
			if v < u {
				continue
			}
			w := 1.0
			if isWeighted {
				w, _ = weighted.Weight(u, v)
			}
			if w < 0 {
				return 0, fmt.Errorf("%w: edge %d-%d has weight %v", ErrNegativeWeight, u, v, w)
			}
			total += w
		}
	}

	return total, nil
}
