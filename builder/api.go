// SPDX-License-Identifier: MIT
// Package: commeval/builder
//
// api.go - public entry point and the Fixture type.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates the fixture,
//     resolves cfg, runs cons in order.
//   - Constructors only append: a new block of vertices, its edges, and its
//     golden communities.
//   - Determinism: same options, seed and constructor order give identical fixtures.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/commeval/partition"
)

// Fixture is a sampled graph with the partition planted into it.
// Graph node ids are 0..n-1; Golden partitions exactly those ids.
type Fixture struct {
	Graph  *simple.WeightedUndirectedGraph
	Golden partition.Partition
}

// Order returns the number of vertices added so far.
func (f *Fixture) Order() int {
	return f.Graph.Nodes().Len()
}

// addVertices appends n vertices and returns the id of the first one.
func (f *Fixture) addVertices(n int) int {
	offset := f.Order()
	for i := 0; i < n; i++ {
		f.Graph.AddNode(simple.Node(int64(offset + i)))
	}

	return offset
}

// addEdge joins u and v with weight w.
func (f *Fixture) addEdge(u, v int, w float64) {
	f.Graph.SetWeightedEdge(f.Graph.NewWeightedEdge(simple.Node(int64(u)), simple.Node(int64(v)), w))
}

// Constructor applies a deterministic fixture mutation using the resolved
// builderConfig. Constructors validate their parameters before mutating
// anything and return wrapped sentinels instead of panicking.
type Constructor func(f *Fixture, cfg builderConfig) error

// BuildGraph creates an empty Fixture, resolves bopts, and applies all
// constructors in order. A constructor error is wrapped as "BuildGraph: %w"
// and returned immediately.
//
// Complexity: Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*Fixture, error) {
	f := &Fixture{
		Graph:  simple.NewWeightedUndirectedGraph(0, 0),
		Golden: partition.Partition{},
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(f, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return f, nil
}
