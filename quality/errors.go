// SPDX-License-Identifier: MIT

package quality

import "errors"

var (
	// ErrNilGraph indicates a nil graph argument.
	ErrNilGraph = errors.New("quality: graph is nil")

	// ErrUnknownVertex indicates a partition member that is not a node of the graph.
	ErrUnknownVertex = errors.New("quality: vertex not in graph")

	// ErrNotAPartition indicates communities that overlap or leave graph nodes uncovered.
	ErrNotAPartition = errors.New("quality: communities do not partition the graph")

	// ErrNoEdges indicates a graph whose total edge weight is zero, for which modularity is undefined.
	ErrNoEdges = errors.New("quality: graph has no weighted edges")

	// ErrNegativeWeight indicates an edge with negative weight.
	ErrNegativeWeight = errors.New("quality: negative edge weight")
)
