// SPDX-License-Identifier: MIT

package partition

import (
	"errors"
	"fmt"
)

// ErrInvalidPartition matches every *InvalidPartitionError via errors.Is.
var ErrInvalidPartition = errors.New("partition: invalid partition")

// ErrUnmappedVertex indicates a vertex missing from the id mapping given to
// FromAssignment.
var ErrUnmappedVertex = errors.New("partition: vertex has no mapped id")

// Violation names the invariant an *InvalidPartitionError reports.
type Violation int

const (
	// Overlap: a vertex is a member of two communities.
	Overlap Violation = iota + 1
	// Negative: a vertex id is below zero.
	Negative
	// Gap: the vertex set is not the contiguous range [0, n).
	Gap
	// Uncovered: a golden vertex has no community in the algorithm partition.
	Uncovered
)

// String implements fmt.Stringer.
func (v Violation) String() string {
	switch v {
	case Overlap:
		return "overlap"
	case Negative:
		return "negative vertex"
	case Gap:
		return "gap"
	case Uncovered:
		return "uncovered vertex"
	default:
		return fmt.Sprintf("Violation(%d)", int(v))
	}
}

// InvalidPartitionError describes the first invariant violation found.
//
// Community is the position of the offending community; for Overlap, First
// is the position of the community that listed Vertex earlier. For Gap,
// Vertex is the smallest id of [0, Order) that no community contains.
type InvalidPartitionError struct {
	Kind      Violation
	Vertex    int
	Community int
	First     int
	Order     int
}

// Error implements error.
func (e *InvalidPartitionError) Error() string {
	switch e.Kind {
	case Overlap:
		return fmt.Sprintf("partition: vertex %d in communities %d and %d", e.Vertex, e.First, e.Community)
	case Negative:
		return fmt.Sprintf("partition: negative vertex %d in community %d", e.Vertex, e.Community)
	case Gap:
		return fmt.Sprintf("partition: vertex %d missing from a partition of order %d", e.Vertex, e.Order)
	case Uncovered:
		return fmt.Sprintf("partition: golden vertex %d has no community in the algorithm partition", e.Vertex)
	default:
		return fmt.Sprintf("partition: %s at vertex %d", e.Kind, e.Vertex)
	}
}

// Is reports whether target is ErrInvalidPartition.
func (e *InvalidPartitionError) Is(target error) bool {
	return target == ErrInvalidPartition
}
