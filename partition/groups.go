// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"
	"maps"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Groups collects vertices under arbitrary labels and remembers the order in
// which each distinct label was first seen. Labels are discarded when the
// groups are turned into a Partition: identity becomes purely positional.
//
// The zero value is not usable; call NewGroups.
type Groups[L comparable] struct {
	m *orderedmap.OrderedMap[L, Community]
}

// NewGroups returns an empty Groups.
func NewGroups[L comparable]() *Groups[L] {
	return &Groups[L]{m: orderedmap.New[L, Community]()}
}

// Add appends v to the group of label, creating the group at the end of the
// order when label is new.
func (g *Groups[L]) Add(label L, v int) {
	members, _ := g.m.Get(label)
	g.m.Set(label, append(members, v))
}

// Len returns the number of distinct labels.
func (g *Groups[L]) Len() int { return g.m.Len() }

// Labels returns the distinct labels in first-seen order.
func (g *Groups[L]) Labels() []L {
	out := make([]L, 0, g.m.Len())
	for pair := g.m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}

	return out
}

// Partition returns the groups, in first-seen label order, as a Partition.
// The communities share no memory with g.
func (g *Groups[L]) Partition() Partition {
	out := make(Partition, 0, g.m.Len())
	for pair := g.m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, append(Community(nil), pair.Value...))
	}

	return out
}

// FromLabels groups entity indexes 0..len(labels)-1 by label. Communities
// appear in first-seen label order and list their members ascending.
func FromLabels[L comparable](labels []L) Partition {
	g := NewGroups[L]()
	for v, l := range labels {
		g.Add(l, v)
	}

	return g.Partition()
}

// FromAssignment groups a vertex-to-label assignment, typically the output of
// an external clustering tool, after translating each vertex through remap.
// A nil remap keeps vertex ids as they are. Vertices are visited in
// ascending order, so communities appear in the order their smallest source
// vertex names them; members are listed ascending and duplicates produced by
// remap collapse into one. The result is not validated.
//
// Errors: ErrUnmappedVertex when remap lacks a vertex of assign.
func FromAssignment[L comparable](assign map[int]L, remap map[int]int) (Partition, error) {
	g := NewGroups[L]()
	for _, v := range slices.Sorted(maps.Keys(assign)) {
		id := v
		if remap != nil {
			var ok bool
			if id, ok = remap[v]; !ok {
				return nil, fmt.Errorf("%w: vertex %d", ErrUnmappedVertex, v)
			}
		}
		g.Add(assign[v], id)
	}

	p := g.Partition()
	for i, c := range p {
		slices.Sort(c)
		p[i] = slices.Compact(c)
	}

	return p, nil
}
