// SPDX-License-Identifier: MIT

package pajek

import (
	"errors"
	"io"
	"iter"
	"math"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// ErrSparseIDs indicates a graph whose node ids are not exactly 0..n-1 and
// therefore cannot be numbered consistently with a cluster file.
var ErrSparseIDs = errors.New("pajek: network node ids must be 0..n-1")

// DefaultEdgeWeight is the weight of an edge line without a weight column.
const DefaultEdgeWeight = 1.0

type netSection int

const (
	sectionNone netSection = iota
	sectionVertices
	sectionEdges
)

// DecodeNetwork reads a Pajek network into an undirected weighted graph with
// node ids 0..n-1 (Pajek vertex k becomes node k-1).
//
// Rules:
//   - Blank lines and lines starting with '%' are skipped.
//   - "*Vertices n" must come first; vertex lines "k [label ...]" are checked
//     for 1 <= k <= n, the rest of the line is ignored.
//   - "*Edges" and "*Arcs" sections hold "u v [w]" lines; arcs are folded into
//     undirected edges and repeated pairs add up their weights.
//   - Self-loops, negative or non-finite weights and unknown sections are
//     *FormatError.
//
// An empty input yields an empty graph. A line longer than MaxLineLength is a
// *FormatError with cause ErrLineTooLong.
func DecodeNetwork(r io.Reader) (*simple.WeightedUndirectedGraph, error) {
	lr := newLineReader(r)
	g, err := decodeNetwork(lr.lines())
	if readErr := lr.err(); readErr != nil {
		return nil, readErr
	}

	return g, err
}

func decodeNetwork(lines iter.Seq[string]) (*simple.WeightedUndirectedGraph, error) {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	n := -1
	section := sectionNone
	lineNo := 0

	for raw := range lines {
		lineNo++
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}

		if strings.HasPrefix(line, "*") {
			if section == sectionNone {
				count, isHeader, err := parseVertices(line, lineNo, false)
				if !isHeader {
					return nil, formatErrorf(lineNo, ErrBadHeader, "expected *Vertices, got %q", line)
				}
				if err != nil {
					return nil, err
				}
				n = count
				for id := 0; id < n; id++ {
					g.AddNode(simple.Node(id))
				}
				section = sectionVertices
				continue
			}
			switch strings.ToLower(strings.Fields(line)[0]) {
			case "*edges", "*arcs":
				section = sectionEdges
			default:
				return nil, formatErrorf(lineNo, ErrBadSection, "section %q", line)
			}
			continue
		}

		switch section {
		case sectionNone:
			return nil, formatErrorf(lineNo, ErrBadHeader, "data before *Vertices")
		case sectionVertices:
			fields := strings.Fields(line)
			k, err := strconv.Atoi(fields[0])
			if err != nil || k < 1 || k > n {
				return nil, formatErrorf(lineNo, ErrBadLabel, "vertex number %q not in [1,%d]", fields[0], n)
			}
		case sectionEdges:
			if err := addEdgeLine(g, line, lineNo, n); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

func addEdgeLine(g *simple.WeightedUndirectedGraph, line string, lineNo, n int) error {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return formatErrorf(lineNo, ErrBadEdge, "edge %q needs two endpoints", line)
	}
	u, errU := strconv.Atoi(fields[0])
	v, errV := strconv.Atoi(fields[1])
	if errU != nil || errV != nil || u < 1 || v < 1 || u > n || v > n {
		return formatErrorf(lineNo, ErrBadEdge, "endpoints %q %q not in [1,%d]", fields[0], fields[1], n)
	}
	if u == v {
		return formatErrorf(lineNo, ErrBadEdge, "self-loop on vertex %d", u)
	}
	w := DefaultEdgeWeight
	if len(fields) > 2 {
		var err error
		w, err = strconv.ParseFloat(fields[2], 64)
		if err != nil || w < 0 || math.IsInf(w, 0) || math.IsNaN(w) {
			return formatErrorf(lineNo, ErrBadEdge, "weight %q", fields[2])
		}
	}

	from, to := int64(u-1), int64(v-1)
	if e := g.WeightedEdgeBetween(from, to); e != nil {
		w += e.Weight()
	}
	g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(from), simple.Node(to), w))

	return nil
}

// EncodeNetwork writes g as a Pajek network with CRLF line endings. Node ids
// must be exactly 0..n-1. Vertex k is labelled with its node id; edges are
// written once each, ordered by (min id, max id), with their weight when g
// implements graph.Weighted and DefaultEdgeWeight otherwise.
func EncodeNetwork(w io.Writer, g graph.Undirected) error {
	lines, err := networkLines(g)
	if err != nil {
		return err
	}
	if err := writeLines(w, lines); err != nil {
		return &StorageError{Op: "write", Err: err}
	}

	return nil
}

// ReadNetwork decodes the network file at path; see DecodeNetwork.
func ReadNetwork(path string, opts ...Option) (*simple.WeightedUndirectedGraph, error) {
	var g *simple.WeightedUndirectedGraph
	err := withDecodedFile(path, newOptions(opts...), func(r io.Reader) error {
		var err error
		g, err = DecodeNetwork(r)
		return err
	})
	if err != nil {
		return nil, err
	}

	return g, nil
}

// WriteNetwork writes g to path; see EncodeNetwork.
func WriteNetwork(path string, g graph.Undirected, opts ...Option) error {
	lines, err := networkLines(g)
	if err != nil {
		return err
	}

	return withEncodedFile(path, newOptions(opts...), func(w io.Writer) error {
		return writeLines(w, lines)
	})
}

func networkLines(g graph.Undirected) (iter.Seq[string], error) {
	ids := make([]int64, 0)
	for nodes := g.Nodes(); nodes.Next(); {
		ids = append(ids, nodes.Node().ID())
	}
	slices.Sort(ids)
	for i, id := range ids {
		if id != int64(i) {
			return nil, ErrSparseIDs
		}
	}
	weighted, _ := g.(graph.Weighted)

	return func(yield func(string) bool) {
		if !yield(verticesHeader(len(ids))) {
			return
		}
		for _, id := range ids {
			if !yield(strconv.FormatInt(id+1, 10) + ` "` + strconv.FormatInt(id, 10) + `"`) {
				return
			}
		}
		if !yield("*Edges") {
			return
		}
		for _, u := range ids {
			var nbrs []int64
			for to := g.From(u); to.Next(); {
				if v := to.Node().ID(); v > u {
					nbrs = append(nbrs, v)
				}
			}
			slices.Sort(nbrs)
			for _, v := range nbrs {
				w := DefaultEdgeWeight
				if weighted != nil {
					if ew, ok := weighted.Weight(u, v); ok {
						w = ew
					}
				}
				line := strconv.FormatInt(u+1, 10) + " " + strconv.FormatInt(v+1, 10) + " " + strconv.FormatFloat(w, 'g', -1, 64)
				if !yield(line) {
					return
				}
			}
		}
	}, nil
}
