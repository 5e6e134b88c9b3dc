// SPDX-License-Identifier: MIT

package pajek

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/katalvlaran/commeval/partition"
)

// MaxLineLength is the longest line, in bytes, the reader-based decoders accept.
const MaxLineLength = 1 << 20

const (
	verticesToken  = "*vertices"
	lineTerminator = "\r\n"
)

// Decode reads a cluster partition from a sequence of lines.
//
// An empty sequence, or one whose first line does not start with "*Vertices"
// (any case), yields an empty partition and no error. Otherwise the header
// announces n and the next n lines hold the labels of vertices 0..n-1.
// Vertices are grouped by label in first-seen label order, ascending within
// a group; the labels themselves are dropped. Lines after the n-th label are
// not read, so a second "*Vertices" block in the same text is ignored rather
// than appended as further communities.
//
// Errors are *FormatError with cause ErrBadHeader, ErrTruncated or ErrBadLabel.
// Complexity: O(n) time, O(n) space.
func Decode(lines iter.Seq[string], opts ...Option) (partition.Partition, error) {
	o := newOptions(opts...)

	next, stop := iter.Pull(lines)
	defer stop()

	header, ok := next()
	if !ok {
		return partition.Partition{}, nil
	}
	n, isHeader, err := parseVertices(trimEOL(header), 1, true)
	if !isHeader {
		return partition.Partition{}, nil
	}
	if err != nil {
		return nil, err
	}

	groups := partition.NewGroups[int64]()
	for v := 0; v < n; v++ {
		lineNo := v + 2
		line, ok := next()
		if !ok {
			return nil, formatErrorf(lineNo, ErrTruncated, "expected %d labels, got %d", n, v)
		}
		label, err := o.parse(trimEOL(line))
		if err != nil {
			return nil, formatErrorf(lineNo, ErrBadLabel, "label %q of vertex %d: %v", trimEOL(line), v, err)
		}
		groups.Add(label, v)
	}

	return groups.Partition(), nil
}

// DecodeReader runs Decode over the lines of r. A read failure is returned
// as *StorageError and takes precedence over any decode error it caused.
// A line longer than MaxLineLength is a *FormatError with cause ErrLineTooLong.
func DecodeReader(r io.Reader, opts ...Option) (partition.Partition, error) {
	lr := newLineReader(r)
	p, err := Decode(lr.lines(), opts...)
	if readErr := lr.err(); readErr != nil {
		return nil, readErr
	}

	return p, err
}

// Encode validates p and returns its cluster text as a lazy line sequence
// without terminators: "*Vertices n", then for each vertex 0..n-1 the 1-based
// position of the community that contains it.
//
// Communities need not be sorted. The returned sequence can be ranged over
// any number of times and never holds the text in memory; it keeps one
// private vertex -> community index.
//
// Errors: *partition.InvalidPartitionError when p overlaps or leaves gaps.
// Complexity: O(n) validation, O(1) per emitted line.
func Encode(p partition.Partition) (iter.Seq[string], error) {
	owner, err := p.Index()
	if err != nil {
		return nil, err
	}

	return func(yield func(string) bool) {
		if !yield(verticesHeader(len(owner))) {
			return
		}
		for _, pos := range owner {
			if !yield(strconv.Itoa(pos + 1)) {
				return
			}
		}
	}, nil
}

// EncodeTo writes the cluster text of p to w, each line ending in CRLF.
func EncodeTo(w io.Writer, p partition.Partition) error {
	lines, err := Encode(p)
	if err != nil {
		return err
	}
	if err := writeLines(w, lines); err != nil {
		return &StorageError{Op: "write", Err: err}
	}

	return nil
}

// parseVertices recognizes a "*Vertices n" line. isHeader is false when the
// line is not a vertices header at all. exact demands exactly two fields,
// otherwise trailing fields (e.g. bipartite sizes in .net files) are ignored.
func parseVertices(line string, lineNo int, exact bool) (n int, isHeader bool, err error) {
	if !strings.HasPrefix(strings.ToLower(line), verticesToken) {
		return 0, false, nil
	}
	fields := strings.Fields(line)
	if len(fields) < 2 || (exact && len(fields) != 2) {
		return 0, true, formatErrorf(lineNo, ErrBadHeader, "header %q", line)
	}
	n, err = strconv.Atoi(fields[1])
	if err != nil || n < 0 {
		return 0, true, formatErrorf(lineNo, ErrBadHeader, "vertex count %q", fields[1])
	}

	return n, true, nil
}

func verticesHeader(n int) string {
	return "*Vertices " + strconv.Itoa(n)
}

func trimEOL(line string) string {
	return strings.TrimRight(line, "\r\n")
}

// lineReader scans r line by line and counts what it has read.
type lineReader struct {
	sc *bufio.Scanner
	n  int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineLength)

	return &lineReader{sc: sc}
}

func (lr *lineReader) lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for lr.sc.Scan() {
			lr.n++
			if !yield(lr.sc.Text()) {
				return
			}
		}
	}
}

// err maps an overlong line to *FormatError and any other failure to *StorageError.
func (lr *lineReader) err() error {
	err := lr.sc.Err()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bufio.ErrTooLong):
		return formatErrorf(lr.n+1, ErrLineTooLong, "line longer than %d bytes", MaxLineLength)
	default:
		return &StorageError{Op: "read", Err: err}
	}
}

func writeLines(w io.Writer, lines iter.Seq[string]) error {
	bw := bufio.NewWriter(w)
	for line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if _, err := bw.WriteString(lineTerminator); err != nil {
			return err
		}
	}

	return bw.Flush()
}
