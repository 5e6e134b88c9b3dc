// SPDX-License-Identifier: MIT

// Package pajek reads and writes the Pajek text formats used to persist
// community partitions (.clu) and the networks they partition (.net).
//
// Cluster files:
//
//	*Vertices 5
//	1
//	1
//	2
//	2
//	2
//
// Line i after the header carries the label of vertex i (0-based). Decode
// accepts any signed integer labels and groups vertices by label in the
// order labels are first met; Encode always writes the 1-based position of
// each vertex's community. Decode(Encode(p)) therefore returns the
// communities of p ordered by ascending minimum member.
//
// Files are written with CRLF terminators on every platform and may use any
// text encoding known to golang.org/x/text/encoding/htmlindex (WithEncoding).
//
// Network files:
//
//	*Vertices 3
//	1 "a"
//	2 "b"
//	3 "c"
//	*Edges
//	1 2 1.0
//	2 3 0.5
//
// DecodeNetwork loads them into a gonum simple.WeightedUndirectedGraph whose
// node ids are the 0-based vertex indexes, matching the ids used by .clu files.
//
// Errors:
//
//	*FormatError  - malformed or truncated text (ErrBadHeader, ErrBadLabel,
//	                ErrTruncated, ErrBadEdge, ErrBadSection).
//	*StorageError - the underlying file or reader failed.
//	ErrUnknownEncoding - WithEncoding named no known encoding.
package pajek
