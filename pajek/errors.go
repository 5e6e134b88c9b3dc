// SPDX-License-Identifier: MIT

package pajek

import (
	"errors"
	"fmt"
)

// Sentinel causes carried by *FormatError; branch with errors.Is.
var (
	// ErrBadHeader indicates a "*Vertices" line without a valid vertex count.
	ErrBadHeader = errors.New("pajek: malformed *Vertices header")

	// ErrBadLabel indicates a cluster line that is not an integer.
	ErrBadLabel = errors.New("pajek: label is not an integer")

	// ErrTruncated indicates the text ended before all announced lines were read.
	ErrTruncated = errors.New("pajek: unexpected end of input")

	// ErrBadEdge indicates an edge line with bad endpoints or weight.
	ErrBadEdge = errors.New("pajek: malformed edge")

	// ErrBadSection indicates an unsupported or misplaced "*" section.
	ErrBadSection = errors.New("pajek: unsupported section")

	// ErrLineTooLong indicates a line longer than MaxLineLength.
	ErrLineTooLong = errors.New("pajek: line too long")
)

// ErrUnknownEncoding indicates WithEncoding named an encoding htmlindex does not know.
var ErrUnknownEncoding = errors.New("pajek: unknown text encoding")

// FormatError reports malformed Pajek text. Line is 1-based.
type FormatError struct {
	Line   int
	Reason string
	Err    error
}

// Error implements error.
func (e *FormatError) Error() string {
	return fmt.Sprintf("pajek: line %d: %s", e.Line, e.Reason)
}

// Unwrap returns the sentinel cause.
func (e *FormatError) Unwrap() error { return e.Err }

func formatErrorf(line int, cause error, format string, args ...any) error {
	return &FormatError{Line: line, Reason: fmt.Sprintf(format, args...), Err: cause}
}

// StorageError reports a failure of the file or reader behind a codec call.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

// Error implements error.
func (e *StorageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("pajek: %s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("pajek: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *StorageError) Unwrap() error { return e.Err }
