// SPDX-License-Identifier: MIT

package pajek

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/transform"

	"github.com/katalvlaran/commeval/partition"
)

// ReadFile decodes the cluster file at path. The file is closed on every
// return path. See Decode for the format rules.
//
// Errors: *StorageError for file-system failures, *FormatError for bad
// text, ErrUnknownEncoding for a bad WithEncoding name.
func ReadFile(path string, opts ...Option) (partition.Partition, error) {
	var p partition.Partition
	err := withDecodedFile(path, newOptions(opts...), func(r io.Reader) error {
		var err error
		p, err = DecodeReader(r, opts...)
		return err
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}

// WriteFile validates p and writes its cluster text to path with CRLF line
// endings, creating or replacing the file. The new content is written to a
// temporary file first, so a failed write never leaves a partial file at
// path. An invalid partition never touches the file system.
func WriteFile(path string, p partition.Partition, opts ...Option) error {
	lines, err := Encode(p)
	if err != nil {
		return err
	}

	return withEncodedFile(path, newOptions(opts...), func(w io.Writer) error {
		return writeLines(w, lines)
	})
}

// withDecodedFile opens path, wraps it in the configured decoder and hands the
// reader to fn. Storage errors coming out of fn get the path attached.
func withDecodedFile(path string, o options, fn func(io.Reader) error) (err error) {
	enc, err := o.textEncoding()
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return &StorageError{Op: "open", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &StorageError{Op: "close", Path: path, Err: cerr}
		}
	}()

	return attachPath(fn(enc.NewDecoder().Reader(f)), path)
}

// withEncodedFile hands fn a writer that encodes into a temporary file next to
// path and renames it over path once everything is written, so a failed write
// leaves any existing file at path unchanged. fn's errors are storage
// failures by construction.
func withEncodedFile(path string, o options, fn func(io.Writer) error) (err error) {
	enc, err := o.textEncoding()
	if err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &StorageError{Op: "create", Path: path, Err: err}
	}
	tmp := f.Name()
	closed := false
	defer func() {
		if !closed {
			_ = f.Close()
		}
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	tw := transform.NewWriter(f, enc.NewEncoder())
	if err := fn(tw); err != nil {
		return &StorageError{Op: "write", Path: path, Err: err}
	}
	if err := tw.Close(); err != nil {
		return &StorageError{Op: "write", Path: path, Err: err}
	}
	closed = true
	if err := f.Close(); err != nil {
		return &StorageError{Op: "close", Path: path, Err: err}
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		return &StorageError{Op: "chmod", Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		return &StorageError{Op: "rename", Path: path, Err: err}
	}

	return nil
}

func attachPath(err error, path string) error {
	var se *StorageError
	if errors.As(err, &se) && se.Path == "" {
		se.Path = path
	}

	return err
}
