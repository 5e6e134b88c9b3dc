// SPDX-License-Identifier: MIT

package archive

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// DefaultSubfolder is the folder generated block-model fixtures are filed under.
const DefaultSubfolder = "SBM"

// DefaultExtensions are the Pajek network and partition file suffixes.
var DefaultExtensions = []string{".net", ".clu"}

// ErrBadSubfolder indicates an empty subfolder name or one that leaves dir.
var ErrBadSubfolder = errors.New("archive: subfolder must be a single relative path element")

// Result describes what Relocate did.
type Result struct {
	// Target is the absolute or dir-relative path of the subfolder.
	Target string
	// Created is true when Relocate had to create Target.
	Created bool
	// Moved lists the moved file names in directory order.
	Moved []string
}

// Option configures Relocate.
type Option func(*options)

type options struct {
	extensions []string
	log        *zap.Logger
}

// WithExtensions replaces DefaultExtensions. Matching is case-sensitive on the
// file name suffix. Panics when no extension is given.
func WithExtensions(exts ...string) Option {
	if len(exts) == 0 {
		panic("archive: WithExtensions()")
	}
	exts = slices.Clone(exts)
	return func(o *options) { o.extensions = exts }
}

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Relocate moves every regular file directly inside dir whose name ends with
// one of the extensions into dir/subfolder, creating the subfolder when
// missing. Existing files of the same name in the subfolder are replaced.
//
// A failure to move one file does not stop the others: all per-file failures
// are combined with multierr and returned next to the partial Result. Failure
// to list dir or create the subfolder is returned immediately.
func Relocate(dir, subfolder string, opts ...Option) (Result, error) {
	o := options{extensions: DefaultExtensions, log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if subfolder == "" || subfolder != filepath.Base(subfolder) || subfolder == "." || subfolder == ".." {
		return Result{}, fmt.Errorf("%w: %q", ErrBadSubfolder, subfolder)
	}

	res := Result{Target: filepath.Join(dir, subfolder)}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return res, fmt.Errorf("archive: list %s: %w", dir, err)
	}

	if _, err := os.Stat(res.Target); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(res.Target, 0o755); err != nil {
			return res, fmt.Errorf("archive: create %s: %w", res.Target, err)
		}
		res.Created = true
		o.log.Info("created archive folder", zap.String("path", res.Target))
	} else if err != nil {
		return res, fmt.Errorf("archive: stat %s: %w", res.Target, err)
	}

	var errs error
	for _, e := range entries {
		name := e.Name()
		if !e.Type().IsRegular() || !hasExtension(name, o.extensions) {
			continue
		}
		src, dst := filepath.Join(dir, name), filepath.Join(res.Target, name)
		if err := os.Rename(src, dst); err != nil {
			o.log.Warn("move failed", zap.String("file", name), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("archive: move %s: %w", name, err))
			continue
		}
		res.Moved = append(res.Moved, name)
		o.log.Info("moved file", zap.String("file", name), zap.String("to", dst))
	}
	o.log.Info("relocation finished",
		zap.String("target", res.Target),
		zap.Int("moved", len(res.Moved)),
		zap.Int("failed", len(multierr.Errors(errs))),
	)

	return res, errs
}

func hasExtension(name string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}

	return false
}
