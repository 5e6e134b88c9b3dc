// SPDX-License-Identifier: MIT

package pajek

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultEncoding is the encoding used when WithEncoding is not given.
const DefaultEncoding = "utf-8"

// LabelParser turns one cluster line into an integer label.
type LabelParser func(line string) (int64, error)

// Option customizes decoding and file access.
type Option func(*options)

type options struct {
	parse    LabelParser
	encoding string
}

func newOptions(opts ...Option) options {
	o := options{parse: ParseLabel, encoding: DefaultEncoding}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLabelParser replaces ParseLabel. Panics on nil.
func WithLabelParser(fn LabelParser) Option {
	if fn == nil {
		panic("pajek: WithLabelParser(nil)")
	}
	return func(o *options) { o.parse = fn }
}

// WithEncoding selects the file text encoding by WHATWG label
// ("utf-8", "latin1", "utf-16le", ...). Resolution happens when a file is
// opened, so an unknown name surfaces as ErrUnknownEncoding there.
func WithEncoding(name string) Option {
	return func(o *options) { o.encoding = name }
}

// ParseLabel is the default LabelParser: a base-10 signed integer with
// surrounding whitespace ignored.
func ParseLabel(line string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(line), 10, 64)
}

func (o options) textEncoding() (encoding.Encoding, error) {
	enc, err := htmlindex.Get(o.encoding)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, o.encoding)
	}

	return enc, nil
}
