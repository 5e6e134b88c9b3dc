// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "COMMEVAL_"

// ErrInvalid wraps validation failures; errors.As with
// validator.ValidationErrors gives the failing fields.
var ErrInvalid = errors.New("config: invalid configuration")

// ErrBadEnv indicates an environment override that cannot be parsed.
var ErrBadEnv = errors.New("config: malformed environment variable")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load returns Default overlaid with the YAML file at path (skipped when path
// is empty) and then with COMMEVAL_* variables, validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the struct tags of c.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

func (c *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: open: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	return nil
}

// applyEnv overlays variables found by lookup.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	str("LOG_LEVEL", &c.Log.Level)
	str("ENCODING", &c.Pajek.Encoding)
	str("ARCHIVE_SUBFOLDER", &c.Archive.Subfolder)
	str("OUTPUT_FORMAT", &c.Output.Format)

	if v, ok := lookup(EnvPrefix + "ARCHIVE_EXTENSIONS"); ok {
		c.Archive.Extensions = nil
		for _, ext := range strings.Split(v, ",") {
			if ext = strings.TrimSpace(ext); ext != "" {
				c.Archive.Extensions = append(c.Archive.Extensions, ext)
			}
		}
	}
	if v, ok := lookup(EnvPrefix + "LOG_DEVELOPMENT"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %sLOG_DEVELOPMENT=%q", ErrBadEnv, EnvPrefix, v)
		}
		c.Log.Development = b
	}
	if v, ok := lookup(EnvPrefix + "GENERATOR_SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sGENERATOR_SEED=%q", ErrBadEnv, EnvPrefix, v)
		}
		c.Generator.Seed = n
	}

	return nil
}
