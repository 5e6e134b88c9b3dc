// SPDX-License-Identifier: MIT

package config

import (
	"github.com/katalvlaran/commeval/archive"
	"github.com/katalvlaran/commeval/pajek"
)

// Config is the full run configuration.
type Config struct {
	Log       Log       `yaml:"log"`
	Pajek     Pajek     `yaml:"pajek"`
	Archive   Archive   `yaml:"archive"`
	Generator Generator `yaml:"generator"`
	Output    Output    `yaml:"output"`
}

// Log selects the logger flavor and its minimum level.
type Log struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Pajek configures file access for .clu and .net files.
type Pajek struct {
	// Encoding is a WHATWG encoding label such as utf-8 or latin1.
	Encoding string `yaml:"encoding" validate:"required"`
}

// Archive configures archive.Relocate.
type Archive struct {
	Subfolder  string   `yaml:"subfolder" validate:"required,excludesall=/\\"`
	Extensions []string `yaml:"extensions" validate:"min=1,dive,startswith=."`
}

// Generator holds planted-partition defaults for the generate command.
type Generator struct {
	Groups int     `yaml:"groups" validate:"min=1"`
	Size   int     `yaml:"size" validate:"min=1"`
	PIn    float64 `yaml:"pIn" validate:"gte=0,lte=1"`
	POut   float64 `yaml:"pOut" validate:"gte=0,lte=1"`
	Seed   int64   `yaml:"seed"`
}

// Output selects how reports are printed.
type Output struct {
	Format string `yaml:"format" validate:"oneof=json yaml"`
}

// Default returns the configuration used when no file or variable overrides it.
func Default() *Config {
	return &Config{
		Log:   Log{Level: "info"},
		Pajek: Pajek{Encoding: pajek.DefaultEncoding},
		Archive: Archive{
			Subfolder:  archive.DefaultSubfolder,
			Extensions: append([]string(nil), archive.DefaultExtensions...),
		},
		Generator: Generator{Groups: 4, Size: 32, PIn: 0.5, POut: 0.02, Seed: 1},
		Output:    Output{Format: "json"},
	}
}
