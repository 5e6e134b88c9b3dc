// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"go.uber.org/zap"
)

// Build returns a production JSON logger, or a console development logger
// when Development is set, at the configured level.
func (l Log) Build() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("config: log level: %w", err)
	}

	zc := zap.NewProductionConfig()
	if l.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level

	return zc.Build()
}
