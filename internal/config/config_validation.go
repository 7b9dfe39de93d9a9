// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"strings"
)

// Output formats accepted in [Output.Format].
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// validate checks that the merged [StructuredConfig] is usable. Log level
// and output format are normalised to lower case.
//
// Returns nil if the configuration is valid, or one of the sentinel errors
// from errors.go wrapped with the offending value.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Settings.Path) == "" {
		return ErrInvalidSettingsPath
	}

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	if !slices.Contains(logLevels, cfg.Log.Level) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.Log.Level)
	}

	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	if cfg.Output.Format != FormatTable && cfg.Output.Format != FormatJSON {
		return fmt.Errorf("%w: %q", ErrInvalidOutputFormat, cfg.Output.Format)
	}

	return nil
}
