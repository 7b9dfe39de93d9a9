// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/spf13/pflag"

// StructuredConfig is the top-level option container of the siconfig command.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
//
// All variables additionally carry the global SI_ prefix.
type StructuredConfig struct {
	// Settings locates the gateway settings document.
	Settings Settings `envPrefix:"SETTINGS_"`

	// Log controls diagnostic logging.
	Log Log `envPrefix:"LOG_"`

	// Output controls how extracted records are printed.
	Output Output `envPrefix:"OUTPUT_"`
}

// Settings locates the gateway settings document.
type Settings struct {
	// Path is the settings file to read, or "-" for stdin.
	// Env: SI_SETTINGS_PATH
	Path string `env:"PATH"`
}

// Log holds diagnostic logging options.
type Log struct {
	// Level is one of debug, info, warn, error.
	// Env: SI_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Output holds presentation options.
type Output struct {
	// Format is "table" or "json".
	// Env: SI_OUTPUT_FORMAT
	Format string `env:"FORMAT"`

	// ShowSecrets prints passwords and tokens instead of masking them.
	// Env: SI_OUTPUT_SHOW_SECRETS
	ShowSecrets bool `env:"SHOW_SECRETS"`
}

// GetStructuredConfig loads, merges, and validates the options from all
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Defaults
//  2. Environment variables
//  3. Flags registered on fs with [RegisterFlags] and explicitly set
//
// Returns a fully populated *StructuredConfig or an error if a source fails
// to load or the merged options fail validation.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fs).
		build()
}
