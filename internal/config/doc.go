// Package config provides loading, merging, and validation of the runtime
// options of the siconfig command.
//
// Options are assembled from the following sources (later sources override
// earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (SI_ prefix)
//  3. Command-line flags
//
// The settings document itself is handled by package settings; this package
// only decides where it is read from and how results are reported.
//
// The main entry point is [GetStructuredConfig].
package config
