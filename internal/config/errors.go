package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidSettingsPath indicates an empty settings file path.
	ErrInvalidSettingsPath = errors.New("invalid settings path")
	// ErrInvalidLogLevel indicates a log level other than debug, info, warn
	// or error.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidOutputFormat indicates an output format other than table or
	// json.
	ErrInvalidOutputFormat = errors.New("invalid output format")
)
