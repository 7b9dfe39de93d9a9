package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() StructuredConfig {
	return StructuredConfig{
		Settings: Settings{Path: "/etc/shunya/config.json"},
		Log:      Log{Level: "info"},
		Output:   Output{Format: "table"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "stdin path", mutate: func(c *StructuredConfig) { c.Settings.Path = "-" }},
		{name: "empty path", mutate: func(c *StructuredConfig) { c.Settings.Path = "" }, wantErr: ErrInvalidSettingsPath},
		{name: "blank path", mutate: func(c *StructuredConfig) { c.Settings.Path = "   " }, wantErr: ErrInvalidSettingsPath},
		{name: "unknown level", mutate: func(c *StructuredConfig) { c.Log.Level = "trace" }, wantErr: ErrInvalidLogLevel},
		{name: "empty level", mutate: func(c *StructuredConfig) { c.Log.Level = "" }, wantErr: ErrInvalidLogLevel},
		{name: "unknown format", mutate: func(c *StructuredConfig) { c.Output.Format = "yaml" }, wantErr: ErrInvalidOutputFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_NormalisesCase(t *testing.T) {
	cfg := validConfig()
	cfg.Log.Level = "WARN"
	cfg.Output.Format = "Json"

	require.NoError(t, cfg.validate())
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
}
