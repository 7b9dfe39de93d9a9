package config

import (
	"fmt"

	"github.com/MKhiriev/shunya-settings/internal/settings"
	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagSettings    = "settings"
	FlagLogLevel    = "log-level"
	FlagFormat      = "format"
	FlagShowSecrets = "show-secrets"
)

// RegisterFlags adds the option flags to fs.
//
// Flags:
//
//	-s/--settings settings file path ("-" reads stdin)
//	--log-level   debug, info, warn or error
//	-o/--format   table or json
//	--show-secrets print passwords and tokens unmasked
//
// Defaults are empty: defaults and environment values are merged
// in by the builder, and only flags that were explicitly set override them.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagSettings, "s", "", "Settings file path (default "+settings.DefaultPath+")")
	fs.String(FlagLogLevel, "", "Log level: debug, info, warn, error (default info)")
	fs.StringP(FlagFormat, "o", "", "Output format: table or json (default table)")
	fs.Bool(FlagShowSecrets, false, "Print passwords and tokens unmasked")
}

// parseFlags collects the explicitly set flags of fs into a partial
// [StructuredConfig].
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	if err := applyFlags(fs, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyFlags writes every explicitly set flag of fs into cfg, zero values
// included, so --show-secrets=false or --settings "" replace earlier sources.
func applyFlags(fs *pflag.FlagSet, cfg *StructuredConfig) error {
	var err error
	if fs.Changed(FlagSettings) {
		if cfg.Settings.Path, err = fs.GetString(FlagSettings); err != nil {
			return fmt.Errorf("error reading flag %s: %w", FlagSettings, err)
		}
	}
	if fs.Changed(FlagLogLevel) {
		if cfg.Log.Level, err = fs.GetString(FlagLogLevel); err != nil {
			return fmt.Errorf("error reading flag %s: %w", FlagLogLevel, err)
		}
	}
	if fs.Changed(FlagFormat) {
		if cfg.Output.Format, err = fs.GetString(FlagFormat); err != nil {
			return fmt.Errorf("error reading flag %s: %w", FlagFormat, err)
		}
	}
	if fs.Changed(FlagShowSecrets) {
		if cfg.Output.ShowSecrets, err = fs.GetBool(FlagShowSecrets); err != nil {
			return fmt.Errorf("error reading flag %s: %w", FlagShowSecrets, err)
		}
	}

	return nil
}
