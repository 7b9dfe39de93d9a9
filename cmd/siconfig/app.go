package main

import (
	"errors"
	"io"

	"github.com/MKhiriev/shunya-settings/internal/config"
	"github.com/MKhiriev/shunya-settings/internal/logger"
	"github.com/MKhiriev/shunya-settings/internal/render"
	"github.com/MKhiriev/shunya-settings/internal/service"
	"github.com/MKhiriev/shunya-settings/internal/settings"
	"github.com/MKhiriev/shunya-settings/internal/utils"
	"github.com/MKhiriev/shunya-settings/internal/validators"
	"github.com/MKhiriev/shunya-settings/models"
	"github.com/spf13/cobra"
)

const (
	appRole        = "siconfig"
	stdinPath      = "-"
	clientIDPrefix = "shunya-"
)

type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	build  models.AppBuildInfo

	cfg     *config.StructuredConfig
	log     *logger.Logger
	printer *render.Printer
}

// run executes siconfig with args and returns the process exit code.
func run(args []string, in io.Reader, out, errOut io.Writer, build models.AppBuildInfo) int {
	a := &app{
		in:     in,
		out:    out,
		errOut: errOut,
		build:  build,
		log:    logger.NewLoggerTo(errOut, appRole, "info"),
	}

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	if err := root.Execute(); err != nil {
		a.logError(err)
		return 1
	}

	return 0
}

// setup builds the runtime options from flags and environment. It runs
// before every subcommand.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger.NewLoggerTo(a.errOut, appRole, cfg.Log.Level)
	a.printer = render.NewPrinter(a.out, cfg.Output.Format, cfg.Output.ShowSecrets)

	a.log.Debug().Any("config", cfg).Msg("received configs")

	return nil
}

// service loads the settings document and wraps it in a SettingsService.
func (a *app) service() (*service.SettingsService, error) {
	path := a.cfg.Settings.Path

	var (
		doc *settings.Document
		err error
	)
	if path == stdinPath {
		doc, err = settings.Read(a.in)
	} else {
		doc, err = settings.Load(path)
	}
	if err != nil {
		return nil, err
	}

	a.log.Debug().Str("path", path).Strs("groups", doc.Groups()).Msg("settings loaded")

	return service.NewSettingsService(doc, validators.NewSettingsValidator(), utils.NewUUIDGenerator(clientIDPrefix)), nil
}

func (a *app) logError(err error) {
	event := a.log.Error().Err(err)

	var parseErr *settings.ParseError
	switch {
	case errors.As(err, &parseErr):
		event = event.Str("path", a.settingsPath()).Int64("offset", parseErr.Offset)
		event.Msg("error parsing settings")
	case errors.Is(err, settings.ErrRead):
		event = event.Str("path", a.settingsPath())
		event.Msg("error reading settings")
	default:
		event.Msg("siconfig failed")
	}
}

func (a *app) settingsPath() string {
	if a.cfg == nil {
		return ""
	}
	return a.cfg.Settings.Path
}
