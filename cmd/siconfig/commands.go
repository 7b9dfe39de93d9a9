package main

import (
	"fmt"

	"github.com/MKhiriev/shunya-settings/internal/config"
	"github.com/MKhiriev/shunya-settings/internal/service"
	"github.com/spf13/cobra"
)

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               appRole,
		Short:             "Inspect and check the gateway settings document",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		a.groupsCommand(),
		a.kindsCommand(),
		a.showCommand(),
		a.checkCommand(),
		a.endpointCommand(),
		a.versionCommand(),
	)

	return root
}

func (a *app) groupsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List the top-level groups of the settings document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			return a.printer.List("group", svc.Groups())
		},
	}
}

func (a *app) kindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the settings kinds understood by show and check",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// kinds are known without loading the document
			return a.printer.List("kind", service.NewSettingsService(nil, nil, nil).Kinds())
		},
	}
}

func (a *app) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <kind> [group]",
		Short: "Print the settings record of a group",
		Long: "Print the settings record a protocol client would receive for a group.\n" +
			"The group defaults to the kind name. A missing group prints defaults.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}

			record, err := svc.Show(args[0], groupArg(args))
			if err != nil {
				return err
			}
			return a.printer.Record(record)
		},
	}
}

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <kind> [group]",
		Short: "Validate the settings record of a group",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}

			if err = svc.Check(cmd.Context(), args[0], groupArg(args)); err != nil {
				return err
			}

			group := groupArg(args)
			if group == "" {
				group = args[0]
			}
			_, err = fmt.Fprintf(a.out, "%s settings in group %q are valid\n", args[0], group)
			return err
		},
	}
}

func (a *app) endpointCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "endpoint <kind> [group]",
		Short: "Resolve where a client built from a group would connect",
		Long: "Resolve the connection target of a group the way the protocol clients do:\n" +
			"default ports are applied, certificates are loaded and an MQTT client id\n" +
			"is generated when the group leaves it empty.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}

			ep, err := svc.Endpoint(args[0], groupArg(args))
			if err != nil {
				return err
			}
			return a.printer.Record(ep)
		},
	}
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(a.out, a.build)
			return err
		},
	}
}

func groupArg(args []string) string {
	if len(args) > 1 {
		return args[1]
	}
	return ""
}
