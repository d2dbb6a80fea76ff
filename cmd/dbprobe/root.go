package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/dbprobe/pkg/credentials"
	"github.com/dmitrymomot/dbprobe/pkg/probe"
)

func newRootCmd(a *app) *cobra.Command {
	var name string

	root := &cobra.Command{
		Use:   "dbprobe",
		Short: "Check a configured database connection",
		Long: `Open the named connection, run its liveness query and print the outcome.

Credentials are read from user_<NAME>, password_<NAME> and dsn_<NAME>;
driver_<NAME> selects oracle (default), postgres, mysql, redis, mongodb
or opensearch.

Examples:
  dbprobe                      # probe MEDIN
  dbprobe --name REPORTS       # probe REPORTS
  dbprobe all                  # probe every name in DB_CONNECTIONS`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cmd.SetContext(a.setup(cmd.Context(), cmd.ErrOrStderr()))
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := a.runner().Run(cmd.Context(), name)
			return probe.Fprint(cmd.OutOrStdout(), res)
		},
	}

	root.Flags().StringVarP(&name, "name", "n", "MEDIN", "connection name to probe")

	pf := root.PersistentFlags()
	pf.StringArrayVar(&a.envFiles, "env-file", nil, "load variables from this .env file (repeatable, later files win)")
	pf.StringVar(&a.logFile, "log-file", "", "rotating log file (overrides LOG_FILE)")
	pf.StringVar(&a.logLevel, "log-level", "", "log file level: debug, info, warn, error (overrides LOG_LEVEL)")

	root.AddCommand(newAllCmd(a))
	return root
}

func newAllCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Probe every configured connection and report its server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := credentials.ParseNames(a.settings.Connections)
			results := a.runner().RunAll(cmd.Context(), names)
			return probe.FprintSummary(cmd.OutOrStdout(), results...)
		},
	}
}
