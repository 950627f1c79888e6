package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "approvalflow <command> <subcommand> [flags]",
		Short:         "Keep a local view of approval requests in sync with the approval service",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: heredoc.Doc(`
			Client of the approval service.

			Requests are read from and written to the approval service. When it cannot be
			reached, commands keep working against local data until a health probe succeeds.
		`),
		Example: heredoc.Doc(`
			$ approvalflow watch
			$ approvalflow request list --status pending
			$ approvalflow request approve 7
			$ approvalflow stats --days 7
		`),
	}

	cmd.AddCommand(
		WatchCmd(),
		RequestCmd(),
		UserCmd(),
		StatsCmd(),
		JobCmd(),
		AuditCmd(),
	)

	cmd.PersistentFlags().StringP("config", "c", "./config.yaml", "Config file path")
	cmd.MarkPersistentFlagFilename("config")
	cmd.PersistentFlags().StringP("output", "o", formatYAML, "Output format (yaml|json)")

	return cmd
}
