package cli

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/approvalflow/domain"
	"github.com/spf13/cobra"
)

var errAuditStorageNotConfigured = errors.New("audit log storage is not configured, set db.host")

func AuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Inspect audit logs",
		Example: heredoc.Doc(`
			$ approvalflow audit list --request 7
		`),
	}

	cmd.AddCommand(listAuditLogsCmd())
	return cmd
}

func listAuditLogsCmd() *cobra.Command {
	var filter domain.ListAuditLogFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List audit logs, newest first",
		Example: heredoc.Doc(`
			$ approvalflow audit list
			$ approvalflow audit list --action approval_request.update_status --request 7
			$ approvalflow audit list --actor 1 --limit 20 -o json
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, a, err := newApp(cmd, appOptions{})
			if err != nil {
				return err
			}
			defer a.close()

			if a.services.AuditLogs == nil {
				return errAuditStorageNotConfigured
			}
			logs, err := a.services.AuditLogs.List(ctx, &filter)
			if err != nil {
				return fmt.Errorf("listing audit logs: %w", err)
			}
			return a.printer.Print(logs)
		},
	}

	cmd.Flags().StringSliceVar(&filter.Actions, "action", nil, "Filter by action")
	cmd.Flags().StringVar(&filter.Actor, "actor", "", "Filter by acting user id")
	cmd.Flags().IntVar(&filter.RequestID, "request", 0, "Filter by request id")
	cmd.Flags().IntVar(&filter.Limit, "limit", 50, "Maximum number of entries")

	return cmd
}
