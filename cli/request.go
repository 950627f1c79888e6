package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/approvalflow/core/orchestrator"
	"github.com/goto/approvalflow/domain"
	"github.com/spf13/cobra"
)

func RequestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "request",
		Aliases: []string{"requests"},
		Short:   "Manage approval requests",
		Example: heredoc.Doc(`
			$ approvalflow request list --status pending --search laptop
			$ approvalflow request view 7
			$ approvalflow request approve 7 --comment "within budget"
		`),
	}

	cmd.AddCommand(
		listRequestsCmd(),
		viewRequestCmd(),
		createRequestCmd(),
		updateStatusCmd(domain.ApprovalStatusApproved, "approve", "Approve a pending request"),
		updateStatusCmd(domain.ApprovalStatusRejected, "reject", "Reject a pending request"),
		updateStatusCmd(domain.ApprovalStatusEscalated, "escalate", "Escalate a request to another approver"),
		commentCmd(),
	)

	return cmd
}

type requestListOutput struct {
	Requests     []*domain.ApprovalRequest `json:"requests" yaml:"requests"`
	Total        int                       `json:"total" yaml:"total"`
	HasMore      bool                      `json:"has_more" yaml:"has_more"`
	PendingCount int                       `json:"pending_count" yaml:"pending_count"`
	Mode         domain.OperatingMode      `json:"mode" yaml:"mode"`
}

func listRequestsCmd() *cobra.Command {
	var (
		filter domain.ListApprovalRequestsFilter
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List approval requests",
		Example: heredoc.Doc(`
			$ approvalflow request list
			$ approvalflow request list --status pending --priority urgent
			$ approvalflow request list --approver 1 --all -o json
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, a, err := newApp(cmd, appOptions{})
			if err != nil {
				return err
			}
			defer a.close()
			svc := a.services.Orchestrator

			if err := svc.SetFilters(ctx, filter); err != nil {
				return fmt.Errorf("listing requests: %w", err)
			}
			for all && svc.Snapshot().HasMore {
				if err := svc.LoadMore(ctx); err != nil {
					return fmt.Errorf("loading more requests: %w", err)
				}
			}
			if err := svc.Refresh(ctx); err != nil {
				return fmt.Errorf("counting pending requests: %w", err)
			}

			snapshot := svc.Snapshot()
			a.warnIfDegraded(cmd)
			return a.printer.Print(requestListOutput{
				Requests:     snapshot.Requests,
				Total:        snapshot.Total,
				HasMore:      snapshot.HasMore,
				PendingCount: snapshot.PendingCount,
				Mode:         snapshot.Mode,
			})
		},
	}

	cmd.Flags().StringVar(&filter.Status, "status", "", "Filter by status (pending|approved|rejected|escalated|cancelled)")
	cmd.Flags().StringVar(&filter.Priority, "priority", "", "Filter by priority (low|medium|high|urgent)")
	cmd.Flags().StringVar(&filter.Category, "category", "", "Filter by category")
	cmd.Flags().StringVarP(&filter.Search, "search", "q", "", "Search title, description and reference number")
	cmd.Flags().IntVar(&filter.RequesterID, "requester", 0, "Filter by requester id")
	cmd.Flags().IntVar(&filter.ApproverID, "approver", 0, "Filter by approver id")
	cmd.Flags().IntVar(&filter.Limit, "limit", 0, "Page size")
	cmd.Flags().BoolVar(&all, "all", false, "Load every page")

	return cmd
}

func viewRequestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <id>",
		Short: "Show an approval request with its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, a, err := newApp(cmd, appOptions{})
			if err != nil {
				return err
			}
			defer a.close()

			r, err := a.services.Repository.GetRequest(ctx, id)
			if err != nil {
				return fmt.Errorf("getting request %d: %w", id, err)
			}
			a.warnIfDegraded(cmd)
			return a.printer.Print(r)
		},
	}
	return cmd
}

func createRequestCmd() *cobra.Command {
	var (
		data   domain.CreateApprovalRequest
		amount float64
		due    string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "File a new approval request as the configured user",
		Example: heredoc.Doc(`
			$ approvalflow request create --title "New laptop" --category IT --approver 1 --amount 12000
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("amount") {
				data.Amount = &amount
			}
			if due != "" {
				ts, err := domain.ParseTimestamp(due)
				if err != nil {
					return fmt.Errorf("parsing due date: %w", err)
				}
				data.DueDate = &ts
			}

			ctx, a, err := newApp(cmd, appOptions{})
			if err != nil {
				return err
			}
			defer a.close()
			svc := a.services.Orchestrator

			created, err := svc.CreateRequest(ctx, data)
			if err != nil {
				return fmt.Errorf("creating request: %w", err)
			}
			a.warnIfDegraded(cmd)
			return a.printer.Print(created)
		},
	}

	cmd.Flags().StringVar(&data.Title, "title", "", "Request title")
	cmd.Flags().StringVar(&data.Description, "description", "", "Request description")
	cmd.Flags().StringVar(&data.Category, "category", "", "Request category")
	cmd.Flags().StringVar(&data.Priority, "priority", "", "Priority (low|medium|high|urgent)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Requested amount")
	cmd.Flags().IntVar(&data.ApproverID, "approver", 0, "Approver user id")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().StringVar(&data.ExternalReference, "external-ref", "", "Reference in an external system")
	cmd.Flags().StringVar(&data.ConfidentialityLevel, "confidentiality", "", "Confidentiality level")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("category")
	cmd.MarkFlagRequired("approver")

	return cmd
}

func updateStatusCmd(status, use, short string) *cobra.Command {
	var (
		update domain.UpdateApprovalRequest
		yes    bool
	)

	cmd := &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			confirm := orchestrator.AutoConfirm
			if !yes {
				confirm = promptConfirm(cmd.InOrStdin(), cmd.ErrOrStderr())
			}

			ctx, a, err := newApp(cmd, appOptions{confirm: confirm})
			if err != nil {
				return err
			}
			defer a.close()
			svc := a.services.Orchestrator

			update.Status = status
			updated, err := svc.UpdateStatus(ctx, id, update)
			if errors.Is(err, orchestrator.ErrConfirmationDeclined) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Status change cancelled")
				return nil
			}
			if err != nil {
				return fmt.Errorf("updating request %d: %w", id, err)
			}
			a.warnIfDegraded(cmd)
			return a.printer.Print(updated)
		},
	}

	cmd.Flags().StringVar(&update.Comment, "comment", "", "Comment stored with the decision")
	if status == domain.ApprovalStatusEscalated {
		cmd.Flags().IntVar(&update.ApproverID, "to", 0, "User id of the new approver")
	} else {
		cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	}

	return cmd
}

func commentCmd() *cobra.Command {
	var internal bool

	cmd := &cobra.Command{
		Use:   "comment <id> <content>",
		Short: "Add a comment to a request as the configured user",
		Example: heredoc.Doc(`
			$ approvalflow request comment 7 "Quote attached"
			$ approvalflow request comment 7 "Check with finance" --internal
		`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, a, err := newApp(cmd, appOptions{})
			if err != nil {
				return err
			}
			defer a.close()
			svc := a.services.Orchestrator

			result, err := svc.AddComment(ctx, id, args[1], internal)
			if err != nil {
				return fmt.Errorf("commenting on request %d: %w", id, err)
			}
			a.warnIfDegraded(cmd)
			return a.printer.Print(result)
		},
	}

	cmd.Flags().BoolVar(&internal, "internal", false, "Hide the comment from the requester")
	return cmd
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid request id %q", arg)
	}
	return id, nil
}
