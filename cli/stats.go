package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/approvalflow/domain"
	"github.com/goto/approvalflow/pkg/slices"
	"github.com/spf13/cobra"
)

type countEntry struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

type statsOutput struct {
	Days                   int                     `json:"days" yaml:"days"`
	TotalRequests          int                     `json:"total_requests" yaml:"total_requests"`
	PendingRequests        int                     `json:"pending_requests" yaml:"pending_requests"`
	ApprovedRequests       int                     `json:"approved_requests" yaml:"approved_requests"`
	RejectedRequests       int                     `json:"rejected_requests" yaml:"rejected_requests"`
	AvgProcessingTimeHours float64                 `json:"avg_processing_time_hours" yaml:"avg_processing_time_hours"`
	ByPriority             []countEntry            `json:"by_priority" yaml:"by_priority"`
	ByCategory             []countEntry            `json:"by_category" yaml:"by_category"`
	Overdue                *domain.OverdueRequests `json:"overdue,omitempty" yaml:"overdue,omitempty"`
}

func StatsCmd() *cobra.Command {
	var (
		days    int
		overdue bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show approval statistics",
		Example: heredoc.Doc(`
			$ approvalflow stats
			$ approvalflow stats --days 7 --overdue
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days <= 0 {
				return fmt.Errorf("invalid --days %d", days)
			}
			ctx, a, err := newApp(cmd, appOptions{})
			if err != nil {
				return err
			}
			defer a.close()

			stats, err := a.services.Repository.Stats(ctx, days)
			if err != nil {
				return fmt.Errorf("getting stats: %w", err)
			}
			out := newStatsOutput(days, stats)
			if overdue {
				out.Overdue, err = a.services.Repository.Overdue(ctx)
				if err != nil {
					return fmt.Errorf("getting overdue requests: %w", err)
				}
			}
			a.warnIfDegraded(cmd)
			return a.printer.Print(out)
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "Number of days covered by the statistics")
	cmd.Flags().BoolVar(&overdue, "overdue", false, "Include pending requests past their due date")

	return cmd
}

func newStatsOutput(days int, stats *domain.ApprovalStats) statsOutput {
	return statsOutput{
		Days:                   days,
		TotalRequests:          stats.TotalRequests,
		PendingRequests:        stats.PendingRequests,
		ApprovedRequests:       stats.ApprovedRequests,
		RejectedRequests:       stats.RejectedRequests,
		AvgProcessingTimeHours: stats.AvgProcessingTimeHours,
		ByPriority:             breakdown(stats.RequestsByPriority),
		ByCategory:             breakdown(stats.RequestsByCategory),
	}
}

// breakdown lists counts ordered by name.
func breakdown(counts map[string]int) []countEntry {
	entries := make([]countEntry, 0, len(counts))
	for _, name := range slices.SortedKeys(counts) {
		entries = append(entries, countEntry{Name: name, Count: counts[name]})
	}
	return entries
}
