package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/approvalflow/core/orchestrator"
	"github.com/goto/approvalflow/domain"
	"github.com/goto/approvalflow/pkg/opentelemetry"
	"github.com/spf13/cobra"
)

const activityPrintInterval = time.Second

func WatchCmd() *cobra.Command {
	var (
		metricsAddr string
		status      string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stay in sync with the approval service and print activity as it happens",
		Example: heredoc.Doc(`
			$ approvalflow watch
			$ approvalflow watch --status pending --metrics-addr :9090
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, a, err := newApp(cmd, appOptions{})
			if err != nil {
				return err
			}
			defer a.close()
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			shutdownTelemetry, err := opentelemetry.Init(ctx, a.config.Telemetry)
			if err != nil {
				return fmt.Errorf("initializing telemetry: %w", err)
			}
			defer func() {
				if err := shutdownTelemetry(); err != nil {
					a.logger.Warn(ctx, "telemetry shutdown failed", "error", err)
				}
			}()

			if metricsAddr == "" {
				metricsAddr = a.config.Metrics.Addr
			}
			if metricsAddr != "" {
				srv := &http.Server{Addr: metricsAddr, Handler: metricsMux(a), ReadHeaderTimeout: 5 * time.Second}
				go func() {
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						a.logger.Error(ctx, "metrics server stopped", "addr", metricsAddr, "error", err)
					}
				}()
				defer srv.Shutdown(context.Background())
				a.logger.Info(ctx, "serving metrics", "addr", metricsAddr)
			}

			svc := a.services.Orchestrator
			if status != "" {
				if err := svc.SetFilters(ctx, domain.ListApprovalRequestsFilter{Status: status}); err != nil {
					return fmt.Errorf("applying filter: %w", err)
				}
			}
			if err := svc.Start(ctx); err != nil {
				return fmt.Errorf("starting sync: %w", err)
			}

			printActivity(ctx, cmd.OutOrStdout(), svc.Snapshot)
			return nil
		},
	}

	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")
	cmd.Flags().StringVar(&status, "status", "", "Only keep requests with this status in view")

	return cmd
}

func metricsMux(a *app) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", a.metrics.Handler())
	return mux
}

// printActivity writes activity events oldest first as they appear until ctx is done.
func printActivity(ctx context.Context, w io.Writer, snapshot func() *orchestrator.Snapshot) {
	var last time.Time
	flush := func() {
		s := snapshot()
		for i := len(s.Activity) - 1; i >= 0; i-- {
			e := s.Activity[i]
			if !e.Timestamp.After(last) {
				continue
			}
			last = e.Timestamp
			fmt.Fprintf(w, "%s  %-9s  %s  [%s, %d pending]\n",
				e.Timestamp.Format("15:04:05"), e.Category, e.Message, s.Mode, s.PendingCount)
		}
	}

	ticker := time.NewTicker(activityPrintInterval)
	defer ticker.Stop()
	for {
		flush()
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
