package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/goto/approvalflow/core/orchestrator"
	"github.com/goto/approvalflow/internal/server"
	"github.com/goto/approvalflow/pkg/log"
	"github.com/goto/approvalflow/pkg/metrics"
	"github.com/spf13/cobra"
)

type app struct {
	config   server.Config
	logger   log.Logger
	metrics  *metrics.Metrics
	services *server.Services
	printer  *printer
}

type appOptions struct {
	confirm orchestrator.ConfirmFunc
}

func newApp(cmd *cobra.Command, opts appOptions) (context.Context, *app, error) {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, fmt.Errorf("getting config flag value: %w", err)
	}
	config, err := server.LoadConfig(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	p, err := newPrinter(cmd)
	if err != nil {
		return nil, nil, err
	}

	logger := log.NewCtxLogger(config.LogLevel, []string{server.LogKeySession})
	m := metrics.New()
	services, err := server.InitServices(server.ServiceDeps{
		Config:  &config,
		Logger:  logger,
		Metrics: m,
		Confirm: opts.confirm,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("initializing services: %w", err)
	}

	ctx := log.WithValue(cmd.Context(), server.LogKeySession, uuid.NewString())
	return ctx, &app{
		config:   config,
		logger:   logger,
		metrics:  m,
		services: services,
		printer:  p,
	}, nil
}

func (a *app) close() {
	if err := a.services.Orchestrator.Close(); err != nil {
		a.logger.Warn(context.Background(), "closing sync", "error", err)
	}
	if err := a.services.Close(); err != nil {
		a.logger.Warn(context.Background(), "closing database", "error", err)
	}
}

// warnIfDegraded tells the user that the printed data comes from the local store.
func (a *app) warnIfDegraded(cmd *cobra.Command) {
	if a.services.State.IsDegraded() {
		fmt.Fprintln(cmd.ErrOrStderr(), "approval service is unreachable, showing local data")
	}
}

// promptConfirm asks on in before a request is approved or rejected. Only "y" or "yes" confirms.
func promptConfirm(in io.Reader, out io.Writer) orchestrator.ConfirmFunc {
	reader := bufio.NewReader(in)
	return func(ctx context.Context, id int, status string) (bool, error) {
		verb := "approve"
		if status != "approved" {
			verb = "reject"
		}
		fmt.Fprintf(out, "Are you sure you want to %s request %d? [y/N] ", verb, id)

		answer, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true, nil
		}
		return false, nil
	}
}
