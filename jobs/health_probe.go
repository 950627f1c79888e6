package jobs

import (
	"context"
	"fmt"

	"github.com/goto/approvalflow/domain"
)

type HealthProbeConfig struct {
	FailOnUnhealthy bool `mapstructure:"fail_on_unhealthy"`
}

// HealthProbe runs one poll cycle and reports the resulting operating mode.
func (h *handler) HealthProbe(ctx context.Context, c Config) error {
	var cfg HealthProbeConfig
	if err := c.Decode(&cfg); err != nil {
		return fmt.Errorf("invalid config for %s job: %w", TypeHealthProbe, err)
	}

	h.logger.Info(ctx, "running health probe job")
	if err := h.service.Poll(ctx); err != nil {
		return fmt.Errorf("polling approval service: %w", err)
	}

	snapshot := h.service.Snapshot()
	h.logger.Info(ctx, "health probe finished", "mode", string(snapshot.Mode), "pending_count", snapshot.PendingCount)
	if cfg.FailOnUnhealthy && snapshot.Mode != domain.OperatingModeLive {
		return fmt.Errorf("approval service is unreachable, operating in %s mode", snapshot.Mode)
	}
	return nil
}
