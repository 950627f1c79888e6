package jobs

import (
	"context"
	"fmt"
)

type PendingCountConfig struct {
	WarnAbove int `mapstructure:"warn_above"`
}

func (h *handler) PendingCount(ctx context.Context, c Config) error {
	var cfg PendingCountConfig
	if err := c.Decode(&cfg); err != nil {
		return fmt.Errorf("invalid config for %s job: %w", TypePendingCount, err)
	}

	h.logger.Info(ctx, "running pending count job")
	if err := h.service.Refresh(ctx); err != nil {
		return fmt.Errorf("refreshing requests: %w", err)
	}

	pending := h.service.Snapshot().PendingCount
	if cfg.WarnAbove > 0 && pending > cfg.WarnAbove {
		h.logger.Warn(ctx, "pending approval requests above threshold", "pending_count", pending, "threshold", cfg.WarnAbove)
		return nil
	}
	h.logger.Info(ctx, "pending approval requests", "pending_count", pending)
	return nil
}
