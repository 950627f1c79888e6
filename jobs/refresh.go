package jobs

import (
	"context"
	"fmt"

	"github.com/goto/approvalflow/domain"
)

type RefreshConfig struct {
	Status   string `mapstructure:"status"`
	Priority string `mapstructure:"priority"`
	Category string `mapstructure:"category"`
	Search   string `mapstructure:"search"`
	Limit    int    `mapstructure:"limit"`
}

// Refresh reloads the request view, optionally narrowed by the configured filter.
func (h *handler) Refresh(ctx context.Context, c Config) error {
	var cfg RefreshConfig
	if err := c.Decode(&cfg); err != nil {
		return fmt.Errorf("invalid config for %s job: %w", TypeRefresh, err)
	}

	h.logger.Info(ctx, "running refresh job", "status", cfg.Status, "priority", cfg.Priority, "category", cfg.Category)
	if err := h.service.SetFilters(ctx, domain.ListApprovalRequestsFilter{
		Status:   cfg.Status,
		Priority: cfg.Priority,
		Category: cfg.Category,
		Search:   cfg.Search,
		Limit:    cfg.Limit,
	}); err != nil {
		return fmt.Errorf("loading requests: %w", err)
	}
	if err := h.service.Refresh(ctx); err != nil {
		return fmt.Errorf("refreshing requests: %w", err)
	}

	snapshot := h.service.Snapshot()
	h.logger.Info(ctx, "refresh finished", "loaded", len(snapshot.Requests), "total", snapshot.Total, "mode", string(snapshot.Mode))
	return nil
}
