package jobs

import (
	"context"

	"github.com/goto/approvalflow/core/orchestrator"
	"github.com/goto/approvalflow/domain"
	"github.com/goto/approvalflow/pkg/log"
)

//go:generate mockery --name=syncService --exported --with-expecter
type syncService interface {
	Poll(ctx context.Context) error
	Refresh(ctx context.Context) error
	SetFilters(ctx context.Context, f domain.ListApprovalRequestsFilter) error
	Snapshot() *orchestrator.Snapshot
}

type handler struct {
	logger  log.Logger
	service syncService
}

func NewHandler(logger log.Logger, service syncService) *handler {
	return &handler{
		logger:  logger,
		service: service,
	}
}

// Func returns the job function registered for t.
func (h *handler) Func(t Type) func(context.Context, Config) error {
	switch t {
	case TypeHealthProbe:
		return h.HealthProbe
	case TypePendingCount:
		return h.PendingCount
	case TypeRefresh:
		return h.Refresh
	}
	return nil
}
