package notification

import (
	"context"
	"fmt"

	"github.com/goto/approvalflow/domain"
	"github.com/goto/approvalflow/pkg/log"
)

type activityRecorder interface {
	Record(message, category string) domain.ActivityEvent
}

// Result tells the caller what a message produced. Event is nil when nothing was recorded.
type Result struct {
	Event   *domain.ActivityEvent
	Refresh bool
}

// Dispatcher turns real-time messages into activity events. It does not validate the business
// content of a message; the next refresh reconciles any inconsistency.
type Dispatcher struct {
	activity activityRecorder
	logger   log.Logger
}

func NewDispatcher(activity activityRecorder, logger log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.NewNoop()
	}
	return &Dispatcher{
		activity: activity,
		logger:   logger,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, msg domain.InboundMessage) Result {
	var message, category string
	switch m := msg.(type) {
	case *domain.NewRequestMessage:
		message = fmt.Sprintf("New request: %s", m.Title)
		category = domain.ActivityCategoryPending
	case *domain.StatusUpdateMessage:
		message = fmt.Sprintf("Status updated: %s", m.Message)
		category = domain.ActivityCategoryForStatus(m.Status)
	case *domain.ApprovalDecisionMessage:
		message = fmt.Sprintf("Decision: %s", m.Message)
		category = domain.ActivityCategoryForStatus(m.Status)
	case *domain.PingMessage:
		return Result{}
	case *domain.UnknownMessage:
		d.logger.Debug(ctx, "ignoring real-time message", "type", m.Tag)
		return Result{}
	default:
		return Result{}
	}

	event := d.activity.Record(message, category)
	d.logger.Info(ctx, "real-time notification", "type", msg.Type(), "message", message)
	return Result{Event: &event, Refresh: true}
}
