package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goto/approvalflow/pkg/log"
	saltAudit "github.com/goto/salt/audit"
)

const (
	ActionRequestCreate       = "approval_request.create"
	ActionRequestStatusUpdate = "approval_request.update_status"
	ActionRequestComment      = "approval_request.comment"
	ActionUserCreate          = "user.create"
)

type AuditLogger interface {
	Log(ctx context.Context, action string, data interface{}) error
}

// LogRepository stores audit entries as structured log lines.
type LogRepository struct {
	logger log.Logger
}

func NewLogRepository(logger log.Logger) *LogRepository {
	return &LogRepository{logger: logger}
}

func (r *LogRepository) Init(context.Context) error {
	return nil
}

func (r *LogRepository) Insert(ctx context.Context, l *saltAudit.Log) error {
	data, err := json.Marshal(l.Data)
	if err != nil {
		return fmt.Errorf("marshaling audit data: %w", err)
	}
	r.logger.Info(ctx, "audit",
		"action", l.Action,
		"actor", l.Actor,
		"timestamp", l.Timestamp,
		"data", string(data),
	)
	return nil
}

// Repository stores audit entries.
type Repository interface {
	Init(context.Context) error
	Insert(context.Context, *saltAudit.Log) error
}

// New returns an audit logger that writes to repo and tags every entry with the app name.
func New(repo Repository, appName string) (*saltAudit.Service, error) {
	svc := saltAudit.New(
		saltAudit.WithMetadataExtractor(func(context.Context) map[string]interface{} {
			return map[string]interface{}{"app_name": appName}
		}),
		saltAudit.WithRepository(repo),
	)
	return svc, nil
}

// WithActor attaches the acting user to ctx for subsequent audit entries.
func WithActor(ctx context.Context, actor string) context.Context {
	return saltAudit.WithActor(ctx, actor)
}
