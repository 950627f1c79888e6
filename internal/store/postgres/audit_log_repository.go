package postgres

import (
	"context"
	"errors"
	"strconv"

	"github.com/goto/approvalflow/domain"
	"github.com/goto/salt/audit"
	auditrepo "github.com/goto/salt/audit/repositories"
	"gorm.io/gorm"
)

type eventModel auditrepo.AuditModel

func (m *eventModel) toDomain(domainEvent *audit.Log) error {
	if m == nil {
		return nil
	}

	if domainEvent == nil {
		return errors.New("audit log is nil")
	}

	domainEvent.Timestamp = m.Timestamp
	domainEvent.Action = m.Action
	domainEvent.Actor = m.Actor

	if m.Data.Valid {
		data := make(map[string]interface{})
		if err := m.Data.Unmarshal(&data); err != nil {
			return err
		}
		domainEvent.Data = data
	}
	if m.Metadata.Valid {
		metadata := make(map[string]interface{})
		if err := m.Metadata.Unmarshal(&metadata); err != nil {
			return err
		}
		domainEvent.Metadata = metadata
	}

	return nil
}

func (m *eventModel) TableName() string {
	return "audit_logs"
}

// AuditLogRepository reads the audit entries written by the salt audit postgres repository.
type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(s *Store) *AuditLogRepository {
	return &AuditLogRepository{db: s.db}
}

func (r *AuditLogRepository) List(ctx context.Context, filter *domain.ListAuditLogFilter) ([]*audit.Log, error) {
	db := r.db.WithContext(ctx)

	if filter != nil {
		if len(filter.Actions) > 0 {
			db = db.Where(`"action" IN ?`, filter.Actions)
		}
		if filter.Actor != "" {
			db = db.Where(`"actor" = ?`, filter.Actor)
		}
		if filter.RequestID > 0 {
			db = db.Where(`"data" ->> 'request_id' = ?`, strconv.Itoa(filter.RequestID))
		}
		if filter.Limit > 0 {
			db = db.Limit(filter.Limit)
		}
	}
	db = db.Order("timestamp DESC")

	records := []*eventModel{}
	if err := db.Find(&records).Error; err != nil {
		return nil, err
	}

	events := make([]*audit.Log, 0, len(records))
	for _, record := range records {
		a := new(audit.Log)
		if err := record.toDomain(a); err != nil {
			return nil, err
		}
		events = append(events, a)
	}

	return events, nil
}
