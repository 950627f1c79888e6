package audit_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/goto/approvalflow/pkg/audit"
	"github.com/goto/approvalflow/pkg/log"
	saltAudit "github.com/goto/salt/audit"
	saltLog "github.com/goto/salt/log"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRepository_Insert(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := log.NewCtxLoggerWithSaltLogger(saltLog.NewLogrus(
		saltLog.LogrusWithWriter(buf),
		saltLog.LogrusWithFormatter(&logrus.JSONFormatter{}),
	), nil)
	repo := audit.NewLogRepository(logger)
	require.NoError(t, repo.Init(context.Background()))

	err := repo.Insert(context.Background(), &saltAudit.Log{
		Timestamp: time.Date(2024, 1, 25, 12, 0, 0, 0, time.UTC),
		Action:    audit.ActionRequestStatusUpdate,
		Actor:     "manager@gov.dk",
		Data:      map[string]interface{}{"id": 3, "status": "approved"},
	})
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "audit", entry["msg"])
	assert.Equal(t, audit.ActionRequestStatusUpdate, entry["action"])
	assert.Equal(t, "manager@gov.dk", entry["actor"])
	assert.JSONEq(t, `{"id":3,"status":"approved"}`, entry["data"].(string))
}

func TestLogRepository_InsertUnmarshalable(t *testing.T) {
	repo := audit.NewLogRepository(log.NewNoop())
	err := repo.Insert(context.Background(), &saltAudit.Log{Data: make(chan int)})
	assert.Error(t, err)
}

type recordingRepository struct {
	logs []*saltAudit.Log
}

func (r *recordingRepository) Init(context.Context) error { return nil }

func (r *recordingRepository) Insert(_ context.Context, l *saltAudit.Log) error {
	r.logs = append(r.logs, l)
	return nil
}

func TestNew(t *testing.T) {
	repo := &recordingRepository{}
	svc, err := audit.New(repo, "approvalflow")
	require.NoError(t, err)

	ctx := audit.WithActor(context.Background(), "employee@gov.dk")
	require.NoError(t, svc.Log(ctx, audit.ActionRequestCreate, map[string]string{"title": "Laptop"}))

	require.Len(t, repo.logs, 1)
	assert.Equal(t, audit.ActionRequestCreate, repo.logs[0].Action)
	assert.Equal(t, "employee@gov.dk", repo.logs[0].Actor)
	assert.Equal(t, map[string]interface{}{"app_name": "approvalflow"}, repo.logs[0].Metadata)
}
