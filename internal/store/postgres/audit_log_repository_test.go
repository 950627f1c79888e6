package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/goto/approvalflow/domain"
	"github.com/goto/approvalflow/internal/store/postgres"
	"github.com/stretchr/testify/suite"
)

type AuditLogRepositoryTestSuite struct {
	suite.Suite
	dbmock     sqlmock.Sqlmock
	repository *postgres.AuditLogRepository
}

func TestAuditLogRepository(t *testing.T) {
	suite.Run(t, new(AuditLogRepositoryTestSuite))
}

func (s *AuditLogRepositoryTestSuite) SetupTest() {
	db, dbmock, err := sqlmock.New()
	s.Require().NoError(err)
	s.T().Cleanup(func() { db.Close() })

	store, err := postgres.NewClientWithConn(db, "silent")
	s.Require().NoError(err)

	s.dbmock = dbmock
	s.repository = postgres.NewAuditLogRepository(store)
}

func (s *AuditLogRepositoryTestSuite) TestList() {
	timestamp := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"timestamp", "action", "actor", "data", "metadata"}).
		AddRow(timestamp, "approval_request.update_status", "1", []byte(`{"request_id":7,"status":"approved"}`), []byte(`{"app_name":"approvalflow"}`)).
		AddRow(timestamp.Add(-time.Hour), "approval_request.comment", "2", nil, nil)
	s.dbmock.ExpectQuery(`SELECT \* FROM "audit_logs" WHERE "action" IN .* AND "data" ->> 'request_id' = .* ORDER BY timestamp DESC`).
		WillReturnRows(rows)

	logs, err := s.repository.List(context.Background(), &domain.ListAuditLogFilter{
		Actions:   []string{"approval_request.update_status", "approval_request.comment"},
		RequestID: 7,
	})

	s.Require().NoError(err)
	s.Require().Len(logs, 2)
	s.Equal("approval_request.update_status", logs[0].Action)
	s.Equal("1", logs[0].Actor)
	s.True(timestamp.Equal(logs[0].Timestamp))
	s.Equal(map[string]interface{}{"request_id": float64(7), "status": "approved"}, logs[0].Data)
	s.Nil(logs[1].Data)
	s.NoError(s.dbmock.ExpectationsWereMet())
}

func (s *AuditLogRepositoryTestSuite) TestList_NoFilter() {
	s.dbmock.ExpectQuery(`SELECT \* FROM "audit_logs" ORDER BY timestamp DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"timestamp", "action", "actor", "data", "metadata"}))

	logs, err := s.repository.List(context.Background(), nil)

	s.NoError(err)
	s.Empty(logs)
	s.NoError(s.dbmock.ExpectationsWereMet())
}

func (s *AuditLogRepositoryTestSuite) TestList_QueryError() {
	expectedError := errors.New("connection reset")
	s.dbmock.ExpectQuery(`SELECT`).WillReturnError(expectedError)

	_, err := s.repository.List(context.Background(), &domain.ListAuditLogFilter{Actor: "1"})

	s.ErrorIs(err, expectedError)
}
