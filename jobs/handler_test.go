package jobs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goto/approvalflow/core/orchestrator"
	"github.com/goto/approvalflow/domain"
	"github.com/goto/approvalflow/jobs"
	"github.com/goto/approvalflow/jobs/mocks"
	"github.com/goto/approvalflow/pkg/log"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	service *mocks.SyncService
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.service = mocks.NewSyncService(s.T())
}

func (s *HandlerTestSuite) handler() interface {
	Func(jobs.Type) func(context.Context, jobs.Config) error
} {
	return jobs.NewHandler(log.NewNoop(), s.service)
}

func (s *HandlerTestSuite) TestFunc() {
	h := s.handler()
	for _, t := range jobs.Types {
		s.NotNil(h.Func(t), t)
	}
	s.Nil(h.Func("fetch_resources"))
}

func (s *HandlerTestSuite) TestHealthProbe() {
	s.Run("healthy", func() {
		s.SetupTest()
		s.service.EXPECT().Poll(mock.Anything).Return(nil).Once()
		s.service.EXPECT().Snapshot().Return(&orchestrator.Snapshot{
			Mode:   domain.OperatingModeLive,
			Health: &domain.SystemHealth{Status: "healthy"},
		}).Once()

		err := s.handler().Func(jobs.TypeHealthProbe)(context.Background(), jobs.Config{"fail_on_unhealthy": true})
		s.NoError(err)
	})

	s.Run("unhealthy with fail_on_unhealthy", func() {
		s.SetupTest()
		s.service.EXPECT().Poll(mock.Anything).Return(nil).Once()
		s.service.EXPECT().Snapshot().Return(&orchestrator.Snapshot{Mode: domain.OperatingModeDegraded}).Once()

		err := s.handler().Func(jobs.TypeHealthProbe)(context.Background(), jobs.Config{"fail_on_unhealthy": "true"})
		s.ErrorContains(err, "degraded")
	})

	s.Run("unhealthy tolerated", func() {
		s.SetupTest()
		s.service.EXPECT().Poll(mock.Anything).Return(nil).Once()
		s.service.EXPECT().Snapshot().Return(&orchestrator.Snapshot{Mode: domain.OperatingModeDegraded}).Once()

		s.NoError(s.handler().Func(jobs.TypeHealthProbe)(context.Background(), nil))
	})

	s.Run("poll error", func() {
		s.SetupTest()
		expected := errors.New("canceled")
		s.service.EXPECT().Poll(mock.Anything).Return(expected).Once()

		s.ErrorIs(s.handler().Func(jobs.TypeHealthProbe)(context.Background(), nil), expected)
	})

	s.Run("invalid config", func() {
		s.SetupTest()
		err := s.handler().Func(jobs.TypeHealthProbe)(context.Background(), jobs.Config{"fail_on_unhealthy": map[string]int{"x": 1}})
		s.ErrorContains(err, "invalid config for health_probe job")
	})
}

func (s *HandlerTestSuite) TestPendingCount() {
	s.service.EXPECT().Refresh(mock.Anything).Return(nil).Twice()
	s.service.EXPECT().Snapshot().Return(&orchestrator.Snapshot{PendingCount: 7}).Twice()

	h := s.handler().Func(jobs.TypePendingCount)
	s.NoError(h(context.Background(), jobs.Config{"warn_above": 5}))
	s.NoError(h(context.Background(), nil))
}

func (s *HandlerTestSuite) TestRefresh() {
	s.service.EXPECT().SetFilters(mock.Anything, domain.ListApprovalRequestsFilter{
		Status:   domain.ApprovalStatusPending,
		Category: "IT",
		Limit:    24,
	}).Return(nil).Once()
	s.service.EXPECT().Refresh(mock.Anything).Return(nil).Once()
	s.service.EXPECT().Snapshot().Return(&orchestrator.Snapshot{Total: 3}).Once()

	err := s.handler().Func(jobs.TypeRefresh)(context.Background(), jobs.Config{
		"status":   "pending",
		"category": "IT",
		"limit":    "24",
	})
	s.NoError(err)
}

func (s *HandlerTestSuite) TestRefresh_Rejected() {
	rejection := domain.NewRejectedError(domain.RejectionKindValidationFailed, "invalid status")
	s.service.EXPECT().SetFilters(mock.Anything, mock.Anything).Return(rejection).Once()

	err := s.handler().Func(jobs.TypeRefresh)(context.Background(), jobs.Config{"status": "unknown"})
	s.ErrorIs(err, domain.ErrValidationFailed)
}
