package memory_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/goto/approvalflow/domain"
	"github.com/goto/approvalflow/internal/store/memory"
	"github.com/goto/approvalflow/pkg/log"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	now   time.Time
	store *memory.Store
}

func TestStore(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2024, 1, 25, 12, 0, 0, 0, time.UTC)
	memory.TimeNow = func() time.Time { return s.now }
	s.store = memory.New(memory.DefaultSeed(), log.NewNoop())
}

func (s *StoreTestSuite) TearDownTest() {
	memory.TimeNow = time.Now
}

func (s *StoreTestSuite) TestListRequests() {
	s.Run("should filter, window and count", func() {
		list, err := s.store.ListRequests(s.ctx, domain.ListApprovalRequestsFilter{Category: "IT", Limit: 2})

		s.Require().NoError(err)
		s.Equal(3, list.Total)
		s.Require().Len(list.Requests, 2)
		s.Equal(6, list.Requests[0].ID)
		s.Equal(4, list.Requests[1].ID)
		s.Equal("Chef Larsen", list.Requests[1].Approver.Name)
	})

	s.Run("should search title and description", func() {
		list, err := s.store.ListRequests(s.ctx, domain.ListApprovalRequestsFilter{Search: "BÆRBAR"})

		s.Require().NoError(err)
		s.Equal(1, list.Total)
		s.Equal(1, list.Requests[0].ID)
	})

	s.Run("should return copies", func() {
		list, _ := s.store.ListRequests(s.ctx, domain.ListApprovalRequestsFilter{})
		list.Requests[0].Title = "mutated"

		again, _ := s.store.ListRequests(s.ctx, domain.ListApprovalRequestsFilter{})
		s.NotEqual("mutated", again.Requests[0].Title)
	})
}

func (s *StoreTestSuite) TestGetRequest() {
	r, err := s.store.GetRequest(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("Medarbejder Hansen", r.Requester.Name)
	s.Require().Len(r.Comments, 1)
	s.Equal("Medarbejder Hansen", r.Comments[0].User.Name)

	_, err = s.store.GetRequest(s.ctx, 404)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *StoreTestSuite) TestCreateRequest() {
	s.Run("should mint ids above every observed id", func() {
		s.store.ObserveRequests(&domain.ApprovalRequest{
			ID:              57,
			ReferenceNumber: "REQ-20240124-0057",
			Comments:        []*domain.Comment{{ID: 300}},
		})

		r, err := s.store.CreateRequest(s.ctx, domain.CreateApprovalRequest{Title: " Laptop ", Category: "IT", ApproverID: 1}, 2)

		s.Require().NoError(err)
		s.Equal(58, r.ID)
		s.Equal("Laptop", r.Title)
		s.Equal("REQ-20240125-0058", r.ReferenceNumber)
		s.Equal(domain.ApprovalStatusPending, r.Status)
		s.Equal(domain.PriorityMedium, r.Priority)
		s.Equal(domain.DefaultCurrency, r.Currency)
		s.Equal(domain.DefaultConfidentialityLevel, r.ConfidentialityLevel)
		s.Equal("Manager Jensen", r.Approver.Name)

		res, err := s.store.AddComment(s.ctx, r.ID, "first", 2, false)
		s.Require().NoError(err)
		s.Equal(301, res.CommentID)
	})

	s.Run("should skip reference numbers already seen", func() {
		today := s.now.Format("20060102")
		next := 59
		s.store.ObserveRequests(&domain.ApprovalRequest{ID: 3, ReferenceNumber: fmt.Sprintf("REQ-%s-%04d", today, next)})

		r, err := s.store.CreateRequest(s.ctx, domain.CreateApprovalRequest{Title: "Monitor", Category: "IT", ApproverID: 1}, 2)

		s.Require().NoError(err)
		s.Equal(next+1, r.ID)
		s.Equal(fmt.Sprintf("REQ-%s-%04d", today, next+1), r.ReferenceNumber)
	})
}

func (s *StoreTestSuite) TestUpdateRequest() {
	s.Run("should approve with comment atomically", func() {
		r, err := s.store.UpdateRequest(s.ctx, 1, domain.UpdateApprovalRequest{Status: domain.ApprovalStatusApproved, Comment: "ok"}, 1)

		s.Require().NoError(err)
		s.Equal(domain.ApprovalStatusApproved, r.Status)
		s.Require().NotNil(r.ApprovedAt)
		s.True(s.now.Equal(r.ApprovedAt.Time))
		s.Require().Len(r.Comments, 2)
		s.Equal(4, r.Comments[1].ID)
		s.Equal("Manager Jensen", r.Comments[1].User.Name)
	})

	s.Run("should reject transition out of terminal status and keep record", func() {
		_, err := s.store.UpdateRequest(s.ctx, 2, domain.UpdateApprovalRequest{Status: domain.ApprovalStatusRejected, Comment: "no"}, 1)

		s.ErrorIs(err, domain.ErrInvalidTransition)
		r, _ := s.store.GetRequest(s.ctx, 2)
		s.Equal(domain.ApprovalStatusApproved, r.Status)
		s.Len(r.Comments, 1)
	})

	s.Run("should report missing request", func() {
		_, err := s.store.UpdateRequest(s.ctx, 99, domain.UpdateApprovalRequest{Status: domain.ApprovalStatusApproved}, 1)
		s.ErrorIs(err, domain.ErrNotFound)
	})
}

func (s *StoreTestSuite) TestAddComment() {
	_, err := s.store.AddComment(s.ctx, 5, "   ", 2, false)
	s.ErrorIs(err, domain.ErrValidationFailed)

	res, err := s.store.AddComment(s.ctx, 5, "Uge 29-31", 2, true)
	s.Require().NoError(err)

	r, _ := s.store.GetRequest(s.ctx, 5)
	s.Require().Len(r.Comments, 1)
	s.Equal(res.CommentID, r.Comments[0].ID)
	s.True(r.Comments[0].IsInternal)
}

func (s *StoreTestSuite) TestUsers() {
	users, err := s.store.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Len(users, 3)

	_, err = s.store.CreateUser(s.ctx, domain.CreateUser{Email: "MANAGER@gov.dk", Name: "Dup", Role: "manager"})
	s.ErrorIs(err, domain.ErrValidationFailed)

	u, err := s.store.CreateUser(s.ctx, domain.CreateUser{Email: "new@gov.dk", Name: "Ny Bruger", Role: "employee"})
	s.Require().NoError(err)
	s.Equal(4, u.ID)
	s.True(u.IsActive)

	got, err := s.store.GetUser(s.ctx, 4)
	s.Require().NoError(err)
	s.Equal("new@gov.dk", got.Email)

	_, err = s.store.GetUser(s.ctx, 40)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *StoreTestSuite) TestStats() {
	stats, err := s.store.Stats(s.ctx, 30)

	s.Require().NoError(err)
	s.Equal(6, stats.TotalRequests)
	s.Equal(2, stats.PendingRequests)
	s.Equal(1, stats.ApprovedRequests)
	s.Equal(1, stats.RejectedRequests)
	s.Equal(3, stats.RequestsByCategory["IT"])
	s.InDelta(36.958, stats.AvgProcessingTimeHours, 0.001)

	stats, err = s.store.Stats(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(0, stats.TotalRequests)
}

func (s *StoreTestSuite) TestOverdue() {
	overdue, err := s.store.Overdue(s.ctx)

	s.Require().NoError(err)
	s.Equal(1, overdue.Count)
	s.Equal(1, overdue.Requests[0].ID)
	s.Equal(6, overdue.Requests[0].DaysOverdue)
	s.Equal("Manager Jensen", overdue.Requests[0].Approver)
}

func (s *StoreTestSuite) TestHealth() {
	h, err := s.store.Health(s.ctx)
	s.Require().NoError(err)
	s.Equal("in-memory", h.Database)
}

func TestLoadSeed(t *testing.T) {
	seed, err := memory.LoadSeed("")
	if err != nil {
		t.Fatal(err)
	}
	if len(seed.Requests) != 6 || len(seed.Users) != 3 {
		t.Fatalf("unexpected default seed size: %d requests, %d users", len(seed.Requests), len(seed.Users))
	}

	if _, err := memory.LoadSeed("does-not-exist.json"); err == nil {
		t.Fatal("expected error for missing seed file")
	}
	if _, err := memory.ParseSeed([]byte(`{"unknown": 1}`)); err == nil {
		t.Fatal("expected error for unknown field")
	}
}
