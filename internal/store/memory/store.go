package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/goto/approvalflow/core/filter"
	"github.com/goto/approvalflow/core/transition"
	"github.com/goto/approvalflow/domain"
	"github.com/goto/approvalflow/pkg/log"
)

var TimeNow = time.Now

// Store is the local stand-in for the approval service. It serves the same operations over an
// in-memory copy of the entities, seeded at start-up and refreshed with every record observed from
// the remote service. Identities it mints are always above every identity it has seen.
type Store struct {
	mu       sync.RWMutex
	logger   log.Logger
	requests map[int]*domain.ApprovalRequest
	users    map[int]*domain.User

	nextRequestID int
	nextCommentID int
	nextUserID    int
	references    map[string]struct{}
}

func New(seed *Seed, logger log.Logger) *Store {
	s := &Store{
		logger:        logger,
		requests:      map[int]*domain.ApprovalRequest{},
		users:         map[int]*domain.User{},
		nextRequestID: 1,
		nextCommentID: 1,
		nextUserID:    1,
		references:    map[string]struct{}{},
	}
	if seed != nil {
		s.ObserveUsers(seed.Users...)
		s.ObserveRequests(seed.Requests...)
	}
	return s
}

// ObserveRequests stores copies of rs and raises the id counters above every id they carry.
func (s *Store) ObserveRequests(rs ...*domain.ApprovalRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range rs {
		if r == nil || r.ID <= 0 {
			continue
		}
		s.observeRequestLocked(r)
	}
}

// ObserveUsers stores copies of users and raises the user id counter above their ids.
func (s *Store) ObserveUsers(users ...*domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range users {
		if u == nil || u.ID <= 0 {
			continue
		}
		s.users[u.ID] = u.Clone()
		s.raiseUserIDLocked(u.ID)
	}
}

// ObserveComment raises the comment id counter above id.
func (s *Store) ObserveComment(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id >= s.nextCommentID {
		s.nextCommentID = id + 1
	}
}

func (s *Store) observeRequestLocked(r *domain.ApprovalRequest) {
	c := r.Clone()
	c.Requester, c.Approver = nil, nil
	for _, comment := range c.Comments {
		if comment.ID >= s.nextCommentID {
			s.nextCommentID = comment.ID + 1
		}
		comment.User = nil
	}
	if r.ID >= s.nextRequestID {
		s.nextRequestID = r.ID + 1
	}
	if c.ReferenceNumber != "" {
		s.references[c.ReferenceNumber] = struct{}{}
	}
	if r.Requester != nil {
		s.users[r.Requester.ID] = r.Requester.Clone()
		s.raiseUserIDLocked(r.Requester.ID)
	}
	if r.Approver != nil {
		s.users[r.Approver.ID] = r.Approver.Clone()
		s.raiseUserIDLocked(r.Approver.ID)
	}
	s.requests[c.ID] = c
}

func (s *Store) raiseUserIDLocked(id int) {
	if id >= s.nextUserID {
		s.nextUserID = id + 1
	}
}

func (s *Store) Health(ctx context.Context) (*domain.SystemHealth, error) {
	return &domain.SystemHealth{
		Status:    "degraded",
		Service:   "approvalflow-fallback",
		Database:  "in-memory",
		Timestamp: domain.NewTimestamp(TimeNow()),
	}, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*domain.User, 0, len(s.users))
	for id := 1; id < s.nextUserID; id++ {
		if u, ok := s.users[id]; ok {
			users = append(users, u.Clone())
		}
	}
	return users, nil
}

func (s *Store) GetUser(ctx context.Context, id int) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domain.NewRejectedError(domain.RejectionKindNotFound, fmt.Sprintf("user %d not found", id))
	}
	return u.Clone(), nil
}

func (s *Store) CreateUser(ctx context.Context, data domain.CreateUser) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.TrimSpace(data.Email)
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return nil, domain.NewRejectedError(domain.RejectionKindValidationFailed, "email already registered")
		}
	}

	u := &domain.User{
		ID:         s.nextUserID,
		Email:      email,
		Name:       data.Name,
		Role:       data.Role,
		Department: data.Department,
		Phone:      data.Phone,
		IsActive:   true,
		CreatedAt:  domain.NewTimestamp(TimeNow()),
	}
	s.nextUserID++
	s.users[u.ID] = u

	s.logger.Debug(ctx, "created user in fallback store", "user_id", u.ID)
	return u.Clone(), nil
}

func (s *Store) ListRequests(ctx context.Context, f domain.ListApprovalRequestsFilter) (*domain.ApprovalRequestList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*domain.ApprovalRequest, 0, len(s.requests))
	for _, r := range s.requests {
		records = append(records, r)
	}
	list := filter.List(records, f)
	for i, r := range list.Requests {
		list.Requests[i] = s.viewLocked(r)
	}
	return list, nil
}

func (s *Store) GetRequest(ctx context.Context, id int) (*domain.ApprovalRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.requests[id]
	if !ok {
		return nil, requestNotFound(id)
	}
	return s.viewLocked(r), nil
}

func (s *Store) CreateRequest(ctx context.Context, data domain.CreateApprovalRequest, requesterID int) (*domain.ApprovalRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := TimeNow()
	id, reference := s.mintRequestIdentityLocked(now)

	r := &domain.ApprovalRequest{
		ID:                   id,
		Title:                strings.TrimSpace(data.Title),
		Description:          data.Description,
		Category:             data.Category,
		Priority:             data.Priority,
		Status:               domain.ApprovalStatusPending,
		Currency:             domain.DefaultCurrency,
		RequesterID:          requesterID,
		ApproverID:           data.ApproverID,
		ReferenceNumber:      reference,
		ExternalReference:    data.ExternalReference,
		ConfidentialityLevel: data.ConfidentialityLevel,
		Comments:             []*domain.Comment{},
		CreatedAt:            domain.NewTimestamp(now),
	}
	if r.Priority == "" {
		r.Priority = domain.PriorityMedium
	}
	if r.ConfidentialityLevel == "" {
		r.ConfidentialityLevel = domain.DefaultConfidentialityLevel
	}
	if data.Amount != nil {
		amount := *data.Amount
		r.Amount = &amount
	}
	if data.DueDate != nil {
		due := *data.DueDate
		r.DueDate = &due
	}
	s.requests[r.ID] = r

	s.logger.Debug(ctx, "created approval request in fallback store", "request_id", r.ID, "reference_number", r.ReferenceNumber)
	return s.viewLocked(r), nil
}

// mintRequestIdentityLocked returns the next free request id and its reference number. Ids whose
// reference number was already seen are skipped.
func (s *Store) mintRequestIdentityLocked(now time.Time) (int, string) {
	for {
		id := s.nextRequestID
		s.nextRequestID++
		reference := fmt.Sprintf("REQ-%s-%04d", now.Format("20060102"), id)
		if _, taken := s.references[reference]; taken {
			continue
		}
		s.references[reference] = struct{}{}
		return id, reference
	}
}

func (s *Store) UpdateRequest(ctx context.Context, id int, update domain.UpdateApprovalRequest, userID int) (*domain.ApprovalRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.requests[id]
	if !ok {
		return nil, requestNotFound(id)
	}

	next, err := transition.Apply(current, update, userID, s.nextCommentID, TimeNow())
	if err != nil {
		return nil, err
	}
	if len(next.Comments) > len(current.Comments) {
		s.nextCommentID++
	}
	s.requests[id] = next

	s.logger.Debug(ctx, "updated approval request in fallback store", "request_id", id, "from", current.Status, "to", next.Status)
	return s.viewLocked(next), nil
}

func (s *Store) AddComment(ctx context.Context, id int, content string, userID int, internal bool) (*domain.CommentResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.requests[id]
	if !ok {
		return nil, requestNotFound(id)
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.NewRejectedError(domain.RejectionKindValidationFailed, "comment can't be empty")
	}

	comment := &domain.Comment{
		ID:         s.nextCommentID,
		Content:    content,
		IsInternal: internal,
		UserID:     userID,
		CreatedAt:  domain.NewTimestamp(TimeNow()),
	}
	s.nextCommentID++

	next := current.Clone()
	next.Comments = append(next.Comments, comment)
	s.requests[id] = next

	return &domain.CommentResult{Message: "comment added", CommentID: comment.ID}, nil
}

func (s *Store) Stats(ctx context.Context, days int) (*domain.ApprovalStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := TimeNow().AddDate(0, 0, -days)
	stats := &domain.ApprovalStats{
		RequestsByPriority: map[string]int{},
		RequestsByCategory: map[string]int{},
	}

	var processed time.Duration
	var completed int
	for _, r := range s.requests {
		if r.CreatedAt.Before(cutoff) {
			continue
		}
		stats.TotalRequests++
		switch r.Status {
		case domain.ApprovalStatusPending:
			stats.PendingRequests++
		case domain.ApprovalStatusApproved:
			stats.ApprovedRequests++
		case domain.ApprovalStatusRejected:
			stats.RejectedRequests++
		}
		if r.ApprovedAt != nil {
			processed += r.ApprovedAt.Sub(r.CreatedAt.Time)
			completed++
		}
		stats.RequestsByPriority[r.Priority]++
		stats.RequestsByCategory[r.Category]++
	}
	if completed > 0 {
		stats.AvgProcessingTimeHours = processed.Hours() / float64(completed)
	}
	return stats, nil
}

func (s *Store) Overdue(ctx context.Context) (*domain.OverdueRequests, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := TimeNow()
	records := make([]*domain.ApprovalRequest, 0)
	for _, r := range s.requests {
		if r.IsOverdue(now) {
			records = append(records, r)
		}
	}
	records, _ = filter.Apply(records, domain.ListApprovalRequestsFilter{Limit: len(records) + 1})

	result := &domain.OverdueRequests{Requests: []*domain.OverdueRequest{}}
	for _, r := range records {
		item := &domain.OverdueRequest{
			ID:              r.ID,
			Title:           r.Title,
			ReferenceNumber: r.ReferenceNumber,
			DueDate:         *r.DueDate,
			DaysOverdue:     r.DaysOverdue(now),
		}
		if approver, ok := s.users[r.ApproverID]; ok {
			item.Approver = approver.Name
		}
		result.Requests = append(result.Requests, item)
	}
	result.Count = len(result.Requests)
	return result, nil
}

// viewLocked returns a copy of r with the requester, approver and comment authors attached.
func (s *Store) viewLocked(r *domain.ApprovalRequest) *domain.ApprovalRequest {
	v := r.Clone()
	v.Requester = s.users[r.RequesterID].Clone()
	v.Approver = s.users[r.ApproverID].Clone()
	for _, c := range v.Comments {
		c.User = s.users[c.UserID].Clone()
	}
	return v
}

func requestNotFound(id int) error {
	return domain.NewRejectedError(domain.RejectionKindNotFound, fmt.Sprintf("approval request %d not found", id))
}
