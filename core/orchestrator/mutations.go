package orchestrator

import (
	"context"
	"fmt"
	"strconv"

	"github.com/goto/approvalflow/core/transition"
	"github.com/goto/approvalflow/domain"
	"github.com/goto/approvalflow/pkg/audit"
	"github.com/goto/approvalflow/pkg/diff"
	"github.com/patrickmn/go-cache"
)

func (s *Service) CreateRequest(ctx context.Context, data domain.CreateApprovalRequest) (*domain.ApprovalRequest, error) {
	created, err := s.repo.CreateRequest(ctx, data, s.userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "approval request created", "id", created.ID, "reference_number", created.ReferenceNumber)
	s.activity.Record(fmt.Sprintf("Request created: %s", created.Title), domain.ActivityCategoryPending)
	s.recordAudit(ctx, audit.ActionRequestCreate, created)
	s.refreshAfterChange(ctx)
	return created, nil
}

func (s *Service) AddComment(ctx context.Context, id int, content string, internal bool) (*domain.CommentResult, error) {
	result, err := s.repo.AddComment(ctx, id, content, s.userID, internal)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "comment added", "request_id", id, "comment_id", result.CommentID)
	s.recordAudit(ctx, audit.ActionRequestComment, map[string]interface{}{
		"request_id":  id,
		"comment_id":  result.CommentID,
		"is_internal": internal,
	})
	s.refreshAfterChange(ctx)
	return result, nil
}

// UpdateStatus changes the status of request id. Only one update per request runs at a time; a second
// caller gets ErrUpdateInProgress. A request in view is checked against the transition rules before
// anything else, then approvals and rejections go through the confirmation gate.
func (s *Service) UpdateStatus(ctx context.Context, id int, update domain.UpdateApprovalRequest) (*domain.ApprovalRequest, error) {
	key := strconv.Itoa(id)
	if err := s.locks.Add(key, struct{}{}, cache.NoExpiration); err != nil {
		return nil, fmt.Errorf("%w: request %d", ErrUpdateInProgress, id)
	}
	defer s.locks.Delete(key)

	// a request in view is checked locally so an illegal change never reaches the network
	before := s.cached(id)
	if before != nil {
		if err := transition.Validate(before.Status, update.Status); err != nil {
			s.logger.Info(ctx, "status change rejected locally", "request_id", id, "from", before.Status, "to", update.Status)
			return nil, err
		}
	}

	if update.IsDestructive() {
		confirmed, err := s.confirm(ctx, id, update.Status)
		if err != nil {
			return nil, fmt.Errorf("confirming status change: %w", err)
		}
		if !confirmed {
			s.logger.Info(ctx, "status change declined", "request_id", id, "status", update.Status)
			return nil, ErrConfirmationDeclined
		}
	}

	updated, err := s.repo.UpdateStatus(ctx, id, update, s.userID)
	if err != nil {
		return nil, err
	}
	s.pager.Replace(updated)

	var changelog []*diff.PatchOp
	if before != nil {
		changelog, err = diff.GetChangelog(strconv.Itoa(s.userID), before, updated, "/updated_at")
		if err != nil {
			s.logger.Warn(ctx, "failed to compute changelog", "request_id", id, "error", err)
		}
	}
	s.logger.Info(ctx, "approval request status changed",
		"request_id", id,
		"status", updated.Status,
		"changelog", changelog,
	)
	s.activity.Record(fmt.Sprintf("Status changed to: %s", updated.Status), domain.ActivityCategoryForStatus(updated.Status))
	s.recordAudit(ctx, audit.ActionRequestStatusUpdate, map[string]interface{}{
		"request_id":       id,
		"reference_number": updated.ReferenceNumber,
		"status":           updated.Status,
		"changelog":        changelog,
	})
	s.refreshAfterChange(ctx)
	return updated, nil
}

func (s *Service) cached(id int) *domain.ApprovalRequest {
	for _, r := range s.pager.Requests() {
		if r.ID == id {
			return r.Clone()
		}
	}
	return nil
}

func (s *Service) refreshAfterChange(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn(ctx, "refresh after change failed", "error", err)
	}
}

func (s *Service) recordAudit(ctx context.Context, action string, data interface{}) {
	if s.audit == nil {
		return
	}
	ctx = audit.WithActor(ctx, strconv.Itoa(s.userID))
	if err := s.audit.Log(ctx, action, data); err != nil {
		s.logger.Error(ctx, "failed to record audit log", "action", action, "error", err)
	}
}
