package transition

import (
	"fmt"
	"strings"
	"time"

	"github.com/goto/approvalflow/domain"
)

var allowed = map[string][]string{
	domain.ApprovalStatusPending: {
		domain.ApprovalStatusApproved,
		domain.ApprovalStatusRejected,
		domain.ApprovalStatusEscalated,
	},
	domain.ApprovalStatusEscalated: {
		domain.ApprovalStatusApproved,
		domain.ApprovalStatusRejected,
	},
}

// Validate reports whether a request in status current may move to requested. Moving to the
// current status is accepted as a no-op.
func Validate(current, requested string) error {
	if !domain.IsValidStatus(requested) {
		return reject(fmt.Errorf("%w: %q", ErrInvalidStatus, requested))
	}
	if !domain.IsValidStatus(current) {
		return reject(fmt.Errorf("%w: %q", ErrInvalidStatus, current))
	}
	if current == requested {
		return nil
	}
	if domain.IsTerminalStatus(current) {
		return reject(fmt.Errorf("%w: %q", ErrTerminalStatus, current))
	}
	for _, next := range allowed[current] {
		if next == requested {
			return nil
		}
	}
	return reject(fmt.Errorf("%w: %q to %q", ErrTransitionInvalid, current, requested))
}

// Apply returns a copy of r with the update applied. r is never modified, so the status change and
// the optional comment land together or not at all. commentID is used only when a comment is added.
func Apply(r *domain.ApprovalRequest, update domain.UpdateApprovalRequest, actorID, commentID int, now time.Time) (*domain.ApprovalRequest, error) {
	if r == nil {
		return nil, ErrNilRequest
	}
	if err := Validate(r.Status, update.Status); err != nil {
		return nil, err
	}

	next := r.Clone()
	if r.Status == update.Status {
		return next, nil
	}

	next.Status = update.Status
	next.UpdatedAt = domain.TimestampPtr(now)
	switch update.Status {
	case domain.ApprovalStatusApproved, domain.ApprovalStatusRejected:
		next.ApprovedAt = domain.TimestampPtr(now)
	case domain.ApprovalStatusEscalated:
		if update.ApproverID != 0 {
			next.ApproverID = update.ApproverID
			next.Approver = nil
		}
	}
	if content := strings.TrimSpace(update.Comment); content != "" {
		next.Comments = append(next.Comments, &domain.Comment{
			ID:        commentID,
			Content:   content,
			UserID:    actorID,
			CreatedAt: domain.NewTimestamp(now),
		})
	}

	return next, nil
}

func reject(err error) error {
	return &domain.RejectedError{
		Kind:   domain.RejectionKindInvalidTransition,
		Reason: err.Error(),
		Err:    err,
	}
}
