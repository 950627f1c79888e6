package domain

import "time"

const (
	ActivityCategoryInfo      = "info"
	ActivityCategoryPending   = ApprovalStatusPending
	ActivityCategoryApproved  = ApprovalStatusApproved
	ActivityCategoryRejected  = ApprovalStatusRejected
	ActivityCategoryEscalated = ApprovalStatusEscalated
	ActivityCategoryCancelled = ApprovalStatusCancelled
)

// ActivityEvent is a user-facing line of feedback. It carries no state beyond what it displays.
type ActivityEvent struct {
	Message   string    `json:"message" yaml:"message"`
	Category  string    `json:"category" yaml:"category"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// ActivityCategoryForStatus maps an approval status to its activity category, falling back to info.
func ActivityCategoryForStatus(status string) string {
	if IsValidStatus(status) {
		return status
	}
	return ActivityCategoryInfo
}
