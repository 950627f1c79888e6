package filter

import (
	"sort"

	"github.com/goto/approvalflow/domain"
	defaults "github.com/mcuadros/go-defaults"
)

const (
	DefaultLimit = 12
	// MaxLimit is the largest window the approval service serves in one call.
	MaxLimit = 100
)

// Normalize fills in the default limit and clamps out of range values.
func Normalize(f domain.ListApprovalRequestsFilter) domain.ListApprovalRequestsFilter {
	if f.Limit < 0 {
		f.Limit = 0
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	defaults.SetDefaults(&f)
	if f.Skip < 0 {
		f.Skip = 0
	}
	return f
}

// Match reports whether r satisfies every non-empty field of f. Skip and limit are ignored.
func Match(r *domain.ApprovalRequest, f domain.ListApprovalRequestsFilter) bool {
	if r == nil {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if f.Priority != "" && r.Priority != f.Priority {
		return false
	}
	if f.Category != "" && r.Category != f.Category {
		return false
	}
	if f.RequesterID > 0 && r.RequesterID != f.RequesterID {
		return false
	}
	if f.ApproverID > 0 && r.ApproverID != f.ApproverID {
		return false
	}
	return r.MatchesSearch(f.Search)
}

// Apply filters records, orders them newest first and cuts the skip/limit window. The returned total
// is the number of matching records before windowing.
func Apply(records []*domain.ApprovalRequest, f domain.ListApprovalRequestsFilter) ([]*domain.ApprovalRequest, int) {
	f = Normalize(f)

	matched := make([]*domain.ApprovalRequest, 0, len(records))
	for _, r := range records {
		if Match(r, f) {
			matched = append(matched, r)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.CreatedAt.Equal(b.CreatedAt.Time) {
			return a.CreatedAt.After(b.CreatedAt.Time)
		}
		return a.ID > b.ID
	})

	total := len(matched)
	if f.Skip >= total {
		return []*domain.ApprovalRequest{}, total
	}
	end := f.Skip + f.Limit
	if end > total {
		end = total
	}
	return matched[f.Skip:end], total
}

// List wraps Apply into the list shape returned by the approval service.
func List(records []*domain.ApprovalRequest, f domain.ListApprovalRequestsFilter) *domain.ApprovalRequestList {
	f = Normalize(f)
	window, total := Apply(records, f)
	return &domain.ApprovalRequestList{
		Requests: window,
		Total:    total,
		Page:     f.Skip/f.Limit + 1,
		PerPage:  f.Limit,
	}
}

// SameCriteria reports whether two filters select the same records, whatever their windows.
func SameCriteria(a, b domain.ListApprovalRequestsFilter) bool {
	a.Skip, b.Skip = 0, 0
	a.Limit, b.Limit = 0, 0
	return a == b
}
