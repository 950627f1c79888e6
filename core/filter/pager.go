package filter

import (
	"sync"

	"github.com/goto/approvalflow/domain"
)

// Pager accumulates list windows for "load more" browsing. Changing the filter criteria starts over
// from the first window.
type Pager struct {
	mu       sync.RWMutex
	filter   domain.ListApprovalRequestsFilter
	requests []*domain.ApprovalRequest
	total    int
}

func NewPager(f domain.ListApprovalRequestsFilter) *Pager {
	f = Normalize(f)
	f.Skip = 0
	return &Pager{filter: f}
}

// Filter returns the filter of the next fetch.
func (p *Pager) Filter() domain.ListApprovalRequestsFilter {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.filter
}

// Reset replaces the criteria and rewinds to the first window. The accumulated results are kept until
// the first window arrives through Accept.
func (p *Pager) Reset(f domain.ListApprovalRequestsFilter) domain.ListApprovalRequestsFilter {
	p.mu.Lock()
	defer p.mu.Unlock()
	if f.Limit <= 0 {
		f.Limit = p.filter.Limit
	}
	f = Normalize(f)
	f.Skip = 0
	p.filter = f
	return f
}

// Next returns the filter of the window following the accumulated results.
func (p *Pager) Next() domain.ListApprovalRequestsFilter {
	p.mu.RLock()
	defer p.mu.RUnlock()
	f := p.filter
	f.Skip = len(p.requests)
	return f
}

// Accept stores the result of a fetch made with f. A first window replaces the accumulated results,
// later windows are appended. Results for outdated criteria are ignored and reported as false.
func (p *Pager) Accept(f domain.ListApprovalRequestsFilter, list *domain.ApprovalRequestList) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if list == nil || !SameCriteria(f, p.filter) {
		return false
	}

	if f.Skip == 0 {
		p.requests = append([]*domain.ApprovalRequest{}, list.Requests...)
	} else {
		if f.Skip != len(p.requests) {
			return false
		}
		p.requests = append(p.requests, list.Requests...)
	}
	p.total = list.Total
	return true
}

// Replace swaps a single accumulated record for a newer version of it.
func (p *Pager) Replace(r *domain.ApprovalRequest) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, existing := range p.requests {
		if existing.ID == r.ID {
			p.requests[i] = r
			return true
		}
	}
	return false
}

func (p *Pager) Requests() []*domain.ApprovalRequest {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]*domain.ApprovalRequest, len(p.requests))
	copy(out, p.requests)
	return out
}

func (p *Pager) Total() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.total
}

func (p *Pager) HasMore() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.requests) < p.total
}
