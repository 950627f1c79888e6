package orchestrator

import (
	"context"

	"github.com/goto/approvalflow/core/filter"
	"github.com/goto/approvalflow/domain"
	"golang.org/x/sync/errgroup"
)

// LoadRequests fetches the first page for the current criteria and replaces the view.
func (s *Service) LoadRequests(ctx context.Context) error {
	return s.load(ctx, s.pager.Filter())
}

// LoadMore appends the next page to the view. It does nothing when every match is already loaded.
func (s *Service) LoadMore(ctx context.Context) error {
	s.pageMu.Lock()
	defer s.pageMu.Unlock()
	if !s.pager.HasMore() {
		return nil
	}
	return s.load(ctx, s.pager.Next())
}

// SetFilters replaces the filter criteria and reloads from the first page. The page size is kept
// unless f sets one.
func (s *Service) SetFilters(ctx context.Context, f domain.ListApprovalRequestsFilter) error {
	return s.load(ctx, s.pager.Reset(f))
}

func (s *Service) ClearFilters(ctx context.Context) error {
	return s.load(ctx, s.pager.Reset(domain.ListApprovalRequestsFilter{}))
}

// Search schedules a fetch for term once input has been quiet for the debounce interval. A new call
// cancels the pending one, so only the last term is fetched.
func (s *Service) Search(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.searchTimer != nil {
		s.searchTimer.Stop()
	}
	s.searchSeq++
	seq := s.searchSeq
	s.searchTimer = s.afterFunc(s.config.SearchDebounce, func() {
		s.mu.Lock()
		if s.closed || seq != s.searchSeq {
			s.mu.Unlock()
			return
		}
		s.searchTimer = nil
		s.wg.Add(1)
		s.mu.Unlock()
		defer s.wg.Done()

		f := s.pager.Filter()
		f.Search = term
		if err := s.load(s.ctx, s.pager.Reset(f)); err != nil && s.ctx.Err() == nil {
			s.logger.Warn(s.ctx, "search failed", "search", term, "error", err)
		}
	})
}

// Refresh reloads the view and the pending count concurrently. Pages loaded so far stay loaded, and a
// page still being loaded by LoadMore is waited for and reloaded with the rest.
func (s *Service) Refresh(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.pageMu.Lock()
		defer s.pageMu.Unlock()
		return s.reload(gctx)
	})
	g.Go(func() error {
		return s.updatePendingCount(gctx)
	})
	return g.Wait()
}

// reload fetches every loaded row again, in windows of at most filter.MaxLimit, and swaps the view
// in one step once all windows have arrived.
func (s *Service) reload(ctx context.Context) error {
	seq := s.loadSeq.Add(1)
	f := s.pager.Filter()
	loaded := len(s.pager.Requests())
	if loaded < f.Limit {
		loaded = f.Limit
	}

	merged := &domain.ApprovalRequestList{}
	for skip := 0; skip < loaded; {
		window := f
		window.Skip = skip
		window.Limit = min(filter.MaxLimit, loaded-skip)
		list, err := s.repo.ListRequests(ctx, window)
		if err != nil {
			return err
		}
		if s.loadSeq.Load() != seq {
			s.logger.Debug(ctx, "discarding outdated refresh", "skip", skip)
			return nil
		}
		merged.Requests = append(merged.Requests, list.Requests...)
		merged.Total = list.Total
		skip += window.Limit
		if len(list.Requests) < window.Limit {
			break
		}
	}

	f.Skip = 0
	if !s.pager.Accept(f, merged) {
		s.logger.Debug(ctx, "refreshed list does not match the current view")
	}
	return nil
}

// Poll is the periodic job: a health probe, which is also the only way back to live mode, and a
// pending count update.
func (s *Service) Poll(ctx context.Context) error {
	s.probe(ctx)
	return s.updatePendingCount(ctx)
}

func (s *Service) probe(ctx context.Context) {
	health, ok := s.repo.Probe(ctx)
	if ctx.Err() != nil {
		return
	}
	if !ok {
		s.activity.Record("System health check failed", domain.ActivityCategoryRejected)
		s.metrics.PollRun("unhealthy")
		return
	}

	s.mu.Lock()
	s.lastHealth = health
	s.mu.Unlock()
	s.activity.Record("System health check succeeded", domain.ActivityCategoryApproved)
	s.metrics.PollRun("healthy")
}

func (s *Service) updatePendingCount(ctx context.Context) error {
	list, err := s.repo.ListRequests(ctx, domain.ListApprovalRequestsFilter{
		Status: domain.ApprovalStatusPending,
		Limit:  1,
	})
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.pendingCount = list.Total
	s.mu.Unlock()
	return nil
}

// load fetches one window. Loads are numbered and a result is dropped when a newer load has started
// since, so a slow response never overwrites fresher data.
func (s *Service) load(ctx context.Context, f domain.ListApprovalRequestsFilter) error {
	seq := s.loadSeq.Add(1)
	list, err := s.repo.ListRequests(ctx, f)
	if err != nil {
		return err
	}
	if s.loadSeq.Load() != seq {
		s.logger.Debug(ctx, "discarding outdated list response", "skip", f.Skip, "search", f.Search)
		return nil
	}
	if !s.pager.Accept(f, list) {
		s.logger.Debug(ctx, "list response does not match the current view", "skip", f.Skip)
	}
	return nil
}
