package filter_test

import (
	"testing"

	"github.com/goto/approvalflow/core/filter"
	"github.com/goto/approvalflow/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fetch(records []*domain.ApprovalRequest, f domain.ListApprovalRequestsFilter) *domain.ApprovalRequestList {
	return filter.List(records, f)
}

func TestPager(t *testing.T) {
	records := fixtures()

	t.Run("should append next windows and report remaining", func(t *testing.T) {
		p := filter.NewPager(domain.ListApprovalRequestsFilter{})

		f := p.Filter()
		require.True(t, p.Accept(f, fetch(records, f)))
		assert.Len(t, p.Requests(), 12)
		assert.True(t, p.HasMore())

		for p.HasMore() {
			next := p.Next()
			require.True(t, p.Accept(next, fetch(records, next)))
		}
		assert.Len(t, p.Requests(), 40)
		assert.Equal(t, 40, p.Total())

		direct := fetch(records, domain.ListApprovalRequestsFilter{Limit: 40})
		assert.Equal(t, direct.Requests, p.Requests())
	})

	t.Run("should reset skip and replace results when criteria change", func(t *testing.T) {
		p := filter.NewPager(domain.ListApprovalRequestsFilter{})
		f := p.Filter()
		p.Accept(f, fetch(records, f))
		next := p.Next()
		p.Accept(next, fetch(records, next))
		require.Len(t, p.Requests(), 24)

		f = p.Reset(domain.ListApprovalRequestsFilter{Status: domain.ApprovalStatusPending, Skip: 30})
		assert.Equal(t, 0, f.Skip)
		assert.Equal(t, filter.DefaultLimit, f.Limit)

		require.True(t, p.Accept(f, fetch(records, f)))
		assert.Equal(t, 8, p.Total())
		for _, r := range p.Requests() {
			assert.Equal(t, domain.ApprovalStatusPending, r.Status)
		}
	})

	t.Run("should ignore results of outdated criteria", func(t *testing.T) {
		p := filter.NewPager(domain.ListApprovalRequestsFilter{})
		old := p.Filter()
		p.Reset(domain.ListApprovalRequestsFilter{Search: "laptop"})

		assert.False(t, p.Accept(old, fetch(records, old)))
		assert.Empty(t, p.Requests())
	})

	t.Run("should ignore a window that no longer follows the accumulated results", func(t *testing.T) {
		p := filter.NewPager(domain.ListApprovalRequestsFilter{})
		f := p.Filter()
		p.Accept(f, fetch(records, f))
		next := p.Next()
		require.True(t, p.Accept(next, fetch(records, next)))

		assert.False(t, p.Accept(next, fetch(records, next)))
		assert.Len(t, p.Requests(), 24)
	})

	t.Run("should replace a single record", func(t *testing.T) {
		p := filter.NewPager(domain.ListApprovalRequestsFilter{})
		f := p.Filter()
		p.Accept(f, fetch(records, f))

		updated := p.Requests()[0].Clone()
		updated.Status = domain.ApprovalStatusApproved
		assert.True(t, p.Replace(updated))
		assert.Equal(t, domain.ApprovalStatusApproved, p.Requests()[0].Status)
		assert.False(t, p.Replace(&domain.ApprovalRequest{ID: 999}))
	})
}
