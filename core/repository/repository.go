package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goto/approvalflow/core/filter"
	"github.com/goto/approvalflow/core/state"
	"github.com/goto/approvalflow/core/transition"
	"github.com/goto/approvalflow/domain"
	"github.com/goto/approvalflow/pkg/log"
	"github.com/goto/approvalflow/pkg/metrics"
	defaults "github.com/mcuadros/go-defaults"
)

var ErrInvalidActor = errors.New("acting user id is required")

type store interface {
	Health(ctx context.Context) (*domain.SystemHealth, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetUser(ctx context.Context, id int) (*domain.User, error)
	CreateUser(ctx context.Context, data domain.CreateUser) (*domain.User, error)
	ListRequests(ctx context.Context, f domain.ListApprovalRequestsFilter) (*domain.ApprovalRequestList, error)
	GetRequest(ctx context.Context, id int) (*domain.ApprovalRequest, error)
	CreateRequest(ctx context.Context, data domain.CreateApprovalRequest, requesterID int) (*domain.ApprovalRequest, error)
	UpdateRequest(ctx context.Context, id int, update domain.UpdateApprovalRequest, userID int) (*domain.ApprovalRequest, error)
	AddComment(ctx context.Context, id int, content string, userID int, internal bool) (*domain.CommentResult, error)
	Stats(ctx context.Context, days int) (*domain.ApprovalStats, error)
	Overdue(ctx context.Context) (*domain.OverdueRequests, error)
}

//go:generate mockery --name=remoteStore --exported --with-expecter
type remoteStore interface {
	store
}

type fallbackStore interface {
	store
	ObserveRequests(rs ...*domain.ApprovalRequest)
	ObserveUsers(users ...*domain.User)
	ObserveComment(id int)
}

type activityRecorder interface {
	Record(message, category string) domain.ActivityEvent
}

// Repository serves every operation from the approval service and falls back to the local store when
// the service cannot be reached. While degraded it stays on the local store until Probe succeeds.
type Repository struct {
	remote    remoteStore
	fallback  fallbackStore
	state     *state.State
	activity  activityRecorder
	logger    log.Logger
	metrics   *metrics.Metrics
	validator *validator.Validate
}

type Deps struct {
	Remote    remoteStore
	Fallback  fallbackStore
	State     *state.State
	Activity  activityRecorder
	Logger    log.Logger
	Metrics   *metrics.Metrics
	Validator *validator.Validate
}

func New(deps Deps) *Repository {
	v := deps.Validator
	if v == nil {
		v = domain.NewValidator()
	}
	return &Repository{
		remote:    deps.Remote,
		fallback:  deps.Fallback,
		state:     deps.State,
		activity:  deps.Activity,
		logger:    deps.Logger,
		metrics:   deps.Metrics,
		validator: v,
	}
}

func (r *Repository) Mode() domain.OperatingMode {
	return r.state.Mode()
}

func (r *Repository) ListRequests(ctx context.Context, f domain.ListApprovalRequestsFilter) (*domain.ApprovalRequestList, error) {
	f = filter.Normalize(f)
	if err := r.validator.Struct(f); err != nil {
		return nil, domain.ValidationError(err)
	}
	list, err := call(ctx, r, "list_requests",
		func(s store) (*domain.ApprovalRequestList, error) { return s.ListRequests(ctx, f) },
		func(list *domain.ApprovalRequestList) { r.fallback.ObserveRequests(list.Requests...) },
	)
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repository) GetRequest(ctx context.Context, id int) (*domain.ApprovalRequest, error) {
	return call(ctx, r, "get_request",
		func(s store) (*domain.ApprovalRequest, error) { return s.GetRequest(ctx, id) },
		func(ar *domain.ApprovalRequest) { r.fallback.ObserveRequests(ar) },
	)
}

func (r *Repository) CreateRequest(ctx context.Context, data domain.CreateApprovalRequest, requesterID int) (*domain.ApprovalRequest, error) {
	if requesterID <= 0 {
		return nil, domain.ValidationError(ErrInvalidActor)
	}
	defaults.SetDefaults(&data)
	data.Title = strings.TrimSpace(data.Title)
	if err := r.validator.Struct(data); err != nil {
		return nil, domain.ValidationError(err)
	}

	return call(ctx, r, "create_request",
		func(s store) (*domain.ApprovalRequest, error) { return s.CreateRequest(ctx, data, requesterID) },
		func(ar *domain.ApprovalRequest) { r.fallback.ObserveRequests(ar) },
	)
}

// UpdateStatus changes the status of a request. Illegal transitions are rejected before the update is
// sent, and asking for the current status returns the request unchanged.
func (r *Repository) UpdateStatus(ctx context.Context, id int, update domain.UpdateApprovalRequest, actingUserID int) (*domain.ApprovalRequest, error) {
	if actingUserID <= 0 {
		return nil, domain.ValidationError(ErrInvalidActor)
	}
	if err := r.validator.Struct(update); err != nil {
		return nil, domain.ValidationError(err)
	}

	current, err := r.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := transition.Validate(current.Status, update.Status); err != nil {
		return nil, err
	}
	if current.Status == update.Status {
		return current, nil
	}

	return call(ctx, r, "update_request",
		func(s store) (*domain.ApprovalRequest, error) { return s.UpdateRequest(ctx, id, update, actingUserID) },
		func(ar *domain.ApprovalRequest) { r.fallback.ObserveRequests(ar) },
	)
}

func (r *Repository) AddComment(ctx context.Context, id int, content string, authorID int, internal bool) (*domain.CommentResult, error) {
	if authorID <= 0 {
		return nil, domain.ValidationError(ErrInvalidActor)
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.NewRejectedError(domain.RejectionKindValidationFailed, "comment can't be empty")
	}

	return call(ctx, r, "add_comment",
		func(s store) (*domain.CommentResult, error) {
			return s.AddComment(ctx, id, content, authorID, internal)
		},
		func(res *domain.CommentResult) { r.fallback.ObserveComment(res.CommentID) },
	)
}

func (r *Repository) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return call(ctx, r, "list_users",
		func(s store) ([]*domain.User, error) { return s.ListUsers(ctx) },
		func(users []*domain.User) { r.fallback.ObserveUsers(users...) },
	)
}

func (r *Repository) GetUser(ctx context.Context, id int) (*domain.User, error) {
	return call(ctx, r, "get_user",
		func(s store) (*domain.User, error) { return s.GetUser(ctx, id) },
		func(u *domain.User) { r.fallback.ObserveUsers(u) },
	)
}

func (r *Repository) CreateUser(ctx context.Context, data domain.CreateUser) (*domain.User, error) {
	data.Email = strings.TrimSpace(data.Email)
	if err := r.validator.Struct(data); err != nil {
		return nil, domain.ValidationError(err)
	}
	return call(ctx, r, "create_user",
		func(s store) (*domain.User, error) { return s.CreateUser(ctx, data) },
		func(u *domain.User) { r.fallback.ObserveUsers(u) },
	)
}

func (r *Repository) Stats(ctx context.Context, days int) (*domain.ApprovalStats, error) {
	if days <= 0 {
		return nil, domain.NewRejectedError(domain.RejectionKindValidationFailed, "days must be positive")
	}
	return call(ctx, r, "stats",
		func(s store) (*domain.ApprovalStats, error) { return s.Stats(ctx, days) },
		nil,
	)
}

func (r *Repository) Overdue(ctx context.Context) (*domain.OverdueRequests, error) {
	return call(ctx, r, "overdue",
		func(s store) (*domain.OverdueRequests, error) { return s.Overdue(ctx) },
		nil,
	)
}

// Health reports the health of whichever store is currently serving.
func (r *Repository) Health(ctx context.Context) (*domain.SystemHealth, error) {
	return call(ctx, r, "health",
		func(s store) (*domain.SystemHealth, error) { return s.Health(ctx) },
		nil,
	)
}

// Probe checks the approval service regardless of the mode. A healthy answer switches back to live, a
// transport failure switches to degraded.
func (r *Repository) Probe(ctx context.Context) (*domain.SystemHealth, bool) {
	start := time.Now()
	health, err := r.remote.Health(ctx)
	transport := err != nil && !domain.IsRejected(err)
	r.metrics.RemoteCall("health", time.Since(start), transport)

	if err != nil {
		if ctx.Err() != nil {
			return nil, false
		}
		if transport {
			r.degrade(ctx, "health", err)
		} else {
			r.logger.Warn(ctx, "health check rejected by approval service", "error", err)
		}
		return nil, false
	}

	if r.state.SetMode(domain.OperatingModeLive) {
		r.logger.Info(ctx, "approval service reachable again, switching to live mode")
		r.activity.Record("Connection to approval service restored", domain.ActivityCategoryApproved)
		r.metrics.ModeChanged(string(domain.OperatingModeLive))
	}
	return health, true
}

func (r *Repository) degrade(ctx context.Context, op string, cause error) {
	if !r.state.SetMode(domain.OperatingModeDegraded) {
		return
	}
	r.logger.Warn(ctx, "approval service unreachable, switching to local data", "operation", op, "error", cause)
	r.activity.Record("Approval service unreachable, using local data", domain.ActivityCategoryRejected)
	r.metrics.ModeChanged(string(domain.OperatingModeDegraded))
}

// call runs op against the remote store, or against the fallback store when degraded or when the
// remote call fails at the transport level. Business rejections are returned as they are. observe is
// fed every successful remote result.
func call[T any](ctx context.Context, r *Repository, op string, fn func(store) (T, error), observe func(T)) (T, error) {
	if !r.state.IsDegraded() {
		start := time.Now()
		result, err := fn(r.remote)
		if err == nil {
			r.metrics.RemoteCall(op, time.Since(start), false)
			if observe != nil {
				observe(result)
			}
			return result, nil
		}
		if domain.IsRejected(err) {
			r.metrics.RemoteCall(op, time.Since(start), false)
			return result, err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			var zero T
			return zero, fmt.Errorf("%s: %w", op, ctxErr)
		}
		r.metrics.RemoteCall(op, time.Since(start), true)
		r.degrade(ctx, op, err)
	}

	return fn(r.fallback)
}
