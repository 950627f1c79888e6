package orchestrator

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goto/approvalflow/core/activity"
	"github.com/goto/approvalflow/core/connection"
	"github.com/goto/approvalflow/core/filter"
	"github.com/goto/approvalflow/core/notification"
	"github.com/goto/approvalflow/core/state"
	"github.com/goto/approvalflow/domain"
	"github.com/goto/approvalflow/pkg/log"
	"github.com/goto/approvalflow/pkg/metrics"
	"github.com/goto/approvalflow/pkg/slices"
	"github.com/patrickmn/go-cache"
	"github.com/robfig/cron/v3"
)

var (
	ErrUpdateInProgress     = errors.New("a status update for this request is already in progress")
	ErrConfirmationDeclined = errors.New("status change was not confirmed")
	ErrClosed               = errors.New("orchestrator is closed")
)

type Config struct {
	PollInterval   time.Duration `mapstructure:"poll_interval" yaml:"poll_interval" default:"30s"`
	SearchDebounce time.Duration `mapstructure:"search_debounce" yaml:"search_debounce" default:"500ms"`
	PageSize       int           `mapstructure:"page_size" yaml:"page_size" default:"12" validate:"gt=0,lte=100"`
}

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	ListRequests(ctx context.Context, f domain.ListApprovalRequestsFilter) (*domain.ApprovalRequestList, error)
	CreateRequest(ctx context.Context, data domain.CreateApprovalRequest, requesterID int) (*domain.ApprovalRequest, error)
	UpdateStatus(ctx context.Context, id int, update domain.UpdateApprovalRequest, actingUserID int) (*domain.ApprovalRequest, error)
	AddComment(ctx context.Context, id int, content string, authorID int, internal bool) (*domain.CommentResult, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	CreateUser(ctx context.Context, data domain.CreateUser) (*domain.User, error)
	Probe(ctx context.Context) (*domain.SystemHealth, bool)
}

//go:generate mockery --name=connectionManager --exported --with-expecter
type connectionManager interface {
	Start() error
	Events() <-chan connection.Event
	Close() error
}

type dispatcher interface {
	Dispatch(ctx context.Context, msg domain.InboundMessage) notification.Result
}

type auditLogger interface {
	Log(ctx context.Context, action string, data interface{}) error
}

// ConfirmFunc is asked before a request is approved or rejected. Returning false aborts the change.
type ConfirmFunc func(ctx context.Context, id int, status string) (bool, error)

// AutoConfirm accepts every status change.
func AutoConfirm(context.Context, int, string) (bool, error) {
	return true, nil
}

// Service keeps the local view of approval requests in step with the approval service. It owns the
// shared state, the activity log, the pager and every timer of the sync layer.
type Service struct {
	config     Config
	userID     int
	repo       repository
	conn       connectionManager
	dispatcher dispatcher
	state      *state.State
	activity   *activity.Log
	pager      *filter.Pager
	locks      *cache.Cache
	confirm    ConfirmFunc
	audit      auditLogger
	logger     log.Logger
	metrics    *metrics.Metrics
	cron       *cron.Cron
	afterFunc  connection.AfterFunc

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	loadSeq atomic.Uint64
	// pageMu orders LoadMore and Refresh so neither drops the rows of the other.
	pageMu sync.Mutex

	mu           sync.Mutex
	searchTimer  connection.Timer
	searchSeq    uint64
	pendingCount int
	lastHealth   *domain.SystemHealth
	started      bool
	closed       bool
}

type Deps struct {
	UserID     int
	Repository repository
	Connection connectionManager
	Dispatcher dispatcher
	State      *state.State
	Activity   *activity.Log
	Confirm    ConfirmFunc
	Audit      auditLogger
	Logger     log.Logger
	Metrics    *metrics.Metrics
	AfterFunc  connection.AfterFunc
}

func New(config Config, deps Deps) *Service {
	if config.PollInterval <= 0 {
		config.PollInterval = 30 * time.Second
	}
	if config.SearchDebounce <= 0 {
		config.SearchDebounce = 500 * time.Millisecond
	}
	if config.PageSize <= 0 {
		config.PageSize = filter.DefaultLimit
	}

	s := &Service{
		config:     config,
		userID:     deps.UserID,
		repo:       deps.Repository,
		conn:       deps.Connection,
		dispatcher: deps.Dispatcher,
		state:      deps.State,
		activity:   deps.Activity,
		pager:      filter.NewPager(domain.ListApprovalRequestsFilter{Limit: config.PageSize}),
		locks:      cache.New(cache.NoExpiration, 0),
		confirm:    deps.Confirm,
		audit:      deps.Audit,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
		cron:       cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		afterFunc:  deps.AfterFunc,
	}
	if s.state == nil {
		s.state = state.New()
	}
	if s.activity == nil {
		s.activity = activity.NewLog(activity.DefaultCapacity)
	}
	if s.confirm == nil {
		s.confirm = AutoConfirm
	}
	if s.logger == nil {
		s.logger = log.NewNoop()
	}
	if s.dispatcher == nil {
		s.dispatcher = notification.NewDispatcher(s.activity, s.logger)
	}
	if s.afterFunc == nil {
		s.afterFunc = func(d time.Duration, f func()) connection.Timer {
			return time.AfterFunc(d, f)
		}
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())
	return s
}

// Start probes the approval service, loads the first page, opens the real-time connection and
// schedules the periodic poll.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.started {
		s.mu.Unlock()
		return nil
	}
	s.started = true
	s.mu.Unlock()

	s.activity.Record("System started", domain.ActivityCategoryInfo)
	s.logger.Info(ctx, "starting sync", "user_id", s.userID, "poll_interval", s.config.PollInterval.String())

	s.probe(ctx)
	if err := s.Refresh(ctx); err != nil {
		return err
	}

	if s.conn != nil {
		if err := s.conn.Start(); err != nil {
			return err
		}
		s.wg.Add(1)
		go s.consume(s.conn.Events())
	}

	s.cron.Schedule(cron.Every(s.config.PollInterval), cron.FuncJob(func() {
		if err := s.Poll(s.ctx); err != nil && s.ctx.Err() == nil {
			s.logger.Warn(s.ctx, "poll failed", "error", err)
		}
	}))
	s.cron.Start()
	return nil
}

// Close stops every timer and the real-time connection and waits for running work to finish. It is
// safe to call more than once.
func (s *Service) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	if s.searchTimer != nil {
		s.searchTimer.Stop()
		s.searchTimer = nil
	}
	s.mu.Unlock()

	s.cancel()
	<-s.cron.Stop().Done()

	var err error
	if s.conn != nil {
		err = s.conn.Close()
	}
	s.wg.Wait()
	s.logger.Info(context.Background(), "sync stopped")
	return err
}

func (s *Service) consume(events <-chan connection.Event) {
	defer s.wg.Done()
	for e := range events {
		switch e.Kind {
		case connection.EventMessage:
			result := s.dispatcher.Dispatch(s.ctx, e.Message)
			if result.Refresh && s.ctx.Err() == nil {
				if err := s.Refresh(s.ctx); err != nil {
					s.logger.Warn(s.ctx, "refresh after notification failed", "error", err)
				}
			}
		case connection.EventErrored, connection.EventClosed:
			s.logger.Debug(s.ctx, "real-time connection event", "kind", string(e.Kind), "error", e.Err)
		default:
			s.logger.Debug(s.ctx, "real-time connection event", "kind", string(e.Kind))
		}
	}
}

// Snapshot is everything a presentation layer needs to draw the current view.
type Snapshot struct {
	Requests         []*domain.ApprovalRequest         `json:"requests" yaml:"requests"`
	Total            int                               `json:"total" yaml:"total"`
	HasMore          bool                              `json:"has_more" yaml:"has_more"`
	Filter           domain.ListApprovalRequestsFilter `json:"filter" yaml:"filter"`
	ConnectionStatus string                            `json:"connection_status" yaml:"connection_status"`
	Connected        bool                              `json:"connected" yaml:"connected"`
	Mode             domain.OperatingMode              `json:"mode" yaml:"mode"`
	Activity         []domain.ActivityEvent            `json:"activity" yaml:"activity"`
	UpdatingIDs      []int                             `json:"updating_ids" yaml:"updating_ids"`
	PendingCount     int                               `json:"pending_count" yaml:"pending_count"`
	Health           *domain.SystemHealth              `json:"health,omitempty" yaml:"health,omitempty"`
}

func (s *Service) Snapshot() *Snapshot {
	connState, connErr := s.state.Connection()

	updating := make(map[int]struct{})
	for key := range s.locks.Items() {
		if id, err := strconv.Atoi(key); err == nil {
			updating[id] = struct{}{}
		}
	}

	s.mu.Lock()
	pending := s.pendingCount
	health := s.lastHealth
	s.mu.Unlock()

	return &Snapshot{
		Requests:         s.pager.Requests(),
		Total:            s.pager.Total(),
		HasMore:          s.pager.HasMore(),
		Filter:           s.pager.Filter(),
		ConnectionStatus: ConnectionStatusText(connState, connErr),
		Connected:        connState == domain.ConnectionStateConnected,
		Mode:             s.state.Mode(),
		Activity:         s.activity.List(),
		UpdatingIDs:      slices.SortedKeys(updating),
		PendingCount:     pending,
		Health:           health,
	}
}

// IsUpdating reports whether a status update for id is in flight.
func (s *Service) IsUpdating(id int) bool {
	_, found := s.locks.Get(strconv.Itoa(id))
	return found
}

func ConnectionStatusText(c domain.ConnectionState, err error) string {
	switch c {
	case domain.ConnectionStateConnected:
		return "Real-time connection established"
	case domain.ConnectionStateConnecting:
		return "Connecting to real-time service"
	case domain.ConnectionStateReconnecting:
		return "Real-time connection lost, reconnecting"
	default:
		if err != nil {
			return "Real-time connection error"
		}
		return "Real-time connection not established"
	}
}
