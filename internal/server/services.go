package server

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/goto/approvalflow/core/activity"
	"github.com/goto/approvalflow/core/connection"
	"github.com/goto/approvalflow/core/notification"
	"github.com/goto/approvalflow/core/orchestrator"
	"github.com/goto/approvalflow/core/repository"
	"github.com/goto/approvalflow/core/state"
	"github.com/goto/approvalflow/domain"
	"github.com/goto/approvalflow/internal/store/memory"
	"github.com/goto/approvalflow/internal/store/postgres"
	"github.com/goto/approvalflow/pkg/approvalapi"
	"github.com/goto/approvalflow/pkg/audit"
	"github.com/goto/approvalflow/pkg/log"
	"github.com/goto/approvalflow/pkg/metrics"
	auditrepo "github.com/goto/salt/audit/repositories"
)

const (
	AppName = "approvalflow"

	// LogKeySession is the context key of the per-process session id added to every log line.
	LogKeySession = "session_id"
)

type ServiceDeps struct {
	Config    *Config
	Logger    log.Logger
	Validator *validator.Validate
	Metrics   *metrics.Metrics
	Confirm   orchestrator.ConfirmFunc
}

type Services struct {
	State        *state.State
	Activity     *activity.Log
	Store        *memory.Store
	Client       *approvalapi.Client
	Repository   *repository.Repository
	Connection   *connection.Manager
	Orchestrator *orchestrator.Service

	// DB and AuditLogs are nil unless a database is configured.
	DB        *postgres.Store
	AuditLogs *postgres.AuditLogRepository
}

func (s *Services) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

func InitServices(deps ServiceDeps) (*Services, error) {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = log.NewNoop()
	}
	v := deps.Validator
	if v == nil {
		v = domain.NewValidator()
	}

	seed := memory.DefaultSeed()
	if cfg.Fallback.SeedFile != "" {
		loaded, err := memory.LoadSeed(cfg.Fallback.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("loading fallback seed: %w", err)
		}
		seed = loaded
	}

	client, err := approvalapi.NewClient(&cfg.Remote, logger)
	if err != nil {
		return nil, fmt.Errorf("initializing approval api client: %w", err)
	}

	st := state.New()
	activityLog := activity.NewLog(activity.DefaultCapacity)
	store := memory.New(seed, logger)

	repo := repository.New(repository.Deps{
		Remote:    client,
		Fallback:  store,
		State:     st,
		Activity:  activityLog,
		Logger:    logger,
		Metrics:   deps.Metrics,
		Validator: v,
	})

	conn, err := connection.NewManager(cfg.Realtime, connection.Deps{
		State:    st,
		Activity: activityLog,
		Logger:   logger,
		Metrics:  deps.Metrics,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing connection manager: %w", err)
	}

	var (
		auditRepository audit.Repository = audit.NewLogRepository(logger)
		db              *postgres.Store
		auditLogs       *postgres.AuditLogRepository
	)
	if cfg.DB.Enabled() {
		db, err = postgres.NewClient(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("initializing database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("getting database connection: %w", err)
		}
		pgRepository := auditrepo.NewPostgresRepository(sqlDB)
		if err := pgRepository.Init(context.Background()); err != nil {
			return nil, fmt.Errorf("initializing audit log table: %w", err)
		}
		auditRepository = pgRepository
		auditLogs = postgres.NewAuditLogRepository(db)
	}
	auditService, err := audit.New(auditRepository, AppName)
	if err != nil {
		return nil, fmt.Errorf("initializing audit: %w", err)
	}

	svc := orchestrator.New(cfg.Sync, orchestrator.Deps{
		UserID:     cfg.UserID,
		Repository: repo,
		Connection: conn,
		Dispatcher: notification.NewDispatcher(activityLog, logger),
		State:      st,
		Activity:   activityLog,
		Confirm:    deps.Confirm,
		Audit:      auditService,
		Logger:     logger,
		Metrics:    deps.Metrics,
	})

	return &Services{
		State:        st,
		Activity:     activityLog,
		Store:        store,
		Client:       client,
		Repository:   repo,
		Connection:   conn,
		Orchestrator: svc,
		DB:           db,
		AuditLogs:    auditLogs,
	}, nil
}
