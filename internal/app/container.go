// Package app wires configuration, storage, and handlers into a running
// registry. One container serves both the CLI and the worker binary.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	deedCommands "github.com/sbhunu/landadmin/internal/deeds/application/commands"
	deedQueries "github.com/sbhunu/landadmin/internal/deeds/application/queries"
	"github.com/sbhunu/landadmin/internal/deeds/domain/deed"
	"github.com/sbhunu/landadmin/internal/deeds/domain/title"
	deedPersistence "github.com/sbhunu/landadmin/internal/deeds/infrastructure/persistence"
	disputeCommands "github.com/sbhunu/landadmin/internal/disputes/application/commands"
	disputeQueries "github.com/sbhunu/landadmin/internal/disputes/application/queries"
	"github.com/sbhunu/landadmin/internal/disputes/domain/dispute"
	"github.com/sbhunu/landadmin/internal/disputes/domain/objection"
	disputePersistence "github.com/sbhunu/landadmin/internal/disputes/infrastructure/persistence"
	planningCommands "github.com/sbhunu/landadmin/internal/planning/application/commands"
	planningQueries "github.com/sbhunu/landadmin/internal/planning/application/queries"
	"github.com/sbhunu/landadmin/internal/planning/domain/scheme"
	planningPersistence "github.com/sbhunu/landadmin/internal/planning/infrastructure/persistence"
	registryCommands "github.com/sbhunu/landadmin/internal/registry/application/commands"
	registryQueries "github.com/sbhunu/landadmin/internal/registry/application/queries"
	"github.com/sbhunu/landadmin/internal/registry/domain/amendment"
	"github.com/sbhunu/landadmin/internal/registry/domain/transfer"
	registryPersistence "github.com/sbhunu/landadmin/internal/registry/infrastructure/persistence"
	sharedApplication "github.com/sbhunu/landadmin/internal/shared/application"
	sharedQueries "github.com/sbhunu/landadmin/internal/shared/application/queries"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/cache"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/database"
	_ "github.com/sbhunu/landadmin/internal/shared/infrastructure/database/postgres" // register postgres driver
	_ "github.com/sbhunu/landadmin/internal/shared/infrastructure/database/sqlite"   // register sqlite driver
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/eventbus"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/migrations"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/notify"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/outbox"
	sharedPersistence "github.com/sbhunu/landadmin/internal/shared/infrastructure/persistence"
	surveyCommands "github.com/sbhunu/landadmin/internal/survey/application/commands"
	surveyQueries "github.com/sbhunu/landadmin/internal/survey/application/queries"
	"github.com/sbhunu/landadmin/internal/survey/domain/plan"
	surveyPersistence "github.com/sbhunu/landadmin/internal/survey/infrastructure/persistence"
	"github.com/sbhunu/landadmin/pkg/config"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	Conn        database.Connection
	RedisClient *redis.Client
	Cache       cache.Cache

	// Repositories
	SchemeRepo    scheme.Repository
	PlanRepo      plan.Repository
	DeedRepo      deed.Repository
	TitleRepo     title.Repository
	AmendmentRepo amendment.Repository
	TransferRepo  transfer.Repository
	DisputeRepo   dispute.Repository
	ObjectionRepo objection.Repository
	OutboxRepo    outbox.Repository

	TransitionStore *sharedPersistence.TransitionStore
	Committer       *sharedPersistence.Committer
	UnitOfWork      sharedApplication.UnitOfWork

	EventPublisher eventbus.Publisher
	Dispatcher     *notify.Dispatcher

	// Planning
	DraftSchemeHandler           *planningCommands.DraftSchemeHandler
	SubmitSchemeHandler          *planningCommands.SubmitSchemeHandler
	StartSchemeReviewHandler     *planningCommands.StartReviewHandler
	CompleteChecklistItemHandler *planningCommands.CompleteChecklistItemHandler
	DecideSchemeHandler          *planningCommands.SubmitDecisionHandler
	OpenObjectionWindowHandler   *planningCommands.OpenObjectionWindowHandler
	WithdrawSchemeHandler        *planningCommands.WithdrawSchemeHandler
	GetSchemeHandler             *planningQueries.GetSchemeHandler

	// Survey
	DraftPlanHandler       *surveyCommands.DraftPlanHandler
	StartPlanReviewHandler *surveyCommands.StartReviewHandler
	DecidePlanHandler      *surveyCommands.SubmitDecisionHandler
	ComputeQuotasHandler   *surveyCommands.ComputeQuotasHandler
	AdjustQuotaHandler     *surveyCommands.AdjustQuotaHandler
	WithdrawPlanHandler    *surveyCommands.WithdrawPlanHandler
	GetPlanHandler         *surveyQueries.GetPlanHandler
	ValidateTopology       *surveyQueries.ValidateTopologyHandler

	// Deeds
	LodgeDeedHandler        *deedCommands.LodgeDeedHandler
	SubmitDeedHandler       *deedCommands.SubmitDeedHandler
	StartExaminationHandler *deedCommands.StartExaminationHandler
	DecideDeedHandler       *deedCommands.SubmitDecisionHandler
	RegisterDeedHandler     *deedCommands.RegisterDeedHandler
	ReviewTitleHandler      *deedCommands.ReviewTitleHandler
	RegisterTitleHandler    *deedCommands.RegisterTitleHandler
	GetDeedHandler          *deedQueries.GetDeedHandler
	GetTitleHandler         *deedQueries.GetTitleHandler
	CrossValidateHandler    *deedQueries.CrossValidateHandler

	// Registry
	SubmitAmendmentHandler  *registryCommands.SubmitAmendmentHandler
	DecideAmendmentHandler  *registryCommands.DecideAmendmentHandler
	ProcessAmendmentHandler *registryCommands.ProcessAmendmentHandler
	SubmitTransferHandler   *registryCommands.SubmitTransferHandler
	DecideTransferHandler   *registryCommands.DecideTransferHandler
	ProcessTransferHandler  *registryCommands.ProcessTransferHandler
	ValidateAmendment       *registryQueries.ValidateAmendmentHandler
	GetAmendmentHandler     *registryQueries.GetAmendmentHandler
	GetTransferHandler      *registryQueries.GetTransferHandler

	// Disputes
	LodgeDisputeHandler      *disputeCommands.LodgeDisputeHandler
	ProgressDisputeHandler   *disputeCommands.ProgressDisputeHandler
	SubmitObjectionHandler   *disputeCommands.SubmitObjectionHandler
	ProgressObjectionHandler *disputeCommands.ProgressObjectionHandler
	GetDisputeHandler        *disputeQueries.GetDisputeHandler
	GetObjectionHandler      *disputeQueries.GetObjectionHandler

	// Audit
	ListTransitionsHandler *sharedQueries.ListTransitionsHandler

	// Outbox
	OutboxProcessor *outbox.Processor
}

// NewContainer creates and wires all dependencies. The database backend is
// chosen from the configuration: a DATABASE_URL selects PostgreSQL, no URL
// selects zero-config SQLite.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger,
	}

	sqlitePath := cfg.SQLitePath
	if cfg.DatabaseURL == "" && sqlitePath == "" {
		sqlitePath = database.DefaultSQLitePath()
		if err := database.EnsureDirectory(sqlitePath); err != nil {
			return nil, fmt.Errorf("prepare database directory: %w", err)
		}
	}

	conn, err := database.Open(ctx, database.Config{
		URL:        cfg.DatabaseURL,
		SQLitePath: sqlitePath,
		MaxConns:   cfg.MaxConns,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	c.Conn = conn
	logger.Info("connected to database", "driver", conn.Driver())

	if err := migrations.Run(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	// Redis backs the sealed-plan cache. Development falls back to an
	// in-memory cache when the configured instance is unreachable.
	c.Cache = cache.NewMemoryCache()
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			if !cfg.IsDevelopment() {
				_ = conn.Close()
				return nil, fmt.Errorf("parse Redis URL: %w", err)
			}
			logger.Warn("invalid Redis URL, sealed-plan cache is in-memory", "error", err)
		} else {
			client := redis.NewClient(opt)
			if pingErr := client.Ping(ctx).Err(); pingErr != nil {
				_ = client.Close()
				if !cfg.IsDevelopment() {
					_ = conn.Close()
					return nil, fmt.Errorf("ping Redis: %w", pingErr)
				}
				logger.Warn("Redis not available, sealed-plan cache is in-memory", "error", pingErr)
			} else {
				c.RedisClient = client
				c.Cache = cache.NewRedisCacheFromClient(client)
				logger.Info("connected to Redis")
			}
		}
	}

	// RabbitMQ carries domain events and party notices. Development runs
	// log-only when no broker is reachable.
	if cfg.RabbitMQURL != "" {
		publisher, err := eventbus.NewRabbitMQPublisher(cfg.RabbitMQURL, logger)
		if err != nil {
			if !cfg.IsDevelopment() {
				_ = conn.Close()
				return nil, fmt.Errorf("connect to RabbitMQ: %w", err)
			}
			logger.Warn("RabbitMQ not available, events are log-only", "error", err)
			c.EventPublisher = eventbus.NewLogPublisher(logger)
		} else {
			c.EventPublisher = publisher
		}
	} else {
		c.EventPublisher = eventbus.NewLogPublisher(logger)
	}

	c.wireRepositories(conn)
	c.wireHandlers(logger, cfg)

	c.OutboxProcessor = outbox.NewProcessor(c.OutboxRepo, c.EventPublisher, outbox.ProcessorConfig{
		PollInterval: cfg.OutboxPollInterval,
		BatchSize:    cfg.OutboxBatchSize,
		MaxRetries:   cfg.OutboxMaxRetries,
	}, logger)

	return c, nil
}

func (c *Container) wireRepositories(conn database.Connection) {
	c.SchemeRepo = planningPersistence.NewSchemeRepository(conn)
	c.PlanRepo = surveyPersistence.NewPlanRepository(conn)
	c.DeedRepo = deedPersistence.NewDeedRepository(conn)
	c.TitleRepo = deedPersistence.NewTitleRepository(conn)
	c.AmendmentRepo = registryPersistence.NewAmendmentRepository(conn)
	c.TransferRepo = registryPersistence.NewTransferRepository(conn)
	c.DisputeRepo = disputePersistence.NewDisputeRepository(conn)
	c.ObjectionRepo = disputePersistence.NewObjectionRepository(conn)

	c.TransitionStore = sharedPersistence.NewTransitionStore(conn)
	outboxStore := outbox.NewStore(conn)
	c.OutboxRepo = outboxStore
	c.Committer = sharedPersistence.NewCommitter(c.TransitionStore, outboxStore)
	c.UnitOfWork = database.NewUnitOfWork(conn)
}

func (c *Container) wireHandlers(logger *slog.Logger, cfg *config.Config) {
	committer := c.Committer
	uow := c.UnitOfWork

	c.Dispatcher = notify.NewDispatcher(
		notify.NewBrokerNotifier(c.EventPublisher),
		notify.DispatcherConfig{
			FailureThreshold: uint32(cfg.NotifyFailureThreshold),
			OpenTimeout:      cfg.NotifyOpenTimeout,
			NoticeTimeout:    cfg.NotifyTimeout,
		},
		logger,
	)

	// Planning
	c.DraftSchemeHandler = planningCommands.NewDraftSchemeHandler(c.SchemeRepo, committer, uow)
	c.SubmitSchemeHandler = planningCommands.NewSubmitSchemeHandler(c.SchemeRepo, committer, uow)
	c.StartSchemeReviewHandler = planningCommands.NewStartReviewHandler(c.SchemeRepo, committer, uow)
	c.CompleteChecklistItemHandler = planningCommands.NewCompleteChecklistItemHandler(c.SchemeRepo, committer, uow)
	c.DecideSchemeHandler = planningCommands.NewSubmitDecisionHandler(c.SchemeRepo, committer, uow)
	c.OpenObjectionWindowHandler = planningCommands.NewOpenObjectionWindowHandler(c.SchemeRepo, committer, uow)
	c.WithdrawSchemeHandler = planningCommands.NewWithdrawSchemeHandler(c.SchemeRepo, committer, uow)
	c.GetSchemeHandler = planningQueries.NewGetSchemeHandler(c.SchemeRepo)

	// Survey
	c.DraftPlanHandler = surveyCommands.NewDraftPlanHandler(c.PlanRepo, committer, uow)
	c.StartPlanReviewHandler = surveyCommands.NewStartReviewHandler(c.PlanRepo, committer, uow)
	c.DecidePlanHandler = surveyCommands.NewSubmitDecisionHandler(c.PlanRepo, committer, uow)
	c.ComputeQuotasHandler = surveyCommands.NewComputeQuotasHandler(c.PlanRepo, committer, uow)
	c.AdjustQuotaHandler = surveyCommands.NewAdjustQuotaHandler(c.PlanRepo, committer, uow)
	c.WithdrawPlanHandler = surveyCommands.NewWithdrawPlanHandler(c.PlanRepo, committer, uow)
	c.GetPlanHandler = surveyQueries.NewGetPlanHandler(c.PlanRepo)
	c.ValidateTopology = surveyQueries.NewValidateTopologyHandler(c.PlanRepo)

	// Deeds
	c.LodgeDeedHandler = deedCommands.NewLodgeDeedHandler(c.DeedRepo, committer, uow)
	c.SubmitDeedHandler = deedCommands.NewSubmitDeedHandler(c.DeedRepo, committer, uow)
	c.StartExaminationHandler = deedCommands.NewStartExaminationHandler(c.DeedRepo, committer, uow)
	c.DecideDeedHandler = deedCommands.NewSubmitDecisionHandler(c.DeedRepo, committer, uow, c.Dispatcher)
	c.RegisterDeedHandler = deedCommands.NewRegisterDeedHandler(c.DeedRepo, c.TitleRepo, committer, uow)
	c.ReviewTitleHandler = deedCommands.NewReviewTitleHandler(c.TitleRepo, committer, uow)
	c.RegisterTitleHandler = deedCommands.NewRegisterTitleHandler(c.TitleRepo, committer, uow)
	c.GetDeedHandler = deedQueries.NewGetDeedHandler(c.DeedRepo)
	c.GetTitleHandler = deedQueries.NewGetTitleHandler(c.TitleRepo)
	c.CrossValidateHandler = deedQueries.NewCrossValidateHandler(c.DeedRepo, c.PlanRepo, c.Cache, logger)

	// Registry
	c.SubmitAmendmentHandler = registryCommands.NewSubmitAmendmentHandler(c.AmendmentRepo, committer, uow)
	c.DecideAmendmentHandler = registryCommands.NewDecideAmendmentHandler(c.AmendmentRepo, committer, uow)
	c.ProcessAmendmentHandler = registryCommands.NewProcessAmendmentHandler(c.AmendmentRepo, c.PlanRepo, committer, uow)
	c.SubmitTransferHandler = registryCommands.NewSubmitTransferHandler(c.TransferRepo, c.TitleRepo, committer, uow)
	c.DecideTransferHandler = registryCommands.NewDecideTransferHandler(c.TransferRepo, committer, uow)
	c.ProcessTransferHandler = registryCommands.NewProcessTransferHandler(c.TransferRepo, c.TitleRepo, committer, uow)
	c.ValidateAmendment = registryQueries.NewValidateAmendmentHandler(c.PlanRepo)
	c.GetAmendmentHandler = registryQueries.NewGetAmendmentHandler(c.AmendmentRepo)
	c.GetTransferHandler = registryQueries.NewGetTransferHandler(c.TransferRepo)

	// Disputes
	windows := disputePersistence.NewSchemeWindows(c.SchemeRepo)
	c.LodgeDisputeHandler = disputeCommands.NewLodgeDisputeHandler(c.DisputeRepo, committer, uow)
	c.ProgressDisputeHandler = disputeCommands.NewProgressDisputeHandler(c.DisputeRepo, committer, uow)
	c.SubmitObjectionHandler = disputeCommands.NewSubmitObjectionHandler(c.ObjectionRepo, windows, committer, uow)
	c.ProgressObjectionHandler = disputeCommands.NewProgressObjectionHandler(c.ObjectionRepo, committer, uow)
	c.GetDisputeHandler = disputeQueries.NewGetDisputeHandler(c.DisputeRepo)
	c.GetObjectionHandler = disputeQueries.NewGetObjectionHandler(c.ObjectionRepo)

	// Audit trail
	c.ListTransitionsHandler = sharedQueries.NewListTransitionsHandler(c.TransitionStore)
}

// Close cleans up all resources.
func (c *Container) Close() {
	if c.OutboxProcessor != nil {
		c.OutboxProcessor.Stop()
	}

	if c.EventPublisher != nil {
		if err := c.EventPublisher.Close(); err != nil {
			c.Logger.Warn("error closing event publisher", "error", err)
		}
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			c.Logger.Warn("error closing Redis connection", "error", err)
		}
	}

	if c.Conn != nil {
		if err := c.Conn.Close(); err != nil {
			c.Logger.Warn("error closing database connection", "error", err)
		} else {
			c.Logger.Info("database connection closed")
		}
	}
}
