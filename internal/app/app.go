package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/degreeplan-backend/internal/catalog"
	dbpkg "github.com/yungbote/degreeplan-backend/internal/data/db"
	"github.com/yungbote/degreeplan-backend/internal/data/repos"
	httpserver "github.com/yungbote/degreeplan-backend/internal/http"
	"github.com/yungbote/degreeplan-backend/internal/observability"
	"github.com/yungbote/degreeplan-backend/internal/platform/logger"
	"github.com/yungbote/degreeplan-backend/internal/realtime"
)

type Options struct {
	// WithGenerator wires the model client and the plan pipeline. Catalog-only
	// callers (seeding, prefix resolution) leave it off and need no API key.
	WithGenerator bool
	// Logger overrides the LOG_MODE logger.
	Logger *logger.Logger
}

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    repos.Catalog
	Clients  Clients
	Services Services

	dbService    *dbpkg.Service
	otelShutdown func(context.Context) error
	cancel       context.CancelFunc
}

func New(ctx context.Context, opts Options) (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log, err = logger.New(cfg.LogMode)
		if err != nil {
			return nil, fmt.Errorf("init logger: %w", err)
		}
	}
	return NewWithConfig(ctx, log, cfg, opts)
}

func NewWithConfig(ctx context.Context, log *logger.Logger, cfg Config, opts Options) (*App, error) {
	otelShutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: cfg.ServiceName,
		Environment: cfg.Environment,
		Version:     cfg.Version,
	})

	dbService, err := dbpkg.NewService(log, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	if cfg.AutoMigrate {
		if err := dbService.AutoMigrateAll(); err != nil {
			_ = dbService.Close()
			return nil, fmt.Errorf("automigrate: %w", err)
		}
	}
	theDB := dbService.DB()

	reposet := wireRepos(theDB, log)

	clients, err := wireClients(log, cfg, opts.WithGenerator)
	if err != nil {
		_ = dbService.Close()
		return nil, err
	}

	serviceset, err := wireServices(theDB, log, cfg, reposet, clients)
	if err != nil {
		_ = clients.Bus.Close()
		_ = dbService.Close()
		return nil, err
	}

	a := &App{
		Log:          log,
		DB:           theDB,
		Cfg:          cfg,
		Repos:        reposet,
		Clients:      clients,
		Services:     serviceset,
		dbService:    dbService,
		otelShutdown: otelShutdown,
	}

	if cfg.CatalogSeedFile != "" {
		if _, err := a.SeedFromFile(ctx, cfg.CatalogSeedFile); err != nil {
			a.Close()
			return nil, err
		}
	}

	sqlDB, err := theDB.DB()
	if err != nil {
		log.Warn("sql handle unavailable, readiness probe skips db", "error", err)
		sqlDB = nil
	}
	a.Router = wireRouter(log, cfg, wireHandlers(log, sqlDB, serviceset))
	return a, nil
}

// SeedFromFile loads a catalog YAML file into the database.
func (a *App) SeedFromFile(ctx context.Context, path string) (catalog.SeedSummary, error) {
	seed, err := catalog.LoadSeedFile(path)
	if err != nil {
		return catalog.SeedSummary{}, err
	}
	sum, err := a.Services.Seeder.Apply(ctx, seed)
	if err != nil {
		return catalog.SeedSummary{}, fmt.Errorf("seed catalog: %w", err)
	}
	a.Log.Info("Catalog seeded",
		"file", path,
		"institutions", sum.Institutions,
		"courses", sum.Courses,
		"disciplines", sum.Disciplines,
		"credentials", sum.Credentials,
	)
	return sum, nil
}

// Start attaches background consumers of the plan event bus.
func (a *App) Start() {
	if a == nil || a.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	eventLog := a.Log.With("component", "PlanEventLog")
	if err := a.Clients.Bus.StartForwarder(ctx, func(evt realtime.PlanEvent) {
		eventLog.Debug("plan event",
			"run_id", evt.RunID.String(),
			"stage", string(evt.Stage),
			"status", string(evt.Status),
		)
	}); err != nil {
		a.Log.Warn("plan event forwarder not started", "error", err)
	}
}

// Run serves HTTP until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	srv := &httpserver.Server{Engine: a.Router}
	a.Log.Info("HTTP server listening", "addr", a.Cfg.Addr(), "plans_enabled", a.Services.Pipeline != nil)
	return srv.Serve(ctx, a.Cfg.Addr(), a.Cfg.ShutdownGrace)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	if a.Clients.Bus != nil {
		if err := a.Clients.Bus.Close(); err != nil {
			a.Log.Warn("plan bus close failed", "error", err)
		}
	}
	if a.dbService != nil {
		if err := a.dbService.Close(); err != nil {
			a.Log.Warn("database close failed", "error", err)
		}
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownGrace)
		defer cancel()
		_ = a.otelShutdown(ctx)
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
