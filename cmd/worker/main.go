package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ghuser/budgeteer/pkg/app"
	"github.com/ghuser/budgeteer/pkg/cache"
	"github.com/ghuser/budgeteer/pkg/config"
	"github.com/ghuser/budgeteer/pkg/database"
	"github.com/ghuser/budgeteer/pkg/events"
	"github.com/ghuser/budgeteer/pkg/logger"
	"github.com/ghuser/budgeteer/pkg/telemetry"
	"github.com/ghuser/budgeteer/pkg/upstream"
	"github.com/ghuser/budgeteer/pkg/workflows"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	metrics, err := telemetry.NewMetrics()
	if err != nil {
		log.Error("failed to register metrics", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1)
	}
	defer eventBus.Close() //nolint:errcheck

	// Without Redis a refresh still fetches the catalog but API instances
	// have no snapshot to reload.
	var redisClient *cache.RedisClient
	if rc, err := cache.NewRedisClient(cfg); err != nil {
		log.Warn("redis unavailable, catalog snapshots disabled", "error", err)
	} else {
		redisClient = rc
		defer redisClient.Close() //nolint:errcheck
		log.Info("redis connected")
	}

	temporalClient, err := workflows.NewTemporalClient(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize temporal client", "error", err)
		os.Exit(1)
	}
	defer temporalClient.Close()

	a := &app.Application{
		Config:         cfg,
		Db:             pool,
		Logger:         log,
		EventBus:       eventBus,
		Redis:          redisClient,
		TemporalClient: temporalClient,
		Metrics:        metrics,
		Upstream: upstream.NewClient(cfg.BackendURL, upstream.Options{
			Timeout:   cfg.BackendTimeout,
			RateLimit: cfg.BackendRateLimit,
		}, log),
	}

	if err := registerSubscribers(ctx, a); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1)
	}

	w, err := startCatalogRefresh(ctx, a)
	if err != nil {
		log.Error("failed to start catalog refresh worker", "error", err)
		os.Exit(1)
	}

	<-ctx.Done()

	log.Info("shutting down worker...")
	w.Stop()

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}
