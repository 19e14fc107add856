package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/sessions"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/budgeteer/docs/swagger"
	"github.com/ghuser/budgeteer/migrations/shoppinglist"
	"github.com/ghuser/budgeteer/pkg/app"
	"github.com/ghuser/budgeteer/pkg/auth"
	"github.com/ghuser/budgeteer/pkg/cache"
	"github.com/ghuser/budgeteer/pkg/config"
	"github.com/ghuser/budgeteer/pkg/database"
	"github.com/ghuser/budgeteer/pkg/events"
	"github.com/ghuser/budgeteer/pkg/httpx"
	"github.com/ghuser/budgeteer/pkg/logger"
	"github.com/ghuser/budgeteer/pkg/migrator"
	"github.com/ghuser/budgeteer/pkg/telemetry"
	"github.com/ghuser/budgeteer/pkg/upstream"
)

// @title			Budgeteer API
// @version		1.0
// @description	Multi-store grocery price search, shopping lists and store comparison.
// @license.name	MIT
// @license.url	https://opensource.org/licenses/MIT
// @host			localhost:8080
// @BasePath		/api
// @schemes		http https
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

	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	metrics, err := telemetry.NewMetrics()
	if err != nil {
		log.Error("failed to register metrics", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}

	a := &app.Application{
		Config:  cfg,
		Logger:  log,
		Metrics: metrics,
		Upstream: upstream.NewClient(cfg.BackendURL, upstream.Options{
			Timeout:   cfg.BackendTimeout,
			RateLimit: cfg.BackendRateLimit,
		}, log),
	}

	// Postgres carries the event bus and optionally the shopping lists. Only
	// the postgres list store makes it mandatory.
	db, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	switch {
	case err == nil:
		defer db.Close()
		a.Db = db
		log.Info("database pool connected")
	case cfg.ShoppingListStore == config.StorePostgres:
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	default:
		log.Warn("database unavailable, running without events", "error", err)
	}

	if a.Db != nil {
		if cfg.ShoppingListStore == config.StorePostgres {
			if err := migrator.Up(ctx, a.Db.DB(), shoppinglist.FS); err != nil {
				log.Error("failed to migrate shopping lists", "error", err)
				os.Exit(1)
			}
		}

		eventBus, err := events.NewEventBusWithForwarder(cfg, log)
		if err != nil {
			log.Error("failed to setup event bus", "error", err)
			os.Exit(1)
		}
		defer eventBus.Close() //nolint:errcheck

		if err := eventBus.StartForwarder(ctx); err != nil {
			log.Error("failed to start event forwarder", "error", err)
			os.Exit(1)
		}
		a.EventBus = eventBus
	}

	redisClient, err := cache.NewRedisClient(cfg)
	switch {
	case err == nil:
		defer redisClient.Close() //nolint:errcheck
		a.Redis = redisClient
		log.Info("redis connected")
	case cfg.ShoppingListStore == config.StoreRedis:
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	default:
		log.Warn("redis unavailable, sessions fall back to cookies", "error", err)
	}

	a.SessionStore = sessionStore(a)

	svcs, err := newServices(ctx, a)
	if err != nil {
		log.Error("failed to wire services", "error", err)
		os.Exit(1)
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(healthChecks(a, svcs)))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	mountAPI(r, a, svcs)

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// sessionStore keeps shopper ids server-side in Redis when it is available,
// else in the signed and encrypted cookie itself.
func sessionStore(a *app.Application) sessions.Store {
	secure := a.Config.Environment == config.EnvProduction
	authKey, encKey := []byte(a.Config.SessionAuthKey), []byte(a.Config.SessionEncryptionKey)
	if a.Redis != nil {
		a.Logger.Info("session store initialized", "backend", "redis")
		return auth.NewSessionStore(a.Redis.Client(), authKey, encKey, secure)
	}
	a.Logger.Info("session store initialized", "backend", "cookie")
	return auth.NewCookieSessionStore(authKey, encKey, secure)
}
