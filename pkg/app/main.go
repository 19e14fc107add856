package app

import (
	"github.com/gorilla/sessions"

	"github.com/ghuser/budgeteer/pkg/cache"
	"github.com/ghuser/budgeteer/pkg/config"
	"github.com/ghuser/budgeteer/pkg/database"
	"github.com/ghuser/budgeteer/pkg/events"
	"github.com/ghuser/budgeteer/pkg/logger"
	"github.com/ghuser/budgeteer/pkg/telemetry"
	"github.com/ghuser/budgeteer/pkg/upstream"
	"github.com/ghuser/budgeteer/pkg/workflows"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to each bounded context's services.New during process initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "shopping list saved", "entries", n)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
//
// Optional dependencies are nil when the process runs without them: the CLI
// has no Db, Redis, EventBus or SessionStore; the worker has no SessionStore.
type Application struct {
	Config         *config.Config
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient
	TemporalClient *workflows.TemporalClient
	SessionStore   sessions.Store
	Upstream       *upstream.Client
	Metrics        *telemetry.Metrics
}
