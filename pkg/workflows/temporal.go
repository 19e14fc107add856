// Package workflows connects the worker to Temporal, which schedules the
// periodic catalog refresh.
package workflows

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	"go.temporal.io/sdk/interceptor"
	temporallog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/worker"

	"github.com/ghuser/budgeteer/pkg/config"
	"github.com/ghuser/budgeteer/pkg/logger"
)

const instrumentationName = "github.com/ghuser/budgeteer/temporal"

// TemporalClient is a Temporal connection bound to one task queue.
type TemporalClient struct {
	Client    client.Client
	Namespace string
	TaskQueue string
	log       logger.Logger
}

// NewTemporalClient dials cfg.TemporalHostPort. Workflow and activity spans
// join the caller's trace and SDK metrics go to the global OTel meter.
// Call Close on shutdown.
func NewTemporalClient(ctx context.Context, cfg *config.Config, log logger.Logger) (*TemporalClient, error) {
	tracing, err := temporalotel.NewTracingInterceptor(temporalotel.TracerOptions{
		Tracer: otel.Tracer(instrumentationName),
	})
	if err != nil {
		return nil, fmt.Errorf("create temporal otel interceptor: %w", err)
	}

	log = log.With("component", "temporal")
	c, err := client.DialContext(ctx, client.Options{
		HostPort:       cfg.TemporalHostPort,
		Namespace:      cfg.TemporalNamespace,
		Logger:         temporalLogger{log: log},
		Interceptors:   []interceptor.ClientInterceptor{tracing},
		MetricsHandler: temporalotel.NewMetricsHandler(temporalotel.MetricsHandlerOptions{Meter: otel.Meter(instrumentationName)}),
	})
	if err != nil {
		return nil, fmt.Errorf("dial temporal server at %s: %w", cfg.TemporalHostPort, err)
	}

	log.Info("temporal client connected",
		"host_port", cfg.TemporalHostPort,
		"namespace", cfg.TemporalNamespace,
		"task_queue", cfg.TemporalTaskQueue,
	)
	return &TemporalClient{
		Client:    c,
		Namespace: cfg.TemporalNamespace,
		TaskQueue: cfg.TemporalTaskQueue,
		log:       log,
	}, nil
}

func (tc *TemporalClient) Close() {
	tc.Client.Close()
	tc.log.Info("temporal client closed")
}

// NewWorker returns a worker polling the client's task queue.
func (tc *TemporalClient) NewWorker() worker.Worker {
	return worker.New(tc.Client, tc.TaskQueue, worker.Options{
		WorkerStopTimeout: 30 * time.Second,
	})
}

// StartCron starts workflowFn under a fixed id on a cron schedule. An
// existing run under that id is left in place, so every worker process may
// call it at startup.
func (tc *TemporalClient) StartCron(ctx context.Context, id, cron string, workflowFn any, args ...any) error {
	_, err := tc.Client.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:           id,
		TaskQueue:    tc.TaskQueue,
		CronSchedule: cron,
	}, workflowFn, args...)
	if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
		tc.log.Info("cron workflow already scheduled", "workflow_id", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("start cron workflow %s: %w", id, err)
	}
	tc.log.Info("cron workflow scheduled", "workflow_id", id, "cron", cron)
	return nil
}

// temporalLogger adapts logger.Logger to Temporal's log.Logger.
type temporalLogger struct {
	log logger.Logger
}

var _ temporallog.Logger = temporalLogger{}

func (l temporalLogger) Debug(msg string, keyvals ...any) { l.log.Debug(msg, keyvals...) }
func (l temporalLogger) Info(msg string, keyvals ...any)  { l.log.Info(msg, keyvals...) }
func (l temporalLogger) Warn(msg string, keyvals ...any)  { l.log.Warn(msg, keyvals...) }
func (l temporalLogger) Error(msg string, keyvals ...any) { l.log.Error(msg, keyvals...) }
