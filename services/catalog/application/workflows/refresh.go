// Package workflows holds the Temporal workflows of the catalog context.
package workflows

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/ghuser/budgeteer/pkg/telemetry"
	appsvcs "github.com/ghuser/budgeteer/services/catalog/application/services"
	"github.com/ghuser/budgeteer/services/catalog/domain/events"
)

// CatalogRefreshWorkflowID is the fixed id of the cron workflow; starting it
// twice is rejected by Temporal, so every worker may try.
const CatalogRefreshWorkflowID = "catalog-refresh"

// Publisher is the subset of events.EventBus the activities need.
type Publisher interface {
	Publish(ctx context.Context, topic string, msgs ...*message.Message) error
}

// RefreshResult is the workflow's return value.
type RefreshResult struct {
	Records   int  `json:"records"`
	Published bool `json:"published"`
}

// Activities implements the catalog refresh activities. Register a non-nil
// value with the worker; the workflow references methods on a nil pointer.
type Activities struct {
	Catalog   *appsvcs.CatalogService
	Publisher Publisher // nil skips the refresh event
	Source    string
}

// RefreshCatalog fetches the upstream catalog and stores it as the snapshot.
// Each failed attempt is reported to Sentry; Temporal retries it.
func (a *Activities) RefreshCatalog(ctx context.Context) (int, error) {
	n, err := a.Catalog.Refresh(ctx)
	if err != nil {
		telemetry.CaptureError(ctx, err, "component", "catalog_refresh", "source", a.Source)
	}
	return n, err
}

// PublishCatalogRefreshed tells API instances to reload the snapshot.
func (a *Activities) PublishCatalogRefreshed(ctx context.Context, records int) (bool, error) {
	if a.Publisher == nil {
		return false, nil
	}
	payload, err := json.Marshal(events.NewCatalogRefreshedEvent(a.Source, records))
	if err != nil {
		return false, fmt.Errorf("marshal catalog.refreshed: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := a.Publisher.Publish(ctx, events.TopicCatalogRefreshed, msg); err != nil {
		return false, err
	}
	return true, nil
}

// CatalogRefreshWorkflow refreshes the catalog snapshot and announces it.
// It is scheduled with a cron expression, so each run is one refresh.
func CatalogRefreshWorkflow(ctx workflow.Context) (RefreshResult, error) {
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2,
			MaximumInterval:    30 * time.Second,
			MaximumAttempts:    3,
		},
	})

	var a *Activities
	var result RefreshResult
	if err := workflow.ExecuteActivity(ctx, a.RefreshCatalog).Get(ctx, &result.Records); err != nil {
		return result, fmt.Errorf("refresh catalog: %w", err)
	}
	if err := workflow.ExecuteActivity(ctx, a.PublishCatalogRefreshed, result.Records).Get(ctx, &result.Published); err != nil {
		return result, fmt.Errorf("publish catalog.refreshed: %w", err)
	}

	workflow.GetLogger(ctx).Info("catalog refreshed", "records", result.Records, "published", result.Published)
	return result, nil
}
