package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.temporal.io/sdk/worker"

	"github.com/ghuser/budgeteer/pkg/app"
	"github.com/ghuser/budgeteer/pkg/events"
	"github.com/ghuser/budgeteer/pkg/telemetry"
	catalogSvcs "github.com/ghuser/budgeteer/services/catalog/application/services"
	catalogWorkflows "github.com/ghuser/budgeteer/services/catalog/application/workflows"
	listEvents "github.com/ghuser/budgeteer/services/shoppinglist/domain/events"
)

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	errCh, err := a.EventBus.Subscribe(ctx, listEvents.TopicShoppingListChanged, handleShoppingListChanged(a))
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channel never blocks.
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error",
				"topic", listEvents.TopicShoppingListChanged,
				"error", err,
			)
			telemetry.CaptureError(ctx, err, "topic", listEvents.TopicShoppingListChanged)
		}
	}()

	a.Logger.Info("event subscribers registered", "topics", []string{listEvents.TopicShoppingListChanged})
	return nil
}

// handleShoppingListChanged records list activity. Handlers must be
// idempotent: EventBus retries up to 3x on failure.
func handleShoppingListChanged(a *app.Application) events.Handler {
	return func(ctx context.Context, msg *message.Message) error {
		var evt listEvents.ShoppingListChangedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return fmt.Errorf("decode %s: %w", listEvents.TopicShoppingListChanged, err)
		}

		a.Metrics.ListMutated(ctx, evt.Op)
		a.Logger.InfoContext(ctx, "shopping list changed",
			"event_id", evt.EventID,
			"shopper_id", evt.ShopperID,
			"op", evt.Op,
			"entry_count", evt.EntryCount,
		)
		return nil
	}
}

// startCatalogRefresh runs the Temporal worker for the catalog refresh
// workflow and schedules it on CATALOG_REFRESH_CRON.
func startCatalogRefresh(ctx context.Context, a *app.Application) (worker.Worker, error) {
	catalog := catalogSvcs.New(a)
	acts := &catalogWorkflows.Activities{
		Catalog: catalog.Catalog,
		Source:  a.Config.CatalogSource,
	}
	if a.EventBus != nil {
		acts.Publisher = a.EventBus
	}

	w := a.TemporalClient.NewWorker()
	w.RegisterWorkflow(catalogWorkflows.CatalogRefreshWorkflow)
	w.RegisterActivity(acts)
	if err := w.Start(); err != nil {
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	if err := a.TemporalClient.StartCron(ctx,
		catalogWorkflows.CatalogRefreshWorkflowID,
		a.Config.CatalogRefreshCron,
		catalogWorkflows.CatalogRefreshWorkflow,
	); err != nil {
		w.Stop()
		return nil, err
	}
	return w, nil
}
