package main

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/budgeteer/pkg/app"
	"github.com/ghuser/budgeteer/pkg/auth"
	"github.com/ghuser/budgeteer/pkg/httpx"
	assistApi "github.com/ghuser/budgeteer/services/assist/application/api"
	assistSvcs "github.com/ghuser/budgeteer/services/assist/application/services"
	catalogApi "github.com/ghuser/budgeteer/services/catalog/application/api"
	catalogSvcs "github.com/ghuser/budgeteer/services/catalog/application/services"
	catalogdomain "github.com/ghuser/budgeteer/services/catalog/domain"
	catalogEvents "github.com/ghuser/budgeteer/services/catalog/domain/events"
	listApi "github.com/ghuser/budgeteer/services/shoppinglist/application/api"
	listSvcs "github.com/ghuser/budgeteer/services/shoppinglist/application/services"
)

type services struct {
	catalog *catalogSvcs.Services
	lists   *listSvcs.Services
	assist  *assistSvcs.Services
}

// newServices wires every bounded context and loads the catalog once.
func newServices(ctx context.Context, a *app.Application) (*services, error) {
	catalog := catalogSvcs.New(a)
	source, err := catalog.Catalog.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	a.Logger.Info("catalog loaded", "source", source, "records", len(catalog.Catalog.Records()))

	lists, err := listSvcs.New(a, catalog.Catalog)
	if err != nil {
		return nil, err
	}

	if a.EventBus != nil {
		if err := subscribeCatalogRefreshed(ctx, a, catalog.Catalog); err != nil {
			return nil, err
		}
	}

	return &services{
		catalog: catalog,
		lists:   lists,
		assist:  assistSvcs.New(a, catalog.Catalog, lists.List),
	}, nil
}

// subscribeCatalogRefreshed reloads the snapshot on every instance when the
// worker announces a refresh.
func subscribeCatalogRefreshed(ctx context.Context, a *app.Application, catalog *catalogSvcs.CatalogService) error {
	errCh, err := a.EventBus.SubscribeBroadcast(ctx, catalogEvents.TopicCatalogRefreshed,
		func(ctx context.Context, _ *message.Message) error {
			return catalog.Reload(ctx)
		})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", catalogEvents.TopicCatalogRefreshed, err)
	}
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error",
				"topic", catalogEvents.TopicCatalogRefreshed,
				"error", err,
			)
		}
	}()
	return nil
}

// mountAPI registers all service routes under /api. Shopping list and
// assist routes know the shopper through the session middleware.
func mountAPI(r chi.Router, a *app.Application, s *services) {
	r.Route("/api", func(r chi.Router) {
		catalogApi.CatalogRoutes(r, s.catalog)
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireShopper(a.SessionStore, a.Logger))
			listApi.ShoppingListRoutes(r, s.lists)
			assistApi.AssistRoutes(r, s.assist)
		})
	})
}

// healthChecks probes only the dependencies this process started with.
func healthChecks(a *app.Application, s *services) httpx.HealthChecks {
	checks := httpx.HealthChecks{
		Catalog: httpx.PingFunc(func(context.Context) error {
			if len(s.catalog.Catalog.Records()) == 0 {
				return catalogdomain.ErrSnapshotMissing
			}
			return nil
		}),
	}
	if a.Db != nil {
		checks.Database = a.Db
	}
	if a.Redis != nil {
		checks.Redis = a.Redis
	}
	if a.EventBus != nil {
		checks.EventBus = a.EventBus
	}
	return checks
}
