package services

import (
	"context"
	"fmt"

	"github.com/ghuser/budgeteer/pkg/app"
	"github.com/ghuser/budgeteer/pkg/config"
	"github.com/ghuser/budgeteer/services/shoppinglist/domain/repositories"
	domainsvcs "github.com/ghuser/budgeteer/services/shoppinglist/domain/services"
	"github.com/ghuser/budgeteer/services/shoppinglist/infrastructure/persistence/memory"
	"github.com/ghuser/budgeteer/services/shoppinglist/infrastructure/persistence/postgres"
	"github.com/ghuser/budgeteer/services/shoppinglist/infrastructure/persistence/redis"
	"github.com/ghuser/budgeteer/services/shoppinglist/infrastructure/ws"
)

// ListUpdate is the frame pushed to a shopper's open WebSocket connections.
type ListUpdate struct {
	Op   string   `json:"op"`
	List ListView `json:"list"`
}

// Services is the application-layer service container for this bounded context.
type Services struct {
	List    *ListService
	Compare *CompareService
	Hub     *ws.Hub
}

// New wires the shopping list services. The store is chosen by
// SHOPPING_LIST_STORE; catalog supplies the records comparisons price against.
func New(a *app.Application, catalog CatalogReader) (*Services, error) {
	store, err := newStore(a)
	if err != nil {
		return nil, err
	}
	mode := domainsvcs.PriceCheapest
	if a.Config.ComparisonPriceMode == config.PriceModeLatest {
		mode = domainsvcs.PriceLatest
	}

	list := NewListService(store, a.Metrics, a.Logger)
	hub := ws.NewHub(a.Logger, nil)
	list.Observe(ObserverFunc(func(_ context.Context, c Change) {
		hub.Notify(c.ShopperID, ListUpdate{Op: c.Op, List: NewListView(c.List)})
	}))
	if a.EventBus != nil {
		list.Observe(NewEventObserver(a.EventBus, a.Logger))
	}

	return &Services{
		List:    list,
		Compare: NewCompareService(store, catalog, mode),
		Hub:     hub,
	}, nil
}

func newStore(a *app.Application) (repositories.ListStore, error) {
	switch a.Config.ShoppingListStore {
	case config.StoreRedis:
		if a.Redis == nil {
			return nil, fmt.Errorf("SHOPPING_LIST_STORE=%s requires Redis", config.StoreRedis)
		}
		return redis.NewListStore(a.Redis), nil
	case config.StorePostgres:
		if a.Db == nil {
			return nil, fmt.Errorf("SHOPPING_LIST_STORE=%s requires a database", config.StorePostgres)
		}
		return postgres.NewListStore(a.Db), nil
	case config.StoreMemory, "":
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown SHOPPING_LIST_STORE %q", a.Config.ShoppingListStore)
	}
}
