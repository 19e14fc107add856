package services

import (
	"context"

	"github.com/ghuser/budgeteer/pkg/logger"
	"github.com/ghuser/budgeteer/services/shoppinglist/domain/events"
)

// Publisher is the subset of events.EventBus the observer needs.
type Publisher interface {
	PublishJSON(ctx context.Context, topic, eventID string, payload any) error
}

// EventObserver publishes shopping_list.changed for every mutation. The list
// is already saved when it runs, so publish failures are logged, not returned.
type EventObserver struct {
	publisher Publisher
	log       logger.Logger
}

// NewEventObserver returns an EventObserver publishing through p.
func NewEventObserver(p Publisher, log logger.Logger) *EventObserver {
	return &EventObserver{publisher: p, log: log}
}

func (o *EventObserver) ListChanged(ctx context.Context, c Change) {
	evt := events.NewShoppingListChangedEvent(c.ShopperID, c.Op, c.EntryID, len(c.List.Entries))
	if err := o.publisher.PublishJSON(ctx, events.TopicShoppingListChanged, evt.EventID.String(), evt); err != nil {
		o.log.WarnContext(ctx, "publish shopping_list.changed failed", "op", c.Op, "error", err)
	}
}
