package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicShoppingListChanged is published after every persisted list mutation.
const TopicShoppingListChanged = "shopping_list.changed"

// Mutation names carried in ShoppingListChangedEvent.Op.
const (
	OpAdd    = "add"
	OpRemove = "remove"
	OpToggle = "toggle"
	OpClear  = "clear"
)

// ShoppingListChangedEvent describes one persisted mutation.
type ShoppingListChangedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ShopperID  string    `json:"shopper_id"`
	Op         string    `json:"op"`
	EntryID    int64     `json:"entry_id,omitempty"`
	EntryCount int       `json:"entry_count"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewShoppingListChangedEvent stamps a fresh event id and time.
func NewShoppingListChangedEvent(shopperID, op string, entryID int64, entryCount int) ShoppingListChangedEvent {
	return ShoppingListChangedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ShopperID:  shopperID,
		Op:         op,
		EntryID:    entryID,
		EntryCount: entryCount,
		OccurredAt: time.Now().UTC(),
	}
}
