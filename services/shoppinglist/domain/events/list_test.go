package events_test

import (
	"encoding/json"
	"testing"

	"github.com/ghuser/budgeteer/services/shoppinglist/domain/events"
)

func TestNewShoppingListChangedEvent(t *testing.T) {
	evt := events.NewShoppingListChangedEvent("shopper-1", events.OpClear, 0, 0)

	if evt.Version != 1 || evt.OccurredAt.IsZero() {
		t.Fatalf("unexpected event %+v", evt)
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}
	if raw["op"] != "clear" || raw["shopper_id"] != "shopper-1" {
		t.Fatalf("unexpected payload %s", data)
	}
	if _, ok := raw["entry_id"]; ok {
		t.Fatal("entry_id must be omitted for clear")
	}
}
