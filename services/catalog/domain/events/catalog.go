package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicCatalogRefreshed is published by the worker after a new catalog
// snapshot has been written.
const TopicCatalogRefreshed = "catalog.refreshed"

// CatalogRefreshedEvent tells API instances to reload their in-memory catalog.
type CatalogRefreshedEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	Version     int       `json:"version"`
	Source      string    `json:"source"`
	RecordCount int       `json:"record_count"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// NewCatalogRefreshedEvent stamps a fresh event id and time.
func NewCatalogRefreshedEvent(source string, recordCount int) CatalogRefreshedEvent {
	return CatalogRefreshedEvent{
		EventID:     uuid.New(),
		Version:     1,
		Source:      source,
		RecordCount: recordCount,
		OccurredAt:  time.Now().UTC(),
	}
}
