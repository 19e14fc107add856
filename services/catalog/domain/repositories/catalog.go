package repositories

import (
	"context"

	"github.com/ghuser/budgeteer/services/catalog/domain/models"
)

// CatalogSource yields the full set of price records from one origin
// (upstream backend, CSV file, synthetic generator).
type CatalogSource interface {
	Items(ctx context.Context) ([]models.PriceRecord, error)
}

// SnapshotStore persists the last good catalog so API instances can start
// without reaching the upstream. LoadSnapshot returns domain.ErrSnapshotMissing when nothing
// has been saved yet.
type SnapshotStore interface {
	LoadSnapshot(ctx context.Context) ([]models.PriceRecord, error)
	SaveSnapshot(ctx context.Context, source string, records []models.PriceRecord) error
}
