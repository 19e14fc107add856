package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ghuser/budgeteer/pkg/cache"
	catalogdomain "github.com/ghuser/budgeteer/services/catalog/domain"
	"github.com/ghuser/budgeteer/services/catalog/domain/models"
)

const snapshotName = "catalog"

// SnapshotStore implements repositories.SnapshotStore on the shared
// SnapshotCache.
type SnapshotStore struct {
	cache *cache.SnapshotCache
}

// NewSnapshotStore returns a SnapshotStore backed by r.
func NewSnapshotStore(r *cache.RedisClient) *SnapshotStore {
	return &SnapshotStore{cache: cache.NewSnapshotCache(r)}
}

// LoadSnapshot returns the last stored catalog, or ErrSnapshotMissing.
func (s *SnapshotStore) LoadSnapshot(ctx context.Context) ([]models.PriceRecord, error) {
	var records []models.PriceRecord
	if _, err := s.cache.Get(ctx, snapshotName, &records); err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, catalogdomain.ErrSnapshotMissing
		}
		return nil, fmt.Errorf("load catalog snapshot: %w", err)
	}
	return records, nil
}

// SaveSnapshot replaces the stored catalog.
func (s *SnapshotStore) SaveSnapshot(ctx context.Context, source string, records []models.PriceRecord) error {
	meta := cache.SnapshotMeta{Name: snapshotName, Source: source, Count: len(records)}
	if err := s.cache.Set(ctx, meta, records); err != nil {
		return fmt.Errorf("save catalog snapshot: %w", err)
	}
	return nil
}
