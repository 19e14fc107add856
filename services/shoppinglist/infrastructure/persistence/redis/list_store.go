// Package redis persists shopping lists as one JSON value per shopper.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ghuser/budgeteer/pkg/auth"
	"github.com/ghuser/budgeteer/pkg/cache"
	"github.com/ghuser/budgeteer/services/shoppinglist/domain/models"
)

// ListTTL matches the anonymous shopper session lifetime, refreshed on every save.
const ListTTL = auth.SessionLifetime

const keyPrefix = "shopping_list"

// ListStore implements repositories.ListStore.
// Key format: "shopping_list:{shopperID}"
type ListStore struct {
	client *cache.RedisClient
}

// NewListStore returns a ListStore backed by r.
func NewListStore(r *cache.RedisClient) *ListStore {
	return &ListStore{client: r}
}

// Load returns the stored list, or an empty one when the key is absent.
func (s *ListStore) Load(ctx context.Context, shopperID string) (*models.List, error) {
	raw, err := s.client.Client().Get(ctx, Key(shopperID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return models.NewList(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get list: %w", err)
	}
	var entries []models.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return models.NewList(entries), nil
}

// Save overwrites the stored list.
func (s *ListStore) Save(ctx context.Context, shopperID string, list *models.List) error {
	raw, err := json.Marshal(models.NewList(list.Entries).Entries)
	if err != nil {
		return fmt.Errorf("encode list: %w", err)
	}
	if err := s.client.Client().Set(ctx, Key(shopperID), raw, ListTTL).Err(); err != nil {
		return fmt.Errorf("redis set list: %w", err)
	}
	return nil
}

// Key returns the Redis key holding shopperID's list.
func Key(shopperID string) string {
	return keyPrefix + ":" + shopperID
}
