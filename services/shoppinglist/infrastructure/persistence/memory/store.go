// Package memory keeps shopping lists in process memory. Lists are lost on
// restart; it backs tests and single-process development runs.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/ghuser/budgeteer/services/shoppinglist/domain/models"
)

// Store implements repositories.ListStore with a map guarded by a RWMutex.
type Store struct {
	mu    sync.RWMutex
	lists map[string][]models.Entry
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{lists: make(map[string][]models.Entry)}
}

// Load returns a copy of the shopper's list.
func (s *Store) Load(_ context.Context, shopperID string) (*models.List, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.NewList(slices.Clone(s.lists[shopperID])), nil
}

// Save stores a copy of list.
func (s *Store) Save(_ context.Context, shopperID string, list *models.List) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[shopperID] = slices.Clone(list.Entries)
	return nil
}
