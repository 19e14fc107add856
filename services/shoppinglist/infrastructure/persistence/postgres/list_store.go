// Package postgres persists shopping lists in the shopping_lists table, one
// JSONB row per shopper.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ghuser/budgeteer/pkg/database"
	"github.com/ghuser/budgeteer/services/shoppinglist/domain/models"
)

const (
	selectList = `SELECT entries FROM shopping_lists WHERE shopper_id = $1`
	upsertList = `INSERT INTO shopping_lists (shopper_id, entries, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (shopper_id) DO UPDATE SET entries = EXCLUDED.entries, updated_at = EXCLUDED.updated_at`
)

// ListStore implements repositories.ListStore against PostgreSQL.
type ListStore struct {
	db *database.Database
}

// NewListStore returns a ListStore using db.
func NewListStore(db *database.Database) *ListStore {
	return &ListStore{db: db}
}

// Load returns the stored list, or an empty one when no row exists.
func (s *ListStore) Load(ctx context.Context, shopperID string) (*models.List, error) {
	var raw []byte
	err := s.db.DB().QueryRowContext(ctx, selectList, shopperID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return models.NewList(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("query shopping list: %w", err)
	}
	var entries []models.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode shopping list: %w", err)
	}
	return models.NewList(entries), nil
}

// Save upserts the whole list in one transaction.
func (s *ListStore) Save(ctx context.Context, shopperID string, list *models.List) error {
	raw, err := json.Marshal(models.NewList(list.Entries).Entries)
	if err != nil {
		return fmt.Errorf("encode shopping list: %w", err)
	}
	return s.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, upsertList, shopperID, raw); err != nil {
			return fmt.Errorf("upsert shopping list: %w", err)
		}
		return nil
	})
}
