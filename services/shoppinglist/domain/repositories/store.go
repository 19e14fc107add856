package repositories

import (
	"context"

	"github.com/ghuser/budgeteer/services/shoppinglist/domain/models"
)

// ListStore persists whole shopping lists, one per shopper. Load returns an
// empty list (not an error) when nothing has been saved. Save replaces the
// stored snapshot; concurrent writers are last-write-wins.
type ListStore interface {
	Load(ctx context.Context, shopperID string) (*models.List, error)
	Save(ctx context.Context, shopperID string, list *models.List) error
}
