package services

import (
	"context"
	"fmt"

	catalogmodels "github.com/ghuser/budgeteer/services/catalog/domain/models"
	catalogsvcs "github.com/ghuser/budgeteer/services/catalog/domain/services"
	listdomain "github.com/ghuser/budgeteer/services/shoppinglist/domain"
	"github.com/ghuser/budgeteer/services/shoppinglist/domain/repositories"
	domainsvcs "github.com/ghuser/budgeteer/services/shoppinglist/domain/services"
)

// CatalogReader is the catalog snapshot the comparison prices against.
type CatalogReader interface {
	Records() []catalogmodels.PriceRecord
	Today() catalogmodels.Date
}

// CompareService prices shopping lists across stores.
type CompareService struct {
	store   repositories.ListStore
	catalog CatalogReader
	mode    domainsvcs.PriceMode
}

// NewCompareService returns a CompareService using mode for per-store prices.
func NewCompareService(store repositories.ListStore, catalog CatalogReader, mode domainsvcs.PriceMode) *CompareService {
	return &CompareService{store: store, catalog: catalog, mode: mode}
}

// Compare prices the shopper's saved list. An empty list is ErrEmptyList and
// no comparison is attempted.
func (s *CompareService) Compare(ctx context.Context, shopperID string) (*domainsvcs.Comparison, error) {
	l, err := s.store.Load(ctx, shopperID)
	if err != nil {
		return nil, fmt.Errorf("load shopping list: %w", err)
	}
	if l.IsEmpty() {
		return nil, listdomain.ErrEmptyList
	}
	return s.CompareNames(ctx, l.Names())
}

// CompareNames prices an ad-hoc list of entry names.
func (s *CompareService) CompareNames(_ context.Context, names []string) (*domainsvcs.Comparison, error) {
	records := s.catalog.Records()
	c, err := domainsvcs.Compare(names, records, catalogsvcs.Stores(records), s.mode, s.catalog.Today())
	if err != nil {
		return nil, fmt.Errorf("compare prices: %w", err)
	}
	return c, nil
}
