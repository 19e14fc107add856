package services

import (
	"context"
	"fmt"

	catalogdomain "github.com/ghuser/budgeteer/services/catalog/domain"
	"github.com/ghuser/budgeteer/services/catalog/domain/models"
	domainsvcs "github.com/ghuser/budgeteer/services/catalog/domain/services"
)

// ItemDetail is everything known about one product at one store.
type ItemDetail struct {
	Current     models.PriceRecord    `json:"current"`
	History     []models.PriceRecord  `json:"history"`
	Stats       domainsvcs.PriceStats `json:"stats"`
	OtherStores []models.PriceRecord  `json:"other_stores"`
}

// DetailService answers item-detail lookups.
type DetailService struct {
	catalog *CatalogService
}

// NewDetailService returns a DetailService reading from catalog.
func NewDetailService(catalog *CatalogService) *DetailService {
	return &DetailService{catalog: catalog}
}

// Detail returns the price history of key, its stats and the same product's
// latest price at every other store.
func (s *DetailService) Detail(_ context.Context, key models.Key) (*ItemDetail, error) {
	records := s.catalog.Records()
	today := s.catalog.Today()

	history := domainsvcs.PriceHistory(records, key)
	if len(history) == 0 {
		return nil, fmt.Errorf("%w: %s", catalogdomain.ErrItemNotFound, key)
	}
	stats, _ := domainsvcs.Stats(history)

	// Resolve in catalog order so equal-distance ties keep the first record.
	same := make([]models.PriceRecord, 0, len(history))
	for _, r := range records {
		if r.Key() == key {
			same = append(same, r)
		}
	}
	current := domainsvcs.LatestPrices(same, today)[0]

	return &ItemDetail{
		Current:     current,
		History:     history,
		Stats:       stats,
		OtherStores: domainsvcs.OtherStores(records, current.ItemName, key.Store, today),
	}, nil
}
