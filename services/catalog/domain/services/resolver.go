// Package services contains stateless domain services for the catalog bounded
// context. Every function here is pure: it takes a snapshot slice and returns
// a new slice without mutating its input.
package services

import (
	"github.com/ghuser/budgeteer/services/catalog/domain/models"
)

// LatestPrices keeps exactly one record per (item_id, store): the one whose
// price date is closest to today. On equal distance the record seen first
// wins. Output order is the first-occurrence order of each key.
func LatestPrices(records []models.PriceRecord, today models.Date) []models.PriceRecord {
	return resolveNearest(records, today, models.PriceRecord.Key)
}

// LatestPricesBy is LatestPrices with a caller-chosen grouping key. The AI item
// lookup groups by (item_name, store) rather than by item id.
func LatestPricesBy[K comparable](records []models.PriceRecord, today models.Date, key func(models.PriceRecord) K) []models.PriceRecord {
	return resolveNearest(records, today, key)
}

func resolveNearest[K comparable](records []models.PriceRecord, today models.Date, key func(models.PriceRecord) K) []models.PriceRecord {
	type candidate struct {
		record   models.PriceRecord
		distance int
	}

	best := make(map[K]candidate, len(records))
	order := make([]K, 0, len(records))

	for _, r := range records {
		k := key(r)
		distance := r.PriceDate.DaysBetween(today)
		current, seen := best[k]
		if !seen {
			order = append(order, k)
			best[k] = candidate{record: r, distance: distance}
			continue
		}
		if distance < current.distance {
			best[k] = candidate{record: r, distance: distance}
		}
	}

	out := make([]models.PriceRecord, 0, len(order))
	for _, k := range order {
		out = append(out, best[k].record)
	}
	return out
}

// NameStoreKey groups records by exact item name and store.
type NameStoreKey struct {
	Name  string
	Store string
}

// ByNameAndStore is the grouping key used when catalog identity is only known
// through a product name.
func ByNameAndStore(r models.PriceRecord) NameStoreKey {
	return NameStoreKey{Name: r.ItemName, Store: r.Store}
}
