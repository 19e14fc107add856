package services

import (
	"github.com/ghuser/budgeteer/services/catalog/domain/models"
)

// Facets lists the distinct filter values present in a catalog snapshot.
type Facets struct {
	Stores        []string `json:"stores"`
	Categories    []string `json:"categories"`
	ItemCount     int      `json:"item_count"`
	StoreCount    int      `json:"store_count"`
	CategoryCount int      `json:"category_count"`
	RecordCount   int      `json:"record_count"`
}

// Stores returns the distinct store names in first-seen order.
func Stores(records []models.PriceRecord) []string {
	return distinct(records, func(r models.PriceRecord) []string { return []string{r.Store} })
}

// Categories returns the distinct category tags in first-seen order.
func Categories(records []models.PriceRecord) []string {
	return distinct(records, func(r models.PriceRecord) []string { return r.CategoryTags })
}

func distinct(records []models.PriceRecord, values func(models.PriceRecord) []string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range records {
		for _, v := range values(r) {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// FacetsOf builds the facet summary of a snapshot. ItemCount counts distinct
// item ids, not (item_id, store) keys.
func FacetsOf(records []models.PriceRecord) Facets {
	ids := make(map[int]struct{})
	for _, r := range records {
		ids[r.ItemID] = struct{}{}
	}
	stores := Stores(records)
	categories := Categories(records)
	return Facets{
		Stores:        stores,
		Categories:    categories,
		ItemCount:     len(ids),
		StoreCount:    len(stores),
		CategoryCount: len(categories),
		RecordCount:   len(records),
	}
}
