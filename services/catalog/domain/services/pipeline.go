package services

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ghuser/budgeteer/services/catalog/domain/models"
)

// MatchText returns the records whose name or description contains text,
// case-insensitively. text is trimmed first; callers must treat an empty
// text as "no search" before calling.
func MatchText(records []models.PriceRecord, text string) []models.PriceRecord {
	needle := strings.ToLower(strings.TrimSpace(text))
	out := make([]models.PriceRecord, 0)
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.ItemName), needle) ||
			strings.Contains(strings.ToLower(r.ItemDescription), needle) {
			out = append(out, r)
		}
	}
	return out
}

// DedupeByKey keeps the first record of each (item_id, store) pair and drops
// the rest, preserving order.
func DedupeByKey(records []models.PriceRecord) []models.PriceRecord {
	seen := make(map[models.Key]struct{}, len(records))
	out := make([]models.PriceRecord, 0, len(records))
	for _, r := range records {
		if _, dup := seen[r.Key()]; dup {
			continue
		}
		seen[r.Key()] = struct{}{}
		out = append(out, r)
	}
	return out
}

// ApplyFilters keeps the records that satisfy every active facet. Price
// bounds are inclusive.
func ApplyFilters(records []models.PriceRecord, f models.Filters) []models.PriceRecord {
	out := make([]models.PriceRecord, 0, len(records))
	for _, r := range records {
		if f.Store != "" && r.Store != f.Store {
			continue
		}
		if f.Category != "" && !r.HasCategory(f.Category) {
			continue
		}
		if f.MinPrice != nil && r.CurrentPrice.LessThan(*f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && r.CurrentPrice.GreaterThan(*f.MaxPrice) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// SortRecords returns a sorted copy of records. SortNone returns the input
// order unchanged. Sorting is stable, and name order uses English collation.
func SortRecords(records []models.PriceRecord, order models.SortOrder) []models.PriceRecord {
	out := slices.Clone(records)
	switch order {
	case models.SortPriceAsc:
		slices.SortStableFunc(out, func(a, b models.PriceRecord) int {
			return a.CurrentPrice.Cmp(b.CurrentPrice)
		})
	case models.SortPriceDesc:
		slices.SortStableFunc(out, func(a, b models.PriceRecord) int {
			return b.CurrentPrice.Cmp(a.CurrentPrice)
		})
	case models.SortName:
		// collate.Collator keeps scratch buffers; one per call.
		c := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b models.PriceRecord) int {
			return c.CompareString(a.ItemName, b.ItemName)
		})
	}
	return out
}

// Search runs the full pipeline: text match, key dedup, facet filters, sort,
// then latest-price resolution. An empty result is a valid outcome.
func Search(records []models.PriceRecord, q models.Query, today models.Date) []models.PriceRecord {
	matched := DedupeByKey(MatchText(records, q.Text))
	filtered := ApplyFilters(matched, q.Filters)
	sorted := SortRecords(filtered, q.Sort)
	return LatestPrices(sorted, today)
}
