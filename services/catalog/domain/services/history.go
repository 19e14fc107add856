package services

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/ghuser/budgeteer/services/catalog/domain/models"
)

// PriceStats summarizes a price history. Average is rounded to cents.
type PriceStats struct {
	Min     decimal.Decimal `json:"min"`
	Max     decimal.Decimal `json:"max"`
	Average decimal.Decimal `json:"average"`
	Count   int             `json:"count"`
}

// PriceHistory returns every record of item at store, newest first.
func PriceHistory(records []models.PriceRecord, key models.Key) []models.PriceRecord {
	out := make([]models.PriceRecord, 0)
	for _, r := range records {
		if r.Key() == key {
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, func(a, b models.PriceRecord) int {
		return b.PriceDate.Time().Compare(a.PriceDate.Time())
	})
	return out
}

// Stats computes min, max and mean over history. ok is false for an empty
// history.
func Stats(history []models.PriceRecord) (PriceStats, bool) {
	if len(history) == 0 {
		return PriceStats{}, false
	}
	s := PriceStats{
		Min:   history[0].CurrentPrice,
		Max:   history[0].CurrentPrice,
		Count: len(history),
	}
	sum := decimal.Zero
	for _, r := range history {
		if r.CurrentPrice.LessThan(s.Min) {
			s.Min = r.CurrentPrice
		}
		if r.CurrentPrice.GreaterThan(s.Max) {
			s.Max = r.CurrentPrice
		}
		sum = sum.Add(r.CurrentPrice)
	}
	s.Average = sum.Div(decimal.NewFromInt(int64(len(history)))).Round(2)
	return s, true
}

// OtherStores returns, for each store other than exclude that sells a
// product with exactly name, the record closest to today.
func OtherStores(records []models.PriceRecord, name, exclude string, today models.Date) []models.PriceRecord {
	same := make([]models.PriceRecord, 0)
	for _, r := range records {
		if r.ItemName == name && r.Store != exclude {
			same = append(same, r)
		}
	}
	return LatestPricesBy(same, today, func(r models.PriceRecord) string { return r.Store })
}
