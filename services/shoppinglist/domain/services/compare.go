// Package services contains the cross-store price comparison for shopping
// lists.
package services

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	catalogdomain "github.com/ghuser/budgeteer/services/catalog/domain"
	catalogmodels "github.com/ghuser/budgeteer/services/catalog/domain/models"
	catalogsvcs "github.com/ghuser/budgeteer/services/catalog/domain/services"
	listdomain "github.com/ghuser/budgeteer/services/shoppinglist/domain"
)

// PriceMode selects which observation represents a store's price for an entry.
type PriceMode string

const (
	// PriceCheapest takes the lowest price ever seen at the store.
	PriceCheapest PriceMode = "cheapest"
	// PriceLatest resolves each product to its observation nearest today
	// first, then takes the lowest of those per store.
	PriceLatest PriceMode = "latest"
)

// NoMatchesMessage is reported on a row whose entry matched no product.
const NoMatchesMessage = "No matches found"

// Cell is one entry's price at one store.
type Cell struct {
	Store     string          `json:"store"`
	Available bool            `json:"available"`
	Price     decimal.Decimal `json:"price"`
	ItemName  string          `json:"item_name,omitempty"`
	PriceDate string          `json:"price_date,omitempty"`
}

// Row is one shopping list entry across every store.
type Row struct {
	Entry         string `json:"entry"`
	Cells         []Cell `json:"cells"`
	CheapestStore string `json:"cheapest_store,omitempty"`
	Message       string `json:"message,omitempty"`
}

// StoreTotal is the sum of available prices at one store.
type StoreTotal struct {
	Store string          `json:"store"`
	Total decimal.Decimal `json:"total"`
}

// Comparison is the full cross-store table for a list.
type Comparison struct {
	Mode      PriceMode       `json:"mode"`
	Stores    []string        `json:"stores"`
	Rows      []Row           `json:"rows"`
	Totals    []StoreTotal    `json:"totals"`
	BestStore string          `json:"best_store"`
	BestTotal decimal.Decimal `json:"best_total"`
	Savings   decimal.Decimal `json:"savings"`
}

// Matches reports whether an entry name and a product name match: either
// contains the other, case-insensitively.
func Matches(entryName, productName string) bool {
	e, p := strings.ToLower(entryName), strings.ToLower(productName)
	return strings.Contains(p, e) || strings.Contains(e, p)
}

// BestPricesByStore returns, per store, the cheapest matching record for
// entryName. In PriceLatest mode each (item_id, store) is first resolved to
// its observation nearest today. Ties keep the first record seen.
func BestPricesByStore(entryName string, records []catalogmodels.PriceRecord, mode PriceMode, today catalogmodels.Date) map[string]catalogmodels.PriceRecord {
	matches := make([]catalogmodels.PriceRecord, 0)
	for _, r := range records {
		if Matches(entryName, r.ItemName) {
			matches = append(matches, r)
		}
	}
	if mode == PriceLatest {
		matches = catalogsvcs.LatestPrices(matches, today)
	}

	best := make(map[string]catalogmodels.PriceRecord)
	for _, r := range matches {
		if cur, ok := best[r.Store]; !ok || r.CurrentPrice.LessThan(cur.CurrentPrice) {
			best[r.Store] = r
		}
	}
	return best
}

// Compare builds the comparison table for entries over stores. Stores with no
// match for an entry add nothing to their total and render unavailable.
// The best store is the lowest total, first in store order on a tie; savings
// is the spread between the highest and lowest totals.
func Compare(entries []string, records []catalogmodels.PriceRecord, stores []string, mode PriceMode, today catalogmodels.Date) (*Comparison, error) {
	if len(entries) == 0 {
		return nil, listdomain.ErrEmptyList
	}
	if len(stores) == 0 {
		return nil, fmt.Errorf("compare: no stores in catalog: %w", catalogdomain.ErrCatalogUnavailable)
	}
	if mode == "" {
		mode = PriceCheapest
	}

	totals := make([]StoreTotal, len(stores))
	for i, s := range stores {
		totals[i] = StoreTotal{Store: s, Total: decimal.Zero}
	}

	rows := make([]Row, 0, len(entries))
	for _, name := range entries {
		best := BestPricesByStore(name, records, mode, today)
		row := Row{Entry: name, Cells: make([]Cell, len(stores))}
		var cheapest *Cell
		for i, store := range stores {
			rec, ok := best[store]
			if !ok {
				row.Cells[i] = Cell{Store: store, Price: decimal.Zero}
				continue
			}
			row.Cells[i] = Cell{
				Store:     store,
				Available: true,
				Price:     rec.CurrentPrice,
				ItemName:  rec.ItemName,
				PriceDate: rec.PriceDate.String(),
			}
			totals[i].Total = totals[i].Total.Add(rec.CurrentPrice)
			if cheapest == nil || rec.CurrentPrice.LessThan(cheapest.Price) {
				cheapest = &row.Cells[i]
			}
		}
		if cheapest != nil {
			row.CheapestStore = cheapest.Store
		} else {
			row.Message = NoMatchesMessage
		}
		rows = append(rows, row)
	}

	sorted := slices.Clone(totals)
	slices.SortStableFunc(sorted, func(a, b StoreTotal) int { return a.Total.Cmp(b.Total) })
	lowest, highest := sorted[0], sorted[len(sorted)-1]

	return &Comparison{
		Mode:      mode,
		Stores:    slices.Clone(stores),
		Rows:      rows,
		Totals:    totals,
		BestStore: lowest.Store,
		BestTotal: lowest.Total,
		Savings:   highest.Total.Sub(lowest.Total),
	}, nil
}
