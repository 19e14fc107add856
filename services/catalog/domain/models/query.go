package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SortOrder selects how search results are ordered.
type SortOrder string

const (
	SortNone      SortOrder = ""
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"
	SortName      SortOrder = "name"
)

// ParseSortOrder validates s. The empty string means "no ordering".
func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(s); o {
	case SortNone, SortPriceAsc, SortPriceDesc, SortName:
		return o, nil
	default:
		return SortNone, fmt.Errorf("unknown sort order %q", s)
	}
}

// Filters holds the facet selections. Every facet is optional; an empty
// string or nil bound disables it. Active facets combine with AND.
type Filters struct {
	Store    string
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// Query is the full input of the search pipeline.
type Query struct {
	Text     string
	Filters  Filters
	Sort     SortOrder
	Messages ViewMessages
}
