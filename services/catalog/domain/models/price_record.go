package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// PriceRecord is one observed price of one product at one store on one date.
// Records are immutable once loaded; several records share an ItemID across
// stores and dates.
type PriceRecord struct {
	ItemID          int             `json:"item_id"`
	ItemName        string          `json:"item_name"`
	ItemDescription string          `json:"item_description"`
	CurrentPrice    decimal.Decimal `json:"current_price"`
	Store           string          `json:"store"`
	CategoryTags    []string        `json:"category_tags"`
	ImageURL        string          `json:"image_url,omitempty"`
	PriceDate       Date            `json:"price_date"`
}

// Key identifies a product at a store. Display uniqueness is defined on Key,
// not on ItemID alone.
type Key struct {
	ItemID int
	Store  string
}

func (k Key) String() string {
	return fmt.Sprintf("%d_%s", k.ItemID, k.Store)
}

// Key returns the (item_id, store) key of r.
func (r PriceRecord) Key() Key {
	return Key{ItemID: r.ItemID, Store: r.Store}
}

// HasCategory reports whether category is one of r's tags.
func (r PriceRecord) HasCategory(category string) bool {
	for _, tag := range r.CategoryTags {
		if tag == category {
			return true
		}
	}
	return false
}

// Validate checks the structural constraints of a loaded record.
func (r PriceRecord) Validate() error {
	if strings.TrimSpace(r.ItemName) == "" {
		return fmt.Errorf("item %d: name must not be empty", r.ItemID)
	}
	if strings.TrimSpace(r.Store) == "" {
		return fmt.Errorf("item %d: store must not be empty", r.ItemID)
	}
	if r.CurrentPrice.IsNegative() {
		return fmt.Errorf("item %d: price must not be negative (got %s)", r.ItemID, r.CurrentPrice)
	}
	if r.PriceDate.IsZero() {
		return fmt.Errorf("item %d: price date must be set", r.ItemID)
	}
	return nil
}
