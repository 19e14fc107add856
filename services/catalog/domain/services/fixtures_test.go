package services

import (
	"github.com/shopspring/decimal"

	"github.com/ghuser/budgeteer/services/catalog/domain/models"
)

func rec(id int, name, store, price, date string, tags ...string) models.PriceRecord {
	return models.PriceRecord{
		ItemID:          id,
		ItemName:        name,
		ItemDescription: name + " description",
		CurrentPrice:    decimal.RequireFromString(price),
		Store:           store,
		CategoryTags:    tags,
		PriceDate:       models.MustParseDate(date),
	}
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
