package models

import (
	"github.com/shopspring/decimal"

	catalogmodels "github.com/ghuser/budgeteer/services/catalog/domain/models"
)

// Answer is the assistant's reply to a free-text query. ItemNames, when the
// assistant supplies them, take precedence over parsing Response as a table.
type Answer struct {
	Success   bool     `json:"success"`
	Response  string   `json:"response"`
	ItemNames []string `json:"item_names,omitempty"`
}

// Plan is a generated shopping list with its estimated cost.
type Plan struct {
	Items  []catalogmodels.PriceRecord `json:"items"`
	Total  decimal.Decimal             `json:"total"`
	Budget *decimal.Decimal            `json:"budget,omitempty"`
	Source string                      `json:"source"`
}

// Names returns the item names of the plan in order.
func (p Plan) Names() []string {
	names := make([]string, len(p.Items))
	for i, it := range p.Items {
		names[i] = it.ItemName
	}
	return names
}
