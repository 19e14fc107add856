package services

import (
	"strings"

	"github.com/shopspring/decimal"

	catalogmodels "github.com/ghuser/budgeteer/services/catalog/domain/models"
)

type keywordProducts struct {
	keyword  string
	products []string
}

// plannerKeywords are checked in this order; every keyword found in the
// prompt contributes its products.
var plannerKeywords = []keywordProducts{
	{"snacks", []string{"Lays Chips 200g", "Coca-Cola 2L"}},
	{"party", []string{"Lays Chips 200g", "Coca-Cola 2L", "Milk 2% 2L"}},
	{"groceries", []string{"Milk 2% 2L", "Bread White Loaf", "Eggs Large Dozen", "Butter 454g"}},
	{"dinner", []string{"Bread White Loaf", "Butter 454g", "Milk 2% 2L"}},
	{"family", []string{"Milk 2% 2L", "Bread White Loaf", "Eggs Large Dozen", "Lays Chips 200g"}},
}

// DefaultProducts is the plan when no keyword matches.
var DefaultProducts = []string{"Milk 2% 2L", "Bread White Loaf", "Eggs Large Dozen"}

// PlannedProducts returns the deduplicated product names a prompt asks for.
func PlannedProducts(prompt string) []string {
	lower := strings.ToLower(prompt)
	var picked []string
	for _, kw := range plannerKeywords {
		if strings.Contains(lower, kw.keyword) {
			picked = append(picked, kw.products...)
		}
	}
	if len(picked) == 0 {
		picked = DefaultProducts
	}

	seen := make(map[string]struct{}, len(picked))
	out := make([]string, 0, len(picked))
	for _, p := range picked {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Cheapest returns the lowest-priced record whose name contains product,
// case-insensitively. The first one wins a tie.
func Cheapest(product string, records []catalogmodels.PriceRecord) (catalogmodels.PriceRecord, bool) {
	needle := strings.ToLower(product)
	var best catalogmodels.PriceRecord
	found := false
	for _, r := range records {
		if !strings.Contains(strings.ToLower(r.ItemName), needle) {
			continue
		}
		if !found || r.CurrentPrice.LessThan(best.CurrentPrice) {
			best, found = r, true
		}
	}
	return best, found
}

// ApplyBudget keeps items in order while the running total stays within
// budget; an item that would overshoot is skipped and later cheaper items
// may still fit. A nil or zero budget means no limit.
func ApplyBudget(items []catalogmodels.PriceRecord, budget *decimal.Decimal) []catalogmodels.PriceRecord {
	if budget == nil || budget.IsZero() {
		return items
	}
	total := decimal.Zero
	out := make([]catalogmodels.PriceRecord, 0, len(items))
	for _, it := range items {
		if next := total.Add(it.CurrentPrice); next.LessThanOrEqual(*budget) {
			out = append(out, it)
			total = next
		}
	}
	return out
}

// Total sums the current prices of items.
func Total(items []catalogmodels.PriceRecord) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.CurrentPrice)
	}
	return sum
}

// MockPlan drafts a list offline: the cheapest record for each planned
// product, then the budget.
func MockPlan(prompt string, records []catalogmodels.PriceRecord, budget *decimal.Decimal) []catalogmodels.PriceRecord {
	items := make([]catalogmodels.PriceRecord, 0)
	for _, p := range PlannedProducts(prompt) {
		if r, ok := Cheapest(p, records); ok {
			items = append(items, r)
		}
	}
	return ApplyBudget(items, budget)
}
