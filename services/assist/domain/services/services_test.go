package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogmodels "github.com/ghuser/budgeteer/services/catalog/domain/models"
)

func rec(id int, name, store, price, date string) catalogmodels.PriceRecord {
	return catalogmodels.PriceRecord{
		ItemID:       id,
		ItemName:     name,
		CurrentPrice: decimal.RequireFromString(price),
		Store:        store,
		PriceDate:    catalogmodels.MustParseDate(date),
	}
}

func names(records []catalogmodels.PriceRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ItemName + "@" + r.Store
	}
	return out
}

func TestTableItemNames(t *testing.T) {
	response := "Here is the cheapest option:\n" +
		"| Store | Item | Price | Notes |\n" +
		"|-------|------|-------|-------|\n" +
		"| Costco | Milk 2% 2L | $4.20 | cheapest |\n" +
		"|  | Bread White Loaf | $2.50 | |\n" +
		"| Walmart | |  | |\n" +
		"Total: $6.70 |\n"

	got := TableItemNames(response)
	want := []string{"Milk 2% 2L", "$2.50"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TableItemNames mismatch (-want +got):\n%s", diff)
	}
}

func TestIsTable(t *testing.T) {
	assert.True(t, IsTable("| a | b |"))
	assert.False(t, IsTable("Milk is cheapest at Costco."))
}

func TestTableItemNames_NoRows(t *testing.T) {
	assert.Empty(t, TableItemNames("| Store | Item |\n|---|---|"))
	assert.NotNil(t, TableItemNames(""))
}

func TestMatchName(t *testing.T) {
	records := []catalogmodels.PriceRecord{
		rec(1, "Milk 2% 2L", "Walmart", "4.50", "2024-06-01"),
		rec(2, "Milk", "Costco", "3.90", "2024-06-01"),
		rec(3, "Chocolate Milk 1L", "Loblaws", "2.99", "2024-06-01"),
	}

	t.Run("exact wins over partial", func(t *testing.T) {
		assert.Equal(t, []string{"Milk@Costco"}, names(MatchName("MILK", records)))
	})
	t.Run("partial both directions", func(t *testing.T) {
		assert.Equal(t, []string{"Milk 2% 2L@Walmart", "Milk@Costco"}, names(MatchName("Walmart Milk 2% 2L family size", records)))
		assert.Equal(t, []string{"Chocolate Milk 1L@Loblaws"}, names(MatchName("chocolate", records)))
	})
	t.Run("blank matches nothing", func(t *testing.T) {
		assert.Empty(t, MatchName("  ", records))
	})
}

func TestLookupItems(t *testing.T) {
	today := catalogmodels.MustParseDate("2024-06-12")
	records := []catalogmodels.PriceRecord{
		rec(1, "Milk 2% 2L", "Walmart", "4.50", "2024-05-01"),
		rec(1, "Milk 2% 2L", "Walmart", "4.70", "2024-06-10"),
		rec(2, "Milk 2% 2L", "Costco", "4.20", "2024-06-11"),
		rec(3, "Bread White Loaf", "Walmart", "2.50", "2024-06-11"),
	}

	got := LookupItems([]string{"Milk 2% 2L", "milk", "Bread", "Caviar"}, records, today)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Milk 2% 2L@Walmart", "Milk 2% 2L@Costco", "Bread White Loaf@Walmart"}, names(got))
	assert.True(t, got[0].CurrentPrice.Equal(decimal.RequireFromString("4.70")), "nearest date wins")
}

func TestPlannedProducts(t *testing.T) {
	tests := []struct {
		prompt string
		want   []string
	}{
		{"something for SNACKS", []string{"Lays Chips 200g", "Coca-Cola 2L"}},
		{"snacks for a party", []string{"Lays Chips 200g", "Coca-Cola 2L", "Milk 2% 2L"}},
		{"family dinner", []string{"Bread White Loaf", "Butter 454g", "Milk 2% 2L", "Eggs Large Dozen", "Lays Chips 200g"}},
		{"whatever", DefaultProducts},
	}
	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, PlannedProducts(tt.prompt)); diff != "" {
				t.Errorf("PlannedProducts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMockPlan(t *testing.T) {
	records := []catalogmodels.PriceRecord{
		rec(1, "Lays Chips 200g", "Walmart", "3.50", "2024-06-01"),
		rec(2, "Lays Chips 200g", "Costco", "3.20", "2024-06-01"),
		rec(3, "Coca-Cola 2L", "Walmart", "2.99", "2024-06-01"),
		rec(4, "Milk 2% 2L", "Costco", "4.20", "2024-06-01"),
	}

	t.Run("cheapest per product", func(t *testing.T) {
		got := MockPlan("party", records, nil)
		assert.Equal(t, []string{"Lays Chips 200g@Costco", "Coca-Cola 2L@Walmart", "Milk 2% 2L@Costco"}, names(got))
		assert.True(t, Total(got).Equal(decimal.RequireFromString("10.39")))
	})

	t.Run("greedy budget skips what does not fit", func(t *testing.T) {
		budget := decimal.RequireFromString("7.50")
		got := MockPlan("party", records, &budget)
		assert.Equal(t, []string{"Lays Chips 200g@Costco", "Coca-Cola 2L@Walmart"}, names(got))
	})

	t.Run("budget boundary is inclusive", func(t *testing.T) {
		budget := decimal.RequireFromString("6.19")
		assert.Len(t, MockPlan("snacks", records, &budget), 2)
	})

	t.Run("zero budget means no limit", func(t *testing.T) {
		zero := decimal.Zero
		assert.Len(t, MockPlan("party", records, &zero), 3)
	})

	t.Run("products missing from catalog are dropped", func(t *testing.T) {
		assert.Equal(t, []string{"Milk 2% 2L@Costco"}, names(MockPlan("groceries", records, nil)))
	})
}
