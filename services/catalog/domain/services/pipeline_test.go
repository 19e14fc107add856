package services

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghuser/budgeteer/services/catalog/domain/models"
)

func catalog() []models.PriceRecord {
	return []models.PriceRecord{
		rec(1, "Milk 2% 2L", "Walmart", "4.50", "2024-03-01", "food", "beverages"),
		rec(1, "Milk 2% 2L", "Walmart", "4.80", "2024-06-01", "food", "beverages"),
		rec(1, "Milk 2% 2L", "Costco", "4.20", "2024-05-01", "food", "beverages"),
		rec(2, "Bread White Loaf", "Loblaws", "2.99", "2024-05-01", "food"),
		rec(3, "Coca-Cola 2L", "Walmart", "3.00", "2024-05-01", "beverages", "food"),
		rec(4, "Tide", "Costco", "15.00", "2024-05-01", "household"),
	}
}

func names(records []models.PriceRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ItemName + "@" + r.Store
	}
	return out
}

func TestMatchText(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"name substring", "milk", 3},
		{"case-insensitive", "MILK", 3},
		{"trimmed", "  bread ", 1},
		{"description", "description", 6},
		{"no match", "caviar", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchText(catalog(), tt.query); len(got) != tt.want {
				t.Fatalf("MatchText(%q) = %d records, want %d", tt.query, len(got), tt.want)
			}
		})
	}
}

func TestDedupeByKey_KeepsFirst(t *testing.T) {
	got := DedupeByKey(catalog())

	if len(got) != 5 {
		t.Fatalf("expected 5 unique keys, got %d", len(got))
	}
	if got[0].CurrentPrice.String() != "4.5" {
		t.Fatalf("expected the first Walmart milk record to survive, got %s", got[0].CurrentPrice)
	}
	seen := make(map[models.Key]bool)
	for _, r := range got {
		if seen[r.Key()] {
			t.Fatalf("duplicate key %s", r.Key())
		}
		seen[r.Key()] = true
	}
}

func TestApplyFilters(t *testing.T) {
	tests := []struct {
		name    string
		filters models.Filters
		want    []string
	}{
		{"no filters", models.Filters{}, names(catalog())},
		{"store", models.Filters{Store: "Costco"}, []string{"Milk 2% 2L@Costco", "Tide@Costco"}},
		{"category", models.Filters{Category: "household"}, []string{"Tide@Costco"}},
		{"min inclusive", models.Filters{MinPrice: dec("4.80")}, []string{"Milk 2% 2L@Walmart", "Tide@Costco"}},
		{"max inclusive", models.Filters{MaxPrice: dec("2.99")}, []string{"Bread White Loaf@Loblaws"}},
		{"both bounds inclusive", models.Filters{MinPrice: dec("3.00"), MaxPrice: dec("4.20")}, []string{"Milk 2% 2L@Costco", "Coca-Cola 2L@Walmart"}},
		{"conjunctive", models.Filters{Store: "Walmart", Category: "beverages", MaxPrice: dec("4.50")}, []string{"Milk 2% 2L@Walmart", "Coca-Cola 2L@Walmart"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(ApplyFilters(catalog(), tt.filters))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("ApplyFilters mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyFilters_Idempotent(t *testing.T) {
	f := models.Filters{Category: "food", MinPrice: dec("3.00")}
	once := ApplyFilters(catalog(), f)
	twice := ApplyFilters(once, f)

	if diff := cmp.Diff(names(once), names(twice)); diff != "" {
		t.Fatalf("re-applying identical filters changed the result:\n%s", diff)
	}
}

func TestSortRecords(t *testing.T) {
	in := DedupeByKey(catalog())

	t.Run("none keeps order", func(t *testing.T) {
		if diff := cmp.Diff(names(in), names(SortRecords(in, models.SortNone))); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("price ascending", func(t *testing.T) {
		got := SortRecords(in, models.SortPriceAsc)
		if !slices.IsSortedFunc(got, func(a, b models.PriceRecord) int { return a.CurrentPrice.Cmp(b.CurrentPrice) }) {
			t.Fatalf("not ascending: %v", names(got))
		}
	})

	t.Run("price descending", func(t *testing.T) {
		got := SortRecords(in, models.SortPriceDesc)
		if got[0].ItemName != "Tide" {
			t.Fatalf("expected Tide first, got %s", got[0].ItemName)
		}
	})

	t.Run("name", func(t *testing.T) {
		got := SortRecords(in, models.SortName)
		want := []string{"Bread White Loaf@Loblaws", "Coca-Cola 2L@Walmart", "Milk 2% 2L@Walmart", "Milk 2% 2L@Costco", "Tide@Costco"}
		if diff := cmp.Diff(want, names(got)); diff != "" {
			t.Fatalf("name sort mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("input untouched", func(t *testing.T) {
		before := names(in)
		SortRecords(in, models.SortPriceDesc)
		if diff := cmp.Diff(before, names(in)); diff != "" {
			t.Fatal("SortRecords mutated its input")
		}
	})
}

func TestSearch_ResolvesLatest(t *testing.T) {
	q := models.Query{Text: "milk", Sort: models.SortPriceAsc}

	got := Search(catalog(), q, models.MustParseDate("2024-06-12"))

	// Dedup runs before resolution, so the first Walmart row survives.
	want := []string{"Milk 2% 2L@Costco", "Milk 2% 2L@Walmart"}
	if diff := cmp.Diff(want, names(got)); diff != "" {
		t.Fatalf("Search mismatch (-want +got):\n%s", diff)
	}
}
