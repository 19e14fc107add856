package csvfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghuser/budgeteer/pkg/logger"
	catalogdomain "github.com/ghuser/budgeteer/services/catalog/domain"
)

const sample = `item_id,item_name,item_description,current_price,store,category_tags,image_url,price_date
1,Milk 2% 2L,Fresh dairy milk,4.50,Walmart,"food, beverages",https://example.com/milk.jpg,2024-06-10
1,Milk 2% 2L,Fresh dairy milk,4.20,Costco,"food,beverages",,2024-06-11
2,Bread,too,few,fields
x,Bad id,desc,1.00,Walmart,food,,2024-01-01
3,Eggs,Grade A,abc,Walmart,food,,2024-01-01
4,Butter,Salted,5.00,Loblaws,food,,not-a-date
5,Tide,Detergent,14.99,Costco,"household,cleaning",,2024-03-03
`

func TestParse(t *testing.T) {
	records, err := Parse(context.Background(), strings.NewReader(sample), logger.Discard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected 3 valid records, got %d", len(records))
	}
	if diff := cmp.Diff([]string{"food", "beverages"}, records[0].CategoryTags); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
	if records[1].Store != "Costco" || records[1].CurrentPrice.String() != "4.2" {
		t.Errorf("unexpected second record %+v", records[1])
	}
	if records[2].ItemID != 5 || records[2].PriceDate.String() != "2024-03-03" {
		t.Errorf("unexpected third record %+v", records[2])
	}
}

func TestParse_HeaderOnly(t *testing.T) {
	records, err := Parse(context.Background(), strings.NewReader("item_id,item_name\n"), logger.Discard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestSource_Items(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.csv")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	records, err := NewSource(path, logger.Discard()).Items(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
}

func TestSource_MissingFile(t *testing.T) {
	_, err := NewSource(filepath.Join(t.TempDir(), "nope.csv"), logger.Discard()).Items(context.Background())
	if !errors.Is(err, catalogdomain.ErrCatalogUnavailable) {
		t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
	}
}
