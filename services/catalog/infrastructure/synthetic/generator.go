// Package synthetic generates a deterministic demo catalog used when no
// upstream catalog is reachable.
package synthetic

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/budgeteer/services/catalog/domain/models"
)

// SourceName identifies synthetic data in snapshots and logs.
const SourceName = "synthetic"

const (
	firstItemID          = 1000
	observationsPerStore = 10
	defaultYear          = 2024
)

// Stores are the retailers every synthetic product is stocked at.
var Stores = []string{"Walmart", "Loblaws", "Costco"}

type product struct {
	name       string
	desc       string
	low, high  float64
	categories []string
}

var products = []product{
	{"Samsung 55-inch 4K Smart TV", "55-inch Crystal UHD Smart TV with HDR", 650, 810, []string{"electronics", "entertainment", "home"}},
	{"Johnson's Baby Shampoo", "No tears formula 500ml", 7, 10, []string{"baby", "bath", "hygiene"}},
	{"Dawn Dish Soap (1.12L)", "Ultra dishwashing liquid", 5, 8, []string{"household", "cleaning", "kitchen"}},
	{"Apple iPhone 14", "128GB Smartphone", 800, 1200, []string{"electronics"}},
	{"Tide Laundry Detergent", "2L concentrated formula", 12, 18, []string{"household", "cleaning"}},
	{"Colgate Toothpaste", "Total advanced whitening", 3, 6, []string{"hygiene", "bath"}},
	{"Milk 2% 2L", "Fresh dairy milk", 4, 6, []string{"food", "beverages"}},
	{"Bread White Loaf", "Fresh baked bread", 2, 4, []string{"food"}},
	{"Lays Chips 200g", "Classic potato chips", 2, 4, []string{"snacks", "food"}},
	{"Coca-Cola 2L", "Classic cola soda", 2, 4, []string{"beverages", "food"}},
	{"Eggs Large Dozen", "Grade A large eggs", 3, 5, []string{"food"}},
	{"Butter 454g", "Salted butter", 4, 7, []string{"food"}},
}

// Generator produces the synthetic catalog. The same Seed always yields the
// same records.
type Generator struct {
	Seed uint64
	Year int
}

// New returns a Generator for the given seed dated in 2024.
func New(seed uint64) *Generator {
	return &Generator{Seed: seed, Year: defaultYear}
}

// NewRandom returns a Generator seeded from the clock.
func NewRandom() *Generator {
	return New(uint64(time.Now().UnixNano()))
}

// Items implements repositories.CatalogSource. It never fails.
func (g *Generator) Items(_ context.Context) ([]models.PriceRecord, error) {
	return g.Records(), nil
}

// Records builds every product × store × observation record.
func (g *Generator) Records() []models.PriceRecord {
	year := g.Year
	if year == 0 {
		year = defaultYear
	}
	rng := rand.New(rand.NewPCG(g.Seed, g.Seed^0x9e3779b97f4a7c15))

	out := make([]models.PriceRecord, 0, len(products)*len(Stores)*observationsPerStore)
	itemID := firstItemID
	for _, p := range products {
		for _, store := range Stores {
			base := p.low + rng.Float64()*(p.high-p.low)
			for i := 0; i < observationsPerStore; i++ {
				variance := 0.95 + rng.Float64()*0.1
				out = append(out, models.PriceRecord{
					ItemID:          itemID,
					ItemName:        p.name,
					ItemDescription: p.desc,
					CurrentPrice:    decimal.NewFromFloat(base * variance).Round(2),
					Store:           store,
					CategoryTags:    append([]string(nil), p.categories...),
					ImageURL:        imageURL(p.name),
					PriceDate:       models.NewDate(year, time.Month(1+rng.IntN(12)), 1+rng.IntN(28)),
				})
			}
			itemID++
		}
	}
	return out
}

// ProductNames lists the synthetic product names in catalog order.
func ProductNames() []string {
	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.name
	}
	return names
}

func imageURL(name string) string {
	slug := strings.Join(strings.Fields(strings.ToLower(name)), "-")
	return fmt.Sprintf("https://example.com/%s.jpg", slug)
}
