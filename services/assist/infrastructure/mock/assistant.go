// Package mock is an offline Assistant built on the loaded catalog. It runs
// when ASSIST_MODE=mock or no LLM backend is reachable in development.
package mock

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ghuser/budgeteer/services/assist/domain/models"
	domainsvcs "github.com/ghuser/budgeteer/services/assist/domain/services"
	catalogmodels "github.com/ghuser/budgeteer/services/catalog/domain/models"
	catalogsvcs "github.com/ghuser/budgeteer/services/catalog/domain/services"
)

const maxRows = 10

// Catalog is the snapshot the mock answers from.
type Catalog interface {
	Records() []catalogmodels.PriceRecord
	Today() catalogmodels.Date
}

// Assistant implements repositories.Assistant without any network calls.
type Assistant struct {
	catalog Catalog
}

// NewAssistant returns an Assistant answering from catalog.
func NewAssistant(catalog Catalog) *Assistant {
	return &Assistant{catalog: catalog}
}

// Query answers with the same table layout the backend uses, listing up to
// ten current prices whose name or description mentions any query word.
// Nothing matching yields a prose answer.
func (a *Assistant) Query(_ context.Context, query string) (models.Answer, error) {
	records := a.catalog.Records()
	var hits []catalogmodels.PriceRecord
	for _, word := range strings.Fields(query) {
		if len(word) < 3 {
			continue
		}
		hits = append(hits, catalogsvcs.MatchText(records, word)...)
	}
	hits = catalogsvcs.LatestPrices(catalogsvcs.DedupeByKey(hits), a.catalog.Today())
	hits = catalogsvcs.SortRecords(hits, catalogmodels.SortPriceAsc)
	if len(hits) > maxRows {
		hits = hits[:maxRows]
	}
	if len(hits) == 0 {
		return models.Answer{
			Success:  true,
			Response: fmt.Sprintf("I could not find anything for %q. Try a product name like milk or bread.", query),
		}, nil
	}
	return models.Answer{Success: true, Response: table(hits)}, nil
}

// ShoppingList drafts a list with the keyword planner.
func (a *Assistant) ShoppingList(_ context.Context, prompt string, budget *decimal.Decimal) ([]catalogmodels.PriceRecord, error) {
	return domainsvcs.MockPlan(prompt, a.catalog.Records(), budget), nil
}

func table(rows []catalogmodels.PriceRecord) string {
	var b strings.Builder
	b.WriteString("| Store | Item | Price | Notes |\n")
	b.WriteString("|-------|------|-------|-------|\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | %s | $%s | as of %s |\n", r.Store, r.ItemName, r.CurrentPrice.StringFixed(2), r.PriceDate)
	}
	fmt.Fprintf(&b, "Total: $%s\n", domainsvcs.Total(rows).StringFixed(2))
	return b.String()
}
