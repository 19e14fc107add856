package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ghuser/budgeteer/services/assist/domain/models"
	catalogmodels "github.com/ghuser/budgeteer/services/catalog/domain/models"
)

// Assistant answers free-text questions and drafts shopping lists. Failures
// are reported as one of the assist domain's upstream sentinels.
type Assistant interface {
	Query(ctx context.Context, query string) (models.Answer, error)
	ShoppingList(ctx context.Context, prompt string, budget *decimal.Decimal) ([]catalogmodels.PriceRecord, error)
}
