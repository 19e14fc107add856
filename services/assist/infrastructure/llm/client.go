// Package llm talks to the upstream backend's LLM endpoints.
package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ghuser/budgeteer/pkg/logger"
	"github.com/ghuser/budgeteer/pkg/upstream"
	assistdomain "github.com/ghuser/budgeteer/services/assist/domain"
	"github.com/ghuser/budgeteer/services/assist/domain/models"
	catalogmodels "github.com/ghuser/budgeteer/services/catalog/domain/models"
)

const (
	queryPath        = "/api/llm/query"
	shoppingListPath = "/api/llm/shopping-list"
)

type queryRequest struct {
	Query string `json:"query"`
}

// Budget is a JSON number; decimal.Decimal would encode as a string.
type shoppingListRequest struct {
	Prompt string   `json:"prompt"`
	Budget *float64 `json:"budget"`
}

type shoppingListResponse struct {
	ShoppingList *struct {
		Items []catalogmodels.PriceRecord `json:"items"`
	} `json:"shopping_list"`
}

// Client implements repositories.Assistant over the shared upstream client.
type Client struct {
	upstream *upstream.Client
	log      logger.Logger
}

// NewClient returns a Client using c.
func NewClient(c *upstream.Client, log logger.Logger) *Client {
	return &Client{upstream: c, log: log}
}

// Query posts a free-text question. A success=false answer is returned as is.
func (c *Client) Query(ctx context.Context, query string) (models.Answer, error) {
	var ans models.Answer
	if err := c.upstream.PostJSON(ctx, queryPath, queryRequest{Query: query}, &ans); err != nil {
		return models.Answer{}, categorize(err)
	}
	return ans, nil
}

// ShoppingList asks the backend to draft a list. budget is sent as null when nil.
func (c *Client) ShoppingList(ctx context.Context, prompt string, budget *decimal.Decimal) ([]catalogmodels.PriceRecord, error) {
	req := shoppingListRequest{Prompt: prompt}
	if budget != nil {
		f := budget.InexactFloat64()
		req.Budget = &f
	}
	var resp shoppingListResponse
	if err := c.upstream.PostJSON(ctx, shoppingListPath, req, &resp); err != nil {
		return nil, categorize(err)
	}
	if resp.ShoppingList == nil {
		return nil, fmt.Errorf("%w: response has no shopping_list", assistdomain.ErrAssistFailed)
	}

	items := make([]catalogmodels.PriceRecord, 0, len(resp.ShoppingList.Items))
	for _, it := range resp.ShoppingList.Items {
		if err := it.Validate(); err != nil {
			c.log.WarnContext(ctx, "skipping invalid generated item", "error", err)
			continue
		}
		items = append(items, it)
	}
	return items, nil
}

// categorize maps transport failures onto the three user-facing categories.
func categorize(err error) error {
	switch {
	case errors.Is(err, upstream.ErrUnreachable):
		return fmt.Errorf("%w: %w", assistdomain.ErrAssistUnreachable, err)
	case errors.Is(err, upstream.ErrStatus):
		return fmt.Errorf("%w: %w", assistdomain.ErrAssistUpstream, err)
	default:
		return fmt.Errorf("%w: %w", assistdomain.ErrAssistFailed, err)
	}
}
