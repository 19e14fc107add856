// Package backend loads the catalog from the upstream price backend.
package backend

import (
	"context"
	"fmt"

	"github.com/ghuser/budgeteer/pkg/logger"
	"github.com/ghuser/budgeteer/pkg/upstream"
	catalogdomain "github.com/ghuser/budgeteer/services/catalog/domain"
	"github.com/ghuser/budgeteer/services/catalog/domain/models"
)

// SourceName identifies backend data in snapshots and logs.
const SourceName = "backend"

const itemsPath = "/items"

// itemsResponse is the GET /items envelope.
type itemsResponse struct {
	Success bool                 `json:"success"`
	Items   []models.PriceRecord `json:"items"`
	Error   string               `json:"error,omitempty"`
}

// Source fetches every price record from GET /items.
type Source struct {
	client *upstream.Client
	log    logger.Logger
}

// NewSource returns a Source using client.
func NewSource(client *upstream.Client, log logger.Logger) *Source {
	return &Source{client: client, log: log}
}

// Items implements repositories.CatalogSource. Transport and decode failures
// wrap ErrCatalogUnavailable; success=false wraps ErrCatalogRejected.
// Structurally invalid records are dropped with a warning.
func (s *Source) Items(ctx context.Context) ([]models.PriceRecord, error) {
	var resp itemsResponse
	if err := s.client.GetJSON(ctx, itemsPath, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrCatalogUnavailable, err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: %s", catalogdomain.ErrCatalogRejected, resp.Error)
	}

	out := make([]models.PriceRecord, 0, len(resp.Items))
	for _, r := range resp.Items {
		if err := r.Validate(); err != nil {
			s.log.WarnContext(ctx, "skipping invalid catalog record", "error", err)
			continue
		}
		out = append(out, r)
	}
	return out, nil
}
