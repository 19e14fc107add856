package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ghuser/budgeteer/pkg/telemetry"
	catalogdomain "github.com/ghuser/budgeteer/services/catalog/domain"
	"github.com/ghuser/budgeteer/services/catalog/domain/models"
	domainsvcs "github.com/ghuser/budgeteer/services/catalog/domain/services"
)

// SearchParams is the raw, string-typed form of a search as received from a
// query string or CLI flags.
type SearchParams struct {
	Query    string
	Store    string
	Category string
	MinPrice string
	MaxPrice string
	Sort     string

	StartMessage string
	EmptyMessage string
}

// ParseQuery converts raw params into a Query. Blank facets are disabled;
// malformed price bounds or sort orders wrap ErrInvalidQuery.
func ParseQuery(p SearchParams) (models.Query, error) {
	sort, err := models.ParseSortOrder(strings.TrimSpace(p.Sort))
	if err != nil {
		return models.Query{}, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidQuery, err)
	}
	minPrice, err := parseBound("min_price", p.MinPrice)
	if err != nil {
		return models.Query{}, err
	}
	maxPrice, err := parseBound("max_price", p.MaxPrice)
	if err != nil {
		return models.Query{}, err
	}
	return models.Query{
		Text: p.Query,
		Filters: models.Filters{
			Store:    strings.TrimSpace(p.Store),
			Category: strings.TrimSpace(p.Category),
			MinPrice: minPrice,
			MaxPrice: maxPrice,
		},
		Sort: sort,
		Messages: models.ViewMessages{
			Start: strings.TrimSpace(p.StartMessage),
			Empty: strings.TrimSpace(p.EmptyMessage),
		},
	}, nil
}

func parseBound(name, raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: not a number", catalogdomain.ErrInvalidQuery, name)
	}
	return &d, nil
}

// SearchService runs catalog searches against the current snapshot.
type SearchService struct {
	catalog *CatalogService
	metrics *telemetry.Metrics
}

// NewSearchService returns a SearchService reading from catalog.
func NewSearchService(catalog *CatalogService, metrics *telemetry.Metrics) *SearchService {
	return &SearchService{catalog: catalog, metrics: metrics}
}

// Search returns the start view for a blank query, otherwise the resolved
// results or the empty view. The start and empty headlines come from
// q.Messages.
func (s *SearchService) Search(ctx context.Context, q models.Query) models.ResultView {
	msgs := q.Messages.OrDefault()
	var view models.ResultView
	if strings.TrimSpace(q.Text) == "" {
		view = models.StartView(msgs.Start)
	} else if results := domainsvcs.Search(s.catalog.Records(), q, s.catalog.Today()); len(results) == 0 {
		view = models.EmptyView(msgs.Empty)
	} else {
		view = models.ResultsView("", results)
	}
	s.metrics.Searched(ctx, string(view.State))
	return view
}

// Facets summarizes the current catalog for filter controls.
func (s *SearchService) Facets(_ context.Context) domainsvcs.Facets {
	return domainsvcs.FacetsOf(s.catalog.Records())
}
