package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ghuser/budgeteer/pkg/logger"
	"github.com/ghuser/budgeteer/pkg/telemetry"
	assistdomain "github.com/ghuser/budgeteer/services/assist/domain"
	"github.com/ghuser/budgeteer/services/assist/domain/models"
	"github.com/ghuser/budgeteer/services/assist/domain/repositories"
	domainsvcs "github.com/ghuser/budgeteer/services/assist/domain/services"
	catalogmodels "github.com/ghuser/budgeteer/services/catalog/domain/models"
	catalogsvcs "github.com/ghuser/budgeteer/services/catalog/domain/services"
)

// View titles for AI search outcomes.
const (
	SearchFailedTitle = "AI search failed"
	NoResultsTitle    = "No AI results found"
	NoCatalogTitle    = "No matching items found in database"
	MessageTitle      = "Budgie says"
)

// CatalogReader is the catalog snapshot AI answers are mapped onto.
type CatalogReader interface {
	Records() []catalogmodels.PriceRecord
	Today() catalogmodels.Date
}

// ListAdder saves generated names to a shopper's list.
type ListAdder interface {
	AddMany(ctx context.Context, shopperID string, names []string) (int, error)
}

// AssistService runs AI search and list generation against an Assistant.
type AssistService struct {
	assistant repositories.Assistant
	catalog   CatalogReader
	lists     ListAdder
	source    string
	metrics   *telemetry.Metrics
	log       logger.Logger
}

// NewAssistService returns an AssistService. source names the assistant
// (backend or mock) in generated plans and metrics.
func NewAssistService(assistant repositories.Assistant, source string, catalog CatalogReader, lists ListAdder, metrics *telemetry.Metrics, log logger.Logger) *AssistService {
	return &AssistService{assistant: assistant, source: source, catalog: catalog, lists: lists, metrics: metrics, log: log}
}

// Search asks the assistant and maps its answer onto current catalog prices.
// Assistant-supplied item names are used when present, else names are read
// from a table answer; prose answers become a message view.
func (s *AssistService) Search(ctx context.Context, query string) (catalogmodels.ResultView, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return catalogmodels.ResultView{}, assistdomain.ErrBlankPrompt
	}

	ans, err := s.assistant.Query(ctx, query)
	if err != nil {
		s.metrics.AssistRequested(ctx, "search", "error")
		s.log.WarnContext(ctx, "AI search failed", "source", s.source, "error", err)
		return catalogmodels.ResultView{}, fmt.Errorf("ai search: %w", err)
	}
	view := s.viewFor(query, ans)
	s.metrics.AssistRequested(ctx, "search", string(view.State))
	return view, nil
}

func (s *AssistService) viewFor(query string, ans models.Answer) catalogmodels.ResultView {
	if !ans.Success {
		return catalogmodels.EmptyView(SearchFailedTitle)
	}

	names := ans.ItemNames
	if len(names) == 0 {
		if !domainsvcs.IsTable(ans.Response) {
			return catalogmodels.MessageView(MessageTitle, MessageTitle+": "+ans.Response)
		}
		names = domainsvcs.TableItemNames(ans.Response)
	}
	if len(names) == 0 {
		return catalogmodels.EmptyView(NoResultsTitle)
	}

	today := s.catalog.Today()
	items := domainsvcs.LookupItems(names, s.catalog.Records(), today)
	if len(items) == 0 {
		return catalogmodels.EmptyView(NoCatalogTitle)
	}
	// Differently named records of one item at one store collapse to one row.
	items = catalogsvcs.LatestPrices(items, today)
	return catalogmodels.ResultsView(`AI Results: "`+query+`"`, items)
}

// GenerateList drafts a shopping list for prompt within an optional budget.
func (s *AssistService) GenerateList(ctx context.Context, prompt string, budget *decimal.Decimal) (models.Plan, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return models.Plan{}, assistdomain.ErrBlankPrompt
	}
	if budget != nil && budget.IsNegative() {
		return models.Plan{}, assistdomain.ErrInvalidBudget
	}

	items, err := s.assistant.ShoppingList(ctx, prompt, budget)
	if err != nil {
		s.metrics.AssistRequested(ctx, "generate", "error")
		s.log.WarnContext(ctx, "AI list generation failed", "source", s.source, "error", err)
		return models.Plan{}, fmt.Errorf("generate list: %w", err)
	}
	s.metrics.AssistRequested(ctx, "generate", "ok")
	return models.Plan{
		Items:  items,
		Total:  domainsvcs.Total(items),
		Budget: budget,
		Source: s.source,
	}, nil
}

// SaveList adds every generated name to the shopper's list and reports how
// many were added.
func (s *AssistService) SaveList(ctx context.Context, shopperID string, names []string) (int, error) {
	n, err := s.lists.AddMany(ctx, shopperID, names)
	if err != nil {
		return 0, fmt.Errorf("save generated list: %w", err)
	}
	s.metrics.AssistRequested(ctx, "save", "ok")
	return n, nil
}
