package handlers

import (
	"net/http"

	"github.com/ghuser/budgeteer/pkg/errhttp"
	"github.com/ghuser/budgeteer/pkg/httpx"
	appsvcs "github.com/ghuser/budgeteer/services/catalog/application/services"
	"github.com/ghuser/budgeteer/services/catalog/domain/models"
)

// SearchResponse is the result of a catalog search.
type SearchResponse = models.ResultView // @name SearchResponse

// GetSearchHandler handles GET /catalog/search requests.
type GetSearchHandler struct {
	svc *appsvcs.Services
}

// NewGetSearchHandler returns a GetSearchHandler backed by the given services.
func NewGetSearchHandler(svc *appsvcs.Services) *GetSearchHandler {
	return &GetSearchHandler{svc: svc}
}

// Execute searches the catalog.
//
//	@Summary		Search catalog
//	@Description	Case-insensitive text search over item name and description, with optional store, category and inclusive price facets. A blank query returns the start state.
//	@Tags			catalog
//	@Produce		json
//	@Param			q			query		string	false	"Search text"
//	@Param			store		query		string	false	"Exact store name"
//	@Param			category	query		string	false	"Category tag"
//	@Param			min_price	query		number	false	"Inclusive lower price bound"
//	@Param			max_price	query		number	false	"Inclusive upper price bound"
//	@Param			sort		query		string	false	"price-asc | price-desc | name"
//	@Param			start_message	query	string	false	"Headline for the start state"
//	@Param			empty_message	query	string	false	"Headline for the empty state"
//	@Success		200			{object}	SearchResponse
//	@Failure		400			{object}	httpx.ErrorResponse
//	@Router			/catalog/search [get]
func (h *GetSearchHandler) Execute(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	q, err := appsvcs.ParseQuery(appsvcs.SearchParams{
		Query:    qs.Get("q"),
		Store:    qs.Get("store"),
		Category: qs.Get("category"),
		MinPrice: qs.Get("min_price"),
		MaxPrice: qs.Get("max_price"),
		Sort:     qs.Get("sort"),

		StartMessage: qs.Get("start_message"),
		EmptyMessage: qs.Get("empty_message"),
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, h.svc.Search.Search(r.Context(), q))
}
