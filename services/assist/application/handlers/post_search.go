package handlers

import (
	"net/http"

	"github.com/ghuser/budgeteer/pkg/errhttp"
	"github.com/ghuser/budgeteer/pkg/httpx"
	pkgvalidator "github.com/ghuser/budgeteer/pkg/validator"
	appsvcs "github.com/ghuser/budgeteer/services/assist/application/services"
	catalogmodels "github.com/ghuser/budgeteer/services/catalog/domain/models"
)

// SearchRequest is the request body for POST /assist/search.
type SearchRequest struct {
	Query string `json:"query" validate:"required,notblank,max=500" example:"cheapest milk this week"`
} // @name AssistSearchRequest

// SearchResponse is a result view built from the assistant's answer.
type SearchResponse = catalogmodels.ResultView // @name AssistSearchResponse

// PostSearchHandler handles POST /assist/search requests.
type PostSearchHandler struct {
	svc *appsvcs.Services
}

// NewPostSearchHandler returns a PostSearchHandler backed by the given services.
func NewPostSearchHandler(svc *appsvcs.Services) *PostSearchHandler {
	return &PostSearchHandler{svc: svc}
}

// Execute runs an AI search.
//
//	@Summary		AI search
//	@Description	Sends the query to the assistant and maps the items it names onto current catalog prices. Prose answers come back in the message state.
//	@Tags			assist
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SearchRequest	true	"Query"
//	@Success		200		{object}	SearchResponse
//	@Failure		422		{object}	httpx.ErrorResponse
//	@Failure		502		{object}	httpx.ErrorResponse
//	@Failure		503		{object}	httpx.ErrorResponse
//	@Router			/assist/search [post]
func (h *PostSearchHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[SearchRequest](w, r)
	if !ok {
		return
	}
	view, err := h.svc.Assist.Search(r.Context(), req.Query)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}
