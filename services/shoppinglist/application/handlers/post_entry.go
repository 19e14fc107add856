package handlers

import (
	"net/http"

	"github.com/ghuser/budgeteer/pkg/errhttp"
	"github.com/ghuser/budgeteer/pkg/httpx"
	pkgvalidator "github.com/ghuser/budgeteer/pkg/validator"
	appsvcs "github.com/ghuser/budgeteer/services/shoppinglist/application/services"
	"github.com/ghuser/budgeteer/services/shoppinglist/domain/models"
)

// AddEntryRequest is the request body for POST /shopping-list/entries.
type AddEntryRequest struct {
	Name string `json:"name" validate:"required,notblank,max=200" example:"Milk 2% 2L"`
} // @name AddEntryRequest

// EntryResponse is a single shopping list entry.
type EntryResponse = models.Entry // @name EntryResponse

// PostEntryHandler handles POST /shopping-list/entries requests.
type PostEntryHandler struct {
	svc *appsvcs.Services
}

// NewPostEntryHandler returns a PostEntryHandler backed by the given services.
func NewPostEntryHandler(svc *appsvcs.Services) *PostEntryHandler {
	return &PostEntryHandler{svc: svc}
}

// Execute appends an entry to the caller's list.
//
//	@Summary		Add entry
//	@Description	Appends a free-text entry. Names are trimmed; blank names are rejected.
//	@Tags			shopping-list
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AddEntryRequest	true	"Entry to add"
//	@Success		201		{object}	EntryResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		422		{object}	httpx.ErrorResponse
//	@Router			/shopping-list/entries [post]
func (h *PostEntryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	shopper, ok := shopperID(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[AddEntryRequest](w, r)
	if !ok {
		return
	}
	entry, err := h.svc.List.Add(r.Context(), shopper, req.Name)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, entry)
}
