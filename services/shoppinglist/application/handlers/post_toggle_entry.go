package handlers

import (
	"net/http"

	"github.com/ghuser/budgeteer/pkg/errhttp"
	"github.com/ghuser/budgeteer/pkg/httpx"
	appsvcs "github.com/ghuser/budgeteer/services/shoppinglist/application/services"
)

// PostToggleEntryHandler handles POST /shopping-list/entries/{entryID}/toggle requests.
type PostToggleEntryHandler struct {
	svc *appsvcs.Services
}

// NewPostToggleEntryHandler returns a PostToggleEntryHandler backed by the given services.
func NewPostToggleEntryHandler(svc *appsvcs.Services) *PostToggleEntryHandler {
	return &PostToggleEntryHandler{svc: svc}
}

// Execute flips an entry's checked flag.
//
//	@Summary		Toggle entry
//	@Tags			shopping-list
//	@Produce		json
//	@Param			entryID	path		int	true	"Entry id"
//	@Success		200		{object}	EntryResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		404		{object}	httpx.ErrorResponse
//	@Router			/shopping-list/entries/{entryID}/toggle [post]
func (h *PostToggleEntryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	shopper, ok := shopperID(w, r)
	if !ok {
		return
	}
	id, ok := entryID(w, r)
	if !ok {
		return
	}
	entry, err := h.svc.List.Toggle(r.Context(), shopper, id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, entry)
}
