package handlers

import (
	"net/http"

	"github.com/ghuser/budgeteer/pkg/errhttp"
	appsvcs "github.com/ghuser/budgeteer/services/shoppinglist/application/services"
)

// DeleteEntryHandler handles DELETE /shopping-list/entries/{entryID} requests.
type DeleteEntryHandler struct {
	svc *appsvcs.Services
}

// NewDeleteEntryHandler returns a DeleteEntryHandler backed by the given services.
func NewDeleteEntryHandler(svc *appsvcs.Services) *DeleteEntryHandler {
	return &DeleteEntryHandler{svc: svc}
}

// Execute removes an entry.
//
//	@Summary	Remove entry
//	@Tags		shopping-list
//	@Param		entryID	path	int	true	"Entry id"
//	@Success	204
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/shopping-list/entries/{entryID} [delete]
func (h *DeleteEntryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	shopper, ok := shopperID(w, r)
	if !ok {
		return
	}
	id, ok := entryID(w, r)
	if !ok {
		return
	}
	if err := h.svc.List.Remove(r.Context(), shopper, id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
