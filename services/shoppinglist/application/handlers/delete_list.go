package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/budgeteer/pkg/errhttp"
	"github.com/ghuser/budgeteer/pkg/httpx"
	appsvcs "github.com/ghuser/budgeteer/services/shoppinglist/application/services"
)

// DeleteListHandler handles DELETE /shopping-list requests.
type DeleteListHandler struct {
	svc *appsvcs.Services
}

// NewDeleteListHandler returns a DeleteListHandler backed by the given services.
func NewDeleteListHandler(svc *appsvcs.Services) *DeleteListHandler {
	return &DeleteListHandler{svc: svc}
}

// Execute clears the caller's list. The call is destructive and must carry
// confirm=true.
//
//	@Summary		Clear shopping list
//	@Tags			shopping-list
//	@Produce		json
//	@Param			confirm	query		bool	true	"Must be true"
//	@Success		200		{object}	ListResponse
//	@Failure		428		{object}	httpx.ErrorResponse
//	@Router			/shopping-list [delete]
func (h *DeleteListHandler) Execute(w http.ResponseWriter, r *http.Request) {
	shopper, ok := shopperID(w, r)
	if !ok {
		return
	}
	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	view, err := h.svc.List.Clear(r.Context(), shopper, confirmed)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}
