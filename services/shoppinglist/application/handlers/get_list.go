package handlers

import (
	"net/http"

	"github.com/ghuser/budgeteer/pkg/errhttp"
	"github.com/ghuser/budgeteer/pkg/httpx"
	appsvcs "github.com/ghuser/budgeteer/services/shoppinglist/application/services"
)

// ListResponse is the shopper's list with counts. Message is set only when
// the list is empty.
type ListResponse = appsvcs.ListView // @name ListResponse

// GetListHandler handles GET /shopping-list requests.
type GetListHandler struct {
	svc *appsvcs.Services
}

// NewGetListHandler returns a GetListHandler backed by the given services.
func NewGetListHandler(svc *appsvcs.Services) *GetListHandler {
	return &GetListHandler{svc: svc}
}

// Execute returns the caller's shopping list.
//
//	@Summary		Get shopping list
//	@Tags			shopping-list
//	@Produce		json
//	@Success		200	{object}	ListResponse
//	@Failure		401	{object}	httpx.ErrorResponse
//	@Router			/shopping-list [get]
func (h *GetListHandler) Execute(w http.ResponseWriter, r *http.Request) {
	shopper, ok := shopperID(w, r)
	if !ok {
		return
	}
	view, err := h.svc.List.Get(r.Context(), shopper)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}
