package handlers

import (
	"net/http"

	"github.com/ghuser/budgeteer/pkg/errhttp"
	appsvcs "github.com/ghuser/budgeteer/services/shoppinglist/application/services"
)

// GetWSHandler handles GET /shopping-list/ws requests.
type GetWSHandler struct {
	svc *appsvcs.Services
}

// NewGetWSHandler returns a GetWSHandler backed by the given services.
func NewGetWSHandler(svc *appsvcs.Services) *GetWSHandler {
	return &GetWSHandler{svc: svc}
}

// Execute upgrades to a WebSocket that first receives the current list and
// then one ListUpdate frame per mutation.
//
//	@Summary	Live shopping list updates
//	@Tags		shopping-list
//	@Success	101
//	@Router		/shopping-list/ws [get]
func (h *GetWSHandler) Execute(w http.ResponseWriter, r *http.Request) {
	shopper, ok := shopperID(w, r)
	if !ok {
		return
	}
	view, err := h.svc.List.Get(r.Context(), shopper)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	h.svc.Hub.Serve(w, r, shopper, appsvcs.ListUpdate{Op: "snapshot", List: view})
}
