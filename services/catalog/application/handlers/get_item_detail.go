package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/budgeteer/pkg/errhttp"
	"github.com/ghuser/budgeteer/pkg/httpx"
	appsvcs "github.com/ghuser/budgeteer/services/catalog/application/services"
	catalogdomain "github.com/ghuser/budgeteer/services/catalog/domain"
	"github.com/ghuser/budgeteer/services/catalog/domain/models"
)

// GetItemDetailHandler handles GET /catalog/items/{itemID}/stores/{store} requests.
type GetItemDetailHandler struct {
	svc *appsvcs.Services
}

// NewGetItemDetailHandler returns a GetItemDetailHandler backed by the given services.
func NewGetItemDetailHandler(svc *appsvcs.Services) *GetItemDetailHandler {
	return &GetItemDetailHandler{svc: svc}
}

// Execute returns the price history of one product at one store.
//
//	@Summary		Item detail
//	@Description	Price history (newest first), min/max/average, and the same product's latest price at other stores
//	@Tags			catalog
//	@Produce		json
//	@Param			itemID	path		int		true	"Item id"
//	@Param			store	path		string	true	"Store name"
//	@Success		200		{object}	services.ItemDetail
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		404		{object}	httpx.ErrorResponse
//	@Router			/catalog/items/{itemID}/stores/{store} [get]
func (h *GetItemDetailHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(chi.URLParam(r, "itemID"))
	if err != nil {
		errhttp.WriteError(w, fmt.Errorf("%w: item id must be an integer", catalogdomain.ErrInvalidQuery))
		return
	}

	detail, err := h.svc.Detail.Detail(r.Context(), models.Key{ItemID: itemID, Store: chi.URLParam(r, "store")})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, detail)
}
