package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/ghuser/budgeteer/pkg/errhttp"
	"github.com/ghuser/budgeteer/pkg/httpx"
	pkgvalidator "github.com/ghuser/budgeteer/pkg/validator"
	appsvcs "github.com/ghuser/budgeteer/services/shoppinglist/application/services"
	domainsvcs "github.com/ghuser/budgeteer/services/shoppinglist/domain/services"
)

// CompareRequest optionally names the entries to price. With no names the
// caller's saved list is compared.
type CompareRequest struct {
	Names []string `json:"names" validate:"omitempty,max=100,dive,notblank" example:"Milk,Bread"`
} // @name CompareRequest

// CompareResponse is the cross-store price table.
type CompareResponse = domainsvcs.Comparison // @name CompareResponse

// PostCompareHandler handles POST /shopping-list/compare requests.
type PostCompareHandler struct {
	svc *appsvcs.Services
}

// NewPostCompareHandler returns a PostCompareHandler backed by the given services.
func NewPostCompareHandler(svc *appsvcs.Services) *PostCompareHandler {
	return &PostCompareHandler{svc: svc}
}

// Execute prices a list at every store.
//
//	@Summary		Compare prices
//	@Description	Prices each entry at every store, totals per store, and reports the cheapest store and the savings against the most expensive one.
//	@Tags			shopping-list
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CompareRequest	false	"Ad-hoc names"
//	@Success		200		{object}	CompareResponse
//	@Failure		422		{object}	httpx.ErrorResponse
//	@Router			/shopping-list/compare [post]
func (h *PostCompareHandler) Execute(w http.ResponseWriter, r *http.Request) {
	shopper, ok := shopperID(w, r)
	if !ok {
		return
	}

	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := pkgvalidator.Validate(&req); err != nil {
		httpx.JSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "Validation failed",
			"fields": pkgvalidator.FormatValidationErrors(err),
		})
		return
	}

	var (
		c   *domainsvcs.Comparison
		err error
	)
	if len(req.Names) > 0 {
		c, err = h.svc.Compare.CompareNames(r.Context(), req.Names)
	} else {
		c, err = h.svc.Compare.Compare(r.Context(), shopper)
	}
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, c)
}
