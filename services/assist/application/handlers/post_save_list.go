package handlers

import (
	"net/http"

	"github.com/ghuser/budgeteer/pkg/auth"
	"github.com/ghuser/budgeteer/pkg/errhttp"
	"github.com/ghuser/budgeteer/pkg/httpx"
	pkgvalidator "github.com/ghuser/budgeteer/pkg/validator"
	appsvcs "github.com/ghuser/budgeteer/services/assist/application/services"
)

// SaveListRequest is the request body for POST /assist/shopping-list/save.
type SaveListRequest struct {
	Items []string `json:"items" validate:"required,min=1,max=100" example:"Milk 2% 2L,Bread White Loaf"`
} // @name SaveListRequest

// SaveListResponse reports how many entries were added.
type SaveListResponse struct {
	Added int `json:"added" example:"2"`
} // @name SaveListResponse

// PostSaveListHandler handles POST /assist/shopping-list/save requests.
type PostSaveListHandler struct {
	svc *appsvcs.Services
}

// NewPostSaveListHandler returns a PostSaveListHandler backed by the given services.
func NewPostSaveListHandler(svc *appsvcs.Services) *PostSaveListHandler {
	return &PostSaveListHandler{svc: svc}
}

// Execute adds generated item names to the caller's shopping list.
//
//	@Summary	Save generated list
//	@Tags		assist
//	@Accept		json
//	@Produce	json
//	@Param		request	body		SaveListRequest	true	"Item names"
//	@Success	200		{object}	SaveListResponse
//	@Failure	422		{object}	httpx.ErrorResponse
//	@Router		/assist/shopping-list/save [post]
func (h *PostSaveListHandler) Execute(w http.ResponseWriter, r *http.Request) {
	shopper, err := auth.ShopperIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "shopper session required")
		return
	}
	req, ok := pkgvalidator.ValidateRequest[SaveListRequest](w, r)
	if !ok {
		return
	}
	n, err := h.svc.Assist.SaveList(r.Context(), shopper, req.Items)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, SaveListResponse{Added: n})
}
