package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ghuser/budgeteer/pkg/errhttp"
	"github.com/ghuser/budgeteer/pkg/httpx"
	pkgvalidator "github.com/ghuser/budgeteer/pkg/validator"
	appsvcs "github.com/ghuser/budgeteer/services/assist/application/services"
	"github.com/ghuser/budgeteer/services/assist/domain/models"
)

// GenerateListRequest is the request body for POST /assist/shopping-list.
// Budget is a decimal string; omit it for no limit.
type GenerateListRequest struct {
	Prompt string `json:"prompt" validate:"required,notblank,max=500" example:"snacks for a family party"`
	Budget string `json:"budget" validate:"omitempty,money" example:"25.00"`
} // @name GenerateListRequest

// GenerateListResponse is the drafted list and its estimated total.
type GenerateListResponse = models.Plan // @name GenerateListResponse

// PostShoppingListHandler handles POST /assist/shopping-list requests.
type PostShoppingListHandler struct {
	svc *appsvcs.Services
}

// NewPostShoppingListHandler returns a PostShoppingListHandler backed by the given services.
func NewPostShoppingListHandler(svc *appsvcs.Services) *PostShoppingListHandler {
	return &PostShoppingListHandler{svc: svc}
}

// Execute drafts a shopping list.
//
//	@Summary	Generate shopping list
//	@Tags		assist
//	@Accept		json
//	@Produce	json
//	@Param		request	body		GenerateListRequest	true	"Prompt and optional budget"
//	@Success	200		{object}	GenerateListResponse
//	@Failure	422		{object}	httpx.ErrorResponse
//	@Failure	502		{object}	httpx.ErrorResponse
//	@Failure	503		{object}	httpx.ErrorResponse
//	@Router		/assist/shopping-list [post]
func (h *PostShoppingListHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[GenerateListRequest](w, r)
	if !ok {
		return
	}
	var budget *decimal.Decimal
	if req.Budget != "" {
		b, err := decimal.NewFromString(req.Budget)
		if err != nil {
			httpx.JSONError(w, http.StatusUnprocessableEntity, "budget must be a number")
			return
		}
		budget = &b
	}

	plan, err := h.svc.Assist.GenerateList(r.Context(), req.Prompt, budget)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, plan)
}
