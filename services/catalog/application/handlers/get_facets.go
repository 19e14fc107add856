package handlers

import (
	"net/http"

	"github.com/ghuser/budgeteer/pkg/httpx"
	appsvcs "github.com/ghuser/budgeteer/services/catalog/application/services"
)

// FacetsResponse lists filter values and catalog counts.
type FacetsResponse struct {
	Stores        []string `json:"stores"         example:"Walmart,Loblaws,Costco"`
	Categories    []string `json:"categories"     example:"food,beverages"`
	ItemCount     int      `json:"item_count"     example:"36"`
	StoreCount    int      `json:"store_count"    example:"3"`
	CategoryCount int      `json:"category_count" example:"12"`
	RecordCount   int      `json:"record_count"   example:"360"`
	Source        string   `json:"source"         example:"backend"`
} // @name FacetsResponse

// GetFacetsHandler handles GET /catalog/facets requests.
type GetFacetsHandler struct {
	svc *appsvcs.Services
}

// NewGetFacetsHandler returns a GetFacetsHandler backed by the given services.
func NewGetFacetsHandler(svc *appsvcs.Services) *GetFacetsHandler {
	return &GetFacetsHandler{svc: svc}
}

// Execute returns the catalog's facet values.
//
//	@Summary		Catalog facets
//	@Description	Distinct stores and categories in first-seen order, plus item, store, category and record counts
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{object}	FacetsResponse
//	@Router			/catalog/facets [get]
func (h *GetFacetsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	f := h.svc.Search.Facets(r.Context())
	source, _ := h.svc.Catalog.Source()
	httpx.JSON(w, http.StatusOK, FacetsResponse{
		Stores:        f.Stores,
		Categories:    f.Categories,
		ItemCount:     f.ItemCount,
		StoreCount:    f.StoreCount,
		CategoryCount: f.CategoryCount,
		RecordCount:   f.RecordCount,
		Source:        source,
	})
}
