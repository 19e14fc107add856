package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/budgeteer/services/catalog/application/handlers"
	appsvcs "github.com/ghuser/budgeteer/services/catalog/application/services"
)

// CatalogRoutes registers catalog endpoints on the provided chi router.
func CatalogRoutes(r chi.Router, svcs *appsvcs.Services) {
	r.Group(func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/search", handlers.NewGetSearchHandler(svcs).Execute)
			r.Get("/facets", handlers.NewGetFacetsHandler(svcs).Execute)
			r.Get("/items/{itemID}/stores/{store}", handlers.NewGetItemDetailHandler(svcs).Execute)
		})
	})
}
