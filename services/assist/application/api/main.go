package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/budgeteer/services/assist/application/handlers"
	appsvcs "github.com/ghuser/budgeteer/services/assist/application/services"
)

// AssistRoutes registers AI assist endpoints on r. Saving a list needs
// auth.RequireShopper mounted ahead of these routes.
func AssistRoutes(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/assist", func(r chi.Router) {
		r.Post("/search", handlers.NewPostSearchHandler(svcs).Execute)
		r.Post("/shopping-list", handlers.NewPostShoppingListHandler(svcs).Execute)
		r.Post("/shopping-list/save", handlers.NewPostSaveListHandler(svcs).Execute)
	})
}
