package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/budgeteer/services/shoppinglist/application/handlers"
	appsvcs "github.com/ghuser/budgeteer/services/shoppinglist/application/services"
)

// ShoppingListRoutes registers shopping list endpoints on r. The caller must
// mount auth.RequireShopper ahead of these routes.
func ShoppingListRoutes(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/shopping-list", func(r chi.Router) {
		r.Get("/", handlers.NewGetListHandler(svcs).Execute)
		r.Delete("/", handlers.NewDeleteListHandler(svcs).Execute)
		r.Post("/entries", handlers.NewPostEntryHandler(svcs).Execute)
		r.Post("/entries/{entryID}/toggle", handlers.NewPostToggleEntryHandler(svcs).Execute)
		r.Delete("/entries/{entryID}", handlers.NewDeleteEntryHandler(svcs).Execute)
		r.Post("/compare", handlers.NewPostCompareHandler(svcs).Execute)
		r.Get("/ws", handlers.NewGetWSHandler(svcs).Execute)
	})
}
