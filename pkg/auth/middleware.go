package auth

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/budgeteer/pkg/httpx"
	"github.com/ghuser/budgeteer/pkg/logger"
)

const (
	sessionName         = "budgeteer_session"
	sessionShopperIDKey = "shopper_id"

	// ShopperHeader lets non-browser clients pick their shopper ID. It must be a UUID.
	ShopperHeader = httpx.ShopperHeader
)

// RequireShopper is a chi middleware that gives every caller an anonymous
// shopper identity. A valid X-Shopper-ID header wins; otherwise the ID is read
// from the session cookie, and a new one is issued and saved when absent.
//
// After this middleware, handlers can safely call auth.ShopperIDFromCtx(r.Context()).
func RequireShopper(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if h := r.Header.Get(ShopperHeader); h != "" {
				id, err := uuid.Parse(h)
				if err != nil {
					httpx.JSONError(w, http.StatusBadRequest, "invalid "+ShopperHeader+" header")
					return
				}
				next.ServeHTTP(w, r.WithContext(withShopper(r.Context(), id.String())))
				return
			}

			// A tampered or stale cookie still yields a fresh session alongside the error.
			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
			}
			if session == nil {
				httpx.JSONError(w, http.StatusInternalServerError, "could not start session")
				return
			}

			id, _ := session.Values[sessionShopperIDKey].(string)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
				session.Values[sessionShopperIDKey] = id
				if err := session.Save(r, w); err != nil {
					log.ErrorContext(r.Context(), "save shopper session", "error", err)
					httpx.JSONError(w, http.StatusInternalServerError, "could not start session")
					return
				}
				log.DebugContext(r.Context(), "issued shopper id", "shopper_id", id)
			}

			next.ServeHTTP(w, r.WithContext(withShopper(r.Context(), id)))
		})
	}
}

// withShopper stores the shopper ID and tags every log line of the request.
func withShopper(ctx context.Context, id string) context.Context {
	return logger.WithAttrs(WithShopperID(ctx, id), "shopper_id", id)
}
