package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/budgeteer/pkg/auth"
	"github.com/ghuser/budgeteer/pkg/httpx"
)

// shopperID reads the identity set by auth.RequireShopper and writes 401 when
// the route was mounted without it.
func shopperID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := auth.ShopperIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "shopper session required")
		return "", false
	}
	return id, true
}

func entryID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "entryID"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "entry id must be an integer")
		return 0, false
	}
	return id, true
}
