package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/budgeteer/pkg/auth"
	"github.com/ghuser/budgeteer/pkg/logger"
	catalogmodels "github.com/ghuser/budgeteer/services/catalog/domain/models"
	"github.com/ghuser/budgeteer/services/shoppinglist/application/api"
	appsvcs "github.com/ghuser/budgeteer/services/shoppinglist/application/services"
	"github.com/ghuser/budgeteer/services/shoppinglist/domain/models"
	domainsvcs "github.com/ghuser/budgeteer/services/shoppinglist/domain/services"
	"github.com/ghuser/budgeteer/services/shoppinglist/infrastructure/persistence/memory"
	"github.com/ghuser/budgeteer/services/shoppinglist/infrastructure/ws"
)

type staticCatalog []catalogmodels.PriceRecord

func (c staticCatalog) Records() []catalogmodels.PriceRecord { return c }
func (c staticCatalog) Today() catalogmodels.Date             { return catalogmodels.MustParseDate("2024-06-12") }

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	log := logger.Discard()
	store := memory.NewStore()
	catalog := staticCatalog{
		{ItemID: 1, ItemName: "Milk 2% 2L", CurrentPrice: decimal.RequireFromString("4.99"), Store: "Walmart", PriceDate: catalogmodels.MustParseDate("2024-06-10")},
		{ItemID: 1, ItemName: "Milk 2% 2L", CurrentPrice: decimal.RequireFromString("4.49"), Store: "Costco", PriceDate: catalogmodels.MustParseDate("2024-06-10")},
	}
	svcs := &appsvcs.Services{
		List:    appsvcs.NewListService(store, nil, log),
		Compare: appsvcs.NewCompareService(store, catalog, domainsvcs.PriceCheapest),
		Hub:     ws.NewHub(log, nil),
	}
	sessionStore := sessions.NewCookieStore([]byte("test-auth-key-must-be-32-bytes!!"))

	r := chi.NewRouter()
	r.Use(auth.RequireShopper(sessionStore, log))
	api.ShoppingListRoutes(r, svcs)
	return r
}

type client struct {
	t       *testing.T
	h       http.Handler
	shopper string
}

func (c client) do(method, url, body string) *httptest.ResponseRecorder {
	c.t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, url, nil)
	} else {
		r = httptest.NewRequest(method, url, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	r.Header.Set(auth.ShopperHeader, c.shopper)
	w := httptest.NewRecorder()
	c.h.ServeHTTP(w, r)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}

func TestShoppingListRoutes_Lifecycle(t *testing.T) {
	c := client{t: t, h: newRouter(t), shopper: uuid.NewString()}

	w := c.do(http.MethodGet, "/shopping-list", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, appsvcs.EmptyListMessage, decode[appsvcs.ListView](t, w).Message)

	w = c.do(http.MethodPost, "/shopping-list/entries", `{"name":"   "}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	ids := make([]int64, 0, 3)
	for _, name := range []string{"Milk", "Bread", "Eggs"} {
		w = c.do(http.MethodPost, "/shopping-list/entries", `{"name":"`+name+`"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		ids = append(ids, decode[models.Entry](t, w).ID)
	}

	w = c.do(http.MethodPost, "/shopping-list/entries/"+strconv.FormatInt(ids[0], 10)+"/toggle", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[models.Entry](t, w).Checked)

	w = c.do(http.MethodDelete, "/shopping-list/entries/"+strconv.FormatInt(ids[1], 10), "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = c.do(http.MethodDelete, "/shopping-list/entries/"+strconv.FormatInt(ids[1], 10), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = c.do(http.MethodDelete, "/shopping-list/entries/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodGet, "/shopping-list", "")
	view := decode[appsvcs.ListView](t, w)
	assert.Equal(t, 2, view.Count)
	assert.Equal(t, 1, view.CheckedCount)

	w = c.do(http.MethodDelete, "/shopping-list", "")
	assert.Equal(t, http.StatusPreconditionRequired, w.Code)

	w = c.do(http.MethodDelete, "/shopping-list?confirm=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	cleared := decode[appsvcs.ListView](t, w)
	assert.Equal(t, 0, cleared.Count)
	assert.Equal(t, appsvcs.EmptyListMessage, cleared.Message)
}

func TestShoppingListRoutes_Compare(t *testing.T) {
	c := client{t: t, h: newRouter(t), shopper: uuid.NewString()}

	w := c.do(http.MethodPost, "/shopping-list/compare", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "empty list cannot be compared")

	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/shopping-list/entries", `{"name":"milk"}`).Code)

	w = c.do(http.MethodPost, "/shopping-list/compare", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	cmp := decode[domainsvcs.Comparison](t, w)
	assert.Equal(t, "Costco", cmp.BestStore)
	assert.True(t, cmp.Savings.Equal(decimal.RequireFromString("0.50")))

	w = c.do(http.MethodPost, "/shopping-list/compare", `{"names":["Milk 2% 2L","caviar"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	adhoc := decode[domainsvcs.Comparison](t, w)
	require.Len(t, adhoc.Rows, 2)
	assert.Equal(t, domainsvcs.NoMatchesMessage, adhoc.Rows[1].Message)

	w = c.do(http.MethodPost, "/shopping-list/compare", `{"names":[" "]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestShoppingListRoutes_ShoppersIsolated(t *testing.T) {
	h := newRouter(t)
	a := client{t: t, h: h, shopper: uuid.NewString()}
	b := client{t: t, h: h, shopper: uuid.NewString()}

	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/shopping-list/entries", `{"name":"Milk"}`).Code)
	assert.Equal(t, 0, decode[appsvcs.ListView](t, b.do(http.MethodGet, "/shopping-list", "")).Count)
}
