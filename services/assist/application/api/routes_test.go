package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
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
	"github.com/ghuser/budgeteer/services/assist/application/api"
	appsvcs "github.com/ghuser/budgeteer/services/assist/application/services"
	"github.com/ghuser/budgeteer/services/assist/domain/models"
	"github.com/ghuser/budgeteer/services/assist/infrastructure/mock"
	catalogmodels "github.com/ghuser/budgeteer/services/catalog/domain/models"
	listsvcs "github.com/ghuser/budgeteer/services/shoppinglist/application/services"
	"github.com/ghuser/budgeteer/services/shoppinglist/infrastructure/persistence/memory"
)

type staticCatalog []catalogmodels.PriceRecord

func (c staticCatalog) Records() []catalogmodels.PriceRecord { return c }
func (c staticCatalog) Today() catalogmodels.Date             { return catalogmodels.MustParseDate("2024-06-12") }

func newRouter(t *testing.T) (http.Handler, *listsvcs.ListService) {
	t.Helper()
	log := logger.Discard()
	catalog := staticCatalog{
		{ItemID: 1, ItemName: "Lays Chips 200g", CurrentPrice: decimal.RequireFromString("3.20"), Store: "Costco", PriceDate: catalogmodels.MustParseDate("2024-06-10")},
		{ItemID: 2, ItemName: "Coca-Cola 2L", CurrentPrice: decimal.RequireFromString("2.99"), Store: "Walmart", PriceDate: catalogmodels.MustParseDate("2024-06-10")},
		{ItemID: 3, ItemName: "Milk 2% 2L", CurrentPrice: decimal.RequireFromString("4.20"), Store: "Costco", PriceDate: catalogmodels.MustParseDate("2024-06-10")},
	}
	lists := listsvcs.NewListService(memory.NewStore(), nil, log)
	svcs := &appsvcs.Services{
		Assist: appsvcs.NewAssistService(mock.NewAssistant(catalog), "mock", catalog, lists, nil, log),
	}

	r := chi.NewRouter()
	r.Use(auth.RequireShopper(sessions.NewCookieStore([]byte("test-auth-key-must-be-32-bytes!!")), log))
	api.AssistRoutes(r, svcs)
	return r, lists
}

func post(h http.Handler, shopper, url, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, url, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set(auth.ShopperHeader, shopper)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestAssistRoutes_Search(t *testing.T) {
	h, _ := newRouter(t)
	shopper := uuid.NewString()

	w := post(h, shopper, "/assist/search", `{"query":"milk"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var view catalogmodels.ResultView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	assert.Equal(t, catalogmodels.ViewResults, view.State)
	assert.Equal(t, `AI Results: "milk"`, view.Title)

	w = post(h, shopper, "/assist/search", `{"query":"  "}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAssistRoutes_GenerateAndSave(t *testing.T) {
	h, lists := newRouter(t)
	shopper := uuid.NewString()

	w := post(h, shopper, "/assist/shopping-list", `{"prompt":"party","budget":"7.00"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var plan models.Plan
	require.NoError(t, json.NewDecoder(w.Body).Decode(&plan))
	assert.Equal(t, []string{"Lays Chips 200g", "Coca-Cola 2L"}, plan.Names())
	assert.True(t, plan.Total.Equal(decimal.RequireFromString("6.19")))

	w = post(h, shopper, "/assist/shopping-list", `{"prompt":"party","budget":"-1"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	body, err := json.Marshal(map[string][]string{"items": plan.Names()})
	require.NoError(t, err)
	w = post(h, shopper, "/assist/shopping-list/save", string(body))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"added":2}`, w.Body.String())

	view, err := lists.Get(t.Context(), shopper)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Count)

	w = post(h, shopper, "/assist/shopping-list/save", `{"items":[]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
