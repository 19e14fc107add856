package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/budgeteer/pkg/logger"
	"github.com/ghuser/budgeteer/pkg/upstream"
	assistdomain "github.com/ghuser/budgeteer/services/assist/domain"
)

func newClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	up := upstream.NewClient(srv.URL, upstream.Options{Timeout: 2 * time.Second, RateLimit: 1000, Burst: 100}, logger.Discard())
	return NewClient(up, logger.Discard())
}

func TestQuery(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, queryPath, r.URL.Path)
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "cheap milk", body["query"])
		_, _ = w.Write([]byte(`{"success":true,"response":"| Costco | Milk 2% 2L | $4.20 |","item_names":["Milk 2% 2L"]}`))
	})

	ans, err := c.Query(context.Background(), "cheap milk")
	require.NoError(t, err)
	assert.True(t, ans.Success)
	assert.Equal(t, []string{"Milk 2% 2L"}, ans.ItemNames)
}

func TestQuery_ErrorCategories(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		_, err := c.Query(context.Background(), "milk")
		assert.ErrorIs(t, err, assistdomain.ErrAssistUpstream)
	})

	t.Run("malformed body", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		})
		_, err := c.Query(context.Background(), "milk")
		assert.ErrorIs(t, err, assistdomain.ErrAssistFailed)
	})

	t.Run("unreachable", func(t *testing.T) {
		up := upstream.NewClient("http://127.0.0.1:1", upstream.Options{Timeout: time.Second, RateLimit: 1000, Burst: 100}, logger.Discard())
		_, err := NewClient(up, logger.Discard()).Query(context.Background(), "milk")
		assert.ErrorIs(t, err, assistdomain.ErrAssistUnreachable)
	})
}

func TestShoppingList(t *testing.T) {
	var gotBudget any
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, shoppingListPath, r.URL.Path)
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotBudget = body["budget"]
		_, _ = w.Write([]byte(`{"shopping_list":{"items":[
			{"item_id":1,"item_name":"Milk 2% 2L","current_price":4.2,"store":"Costco","category_tags":["food"],"price_date":"2024-06-10"},
			{"item_id":2,"item_name":"","current_price":1,"store":"Costco","price_date":"2024-06-10"}
		]}}`))
	})

	budget := decimal.RequireFromString("25.50")
	items, err := c.ShoppingList(context.Background(), "party", &budget)
	require.NoError(t, err)
	require.Len(t, items, 1, "invalid record is skipped")
	assert.Equal(t, "Milk 2% 2L", items[0].ItemName)
	assert.Equal(t, 25.5, gotBudget)

	_, err = c.ShoppingList(context.Background(), "party", nil)
	require.NoError(t, err)
	assert.Nil(t, gotBudget, "nil budget is sent as null")
}

func TestShoppingList_MissingEnvelope(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error":"model offline"}`))
	})
	_, err := c.ShoppingList(context.Background(), "party", nil)
	assert.ErrorIs(t, err, assistdomain.ErrAssistFailed)
}
