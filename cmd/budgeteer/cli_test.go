package main

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/budgeteer/pkg/config"
)

func testCLI() *cli {
	return &cli{cfg: &config.Config{
		CatalogSource:       config.CatalogSourceSynthetic,
		ShoppingListStore:   config.StoreMemory,
		ComparisonPriceMode: config.PriceModeCheapest,
		AssistMode:          config.AssistMock,
		BackendRateLimit:    5,
	}}
}

func run(t *testing.T, c *cli, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(c)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSearch(t *testing.T) {
	out, err := run(t, testCLI(), "search", "milk", "--store", "Costco")
	require.NoError(t, err)
	assert.Contains(t, out, "Milk 2% 2L")
	assert.Contains(t, out, "Costco")
	assert.NotContains(t, out, "Walmart")
}

func TestSearch_InvalidBound(t *testing.T) {
	_, err := run(t, testCLI(), "search", "milk", "--min-price", "abc")
	require.Error(t, err)
}

func TestCompare_Names(t *testing.T) {
	out, err := run(t, testCLI(), "compare", "milk", "bread")
	require.NoError(t, err)
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "Best:")
}

func TestCompare_EmptyList(t *testing.T) {
	_, err := run(t, testCLI(), "compare")
	require.Error(t, err)
}

func TestPlanSaveAndList(t *testing.T) {
	c := testCLI()

	out, err := run(t, c, "ai", "plan", "party", "--budget", "100", "--save")
	require.NoError(t, err)
	assert.Contains(t, out, "Estimated total: $")
	assert.Contains(t, out, "Added 3 items")

	out, err = run(t, c, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Lays Chips 200g")
	assert.Contains(t, out, "3 items, 0 checked")

	_, err = run(t, c, "list", "clear")
	require.Error(t, err)

	out, err = run(t, c, "list", "clear", "--yes")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Your shopping list is empty"))
}

func TestList_AddToggleRemove(t *testing.T) {
	c := testCLI()

	out, err := run(t, c, "list", "add", "Eggs", "Large")
	require.NoError(t, err)
	assert.Contains(t, out, "Eggs Large")
	assert.Contains(t, out, "1 items, 0 checked")

	view, err := c.lists.List.Get(context.Background(), "local")
	require.NoError(t, err)
	require.Len(t, view.Entries, 1)
	id := strconv.FormatInt(view.Entries[0].ID, 10)

	out, err = run(t, c, "list", "toggle", id)
	require.NoError(t, err)
	assert.Contains(t, out, "[x] "+id+"  Eggs Large")

	_, err = run(t, c, "list", "remove", "x")
	require.Error(t, err)

	out, err = run(t, c, "list", "remove", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Your shopping list is empty")
}
