package migrator

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ghuser/budgeteer/migrations/shoppinglist"
)

func TestShoppingListMigrationsEmbedded(t *testing.T) {
	entries, err := shoppinglist.FS.ReadDir(".")
	require.NoError(t, err)
	require.NotEmpty(t, entries)
}

// Integration test: applies the shopping list migrations twice.
func TestRunMigrationsIntegration(t *testing.T) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set; skipping integration tests")
	}
	ctx := context.Background()
	require.NoError(t, RunMigrations(ctx, url, shoppinglist.FS))
	require.NoError(t, RunMigrations(ctx, url, shoppinglist.FS))
}
