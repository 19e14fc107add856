package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/budgeteer/pkg/config"
	"github.com/ghuser/budgeteer/pkg/database"
	"github.com/ghuser/budgeteer/pkg/logger"
	"github.com/ghuser/budgeteer/services/shoppinglist/domain/models"
)

// Integration test: needs DATABASE_URL pointing at a migrated database.
func TestListStoreIntegration(t *testing.T) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set; skipping integration tests")
	}
	ctx := context.Background()
	log := logger.New(&config.Config{LogLevel: "error"})
	db, err := database.NewPool(ctx, url, log)
	require.NoError(t, err)
	defer db.Close()

	store := NewListStore(db)
	shopper := uuid.NewString()

	empty, err := store.Load(ctx, shopper)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	l := models.NewList(nil)
	_, err = l.Add("Milk", time.Now())
	require.NoError(t, err)
	_, err = l.Add("Bread", time.Now())
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, shopper, l))

	got, err := store.Load(ctx, shopper)
	require.NoError(t, err)
	assert.Equal(t, []string{"Milk", "Bread"}, got.Names())

	got.Clear()
	require.NoError(t, store.Save(ctx, shopper, got))
	cleared, err := store.Load(ctx, shopper)
	require.NoError(t, err)
	assert.True(t, cleared.IsEmpty())
}
