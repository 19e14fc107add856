package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/budgeteer/services/shoppinglist/domain/models"
)

func TestStore_LoadMissingIsEmpty(t *testing.T) {
	l, err := NewStore().Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.True(t, l.IsEmpty())
	assert.NotNil(t, l.Entries)
}

func TestStore_SaveIsolatesCopies(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	l := models.NewList(nil)
	_, err := l.Add("Milk", time.Now())
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, "a", l))

	l.Entries[0].Name = "changed after save"

	got, err := s.Load(ctx, "a")
	require.NoError(t, err)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, "Milk", got.Entries[0].Name)

	other, err := s.Load(ctx, "b")
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())
}
