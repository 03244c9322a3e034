package services

import (
	"context"
	"testing"

	"github.com/GermanChai/germanchai/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartFixture(t *testing.T) (*CartService, *memCartStore, uint) {
	db := newTestDB(t)
	store := newMemCartStore()
	svc := NewCartService(store, repository.NewMenuRepository(db))

	chai := seedMenuItem(t, db, "Masala Chai", "Chai", 4000, true)
	return svc, store, chai.ID
}

func TestCartService_AddPersists(t *testing.T) {
	svc, store, chaiID := newCartFixture(t)
	ctx := context.Background()

	v, err := svc.AddItem(ctx, 1, chaiID)
	require.NoError(t, err)
	assert.Equal(t, int64(4000), v.Total)

	// a second add merges into the stored line
	v, err = svc.AddItem(ctx, 1, chaiID)
	require.NoError(t, err)
	assert.Len(t, v.Lines, 1)
	assert.Equal(t, 2, v.Lines[0].Qty)

	stored, err := store.Load(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, stored.Lines, 1)
	assert.Equal(t, 2, stored.Lines[0].Qty)
}

func TestCartService_AddUnknownItem(t *testing.T) {
	svc, _, _ := newCartFixture(t)

	_, err := svc.AddItem(context.Background(), 1, 9999)
	assert.Error(t, err)
}

func TestCartService_AddUnavailableItemIsAllowed(t *testing.T) {
	db := newTestDB(t)
	store := newMemCartStore()
	svc := NewCartService(store, repository.NewMenuRepository(db))
	offMenu := seedMenuItem(t, db, "Kesar Chai", "Chai", 6000, false)

	v, err := svc.AddItem(context.Background(), 1, offMenu.ID)
	require.NoError(t, err)
	assert.Len(t, v.Lines, 1)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	svc, _, chaiID := newCartFixture(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, 1, chaiID)
	require.NoError(t, err)

	v, err := svc.UpdateQuantity(ctx, 1, chaiID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, v.Lines[0].Qty)
	assert.Equal(t, int64(16000), v.Total)

	// dropping below one removes the line
	v, err = svc.UpdateQuantity(ctx, 1, chaiID, 0)
	require.NoError(t, err)
	assert.Empty(t, v.Lines)
	assert.Equal(t, int64(0), v.Total)
}

func TestCartService_ClearDropsStoredCart(t *testing.T) {
	svc, store, chaiID := newCartFixture(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, 1, chaiID)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, 1))

	stored, err := store.Load(ctx, 1)
	require.NoError(t, err)
	assert.True(t, stored.Empty())
}

func TestCartService_CartsAreScopedByUser(t *testing.T) {
	svc, _, chaiID := newCartFixture(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, 1, chaiID)
	require.NoError(t, err)

	other, err := svc.Get(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, other.Lines)
}
