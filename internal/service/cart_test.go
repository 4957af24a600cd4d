package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/craftline/shop/internal/models"
	"github.com/craftline/shop/internal/transport"
)

func TestAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	session := uuid.New()
	prod := seedProduct(t, r, "jute-basket", 5100)

	item, created, err := svc.Add(ctx, session, prod.ID)
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, uint(1), item.Quantity)

	again, created, err := svc.Add(ctx, session, prod.ID)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, item.ID, again.ID)
	require.Equal(t, uint(1), again.Quantity)

	items, err := svc.Get(ctx, session)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestAddUnknownProduct(t *testing.T) {
	ctx := context.Background()
	svc := &CartService{Repo: newTestRepo(t)}

	_, _, err := svc.Add(ctx, uuid.New(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAddSnapshotsProduct(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	catalogSvc := &CatalogService{Repo: r}
	session := uuid.New()
	prod := seedProduct(t, r, "brass-lamp", 2400)

	item, _, err := svc.Add(ctx, session, prod.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2400), item.UnitPrice)
	require.Equal(t, "https://img.example/brass-lamp.jpg", item.Image)

	// A later catalog edit must not change what is in the cart.
	newPrice := int64(9999)
	_, err = catalogSvc.PatchProduct(ctx, transport.PatchProductRequest{Price: &newPrice}, prod.ID)
	require.NoError(t, err)

	items, err := svc.Get(ctx, session)
	require.NoError(t, err)
	require.Equal(t, int64(2400), items[0].UnitPrice)
}

func TestRemoveThenAddResetsQuantity(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	session := uuid.New()
	prod := seedProduct(t, r, "cane-tray", 900)

	_, _, err := svc.Add(ctx, session, prod.ID)
	require.NoError(t, err)

	item, err := svc.Increase(ctx, session, prod.ID)
	require.NoError(t, err)
	item, err = svc.Increase(ctx, session, prod.ID)
	require.NoError(t, err)
	require.Equal(t, uint(3), item.Quantity)

	require.NoError(t, svc.Remove(ctx, session, prod.ID))

	fresh, created, err := svc.Add(ctx, session, prod.ID)
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, uint(1), fresh.Quantity)
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	svc := &CartService{Repo: r}

	require.NoError(t, svc.Remove(ctx, uuid.New(), uuid.New()))
}

func TestDecreaseFloorsAtOne(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	session := uuid.New()
	prod := seedProduct(t, r, "terracotta-vase", 13850)

	_, _, err := svc.Add(ctx, session, prod.ID)
	require.NoError(t, err)

	item, err := svc.Decrease(ctx, session, prod.ID)
	require.NoError(t, err)
	require.Equal(t, uint(1), item.Quantity)

	// Still present, not deleted.
	items, err := svc.Get(ctx, session)
	require.NoError(t, err)
	require.Len(t, items, 1)

	item, err = svc.Increase(ctx, session, prod.ID)
	require.NoError(t, err)
	require.Equal(t, uint(2), item.Quantity)

	item, err = svc.Decrease(ctx, session, prod.ID)
	require.NoError(t, err)
	require.Equal(t, uint(1), item.Quantity)
}

func TestQuantityUnknownItem(t *testing.T) {
	ctx := context.Background()
	svc := &CartService{Repo: newTestRepo(t)}

	_, err := svc.Increase(ctx, uuid.New(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestClearEmptiesStorage(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	session := uuid.New()

	p1 := seedProduct(t, r, "jute-rug", 3200)
	p2 := seedProduct(t, r, "clay-pot", 650)
	_, _, err := svc.Add(ctx, session, p1.ID)
	require.NoError(t, err)
	_, _, err = svc.Add(ctx, session, p2.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, session))

	items, err := svc.Get(ctx, session)
	require.NoError(t, err)
	require.Empty(t, items)

	// The backing table reflects the clear, not just the in-memory view.
	var count int64
	require.NoError(t, r.DB.Model(&models.CartItem{}).Where("session_id = ?", session).Count(&count).Error)
	require.Zero(t, count)
}
