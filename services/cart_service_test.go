package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/pkg/metrics"
	"github.com/akinalp/milan/repository"
)

func newCartFixture(t *testing.T) (CartService, *memCartStore, *models.MenuItem) {
	t.Helper()
	menu := repository.NewSQLiteMenuRepo(newTestDB(t))
	dosa := &models.MenuItem{Name: "Masala Dosa", Price: 120, Category: "South Indian", IsVeg: true}
	require.NoError(t, menu.Create(context.Background(), dosa))

	store := newMemCartStore()
	svc := NewCartService(store, menu, time.Hour, "Milan", "917023232376", metrics.New())
	return svc, store, dosa
}

func TestCartServiceGetIssuesNewID(t *testing.T) {
	svc, store, _ := newCartFixture(t)
	ctx := context.Background()

	empty, err := svc.Get(ctx, "")
	require.NoError(t, err)
	assert.NotEmpty(t, empty.ID)
	assert.Empty(t, empty.Items)
	assert.NotNil(t, empty.Items)

	unknown, err := svc.Get(ctx, "expired-cart")
	require.NoError(t, err)
	assert.NotEqual(t, "expired-cart", unknown.ID)
	assert.Zero(t, store.saves, "reading never writes")
}

func TestCartServiceAddUsesMenuPrice(t *testing.T) {
	svc, store, dosa := newCartFixture(t)
	ctx := context.Background()

	first, err := svc.Add(ctx, "", &models.AddToCartRequest{MenuItemID: dosa.ID})
	require.NoError(t, err)
	require.Len(t, first.Items, 1)
	assert.Equal(t, 120.0, first.Items[0].Price)

	second, err := svc.Add(ctx, first.ID, &models.AddToCartRequest{MenuItemID: dosa.ID})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "existing cart keeps its id")
	assert.Equal(t, 2, second.TotalItems)
	assert.Equal(t, 240.0, second.TotalPrice)
	assert.Equal(t, 2, store.saves)

	_, err = svc.Add(ctx, first.ID, &models.AddToCartRequest{MenuItemID: "gone"})
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	_, err = svc.Add(ctx, first.ID, &models.AddToCartRequest{})
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
}

func TestCartServiceUpdateRemoveClear(t *testing.T) {
	svc, store, dosa := newCartFixture(t)
	ctx := context.Background()

	s, err := svc.Add(ctx, "", &models.AddToCartRequest{MenuItemID: dosa.ID})
	require.NoError(t, err)

	s, err = svc.UpdateQuantity(ctx, s.ID, dosa.ID, &models.CartDeltaRequest{Delta: 3})
	require.NoError(t, err)
	assert.Equal(t, 4, s.TotalItems)

	_, err = svc.UpdateQuantity(ctx, s.ID, dosa.ID, &models.CartDeltaRequest{Delta: 0})
	assert.ErrorIs(t, err, pkg.ErrBadRequest)

	s, err = svc.Remove(ctx, s.ID, dosa.ID)
	require.NoError(t, err)
	assert.Empty(t, s.Items)

	s, err = svc.Add(ctx, s.ID, &models.AddToCartRequest{MenuItemID: dosa.ID})
	require.NoError(t, err)
	saves := store.saves
	cleared, err := svc.Clear(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, cleared.ID)
	assert.Zero(t, cleared.TotalItems)
	assert.NotNil(t, cleared.Items)
	assert.Equal(t, saves, store.saves, "clearing deletes instead of saving an empty cart")
	_, err = store.Load(ctx, s.ID)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestCartServiceCheckout(t *testing.T) {
	svc, _, dosa := newCartFixture(t)
	ctx := context.Background()

	_, err := svc.Checkout(ctx, "")
	assert.ErrorIs(t, err, pkg.ErrBadRequest, "empty cart")

	s, err := svc.Add(ctx, "", &models.AddToCartRequest{MenuItemID: dosa.ID})
	require.NoError(t, err)
	_, err = svc.Add(ctx, s.ID, &models.AddToCartRequest{MenuItemID: dosa.ID})
	require.NoError(t, err)

	out, err := svc.Checkout(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello Milan, I would like to order:\n\n• 2 x Masala Dosa (₹120)\n\nTotal Amount: ₹240\n\nPlease confirm my order.", out.Message)
	assert.True(t, strings.HasPrefix(out.URL, "https://wa.me/917023232376?text=Hello%20Milan"))

	after, err := svc.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, after.TotalItems, "checkout keeps the cart")
}
