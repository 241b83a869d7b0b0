package repository_test

import (
	"testing"
	"time"

	"github.com/aaravmahajanofficial/templatehub/internal/models"
	repository "github.com/aaravmahajanofficial/templatehub/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderFromCart(t *testing.T) {
	t.Run("Checkout of one line", func(t *testing.T) {
		// Arrange
		store := newTestStore(t)
		tpl := store.CreateTemplate(t.Context(), demoRequest("Demo Site", 50))
		cart, err := store.AddCartItem(t.Context(), "cart-1", tpl.ID, 2)
		require.NoError(t, err)

		// Act
		order, err := store.CreateOrderFromCart(t.Context(), cart.ID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 100.00, order.Total)
		assert.Equal(t, models.OrderStatusPaid, order.Status)
		assert.Equal(t, cart.ID, order.CartID)
		assert.Equal(t, cart.Items, order.Items)

		after := store.GetOrCreateCart(t.Context(), cart.ID)
		assert.Empty(t, after.Items)
		assert.Equal(t, 0.0, after.Subtotal)
	})

	t.Run("Order items are frozen", func(t *testing.T) {
		store := newTestStore(t)
		tpl := store.CreateTemplate(t.Context(), demoRequest("Demo Site", 50))
		_, err := store.AddCartItem(t.Context(), "cart-1", tpl.ID, 2)
		require.NoError(t, err)

		order, err := store.CreateOrderFromCart(t.Context(), "cart-1")
		require.NoError(t, err)

		// mutate the cart and the catalog afterwards
		_, err = store.AddCartItem(t.Context(), "cart-1", tpl.ID, 7)
		require.NoError(t, err)
		store.UpdateTemplate(t.Context(), tpl.ID, &models.UpdateTemplateRequest{Price: ptr(1.0)})
		order.Items[0].Quantity = 99

		orders := store.ListOrders(t.Context())
		require.Len(t, orders, 1)
		assert.Equal(t, 2, orders[0].Items[0].Quantity)
		assert.Equal(t, 50.0, orders[0].Items[0].UnitPrice)
		assert.Equal(t, 100.0, orders[0].Total)
	})

	t.Run("Empty cart", func(t *testing.T) {
		store := newTestStore(t)

		order, err := store.CreateOrderFromCart(t.Context(), "empty")

		assert.ErrorIs(t, err, repository.ErrCartEmpty)
		assert.Equal(t, "cart is empty", err.Error())
		assert.Nil(t, order)
		assert.Empty(t, store.ListOrders(t.Context()))
	})

	t.Run("Unknown cart is not created", func(t *testing.T) {
		// Arrange
		store := newTestStore(t)

		// Act
		_, err := store.CreateOrderFromCart(t.Context(), "ghost-cart")

		// Assert
		assert.ErrorIs(t, err, repository.ErrCartEmpty)
		assert.Empty(t, store.Snapshot().Carts)
	})
}

func TestListOrders(t *testing.T) {
	store := newTestStore(t)
	tpl := store.CreateTemplate(t.Context(), demoRequest("Demo Site", 10))

	var created []*models.Order
	for range 3 {
		_, err := store.AddCartItem(t.Context(), "cart-1", tpl.ID, 1)
		require.NoError(t, err)
		order, err := store.CreateOrderFromCart(t.Context(), "cart-1")
		require.NoError(t, err)
		created = append(created, order)
	}

	orders := store.ListOrders(t.Context())

	require.Len(t, orders, 3)
	assert.Equal(t, created[2].ID, orders[0].ID)
	assert.Equal(t, created[1].ID, orders[1].ID)
	assert.Equal(t, created[0].ID, orders[2].ID)

	latest, ok := store.FindLatestOrderForCart(t.Context(), "cart-1")
	require.True(t, ok)
	assert.Equal(t, created[2].ID, latest.ID)

	_, ok = store.FindLatestOrderForCart(t.Context(), "other")
	assert.False(t, ok)
}

func TestGetAdminStats(t *testing.T) {
	t.Run("Empty store", func(t *testing.T) {
		store := newTestStore(t)

		stats := store.GetAdminStats(t.Context())

		assert.Equal(t, &models.AdminStats{RecentOrders: []models.OrderSummary{}}, stats)
	})

	t.Run("Counts, revenue and recent orders", func(t *testing.T) {
		// Arrange
		store := newTestStore(t)
		published := demoRequest("Published", 10.10)
		published.Status = ptr(models.TemplateStatusPublished)
		pub := store.CreateTemplate(t.Context(), published)
		store.CreateTemplate(t.Context(), demoRequest("Draft", 20))

		var ids []string
		for range 6 {
			_, err := store.AddCartItem(t.Context(), "cart-1", pub.ID, 1)
			require.NoError(t, err)
			order, err := store.CreateOrderFromCart(t.Context(), "cart-1")
			require.NoError(t, err)
			ids = append(ids, order.ID)
		}

		// Act
		stats := store.GetAdminStats(t.Context())

		// Assert
		assert.Equal(t, 2, stats.TotalTemplates)
		assert.Equal(t, 1, stats.PublishedTemplates)
		assert.Equal(t, 6, stats.TotalOrders)
		assert.Equal(t, 60.6, stats.TotalRevenue)
		require.Len(t, stats.RecentOrders, 5)
		assert.Equal(t, ids[5], stats.RecentOrders[0].ID)
		assert.Equal(t, ids[1], stats.RecentOrders[4].ID)
		assert.Equal(t, 10.10, stats.RecentOrders[0].Total)
		assert.Equal(t, models.OrderStatusPaid, stats.RecentOrders[0].Status)
	})

	t.Run("Only paid orders count as revenue", func(t *testing.T) {
		store := newTestStore(t)
		snap := store.Snapshot()
		now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
		snap.Orders = []*models.Order{
			{ID: "o-1", CartID: "c", Total: 10, Status: models.OrderStatusPaid, CreatedAt: now, Items: []models.CartItem{}},
			{ID: "o-2", CartID: "c", Total: 99, Status: models.OrderStatusRefunded, CreatedAt: now.Add(time.Hour), Items: []models.CartItem{}},
		}
		require.NoError(t, store.Restore(snap))

		stats := store.GetAdminStats(t.Context())

		assert.Equal(t, 2, stats.TotalOrders)
		assert.Equal(t, 10.0, stats.TotalRevenue)
		assert.Equal(t, "o-2", stats.RecentOrders[0].ID)
	})
}

func TestOnChange(t *testing.T) {
	store := newTestStore(t)

	var changes []repository.Change
	unsubscribe := store.OnChange(func(c repository.Change) {
		changes = append(changes, c)
	})

	tpl := store.CreateTemplate(t.Context(), demoRequest("Demo Site", 10))
	_, err := store.AddCartItem(t.Context(), "cart-1", tpl.ID, 1)
	require.NoError(t, err)
	order, err := store.CreateOrderFromCart(t.Context(), "cart-1")
	require.NoError(t, err)

	// failed mutations are silent
	_, err = store.CreateOrderFromCart(t.Context(), "cart-1")
	require.Error(t, err)
	store.DeleteTemplate(t.Context(), "missing")

	assert.Equal(t, []repository.Change{
		{Kind: repository.ChangeCatalog, ID: tpl.ID},
		{Kind: repository.ChangeCart, ID: "cart-1"},
		{Kind: repository.ChangeCart, ID: "cart-1"},
		{Kind: repository.ChangeOrder, ID: order.ID},
	}, changes)

	unsubscribe()
	unsubscribe()

	store.CreateTemplate(t.Context(), demoRequest("Another", 10))
	assert.Len(t, changes, 4)
}
