package repository_test

import (
	"testing"
	"time"

	"github.com/aaravmahajanofficial/templatehub/internal/models"
	repository "github.com/aaravmahajanofficial/templatehub/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrap(t *testing.T) {
	t.Run("Seeds admin, catalog and orders", func(t *testing.T) {
		// Arrange
		now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		store := repository.NewStore(repository.WithClock(func() time.Time { return now }))

		// Act
		err := store.Bootstrap(t.Context(), repository.BootstrapOptions{
			AdminUsername: "root",
			AdminPassword: "rootpass",
			SeedCatalog:   true,
		})

		// Assert
		require.NoError(t, err)

		admin, ok := store.VerifyUserCredentials(t.Context(), "root", "rootpass")
		require.True(t, ok)
		assert.Equal(t, models.RoleAdmin, admin.Role)

		templates := store.ListTemplates(t.Context(), models.TemplateFilters{Sort: models.SortTitle})
		require.Len(t, templates, 6)
		for _, tpl := range templates {
			assert.Equal(t, models.TemplateStatusPublished, tpl.Status)
			assert.Len(t, tpl.GalleryImages, 2)
			assert.Len(t, tpl.Tags, 3)
		}
		assert.Equal(t, "corporate-suite", templates[0].Slug)
		assert.Equal(t, 99.0, templates[0].Price)

		orders := store.ListOrders(t.Context())
		require.Len(t, orders, 2)
		assert.Equal(t, now.Add(-12*time.Hour), orders[0].CreatedAt)
		assert.Equal(t, now.Add(-36*time.Hour), orders[1].CreatedAt)
		assert.Equal(t, 168.0, orders[0].Total, "Modern E-Commerce + SaaS Landing Pro")
		assert.Equal(t, 158.0, orders[1].Total, "Creative Portfolio + Corporate Suite")
		for _, o := range orders {
			assert.Equal(t, models.OrderStatusPaid, o.Status)
			assert.NotEmpty(t, o.CartID)
		}

		stats := store.GetAdminStats(t.Context())
		assert.Equal(t, 326.0, stats.TotalRevenue)
	})

	t.Run("Idempotent", func(t *testing.T) {
		store := newTestStore(t)
		opts := repository.BootstrapOptions{AdminUsername: "admin", AdminPassword: "admin123", SeedCatalog: true}

		require.NoError(t, store.Bootstrap(t.Context(), opts))
		require.NoError(t, store.Bootstrap(t.Context(), opts))

		assert.Len(t, store.ListUsers(t.Context()), 1)
		assert.Len(t, store.ListTemplates(t.Context(), models.TemplateFilters{}), 6)
		assert.Len(t, store.ListOrders(t.Context()), 2)
	})

	t.Run("Existing admin name is left alone", func(t *testing.T) {
		store := newTestStore(t)
		_, err := store.CreateUser(t.Context(), "Admin", "original", models.RoleUser)
		require.NoError(t, err)

		require.NoError(t, store.Bootstrap(t.Context(), repository.BootstrapOptions{AdminUsername: "admin", AdminPassword: "admin123"}))

		_, ok := store.VerifyUserCredentials(t.Context(), "admin", "original")
		assert.True(t, ok)
		assert.Len(t, store.ListUsers(t.Context()), 1)
	})

	t.Run("Without seeding", func(t *testing.T) {
		store := newTestStore(t)

		require.NoError(t, store.Bootstrap(t.Context(), repository.BootstrapOptions{}))

		_, ok := store.VerifyUserCredentials(t.Context(), "admin", "admin123")
		assert.True(t, ok)
		assert.Empty(t, store.ListTemplates(t.Context(), models.TemplateFilters{}))
		assert.Empty(t, store.ListOrders(t.Context()))
	})
}
