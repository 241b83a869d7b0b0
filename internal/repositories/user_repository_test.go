package repository_test

import (
	"testing"
	"time"

	"github.com/aaravmahajanofficial/templatehub/internal/models"
	repository "github.com/aaravmahajanofficial/templatehub/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	store := newTestStore(t)
	ctx := t.Context()

	alice, err := store.CreateUser(ctx, "Alice", "s3cret!", models.RoleUser)
	require.NoError(t, err)

	t.Run("Create", func(t *testing.T) {
		assert.NotEmpty(t, alice.ID)
		assert.Equal(t, "Alice", alice.Username)
		assert.Equal(t, models.RoleUser, alice.Role)
		assert.False(t, alice.IsPremium)
		assert.Nil(t, alice.PremiumUntil)
	})

	t.Run("Usernames are unique ignoring case", func(t *testing.T) {
		_, err := store.CreateUser(ctx, "ALICE", "other", models.RoleUser)
		assert.ErrorIs(t, err, repository.ErrUsernameTaken)
	})

	t.Run("Unknown roles become user", func(t *testing.T) {
		u, err := store.CreateUser(ctx, "mallory", "pw1234", models.UserRole("superuser"))
		require.NoError(t, err)
		assert.Equal(t, models.RoleUser, u.Role)
	})

	t.Run("Lookup", func(t *testing.T) {
		got, ok := store.GetUser(ctx, alice.ID)
		require.True(t, ok)
		assert.Equal(t, alice, got)

		got, ok = store.GetUserByUsername(ctx, "alice")
		require.True(t, ok)
		assert.Equal(t, alice.ID, got.ID)

		_, ok = store.GetUser(ctx, "missing")
		assert.False(t, ok)
	})

	t.Run("Verify credentials", func(t *testing.T) {
		got, ok := store.VerifyUserCredentials(ctx, "aLiCe", "s3cret!")
		require.True(t, ok)
		assert.Equal(t, alice.ID, got.ID)

		_, ok = store.VerifyUserCredentials(ctx, "alice", "wrong")
		assert.False(t, ok)

		_, ok = store.VerifyUserCredentials(ctx, "nobody", "s3cret!")
		assert.False(t, ok)
	})

	t.Run("Premium update", func(t *testing.T) {
		until := time.Date(2026, 1, 1, 0, 0, 0, 0, time.FixedZone("CET", 3600))

		updated, err := store.UpdateUserPremium(ctx, alice.ID, true, &until)
		require.NoError(t, err)
		assert.True(t, updated.IsPremium)
		require.NotNil(t, updated.PremiumUntil)
		assert.True(t, until.Equal(*updated.PremiumUntil))
		assert.Equal(t, time.UTC, updated.PremiumUntil.Location())

		cleared, err := store.UpdateUserPremium(ctx, alice.ID, false, nil)
		require.NoError(t, err)
		assert.False(t, cleared.IsPremium)
		assert.Nil(t, cleared.PremiumUntil)

		_, err = store.UpdateUserPremium(ctx, "missing", true, nil)
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("List oldest first", func(t *testing.T) {
		users := store.ListUsers(ctx)
		require.Len(t, users, 2)
		assert.Equal(t, "Alice", users[0].Username)
		assert.Equal(t, "mallory", users[1].Username)
	})
}
