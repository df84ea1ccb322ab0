package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealplanner-backend-go/internal/models"
)

func TestUserService_GetOrCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates profile from claims on first sight", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewUserService(repo)

		user, created, err := svc.GetOrCreate(ctx, "uid-1", "a@example.com", "Alice", "Smith")
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "uid-1", user.ID)
		assert.Equal(t, "a@example.com", user.Email)
		assert.Equal(t, "Alice", user.FirstName)
	})

	t.Run("second call returns existing profile unchanged", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewUserService(repo)

		_, _, err := svc.GetOrCreate(ctx, "uid-1", "a@example.com", "Alice", "Smith")
		require.NoError(t, err)

		user, created, err := svc.GetOrCreate(ctx, "uid-1", "changed@example.com", "Changed", "Name")
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "a@example.com", user.Email)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (UserService, *fakeUserRepo) {
		repo := newFakeUserRepo()
		svc := NewUserService(repo)
		_, _, err := svc.GetOrCreate(ctx, "uid-1", "a@example.com", "Alice", "Smith")
		require.NoError(t, err)
		return svc, repo
	}

	t.Run("partial update leaves other fields", func(t *testing.T) {
		svc, _ := setup(t)

		first := "Alicia"
		user, err := svc.UpdateProfile(ctx, "uid-1", models.UpdateProfileRequest{FirstName: &first})
		require.NoError(t, err)
		assert.Equal(t, "Alicia", user.FirstName)
		assert.Equal(t, "Smith", user.LastName)
	})

	t.Run("taken username rejected", func(t *testing.T) {
		svc, repo := setup(t)
		repo.taken["cook99"] = "uid-2"

		username := "cook99"
		_, err := svc.UpdateProfile(ctx, "uid-1", models.UpdateProfileRequest{Username: &username})
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("keeping own username skips uniqueness check", func(t *testing.T) {
		svc, _ := setup(t)

		username := "cook99"
		_, err := svc.UpdateProfile(ctx, "uid-1", models.UpdateProfileRequest{Username: &username})
		require.NoError(t, err)

		// Saving the same name again must not trip over our own claim.
		user, err := svc.UpdateProfile(ctx, "uid-1", models.UpdateProfileRequest{Username: &username})
		require.NoError(t, err)
		assert.Equal(t, "cook99", user.Username)
	})

	t.Run("unknown user not found", func(t *testing.T) {
		svc, _ := setup(t)

		first := "X"
		_, err := svc.UpdateProfile(ctx, "uid-missing", models.UpdateProfileRequest{FirstName: &first})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
