package repo_test

import (
	"context"
	"testing"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo(t *testing.T) {
	db := setupTestDB(t)
	users := repo.NewUserRepo(db)
	ctx := context.Background()

	created := createUser(t, db, "Kim@Example.com")
	assert.Equal(t, "kim@example.com", created.Email)
	assert.Equal(t, entities.RoleUser, created.Role)

	got, err := users.FindByEmail(ctx, "KIM@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	got, err = users.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "hash", got.PasswordHash)

	_, err = users.Create(ctx, entities.User{Email: "kim@example.com", PasswordHash: "x", Name: "Other"})
	assert.ErrorIs(t, err, entities.ErrEmailTaken)

	_, err = users.FindByID(ctx, created.ID+100)
	assert.ErrorIs(t, err, entities.ErrUserNotFound)
}
