package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/auth-service/internal/domain"
)

func TestSQLiteUserRepository_CreateAndGet(t *testing.T) {
	repo := NewSQLiteUserRepository(newTestDB(t))
	ctx := context.Background()

	user := &domain.User{Name: "A", Email: "a@x.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.Equal(t, int64(1), user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)
	assert.Equal(t, "hash", byID.PasswordHash)
	assert.Nil(t, byID.OtherProfileData)

	byEmail, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestSQLiteUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewSQLiteUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{Name: "A", Email: "a@x.com", PasswordHash: "h"}))
	err := repo.Create(ctx, &domain.User{Name: "B", Email: "a@x.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestSQLiteUserRepository_NotFound(t *testing.T) {
	repo := NewSQLiteUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "missing@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = repo.Update(ctx, &domain.User{ID: 99, Name: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = repo.Delete(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSQLiteUserRepository_UpdateAndDelete(t *testing.T) {
	repo := NewSQLiteUserRepository(newTestDB(t))
	ctx := context.Background()

	user := &domain.User{Name: "A", Email: "a@x.com", PasswordHash: "h"}
	require.NoError(t, repo.Create(ctx, user))

	bio := "likes go"
	user.Name = "Alice"
	user.OtherProfileData = &bio
	require.NoError(t, repo.Update(ctx, user))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	require.NotNil(t, got.OtherProfileData)
	assert.Equal(t, "likes go", *got.OtherProfileData)

	require.NoError(t, repo.Delete(ctx, user.ID))
	_, err = repo.GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
