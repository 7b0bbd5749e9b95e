package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/auth-service/internal/config"
	"github.com/spec-kit/auth-service/internal/domain"
	"github.com/spec-kit/auth-service/internal/persistence"
)

// newTestPostgres connects to TEST_POSTGRES_DSN and applies migrations, or skips.
func newTestPostgres(t *testing.T) *persistence.Postgres {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}

	ctx := context.Background()
	pg, err := persistence.NewPostgres(ctx, config.PostgresConfig{DSN: dsn}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(pg.Close)

	require.NoError(t, persistence.RunMigrations(ctx, pg.PoolHandle(), zap.NewNop()))
	return pg
}

func TestPostgresUserRepository(t *testing.T) {
	pg := newTestPostgres(t)
	repo := NewUserRepository(pg.PoolHandle())
	ctx := context.Background()

	email := fmt.Sprintf("%s@example.com", uuid.NewString())
	user := &domain.User{Name: "A", Email: email, PasswordHash: "h"}
	require.NoError(t, repo.Create(ctx, user))
	t.Cleanup(func() { _ = repo.Delete(context.Background(), user.ID) })
	assert.Positive(t, user.ID)

	err := repo.Create(ctx, &domain.User{Name: "B", Email: email, PasswordHash: "h"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

	bio := "bio"
	user.Name = "Alice"
	user.OtherProfileData = &bio
	require.NoError(t, repo.Update(ctx, user))

	got, err := repo.GetByEmail(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	require.NotNil(t, got.OtherProfileData)
	assert.Equal(t, "bio", *got.OtherProfileData)

	_, err = repo.GetByID(ctx, -1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, -1), domain.ErrNotFound)
}

func TestPostgresRevokedTokenRepository(t *testing.T) {
	pg := newTestPostgres(t)
	repo := NewRevokedTokenRepository(pg.PoolHandle())
	ctx := context.Background()

	live := uuid.NewString()
	old := uuid.NewString()
	now := time.Now()

	require.NoError(t, repo.Revoke(ctx, live, now.Add(time.Hour)))
	require.NoError(t, repo.Revoke(ctx, live, now.Add(time.Hour)))
	require.NoError(t, repo.Revoke(ctx, old, now.Add(-time.Hour)))

	revoked, err := repo.IsRevoked(ctx, live)
	require.NoError(t, err)
	assert.True(t, revoked)

	removed, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, removed, int64(1))

	revoked, err = repo.IsRevoked(ctx, old)
	require.NoError(t, err)
	assert.False(t, revoked)
}
