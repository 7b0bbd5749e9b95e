package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRevokedTokenRepository_RevokeIsIdempotent(t *testing.T) {
	repo := NewSQLiteRevokedTokenRepository(newTestDB(t))
	ctx := context.Background()
	exp := time.Now().Add(time.Hour)

	revoked, err := repo.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, repo.Revoke(ctx, "jti-1", exp))
	require.NoError(t, repo.Revoke(ctx, "jti-1", exp))

	revoked, err = repo.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = repo.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestSQLiteRevokedTokenRepository_DeleteExpired(t *testing.T) {
	repo := NewSQLiteRevokedTokenRepository(newTestDB(t))
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.Revoke(ctx, "old", now.Add(-time.Hour)))
	require.NoError(t, repo.Revoke(ctx, "live", now.Add(time.Hour)))

	removed, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	revoked, err := repo.IsRevoked(ctx, "old")
	require.NoError(t, err)
	assert.False(t, revoked)

	revoked, err = repo.IsRevoked(ctx, "live")
	require.NoError(t, err)
	assert.True(t, revoked)
}
