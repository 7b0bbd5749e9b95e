package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// cachedRevokedTokenRepository fronts the authoritative registry with Redis.
// Keys expire together with the token they describe, so Redis never holds stale entries.
type cachedRevokedTokenRepository struct {
	inner  RevokedTokenRepository
	client redis.Cmdable
	prefix string
	logger *zap.Logger
}

// NewCachedRevokedTokenRepository wraps inner with a Redis read-through cache.
func NewCachedRevokedTokenRepository(inner RevokedTokenRepository, client redis.Cmdable, prefix string, logger *zap.Logger) RevokedTokenRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &cachedRevokedTokenRepository{inner: inner, client: client, prefix: prefix, logger: logger}
}

func (r *cachedRevokedTokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(jti)).Result()
	if err != nil {
		r.logger.Warn("revocation cache lookup failed", zap.String("jti", jti), zap.Error(err))
	} else if n > 0 {
		return true, nil
	}
	return r.inner.IsRevoked(ctx, jti)
}

func (r *cachedRevokedTokenRepository) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	if err := r.inner.Revoke(ctx, jti, expiresAt); err != nil {
		return err
	}

	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, r.key(jti), 1, ttl).Err(); err != nil {
		r.logger.Warn("revocation cache write failed", zap.String("jti", jti), zap.Error(err))
	}
	return nil
}

func (r *cachedRevokedTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	return r.inner.DeleteExpired(ctx, before)
}

func (r *cachedRevokedTokenRepository) key(jti string) string {
	return r.prefix + jti
}
