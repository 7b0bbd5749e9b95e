package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RevokedTokenRepository is the revocation registry: a denylist of token identifiers.
type RevokedTokenRepository interface {
	// IsRevoked reports whether the token identifier has been revoked.
	IsRevoked(ctx context.Context, jti string) (bool, error)
	// Revoke records the identifier. Revoking an already revoked identifier is a no-op.
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	// DeleteExpired purges entries whose token expired before the given instant.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type revokedTokenRepository struct {
	pool *pgxpool.Pool
}

// NewRevokedTokenRepository returns a Postgres-backed implementation.
func NewRevokedTokenRepository(pool *pgxpool.Pool) RevokedTokenRepository {
	return &revokedTokenRepository{pool: pool}
}

func (r *revokedTokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE jti=$1)`

	var revoked bool
	if err := r.pool.QueryRow(ctx, query, jti).Scan(&revoked); err != nil {
		return false, err
	}
	return revoked, nil
}

func (r *revokedTokenRepository) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	const query = `
        INSERT INTO revoked_tokens (jti, expires_at)
        VALUES ($1, $2)
        ON CONFLICT (jti) DO NOTHING`

	_, err := r.pool.Exec(ctx, query, jti, expiresAt.UTC())
	return err
}

func (r *revokedTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM revoked_tokens WHERE expires_at < $1`, before.UTC())
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
