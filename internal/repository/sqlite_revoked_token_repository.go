package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sqliteRevokedTokenRepository struct {
	db *gorm.DB
}

// NewSQLiteRevokedTokenRepository returns a gorm/SQLite-backed revocation registry.
func NewSQLiteRevokedTokenRepository(db *gorm.DB) RevokedTokenRepository {
	return &sqliteRevokedTokenRepository{db: db}
}

func (r *sqliteRevokedTokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&revokedTokenRecord{}).Where("jti = ?", jti).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *sqliteRevokedTokenRepository) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	rec := revokedTokenRecord{
		JTI:       jti,
		ExpiresAt: expiresAt.UTC(),
		RevokedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rec).Error
}

func (r *sqliteRevokedTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at < ?", before.UTC()).Delete(&revokedTokenRecord{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
