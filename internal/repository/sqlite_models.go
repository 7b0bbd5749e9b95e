package repository

import (
	"time"

	"github.com/spec-kit/auth-service/internal/domain"
)

// userRecord is the gorm mapping of the users table.
type userRecord struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	Name             string `gorm:"size:255;not null"`
	Email            string `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash     string `gorm:"not null"`
	OtherProfileData *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (userRecord) TableName() string {
	return "users"
}

func (r *userRecord) toDomain() *domain.User {
	return &domain.User{
		ID:               r.ID,
		Name:             r.Name,
		Email:            r.Email,
		PasswordHash:     r.PasswordHash,
		OtherProfileData: r.OtherProfileData,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// revokedTokenRecord is the gorm mapping of the revoked_tokens table.
type revokedTokenRecord struct {
	JTI       string    `gorm:"column:jti;primaryKey;size:64"`
	ExpiresAt time.Time `gorm:"not null;index"`
	RevokedAt time.Time `gorm:"not null"`
}

func (revokedTokenRecord) TableName() string {
	return "revoked_tokens"
}

// SQLiteModels lists the gorm models to auto-migrate for the embedded database.
func SQLiteModels() []any {
	return []any{&userRecord{}, &revokedTokenRecord{}}
}
