package domain

import "time"

// User is the domain model for a registered account.
type User struct {
	ID               int64
	Name             string
	Email            string
	PasswordHash     string
	OtherProfileData *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// UserUpdate carries the profile fields a caller may change. Nil fields are left untouched.
type UserUpdate struct {
	Name             *string
	OtherProfileData *string
}
