package domain

import "time"

// Token describes an issued bearer token.
type Token struct {
	ID        string
	UserID    int64
	Value     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// RevokedToken is a denylist entry keyed by the token identifier (jti).
type RevokedToken struct {
	JTI       string
	ExpiresAt time.Time
	RevokedAt time.Time
}
