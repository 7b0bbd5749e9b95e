package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/auth-service/internal/auth"
	"github.com/spec-kit/auth-service/internal/config"
	"github.com/spec-kit/auth-service/internal/persistence"
	"github.com/spec-kit/auth-service/internal/repository"
)

type fixture struct {
	users   *UserService
	tokens  *TokenService
	auth    *AuthService
	manager *auth.TokenManager
	revoked repository.RevokedTokenRepository
	clock   *time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := persistence.NewSQLite(
		config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "auth.db")},
		zap.NewNop(),
		repository.SQLiteModels()...,
	)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	users, err := NewUserService(repository.NewSQLiteUserRepository(db.DB), bcrypt.MinCost, zap.NewNop())
	require.NoError(t, err)

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	f := &fixture{clock: &now}
	f.manager = auth.NewTokenManager("test-secret", time.Minute).WithClock(func() time.Time { return *f.clock })
	f.revoked = repository.NewSQLiteRevokedTokenRepository(db.DB)
	f.users = users
	f.tokens = NewTokenService(f.manager, f.revoked, zap.NewNop())
	f.auth = NewAuthService(users, f.tokens)
	return f
}

func (f *fixture) advance(d time.Duration) {
	*f.clock = f.clock.Add(d)
}
