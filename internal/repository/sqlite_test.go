package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/spec-kit/auth-service/internal/config"
	"github.com/spec-kit/auth-service/internal/persistence"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := persistence.NewSQLite(
		config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "auth.db")},
		zap.NewNop(),
		SQLiteModels()...,
	)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db.DB
}
