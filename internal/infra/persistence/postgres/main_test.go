package postgres

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"passwarden/config"
	"passwarden/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a migrated SQLite database in a per-test directory.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		Database: config.DatabaseConfig{Driver: config.DriverSQLite},
		SQLite:   &config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "passwarden.db")},
	}

	db, err := Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()

	user := &entity.User{
		Username:     username,
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderplacehol",
		Role:         entity.RoleStandard,
	}
	require.NoError(t, NewUserRepository(db).Create(t.Context(), user))
	require.NotEqual(t, uuid.Nil, user.ID)

	return user
}
