package session

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"passwarden/config"
	"passwarden/internal/domain/entity"
	"passwarden/internal/infra/persistence/postgres"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_DatabaseStore(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{Driver: config.DriverSQLite},
		SQLite:   &config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "sessions.db")},
		Session:  &config.SessionConfig{Store: config.SessionStoreDatabase},
	}
	db, err := postgres.Open(cfg, discardLogger())
	require.NoError(t, err)
	require.NoError(t, postgres.AutoMigrate(db))

	user := &entity.User{Username: "alice", PasswordHash: "hash", Role: entity.RoleStandard}
	require.NoError(t, postgres.NewUserRepository(db).Create(t.Context(), user))

	lc := fxtest.NewLifecycle(t)
	store, err := New(Params{Lifecycle: lc, Config: cfg, Logger: discardLogger(), DB: db})
	require.NoError(t, err)
	lc.RequireStart()
	defer lc.RequireStop()

	session := &entity.Session{ID: uuid.New(), UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, store.Create(t.Context(), session))

	found, err := store.FindByID(t.Context(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.UserID)
}

func TestNew_RedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &config.Config{
		Session: &config.SessionConfig{Store: config.SessionStoreRedis},
		Redis:   &config.RedisConfig{Addr: mr.Addr()},
	}

	lc := fxtest.NewLifecycle(t)
	store, err := New(Params{Lifecycle: lc, Config: cfg, Logger: discardLogger()})
	require.NoError(t, err)
	lc.RequireStart()
	defer lc.RequireStop()

	session := &entity.Session{ID: uuid.New(), UserID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, store.Create(t.Context(), session))
	assert.True(t, mr.Exists(defaultKeyPrefix+session.ID.String()))
}

func TestNew_UnsupportedStore(t *testing.T) {
	cfg := &config.Config{Session: &config.SessionConfig{Store: "memcached"}}

	_, err := New(Params{Lifecycle: fxtest.NewLifecycle(t), Config: cfg, Logger: discardLogger()})
	assert.Error(t, err)
}
