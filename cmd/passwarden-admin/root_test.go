package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"passwarden/config"
	"passwarden/internal/domain/entity"
	domainerrors "passwarden/internal/domain/errors"
	"passwarden/internal/infra/auth"
	"passwarden/internal/infra/persistence/postgres"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.AutoMigrate = true
	cfg.SQLite = &config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "admin.db")}
	cfg.SecretKey.Session = "test-session-secret"
	cfg.Env.Log.Level = "error"
	cfg.ApplyDefaults()
	cfg.Auth.BcryptCost = bcrypt.MinCost

	return cfg
}

func staticLoader(cfg *config.Config) configLoader {
	return func(*pflag.FlagSet) (*config.Config, error) {
		return cfg, nil
	}
}

func execute(t *testing.T, cfg *config.Config, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd(staticLoader(cfg))
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func findUser(t *testing.T, cfg *config.Config, username string) *entity.User {
	t.Helper()

	db, err := postgres.Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	user, err := postgres.NewUserRepository(db).FindByUsername(context.Background(), username)
	require.NoError(t, err)

	return user
}

func TestCreateManager_CreatesUserWithPasswordFromStdin(t *testing.T) {
	cfg := newTestConfig(t)

	out, err := execute(t, cfg, "s3cret\n", "create-manager", "--username", "root")
	require.NoError(t, err)
	assert.Contains(t, out, "created password manager root")

	user := findUser(t, cfg, "root")
	assert.Equal(t, entity.RolePasswordManager, user.Role)
	assert.True(t, auth.NewPasswordHasher(cfg).Check("s3cret", user.PasswordHash))
}

func TestCreateManager_PromotesExistingUserWithoutChangingPassword(t *testing.T) {
	cfg := newTestConfig(t)

	_, err := execute(t, cfg, "", "create-manager", "--username", "root", "--password", "first")
	require.NoError(t, err)
	_, err = execute(t, cfg, "", "grant-manager", "--username", "root")
	require.NoError(t, err)

	out, err := execute(t, cfg, "", "create-manager", "--username", "root", "--password", "second")
	require.NoError(t, err)
	assert.Contains(t, out, "promoted existing user root")

	user := findUser(t, cfg, "root")
	assert.True(t, auth.NewPasswordHasher(cfg).Check("first", user.PasswordHash))
	assert.False(t, auth.NewPasswordHasher(cfg).Check("second", user.PasswordHash))
}

func TestGrantManager_UnknownUser(t *testing.T) {
	cfg := newTestConfig(t)

	_, err := execute(t, cfg, "", "migrate")
	require.NoError(t, err)

	_, err = execute(t, cfg, "", "grant-manager", "--username", "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestCreateManager_RequiresUsername(t *testing.T) {
	cfg := newTestConfig(t)

	_, err := execute(t, cfg, "", "create-manager", "--password", "pw")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username")
}

func TestMigrate(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Database.AutoMigrate = false

	out, err := execute(t, cfg, "", "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "schema migrated (sqlite)")
}

func TestNewRootCmd_Flags(t *testing.T) {
	cmd := NewRootCmd(staticLoader(newTestConfig(t)))

	timeout, err := cmd.PersistentFlags().GetDuration("timeout")
	require.NoError(t, err)
	assert.Equal(t, defaultTimeout, timeout)

	for _, name := range []string{"database.driver", "database.autoMigrate", "sqlite.path"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"create-manager", "grant-manager", "migrate"}, names)
}
