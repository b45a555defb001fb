package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: passwarden
  log:
    level: debug
http:
  port: 8080
database:
  driver: sqlite
  autoMigrate: true
sqlite:
  path: ./passwarden.db
secretKey:
  session: test-session-secret
auth:
  hasher: bcrypt
  bcryptCost: 4
  sessionTTL: 2h
`

func writeTestConfig(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)
}

func TestNew_LoadsYAMLAndDefaults(t *testing.T) {
	writeTestConfig(t)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "./passwarden.db", cfg.SQLite.Path)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, 2*time.Hour, cfg.Auth.SessionTTL)

	// Defaults for sections absent from the file
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultCookieName, cfg.Auth.CookieName)
	assert.Equal(t, SessionStoreDatabase, cfg.Session.Store)
	assert.Equal(t, "admin-reset", cfg.Audit.DefaultResetReason)
	assert.Equal(t, 200, cfg.Audit.MaxListLimit)
	assert.Equal(t, 1, cfg.PasswordPolicy.MinLength)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestNew_EnvOverridesYAML(t *testing.T) {
	writeTestConfig(t)
	t.Setenv("AUTH_HASHER", "argon2id")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, HasherArgon2id, cfg.Auth.Hasher)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestNewWithFlags_ChangedFlagsOverride(t *testing.T) {
	writeTestConfig(t)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("sqlite.path", "", "")
	fs.String("auth.hasher", "", "")
	require.NoError(t, fs.Parse([]string{"--sqlite.path=/tmp/other.db"}))

	cfg, err := NewWithFlags(fs)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/other.db", cfg.SQLite.Path)
	assert.Equal(t, HasherBcrypt, cfg.Auth.Hasher)
}

func TestNew_ShippedConfig(t *testing.T) {
	// The package directory holds the config.yaml shipped with the service.
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "passwarden:session:", cfg.Redis.KeyPrefix)
	assert.Empty(t, cfg.HTTP.TrustedProxies)
}

func TestNew_TrustedProxiesFromEnv(t *testing.T) {
	writeTestConfig(t)
	t.Setenv("HTTP_TRUSTEDPROXIES", "10.0.0.0/8,192.168.0.0/16")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, []string{"10.0.0.0/8", "192.168.0.0/16"}, cfg.HTTP.TrustedProxies)
}

func TestNew_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := New()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		cfg.SecretKey.Session = "secret"
		cfg.Database.Driver = DriverSQLite
		cfg.SQLite = &SQLiteConfig{Path: "db.sqlite"}
		cfg.ApplyDefaults()

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"missing secret", func(c *Config) { c.SecretKey.Session = "" }, "secretKey.session"},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, "unsupported database driver"},
		{"postgres without section", func(c *Config) { c.Database.Driver = DriverPostgres }, "postgres section"},
		{"sqlite without path", func(c *Config) { c.SQLite.Path = "" }, "sqlite.path"},
		{"redis without addr", func(c *Config) { c.Session.Store = SessionStoreRedis }, "redis.addr"},
		{"unknown store", func(c *Config) { c.Session.Store = "memcached" }, "unsupported session store"},
		{"unknown hasher", func(c *Config) { c.Auth.Hasher = "md5" }, "unsupported password hasher"},
		{"min above max", func(c *Config) { c.PasswordPolicy.MinLength = 2000 }, "minLength"},
		{"trusted proxy cidr", func(c *Config) { c.HTTP.TrustedProxies = []string{"10.0.0.0/8"} }, ""},
		{"trusted proxy not a cidr", func(c *Config) { c.HTTP.TrustedProxies = []string{"10.0.0.1"} }, "http.trustedProxies"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"database": map[string]any{"autoMigrate": true},
		"auth":     map[string]any{"sessionTTL": "24h", "bcryptCost": 12},
		"bootstrap": map[string]any{
			"managerUsername": "",
		},
		"passwordPolicy": map[string]any{"minLength": 1},
	}

	tests := map[string]string{
		"DATABASE_AUTOMIGRATE":      "database.autoMigrate",
		"AUTH_SESSIONTTL":           "auth.sessionTTL",
		"AUTH_BCRYPTCOST":           "auth.bcryptCost",
		"BOOTSTRAP_MANAGERUSERNAME": "bootstrap.managerUsername",
		"PASSWORDPOLICY_MINLENGTH":  "passwordPolicy.minLength",
		"UNKNOWN_SECTION_KEY":       "unknown.section.key",
	}

	for envKey, want := range tests {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, existing))
		})
	}
}
