package config

import (
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
	"github.com/spf13/pflag"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultSessionTTL         = 24 * time.Hour
	defaultCookieName         = "passwarden_session"
	defaultBcryptCost         = 12
	defaultPasswordMaxLength  = 1024
	defaultMetricsPath        = "/metrics"
)

// DefaultMaxListLimit caps how many audit entries a single request may return.
const DefaultMaxListLimit = 200

// Database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Session stores.
const (
	SessionStoreDatabase = "database"
	SessionStoreRedis    = "redis"
)

// Password hashers.
const (
	HasherBcrypt   = "bcrypt"
	HasherArgon2id = "argon2id"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`

		// TrustedProxies lists CIDRs whose X-Forwarded-For is believed. Empty means the peer address is used.
		TrustedProxies []string `json:"trustedProxies" yaml:"trustedProxies"`

		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SQLite *SQLiteConfig `json:"sqlite" yaml:"sqlite"`

	SecretKey struct {
		Session string `json:"session" yaml:"session"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Session *SessionConfig `json:"session" yaml:"session"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	PasswordPolicy *PasswordPolicyConfig `json:"passwordPolicy" yaml:"passwordPolicy"`

	Audit *AuditConfig `json:"audit" yaml:"audit"`

	// Bootstrap seeds the first password manager at startup when both fields are set
	Bootstrap *BootstrapConfig `json:"bootstrap" yaml:"bootstrap"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

// DatabaseConfig selects the SQL backend
type DatabaseConfig struct {
	Driver      string `json:"driver" yaml:"driver"`
	AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
}

// SQLiteConfig defines the on-disk database used by the sqlite driver
type SQLiteConfig struct {
	Path string `json:"path" yaml:"path"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	Hasher       string        `json:"hasher" yaml:"hasher"`
	BcryptCost   int           `json:"bcryptCost" yaml:"bcryptCost"`
	SessionTTL   time.Duration `json:"sessionTTL" yaml:"sessionTTL"`
	CookieName   string        `json:"cookieName" yaml:"cookieName"`
	CookieSecure bool          `json:"cookieSecure" yaml:"cookieSecure"`
}

// SessionConfig selects where login sessions are stored
type SessionConfig struct {
	Store string `json:"store" yaml:"store"`
}

// RedisConfig defines the redis connection for the redis session store
type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// PasswordPolicyConfig defines password length requirements
type PasswordPolicyConfig struct {
	MinLength int `json:"minLength" yaml:"minLength"`
	MaxLength int `json:"maxLength" yaml:"maxLength"`
}

// AuditConfig defines audit log behaviour
type AuditConfig struct {
	DefaultResetReason string `json:"defaultResetReason" yaml:"defaultResetReason"`
	MaxListLimit       int    `json:"maxListLimit" yaml:"maxListLimit"`
}

// BootstrapConfig holds the credentials of the initial password manager
type BootstrapConfig struct {
	ManagerUsername string `json:"managerUsername" yaml:"managerUsername"`
	ManagerPassword string `json:"managerPassword" yaml:"managerPassword"`
}

// MetricsConfig defines the prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	return load[T](currEnv, nil, configPath...)
}

// LoadWithFlags behaves like LoadWithEnv and then overlays flags that were explicitly set on fs.
// Flag names use the dotted config path, e.g. --database.driver=sqlite.
func LoadWithFlags[T any](currEnv string, fs *pflag.FlagSet, configPath ...string) (*T, error) {
	return load[T](currEnv, fs, configPath...)
}

func load[T any](currEnv string, fs *pflag.FlagSet, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if fs != nil {
		if err := koanfInstance.Load(posflag.Provider(fs, ".", koanfInstance), nil); err != nil {
			return nil, errors.Wrap(err, "load command line flags failed")
		}
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// New loads config.yaml for the HTTP service.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	return finalize(cfg)
}

// NewWithFlags loads config.yaml and applies explicitly set command line flags on top.
func NewWithFlags(fs *pflag.FlagSet) (*Config, error) {
	cfg, err := LoadWithFlags[Config]("config", fs, "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	return finalize(cfg)
}

func finalize(cfg *Config) (*Config, error) {
	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills every optional section so that callers never need nil checks.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DriverPostgres
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.Hasher == "" {
		cfg.Auth.Hasher = HasherBcrypt
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	if cfg.Auth.SessionTTL <= 0 {
		cfg.Auth.SessionTTL = defaultSessionTTL
	}
	if cfg.Auth.CookieName == "" {
		cfg.Auth.CookieName = defaultCookieName
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.Store == "" {
		cfg.Session.Store = SessionStoreDatabase
	}

	if cfg.PasswordPolicy == nil {
		cfg.PasswordPolicy = &PasswordPolicyConfig{}
	}
	if cfg.PasswordPolicy.MinLength <= 0 {
		cfg.PasswordPolicy.MinLength = 1
	}
	if cfg.PasswordPolicy.MaxLength <= 0 {
		cfg.PasswordPolicy.MaxLength = defaultPasswordMaxLength
	}

	if cfg.Audit == nil {
		cfg.Audit = &AuditConfig{}
	}
	if cfg.Audit.DefaultResetReason == "" {
		cfg.Audit.DefaultResetReason = "admin-reset"
	}
	if cfg.Audit.MaxListLimit <= 0 {
		cfg.Audit.MaxListLimit = DefaultMaxListLimit
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}
}

// Validate rejects configurations the service cannot start with.
func (cfg *Config) Validate() error {
	if cfg.SecretKey.Session == "" {
		return errors.New("secretKey.session must be provided")
	}

	for _, cidr := range cfg.HTTP.TrustedProxies {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			return errors.Wrapf(err, "http.trustedProxies: invalid CIDR %q", cidr)
		}
	}

	switch cfg.Database.Driver {
	case DriverPostgres:
		if cfg.Postgres == nil {
			return errors.New("postgres section is required for the postgres driver")
		}
	case DriverSQLite:
		if cfg.SQLite == nil || cfg.SQLite.Path == "" {
			return errors.New("sqlite.path is required for the sqlite driver")
		}
	default:
		return errors.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	switch cfg.Session.Store {
	case SessionStoreDatabase:
	case SessionStoreRedis:
		if cfg.Redis == nil || cfg.Redis.Addr == "" {
			return errors.New("redis.addr is required for the redis session store")
		}
	default:
		return errors.Errorf("unsupported session store: %s", cfg.Session.Store)
	}

	switch cfg.Auth.Hasher {
	case HasherBcrypt, HasherArgon2id:
	default:
		return errors.Errorf("unsupported password hasher: %s", cfg.Auth.Hasher)
	}

	if cfg.PasswordPolicy.MinLength > cfg.PasswordPolicy.MaxLength {
		return errors.New("passwordPolicy.minLength must not exceed passwordPolicy.maxLength")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
