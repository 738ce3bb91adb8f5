package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// StorageType selects the ledger backend.
type StorageType string

const (
	StorageInMemory StorageType = "inmemory"
	StorageSQLite   StorageType = "sqlite"
	StoragePostgres StorageType = "postgres"
)

// DBConfig holds database configuration
type DBConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DSN is the key=value connection string understood by both lib/pq and pgx.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// RedisConfig holds the optional lookup cache settings.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	CacheTTL time.Duration
}

func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

type Config struct {
	Env     string
	Name    string
	Version string
	Port    string

	StorageType StorageType
	SQLitePath  string
	Database    DBConfig
	Redis       RedisConfig

	AllowedOrigins []string
	SeedFile       string
	StaticDir      string
	LogOperations  bool
}

// IsDev reports whether the service runs in development mode.
func (c *Config) IsDev() bool {
	return strings.EqualFold(c.Env, "dev")
}

// envBindings maps config keys to their environment variable names.
var envBindings = map[string]string{
	"app.env":                    "APP_ENV",
	"app.name":                   "APP_NAME",
	"app.version":                "APP_VERSION",
	"server.port":                "PORT",
	"storage.type":               "STORAGE_TYPE",
	"sqlite.path":                "SQLITE_PATH",
	"database.driver":            "DATABASE_DRIVER",
	"database.host":              "DATABASE_HOST",
	"database.port":              "DATABASE_PORT",
	"database.user":              "DATABASE_USER",
	"database.password":          "DATABASE_PASSWORD",
	"database.name":              "DATABASE_NAME",
	"database.ssl_mode":          "DATABASE_SSL_MODE",
	"database.max_open_conns":    "DATABASE_MAX_OPEN_CONNS",
	"database.max_idle_conns":    "DATABASE_MAX_IDLE_CONNS",
	"database.conn_max_lifetime": "DATABASE_CONN_MAX_LIFETIME",
	"redis.enabled":              "REDIS_ENABLED",
	"redis.host":                 "REDIS_HOST",
	"redis.port":                 "REDIS_PORT",
	"redis.password":             "REDIS_PASSWORD",
	"redis.db":                   "REDIS_DB",
	"redis.cache_ttl":            "REDIS_CACHE_TTL",
	"cors.allowed_origins":       "CORS_ALLOWED_ORIGINS",
	"seed.file":                  "SEED_FILE",
	"static.dir":                 "STATIC_DIR",
	"log.operations":             "LOG_OPERATIONS",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "prod")
	v.SetDefault("app.name", "Expense Manager Service")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("sqlite.path", "expense_manager.db")

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.name", "expense_manager")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", time.Minute*5)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.cache_ttl", time.Minute*10)

	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("seed.file", "")
	v.SetDefault("static.dir", "./web/dist")
	v.SetDefault("log.operations", true)
}

// Load reads configuration from ./.env and the environment. Environment
// variables win over .env values, which win over defaults.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit dotenv path. A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		log.Printf("Config file not found, using defaults: %v", err)
	}

	for key, env := range envBindings {
		// dotenv keys arrive as lower-cased variable names
		if fileKey := strings.ToLower(env); v.InConfig(fileKey) {
			v.SetDefault(key, v.Get(fileKey))
		}
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	cfg := &Config{
		Env:        v.GetString("app.env"),
		Name:       v.GetString("app.name"),
		Version:    v.GetString("app.version"),
		Port:       v.GetString("server.port"),
		SQLitePath: v.GetString("sqlite.path"),
		Database: DBConfig{
			Driver:          v.GetString("database.driver"),
			Host:            v.GetString("database.host"),
			Port:            v.GetString("database.port"),
			User:            v.GetString("database.user"),
			Password:        v.GetString("database.password"),
			Name:            v.GetString("database.name"),
			SSLMode:         v.GetString("database.ssl_mode"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("database.conn_max_lifetime"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("redis.enabled"),
			Host:     v.GetString("redis.host"),
			Port:     v.GetString("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			CacheTTL: v.GetDuration("redis.cache_ttl"),
		},
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
		SeedFile:       v.GetString("seed.file"),
		StaticDir:      v.GetString("static.dir"),
		LogOperations:  v.GetBool("log.operations"),
	}

	storageType := StorageType(strings.ToLower(strings.TrimSpace(v.GetString("storage.type"))))
	if storageType == "" {
		storageType = StorageSQLite
		if cfg.IsDev() {
			storageType = StorageInMemory
		}
	}
	switch storageType {
	case StorageInMemory, StorageSQLite, StoragePostgres:
		cfg.StorageType = storageType
	default:
		return nil, fmt.Errorf("unknown storage type %q", storageType)
	}

	switch cfg.Database.Driver {
	case "postgres", "pgx":
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
