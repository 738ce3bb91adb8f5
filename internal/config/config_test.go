package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every bound variable; viper treats empty values as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envBindings {
		t.Setenv(env, "")
	}
}

func writeDotenv(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "Expense Manager Service", cfg.Name)
	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageSQLite, cfg.StorageType)
	assert.Equal(t, "expense_manager.db", cfg.SQLitePath)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, 10*time.Minute, cfg.Redis.CacheTTL)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Empty(t, cfg.SeedFile)
	assert.True(t, cfg.LogOperations)
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=password dbname=expense_manager sslmode=disable",
		cfg.Database.DSN())
}

func TestLoadDevDefaultsToInMemory(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "dev")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, StorageInMemory, cfg.StorageType)

	t.Setenv("STORAGE_TYPE", "SQLite")
	cfg, err = LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, StorageSQLite, cfg.StorageType, "explicit type wins over dev mode")
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	path := writeDotenv(t, "STORAGE_TYPE=postgres\nDATABASE_HOST=db.internal\nREDIS_CACHE_TTL=30s\nCORS_ALLOWED_ORIGINS=http://a.test, http://b.test\n")
	t.Setenv("DATABASE_HOST", "override.internal")
	t.Setenv("DATABASE_DRIVER", "pgx")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, StoragePostgres, cfg.StorageType)
	assert.Equal(t, "override.internal", cfg.Database.Host, "environment wins over .env")
	assert.Equal(t, "pgx", cfg.Database.Driver)
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
}

func TestLoadRejectsUnknownValues(t *testing.T) {
	t.Run("storage type", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STORAGE_TYPE", "mongo")
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorContains(t, err, `unknown storage type "mongo"`)
	})

	t.Run("database driver", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DATABASE_DRIVER", "mysql")
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorContains(t, err, `unknown database driver "mysql"`)
	})
}
