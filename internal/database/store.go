package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/expensemanager/backend/internal/config"
	"github.com/expensemanager/backend/internal/storage"
	"github.com/expensemanager/backend/internal/storage/cache"
	"github.com/expensemanager/backend/internal/storage/memory"
	"github.com/expensemanager/backend/internal/storage/sqlstore"
	"github.com/go-redis/redis/v8"
)

// OpenStore builds the configured backend, migrates it, and fronts it with
// the Redis lookup cache when rdb is non-nil. The returned *sql.DB is nil for
// the in-memory backend. Closing the store closes the database.
func OpenStore(ctx context.Context, cfg *config.Config, rdb *redis.Client) (storage.Store, *sql.DB, error) {
	var (
		db      *sql.DB
		dialect sqlstore.Dialect
		err     error
	)

	switch cfg.StorageType {
	case config.StorageInMemory:
		log.Println("Using in-memory storage; data is lost on restart")
		return cache.New(memory.New(), rdb, cfg.Redis.CacheTTL), nil, nil
	case config.StorageSQLite:
		db, err = OpenSQLite(cfg.SQLitePath)
		dialect = sqlstore.SQLite
	case config.StoragePostgres:
		db, err = OpenPostgres(ctx, cfg.Database)
		dialect = sqlstore.Postgres
	default:
		return nil, nil, fmt.Errorf("unknown storage type %q", cfg.StorageType)
	}
	if err != nil {
		return nil, nil, err
	}

	store := sqlstore.New(db, dialect)
	if err := store.Migrate(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to migrate %s database: %w", dialect, err)
	}

	return cache.New(store, rdb, cfg.Redis.CacheTTL), db, nil
}
