package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/expensemanager/backend/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
)

// OpenPostgres connects with the configured driver ("postgres" for lib/pq,
// "pgx" for the pgx stdlib adapter) and applies the pool settings.
func OpenPostgres(ctx context.Context, cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err = db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	log.Printf("Database connection established (driver %s, %s:%s/%s)", cfg.Driver, cfg.Host, cfg.Port, cfg.Name)
	return db, nil
}
